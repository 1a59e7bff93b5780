// Package wordladder finds shortest transformation paths between
// dictionary words, where a single move inserts or deletes one letter
// with letter order ignored (anagram-preserving adjacency).
//
// 🚀 What is WordLadder?
//
//	A precompute-once, query-many word graph toolkit:
//		• dict:   word ↔ dense WordID index and anagram buckets
//		• ladder: neighbor graph construction via canonical-key probing
//		• store:  deterministic, optionally gzip-compressed adjacency persistence
//		• search: shortest paths (BFS), connected components, longest shortest path
//		• cmd/wordladder: the CLI tying it all together
//
// ✨ Why this layout?
//
//   - The algorithms are pure and hook-instrumented (OnVisit, WithProgress…),
//     so they are independently testable and the CLI owns all printing
//   - The adjacency graph is immutable once built: read-only queries can
//     safely share it across goroutines
//   - Rebuilding the store is the only answer to a changed dictionary;
//     the store embeds a BLAKE3 fingerprint to catch mismatches early
//
// Quick ASCII example:
//
//	cat ── cats
//	 ├──── scat
//	 └──── acts
//
//	"cats", "scat" and "acts" are anagrams sharing one bucket: none of
//	them are direct neighbors, but each is one insertion away from "cat".
//
//	go get github.com/benediktwerner/WordLadder
package wordladder
