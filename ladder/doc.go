// Package ladder builds the word adjacency graph: two words are
// adjacent when one can be produced from the other by inserting or
// deleting a single letter, matched through canonical sorted-letter
// keys (dict.CanonicalKey).
//
// What:
//
//   - Graph: flat WordID → ascending neighbor-ID adjacency, immutable
//     once built, safe for concurrent read-only traversals.
//   - Build: probes, for every anagram bucket, the 26 single-letter
//     insertion keys and every distinct single-letter deletion key, and
//     unions the member IDs of the buckets that exist.
//
// Semantics worth knowing:
//
//   - A word is never its own neighbor, and equal-length anagrams are
//     NOT neighbors: insertions lengthen and deletions shorten the key,
//     so a bucket can never probe itself. Words of the same bucket are
//     only connected through a third, shorter or longer key.
//   - Every word gets an adjacency record, possibly empty.
//
// Complexity: O(W·(L+A)) bucket lookups (L = word length, A = alphabet
// size), each union proportional to the hit bucket's size.
//
// Options:
//
//   - WithWorkers(n): bucket-level parallelism; output is identical to
//     the sequential build because every WordID belongs to exactly one
//     bucket, so workers write disjoint adjacency rows.
//   - WithProgress(fn): monotone completed-bucket counter.
//   - WithContext(ctx): cooperative cancellation.
//
// Errors:
//
//   - ErrIndexNil: nil dictionary index.
//   - ErrOptionViolation: invalid option value (e.g. Workers < 1).
package ladder
