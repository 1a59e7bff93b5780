// Package dict loads a word list into an immutable, bidirectional
// word ↔ WordID index and groups words into anagram buckets keyed by
// their canonical sorted-letter signature.
//
// What:
//
//   - Index: dense WordID (file order) ↔ word mapping, immutable after Load.
//   - CanonicalKey: letters of a word sorted ascending, the anagram signature.
//   - Buckets: CanonicalKey → ascending []WordID of the words sharing it.
//
// Why:
//
//   - The ladder builder probes buckets instead of comparing word pairs,
//     turning the O(W²) neighbor computation into O(W·(L+A)) key lookups.
//
// Errors:
//
//   - ErrInvalidWord: a dictionary entry contains a non 'a'..'z' rune.
//   - ErrIndexNil: nil index passed to Buckets.
//
// Dictionaries are assumed to be plain text, one word per line; empty
// lines are skipped and duplicate words keep their distinct WordIDs.
package dict
