// Package store persists the adjacency graph to disk and loads it back.
//
// Format: a header line
//
//	#wordladder v1 <record-count> <dictionary-fingerprint>
//
// followed by one text record per WordID in ascending order:
//
//	<id> [<neighbor-id> ...]\n
//
// covering the full [0, N) range with no gaps. Records and neighbor
// lists are ascending, so re-saving an unchanged graph is byte
// identical. When the file path ends in ".gz" the whole stream is
// wrapped in a gzip container (github.com/klauspost/compress/gzip),
// which keeps the on-disk format readable by ordinary gzip tooling.
//
// Load trusts record contents for performance: it validates framing,
// ID ranges and record coverage, but not neighbor symmetry.
//
// Errors:
//
//   - ErrCorruptData: malformed record, non-integer token, ID out of
//     range, duplicate or missing record. The data is not auto-repaired;
//     delete the file and re-run precompute.
//   - ErrDictionaryChanged: the store was built from a dictionary with a
//     different fingerprint than the one supplied by the caller.
package store
