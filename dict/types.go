// Package dict defines the word identifier type and sentinel errors
// for dictionary loading.
package dict

import "errors"

// WordID is the dense integer identifier of a dictionary word.
// IDs are assigned in file order starting at 0; the WordID ↔ word
// mapping is a bijection for the lifetime of an Index and IDs are
// never reused or reassigned.
type WordID int

// Sentinel errors for dictionary loading.
var (
	// ErrInvalidWord is returned when a dictionary entry contains a rune
	// outside 'a'..'z' after lower-casing. The dictionary is rejected at
	// load time rather than silently passed through.
	ErrInvalidWord = errors.New("dict: word contains non-letter characters")

	// ErrIndexNil is returned when a nil *Index is passed to Buckets.
	ErrIndexNil = errors.New("dict: index is nil")
)
