package dict

import "sort"

// CanonicalKey returns the letters of word sorted ascending - the
// anagram signature used to bucket words. Stable and total over any
// lower-case ASCII string. Complexity: O(L log L).
func CanonicalKey(word string) string {
	letters := []byte(word)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	return string(letters)
}

// Buckets groups every WordID in idx by the canonical key of its word.
// Member slices are in ascending WordID order, so bucket iteration by a
// caller that sorts the keys is fully deterministic.
// Returns ErrIndexNil for a nil index.
// Complexity: O(W·L log L) time, O(W) memory.
func Buckets(idx *Index) (map[string][]WordID, error) {
	if idx == nil {
		return nil, ErrIndexNil
	}

	buckets := make(map[string][]WordID, len(idx.words))
	for id, word := range idx.words {
		key := CanonicalKey(word)
		buckets[key] = append(buckets[key], WordID(id))
	}

	return buckets, nil
}
