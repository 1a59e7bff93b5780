package dict

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"lukechampine.com/blake3"
)

// Index is the immutable bidirectional mapping between dictionary words
// and their dense WordIDs. IDs follow file order; duplicate words keep
// distinct IDs, and IDOf resolves a duplicated string to its last
// occurrence (matching the load order).
type Index struct {
	words       []string
	ids         map[string]WordID
	fingerprint string
}

// Load reads one word per non-empty line of path, trims surrounding
// whitespace, lower-cases the word and assigns the next sequential
// WordID. Returns ErrInvalidWord if an entry contains a rune outside
// 'a'..'z'; I/O failures are wrapped and returned as-is.
// Complexity: O(total input bytes).
func Load(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dict: reading word list: %w", err)
	}

	sum := blake3.Sum256(raw)
	idx := &Index{
		ids:         make(map[string]WordID),
		fingerprint: hex.EncodeToString(sum[:]),
	}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	line := 0
	for scanner.Scan() {
		line++
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !lowerLettersOnly(word) {
			return nil, fmt.Errorf("%w: %q (line %d)", ErrInvalidWord, word, line)
		}
		idx.ids[word] = WordID(len(idx.words))
		idx.words = append(idx.words, word)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("dict: scanning word list: %w", err)
	}

	return idx, nil
}

// Len returns the number of loaded words (including duplicates).
func (idx *Index) Len() int {
	return len(idx.words)
}

// IDOf returns the WordID of word and whether it is present.
func (idx *Index) IDOf(word string) (WordID, bool) {
	id, ok := idx.ids[word]
	return id, ok
}

// WordOf returns the word with the given ID. Every ID produced by Load
// is valid; passing an ID from a different index panics.
func (idx *Index) WordOf(id WordID) string {
	return idx.words[id]
}

// Fingerprint returns the BLAKE3-256 hex digest of the raw word list
// bytes. The adjacency store embeds it so that precomputed data built
// from a different dictionary is rejected at load time.
func (idx *Index) Fingerprint() string {
	return idx.fingerprint
}

// lowerLettersOnly reports whether word consists solely of 'a'..'z'.
func lowerLettersOnly(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}

	return true
}
