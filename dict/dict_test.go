package dict_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benediktwerner/WordLadder/dict"
)

// writeWordList creates a temporary dictionary file with the given raw
// contents and returns its path.
func writeWordList(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordList.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoad_FileOrderAndLookup(t *testing.T) {
	idx, err := dict.Load(writeWordList(t, "cat\ncats\nhat\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, "cat", idx.WordOf(0))
	assert.Equal(t, "hat", idx.WordOf(2))

	id, ok := idx.IDOf("cats")
	require.True(t, ok)
	assert.Equal(t, dict.WordID(1), id)

	_, ok = idx.IDOf("dog")
	assert.False(t, ok)
}

func TestLoad_LowerCasesAndTrims(t *testing.T) {
	idx, err := dict.Load(writeWordList(t, "  CaT \nDOG\n"))
	require.NoError(t, err)

	assert.Equal(t, "cat", idx.WordOf(0))
	_, ok := idx.IDOf("dog")
	assert.True(t, ok)
}

func TestLoad_SkipsEmptyLines(t *testing.T) {
	idx, err := dict.Load(writeWordList(t, "cat\n\n\nhat\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, "hat", idx.WordOf(1))
}

// Duplicate words keep distinct IDs; lookup resolves to the last
// occurrence.
func TestLoad_DuplicatesKeepDistinctIDs(t *testing.T) {
	idx, err := dict.Load(writeWordList(t, "cat\ncat\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, "cat", idx.WordOf(0))
	assert.Equal(t, "cat", idx.WordOf(1))

	id, ok := idx.IDOf("cat")
	require.True(t, ok)
	assert.Equal(t, dict.WordID(1), id)
}

func TestLoad_RejectsNonLetters(t *testing.T) {
	_, err := dict.Load(writeWordList(t, "cat\nc4t\n"))
	assert.ErrorIs(t, err, dict.ErrInvalidWord)

	_, err = dict.Load(writeWordList(t, "don't\n"))
	assert.ErrorIs(t, err, dict.ErrInvalidWord)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dict.Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// The fingerprint is a pure function of the raw file bytes.
func TestFingerprint_TracksContents(t *testing.T) {
	a1, err := dict.Load(writeWordList(t, "cat\nhat\n"))
	require.NoError(t, err)
	a2, err := dict.Load(writeWordList(t, "cat\nhat\n"))
	require.NoError(t, err)
	b, err := dict.Load(writeWordList(t, "cat\nbat\n"))
	require.NoError(t, err)

	assert.NotEmpty(t, a1.Fingerprint())
	assert.Equal(t, a1.Fingerprint(), a2.Fingerprint())
	assert.NotEqual(t, a1.Fingerprint(), b.Fingerprint())
}

func TestCanonicalKey(t *testing.T) {
	assert.Equal(t, "act", dict.CanonicalKey("cat"))
	assert.Equal(t, "act", dict.CanonicalKey("tac"))
	assert.Equal(t, "", dict.CanonicalKey(""))
	assert.Equal(t, "aabn", dict.CanonicalKey("bana"))
	assert.Equal(t, "eelrtt", dict.CanonicalKey("letter"))
}

func TestBuckets_GroupsAnagrams(t *testing.T) {
	idx, err := dict.Load(writeWordList(t, "cat\ntac\nact\nhat\n"))
	require.NoError(t, err)

	buckets, err := dict.Buckets(idx)
	require.NoError(t, err)

	assert.Len(t, buckets, 2)
	assert.Equal(t, []dict.WordID{0, 1, 2}, buckets["act"])
	assert.Equal(t, []dict.WordID{3}, buckets["aht"])
}

func TestBuckets_NilIndex(t *testing.T) {
	_, err := dict.Buckets(nil)
	assert.ErrorIs(t, err, dict.ErrIndexNil)
}
