package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benediktwerner/WordLadder/search"
)

// A 5-word insertion chain has eccentricity 4 between its two ends.
func TestLongestPath_Chain(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	res, err := search.LongestPath(g, idx, "nag")
	require.NoError(t, err)

	assert.Equal(t, 4, res.Length)
	assert.Equal(t, 5, res.Checked)
	assert.ElementsMatch(t, []string{"a", "wagon"}, []string{res.From, res.To})
}

// The scan only covers the queried word's component.
func TestLongestPath_StaysInComponent(t *testing.T) {
	idx, g := buildFixture(t, "cat\ncats\nhat\nhats\nbat\n")

	res, err := search.LongestPath(g, idx, "cat")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Length)
	assert.Equal(t, 2, res.Checked)

	res, err = search.LongestPath(g, idx, "bat")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Length)
	assert.Equal(t, "bat", res.From)
	assert.Equal(t, "bat", res.To)
}

// Improvements stream strictly increasing lengths and end on the final
// answer; progress counts every source exactly once.
func TestLongestPath_Hooks(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	var lengths []int
	var progress []int
	res, err := search.LongestPath(g, idx, "a",
		search.WithOnImproved(func(_, _ string, length int) { lengths = append(lengths, length) }),
		search.WithProgress(func(checked, total int) {
			assert.Equal(t, 5, total)
			progress = append(progress, checked)
		}),
	)
	require.NoError(t, err)

	require.NotEmpty(t, lengths)
	for i := 1; i < len(lengths); i++ {
		assert.Greater(t, lengths[i], lengths[i-1])
	}
	assert.Equal(t, res.Length, lengths[len(lengths)-1])
	assert.Equal(t, []int{1, 2, 3, 4, 5}, progress)
}

func TestLongestPath_UnknownWord(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	_, err := search.LongestPath(g, idx, "zebra")
	assert.ErrorIs(t, err, search.ErrWordNotFound)
}

func TestLongestPath_Cancellation(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.LongestPath(g, idx, "a", search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
