package search_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benediktwerner/WordLadder/dict"
	"github.com/benediktwerner/WordLadder/ladder"
	"github.com/benediktwerner/WordLadder/search"
)

// buildFixture loads words as a dictionary and builds its adjacency
// graph. Shared by the bfs, components and longest tests.
func buildFixture(t *testing.T, words string) (*dict.Index, *ladder.Graph) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordList.txt")
	require.NoError(t, os.WriteFile(path, []byte(words), 0o644))
	idx, err := dict.Load(path)
	require.NoError(t, err)
	g, err := ladder.Build(idx)
	require.NoError(t, err)

	return idx, g
}

// chainWords form a path graph: each word is one insertion from the
// next, with no shortcuts.
const chainWords = "a\nan\nnag\ngnaw\nwagon\n"

func TestShortestPath_Chain(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	res, err := search.ShortestPath(g, idx, "a", "wagon")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"a", "an", "nag", "gnaw", "wagon"}, res.Path)
	assert.Equal(t, 4, res.Moves())
}

// BFS optimality: the found path's edge count equals the goal's BFS
// depth, cross-checked by an independent depth computation.
func TestShortestPath_Optimality(t *testing.T) {
	idx, g := buildFixture(t, "at\ncat\ncart\ncarts\nart\ntart\n")

	res, err := search.ShortestPath(g, idx, "at", "carts")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, bfsDepth(g, idx, "at", "carts"), res.Moves())

	// every consecutive pair on the path must actually be adjacent
	for i := 1; i < len(res.Path); i++ {
		u, _ := idx.IDOf(res.Path[i-1])
		v, _ := idx.IDOf(res.Path[i])
		assert.Contains(t, g.Neighbors(u), v, "path step %q→%q is not an edge", res.Path[i-1], res.Path[i])
	}
}

// bfsDepth is an independent plain BFS used to cross-check optimality.
func bfsDepth(g *ladder.Graph, idx *dict.Index, start, goal string) int {
	startID, _ := idx.IDOf(start)
	goalID, _ := idx.IDOf(goal)
	depth := make(map[dict.WordID]int)
	depth[startID] = 0
	queue := []dict.WordID{startID}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u) {
			if _, ok := depth[v]; !ok {
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return depth[goalID]
}

func TestShortestPath_StartEqualsGoal(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	res, err := search.ShortestPath(g, idx, "nag", "nag")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"nag"}, res.Path)
	assert.Equal(t, 0, res.Moves())
}

func TestShortestPath_Unreachable(t *testing.T) {
	idx, g := buildFixture(t, "cat\ncats\nhat\nhats\nbat\n")

	res, err := search.ShortestPath(g, idx, "cat", "hat")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 0, res.Moves())
}

func TestShortestPath_UnknownWord(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	_, err := search.ShortestPath(g, idx, "a", "zebra")
	assert.ErrorIs(t, err, search.ErrWordNotFound)
	_, err = search.ShortestPath(g, idx, "zebra", "a")
	assert.ErrorIs(t, err, search.ErrWordNotFound)
}

func TestShortestPath_NilInputs(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	_, err := search.ShortestPath(nil, idx, "a", "an")
	assert.ErrorIs(t, err, search.ErrGraphNil)
	_, err = search.ShortestPath(g, nil, "a", "an")
	assert.ErrorIs(t, err, search.ErrIndexNil)
}

// The visit hook must report a strictly increasing expansion counter
// and never change the result.
func TestShortestPath_OnVisit(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	var visits []int
	res, err := search.ShortestPath(g, idx, "a", "wagon",
		search.WithOnVisit(func(v int) { visits = append(visits, v) }))
	require.NoError(t, err)
	require.True(t, res.Found)

	require.NotEmpty(t, visits)
	assert.Equal(t, res.Visited, visits[len(visits)-1])
	for i := 1; i < len(visits); i++ {
		assert.Equal(t, visits[i-1]+1, visits[i])
	}
}

func TestShortestPath_Cancellation(t *testing.T) {
	idx, g := buildFixture(t, chainWords)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.ShortestPath(g, idx, "a", "wagon", search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
