// Package main provides the wordladder CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/benediktwerner/WordLadder/dict"
	"github.com/benediktwerner/WordLadder/internal/config"
	"github.com/benediktwerner/WordLadder/ladder"
	"github.com/benediktwerner/WordLadder/search"
	"github.com/benediktwerner/WordLadder/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordladder <start> <goal>",
	Short: "Find the shortest transformation path between two dictionary words",
	Long: `wordladder connects words by single-letter insertions and deletions
(letter order ignored) and searches the resulting graph: shortest paths
between two words, connected components, and the longest shortest path
within a component. Adjacency data is precomputed once and persisted.`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

var precomputeCmd = &cobra.Command{
	Use:   "precompute",
	Short: "Force (re)generation of the adjacency store from the word list",
	Args:  cobra.NoArgs,
	RunE:  runPrecompute,
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Count connected components, grouped by size",
	Args:  cobra.NoArgs,
	RunE:  runGroups,
}

var findLongestCmd = &cobra.Command{
	Use:   "findlongestpath <word>",
	Short: "Find the longest shortest path within the component of <word>",
	Args:  cobra.ExactArgs(1),
	RunE:  runFindLongest,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigFile, "Path to the configuration file")
	rootCmd.AddCommand(precomputeCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(findLongestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPath(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	idx, g, err := loadData(cfg)
	if err != nil {
		return err
	}

	start := strings.ToLower(args[0])
	goal := strings.ToLower(args[1])
	limiter := newProgressLimiter()
	res, err := search.ShortestPath(g, idx, start, goal,
		search.WithOnVisit(func(visited int) {
			if limiter.Allow() {
				fmt.Printf("Words visited: %d\r", visited)
			}
		}),
	)
	if err != nil {
		if errors.Is(err, search.ErrWordNotFound) {
			// unknown words abort this query only; output is cleared
			fmt.Println(err)
			return writeOutput(cfg.OutputFile, nil)
		}
		return err
	}

	fmt.Printf("Words visited: %d\n", res.Visited)
	if !res.Found {
		fmt.Println("No path found")
		return writeOutput(cfg.OutputFile, nil)
	}
	fmt.Println("Found path:")
	for _, word := range res.Path {
		fmt.Println(word)
	}

	return writeOutput(cfg.OutputFile, res.Path)
}

func runPrecompute(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	idx, err := dict.Load(cfg.WordList)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d words\n", idx.Len())

	g, err := buildGraph(idx, cfg)
	if err != nil {
		return err
	}
	if err = store.Save(g, cfg.DataFile, idx.Fingerprint()); err != nil {
		return err
	}
	fmt.Printf("Wrote %d records (%d edges) to %s\n", g.Len(), g.NumEdges(), cfg.DataFile)

	return nil
}

func runGroups(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	_, g, err := loadData(cfg)
	if err != nil {
		return err
	}

	fmt.Println("Searching groups...")
	comps, err := search.Components(g)
	if err != nil {
		return err
	}
	fmt.Printf("Found a total of %d groups\n", len(comps))

	sizes := search.GroupSizes(comps)
	for _, size := range sortedKeys(sizes) {
		fmt.Printf("%7d groups with %7d element(s)\n", sizes[size], size)
	}

	return nil
}

func runFindLongest(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	idx, g, err := loadData(cfg)
	if err != nil {
		return err
	}

	started := time.Now()
	limiter := newProgressLimiter()
	res, err := search.LongestPath(g, idx, strings.ToLower(args[0]),
		search.WithOnImproved(func(from, to string, length int) {
			fmt.Printf("New longest path: %s to %s with length %d\n", from, to, length)
		}),
		search.WithProgress(func(checked, total int) {
			if checked == total || !limiter.Allow() {
				return
			}
			elapsed := time.Since(started)
			remaining := time.Duration(float64(elapsed) / float64(checked) * float64(total-checked))
			fmt.Printf("%d/%d checked in %s - estimated time left: %s\n",
				checked, total, formatDuration(elapsed), formatDuration(remaining))
		}),
	)
	if err != nil {
		if errors.Is(err, search.ErrWordNotFound) {
			fmt.Println(err)
			return nil
		}
		return err
	}

	fmt.Printf("Longest path is from %s to %s with length %d\n", res.From, res.To, res.Length)

	return nil
}

// loadData loads the dictionary and the adjacency graph, generating and
// persisting the graph when the store file is absent. A corrupt or
// mismatched store is fatal and instructs regeneration.
func loadData(cfg config.Config) (*dict.Index, *ladder.Graph, error) {
	idx, err := dict.Load(cfg.WordList)
	if err != nil {
		return nil, nil, err
	}
	fmt.Printf("Loaded %d words\n", idx.Len())

	if _, statErr := os.Stat(cfg.DataFile); statErr == nil {
		g, loadErr := store.Load(cfg.DataFile, idx.Fingerprint())
		if loadErr != nil {
			if errors.Is(loadErr, store.ErrCorruptData) || errors.Is(loadErr, store.ErrDictionaryChanged) {
				return nil, nil, fmt.Errorf("%w (delete %s and re-run precompute)", loadErr, cfg.DataFile)
			}
			return nil, nil, loadErr
		}
		fmt.Println("Loaded precomputed data")

		return idx, g, nil
	}
	fmt.Println("No precomputed data found. Generating...")

	g, err := buildGraph(idx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err = store.Save(g, cfg.DataFile, idx.Fingerprint()); err != nil {
		return nil, nil, err
	}

	return idx, g, nil
}

// buildGraph runs the neighbor precomputation with console progress.
func buildGraph(idx *dict.Index, cfg config.Config) (*ladder.Graph, error) {
	limiter := newProgressLimiter()
	g, err := ladder.Build(idx,
		ladder.WithWorkers(cfg.Workers),
		ladder.WithProgress(func(done, total int) {
			if done == total || limiter.Allow() {
				fmt.Printf("Calculating neighbors: %3d%%\r", done*100/total)
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	fmt.Println("\nDone")

	return g, nil
}

// writeOutput writes the path one word per line; a nil path produces an
// empty file (the "no path" and "unknown word" outcomes).
func writeOutput(path string, words []string) error {
	data := ""
	if len(words) > 0 {
		data = strings.Join(words, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	return nil
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
