package ladder

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/benediktwerner/WordLadder/dict"
)

// alphabet spans the insertion probes for every bucket key.
const alphabetFirst, alphabetLast = byte('a'), byte('z')

// Build computes the full adjacency graph for every word in idx.
//
// For each anagram bucket the 26 insertion keys and every distinct
// deletion key are probed against the bucket map; member IDs of the hit
// buckets form the shared neighbor record of every word in the probed
// bucket. Records are emitted for all WordIDs in ascending order with
// ascending neighbor IDs, so an unchanged dictionary always produces an
// identical graph (and a byte-identical persisted store).
//
// Returns ErrIndexNil for a nil index, ErrOptionViolation for bad
// options, or the context error on cancellation.
func Build(idx *dict.Index, opts ...Option) (*Graph, error) {
	if idx == nil {
		return nil, ErrIndexNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	buckets, err := dict.Buckets(idx)
	if err != nil {
		return nil, err
	}
	// Stable key order: deterministic progress and worker partitioning.
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	adj := make([][]dict.WordID, idx.Len())
	if o.Workers == 1 {
		err = buildSequential(keys, buckets, adj, &o)
	} else {
		err = buildParallel(keys, buckets, adj, &o)
	}
	if err != nil {
		return nil, err
	}

	return FromAdjacency(adj), nil
}

// buildSequential fills adj one bucket at a time.
func buildSequential(keys []string, buckets map[string][]dict.WordID, adj [][]dict.WordID, o *BuildOptions) error {
	total := len(keys)
	for done, key := range keys {
		// cancellation check (once per bucket)
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		fillBucket(key, buckets, adj)
		o.OnProgress(done+1, total)
	}

	return nil
}

// buildParallel distributes buckets across o.Workers goroutines.
// Every WordID belongs to exactly one bucket, so workers write disjoint
// rows of adj and no locking of the table is needed; only the progress
// hook is serialized.
func buildParallel(keys []string, buckets map[string][]dict.WordID, adj [][]dict.WordID, o *BuildOptions) error {
	var (
		next     atomic.Int64 // index of the next unclaimed bucket
		done     atomic.Int64 // completed buckets
		reported int          // last value passed to OnProgress, under mu
		mu       sync.Mutex
		wg       sync.WaitGroup
		ctxErr   atomic.Value
	)
	total := len(keys)

	worker := func() {
		defer wg.Done()
		for {
			select {
			case <-o.Ctx.Done():
				ctxErr.Store(o.Ctx.Err())
				return
			default:
			}

			i := int(next.Add(1)) - 1
			if i >= total {
				return
			}
			fillBucket(keys[i], buckets, adj)

			n := int(done.Add(1))
			mu.Lock()
			// keep the hook monotone even when completions race
			if n > reported {
				reported = n
				o.OnProgress(n, total)
			}
			mu.Unlock()
		}
	}

	wg.Add(o.Workers)
	for i := 0; i < o.Workers; i++ {
		go worker()
	}
	wg.Wait()

	if err, ok := ctxErr.Load().(error); ok {
		return err
	}

	return nil
}

// fillBucket computes the shared neighbor record of one bucket and
// assigns it to every member. The probed keys are pairwise distinct and
// never equal the bucket's own key (insertion keys are one letter
// longer, deletion keys one shorter), so the unioned buckets are
// disjoint: members of one bucket are not each other's neighbors and
// the record needs sorting but no deduplication.
func fillBucket(key string, buckets map[string][]dict.WordID, adj [][]dict.WordID) {
	var neighbors []dict.WordID
	probe := func(candidate string) {
		if ids, ok := buckets[candidate]; ok {
			neighbors = append(neighbors, ids...)
		}
	}

	// insertion probes: key with one extra letter, kept sorted
	for c := alphabetFirst; c <= alphabetLast; c++ {
		probe(insertLetter(key, c))
	}
	// deletion probes: key with one letter removed; runs of equal
	// letters yield the same key, probe each distinct position once
	for i := 0; i < len(key); i++ {
		if i > 0 && key[i] == key[i-1] {
			continue
		}
		probe(key[:i] + key[i+1:])
	}

	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	for _, id := range buckets[key] {
		adj[id] = neighbors
	}
}

// insertLetter returns key with c spliced in at its sorted position,
// preserving the canonical ascending letter order.
func insertLetter(key string, c byte) string {
	i := 0
	for i < len(key) && key[i] <= c {
		i++
	}

	return key[:i] + string(c) + key[i:]
}
