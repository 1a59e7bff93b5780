package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/benediktwerner/WordLadder/dict"
	"github.com/benediktwerner/WordLadder/ladder"
)

// Sentinel errors for adjacency persistence.
var (
	// ErrCorruptData is returned when a record cannot be parsed as
	// "id followed by zero or more ids" or an ID is out of range.
	ErrCorruptData = errors.New("store: corrupt adjacency data")

	// ErrDictionaryChanged is returned when the store's embedded
	// dictionary fingerprint differs from the caller's dictionary.
	ErrDictionaryChanged = errors.New("store: adjacency data was built from a different dictionary")

	// ErrGraphNil is returned when a nil graph is passed to Save.
	ErrGraphNil = errors.New("store: graph is nil")
)

const (
	headerPrefix = "#wordladder"
	version      = "v1"
	gzipSuffix   = ".gz"

	// maxLineBytes bounds a single record; a dense bucket in a large
	// dictionary can produce records of several megabytes.
	maxLineBytes = 64 << 20
)

// Save writes g to path in the package's record format, gzip-wrapped
// when path ends in ".gz". fingerprint is the dictionary fingerprint to
// embed in the header (dict.Index.Fingerprint). The write is
// deterministic: an unchanged graph saves byte-identically.
func Save(g *ladder.Graph, path, fingerprint string) (err error) {
	if g == nil {
		return ErrGraphNil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("store: closing %s: %w", path, cerr)
		}
	}()

	var out io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, gzipSuffix) {
		zw = gzip.NewWriter(f)
		out = zw
	}
	w := bufio.NewWriterSize(out, 1<<20)

	if _, err = fmt.Fprintf(w, "%s %s %d %s\n", headerPrefix, version, g.Len(), fingerprint); err != nil {
		return fmt.Errorf("store: writing header: %w", err)
	}

	// strconv.AppendInt into a reused buffer keeps the hot loop free of
	// fmt reflection for dictionaries in the 10⁵-10⁶ word range.
	buf := make([]byte, 0, 256)
	for id := 0; id < g.Len(); id++ {
		buf = strconv.AppendInt(buf[:0], int64(id), 10)
		for _, nbr := range g.Neighbors(dict.WordID(id)) {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(nbr), 10)
		}
		buf = append(buf, '\n')
		if _, err = w.Write(buf); err != nil {
			return fmt.Errorf("store: writing record %d: %w", id, err)
		}
	}

	if err = w.Flush(); err != nil {
		return fmt.Errorf("store: flushing %s: %w", path, err)
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return fmt.Errorf("store: closing gzip stream: %w", err)
		}
	}

	return nil
}

// Load reads an adjacency graph previously written by Save. When
// fingerprint is non-empty it must match the header's embedded
// fingerprint, otherwise ErrDictionaryChanged is returned. Framing and
// ID ranges are validated (ErrCorruptData); neighbor symmetry is not.
func Load(path, fingerprint string) (*ladder.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	defer f.Close()

	var in io.Reader = f
	if strings.HasSuffix(path, gzipSuffix) {
		zr, zerr := gzip.NewReader(f)
		if zerr != nil {
			return nil, fmt.Errorf("%w: not a gzip stream: %v", ErrCorruptData, zerr)
		}
		defer zr.Close()
		in = zr
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64<<10), maxLineBytes)

	if !scanner.Scan() {
		if err = scanner.Err(); err != nil {
			return nil, fmt.Errorf("store: reading header: %w", err)
		}
		return nil, fmt.Errorf("%w: missing header", ErrCorruptData)
	}
	n, err := parseHeader(scanner.Text(), fingerprint)
	if err != nil {
		return nil, err
	}

	adj := make([][]dict.WordID, n)
	seen := make([]bool, n)
	records := 0
	for scanner.Scan() {
		id, neighbors, perr := parseRecord(scanner.Text(), n)
		if perr != nil {
			return nil, perr
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate record for id %d", ErrCorruptData, id)
		}
		seen[id] = true
		adj[id] = neighbors
		records++
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", path, err)
	}
	if records != n {
		return nil, fmt.Errorf("%w: %d records, header promises %d", ErrCorruptData, records, n)
	}

	return ladder.FromAdjacency(adj), nil
}

// parseHeader validates the "#wordladder v1 <n> <fingerprint>" line and
// returns the record count.
func parseHeader(line, fingerprint string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != headerPrefix || fields[1] != version {
		return 0, fmt.Errorf("%w: malformed header %q", ErrCorruptData, line)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: malformed record count %q", ErrCorruptData, fields[2])
	}
	if fingerprint != "" && fields[3] != fingerprint {
		return 0, ErrDictionaryChanged
	}

	return n, nil
}

// parseRecord parses "id [neighbor...]" with all IDs in [0, n).
func parseRecord(line string, n int) (dict.WordID, []dict.WordID, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, nil, fmt.Errorf("%w: empty record", ErrCorruptData)
	}
	id, err := parseID(fields[0], n)
	if err != nil {
		return 0, nil, err
	}

	var neighbors []dict.WordID
	if len(fields) > 1 {
		neighbors = make([]dict.WordID, 0, len(fields)-1)
		for _, field := range fields[1:] {
			nbr, perr := parseID(field, n)
			if perr != nil {
				return 0, nil, perr
			}
			neighbors = append(neighbors, nbr)
		}
	}

	return id, neighbors, nil
}

// parseID parses a single WordID token and range-checks it against n.
func parseID(token string, n int) (dict.WordID, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", ErrCorruptData, token)
	}
	if v < 0 || v >= n {
		return 0, fmt.Errorf("%w: id %d out of range [0, %d)", ErrCorruptData, v, n)
	}

	return dict.WordID(v), nil
}
