package loader

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/maxclique/core"
)

// LoadResult is what Load returns: the constructed Graph plus bookkeeping
// useful for CLI/CSV reporting (SPEC_FULL.md §6.1 supplement).
type LoadResult struct {
	Graph *core.Graph
	Path  string

	// IgnoredSelfLoops and IgnoredDuplicates count lines dropped during
	// parsing, distinct from core.Build's own silent dedup, so a driver
	// can report "N self-loops / M duplicate edges ignored" without
	// re-parsing the file.
	IgnoredSelfLoops  int
	IgnoredDuplicates int
}

// Load reads path (transparently gunzipping if it looks gzip-compressed)
// and builds a Graph from its SNAP/DIMACS edge list (spec §6.1).
func Load(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	r, err := maybeGunzip(path, f)
	if err != nil {
		return nil, fmt.Errorf("loader: %q: %w", path, err)
	}

	edges, selfLoops, duplicates, err := parseEdges(r)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	g, err := core.Build(edges)
	if err != nil {
		return nil, err
	}

	return &LoadResult{
		Graph:             g,
		Path:              path,
		IgnoredSelfLoops:  selfLoops,
		IgnoredDuplicates: duplicates,
	}, nil
}

// maybeGunzip wraps f in a gzip.Reader when path ends in ".gz" or the
// stream starts with the gzip magic bytes, so a caller need not rename a
// dataset to get transparent decompression.
func maybeGunzip(path string, f *os.File) (io.Reader, error) {
	br := bufio.NewReader(f)
	if strings.HasSuffix(path, ".gz") {
		return gzip.NewReader(br)
	}

	magic, err := br.Peek(2)
	if err == nil && len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		return gzip.NewReader(br)
	}
	return br, nil
}

// parseEdges implements the auto-detect line grammar (spec §6.1): blank
// lines, '#' (SNAP comment), 'c' (DIMACS comment) and 'p' (DIMACS problem
// line, ignored — graph size is inferred from the edge set, not declared)
// are skipped; an 'e u v' line is DIMACS, a bare 'u v' line is SNAP.
func parseEdges(r io.Reader) (edges []core.Edge, selfLoops, duplicates int, err error) {
	seen := make(map[[2]int]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == 'c' || line[0] == 'p' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == "e" {
			fields = fields[1:]
		}
		if len(fields) != 2 {
			return nil, 0, 0, fmt.Errorf("loader: %q: %w", line, ErrMalformedLine)
		}

		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, 0, 0, fmt.Errorf("loader: %q: %w", line, ErrMalformedLine)
		}

		if u == v {
			selfLoops++
			continue
		}

		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		if _, dup := seen[key]; dup {
			duplicates++
			continue
		}
		seen[key] = struct{}{}

		edges = append(edges, core.Edge{U: u, V: v})
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, 0, 0, fmt.Errorf("loader: scan: %w", scanErr)
	}

	return edges, selfLoops, duplicates, nil
}
