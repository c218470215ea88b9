// Package loader reads the two text formats mscsc's external collaborators
// use: a graph file ("N M" followed by M "s t" edge lines) that seeds a
// fresh mscsc.Graph, and an update file ("K" followed by K "s t" pair
// lines) consumed by the driver's Insert/Delete family, one pair at a time
// or in batches.
//
// Both formats and their reference loaders (Tarjan::Load, test.cpp's
// LoadUpdate) come from the original C++ driver; this package
// reimplements them with bufio.Scanner rather than fscanf.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jerchenxin/mscsc"
)

// Edge is one parsed (s, t) pair, shared between the graph and update
// file formats.
type Edge struct {
	S, T int
}

func scanInts(sc *bufio.Scanner, want int) ([]int, error) {
	out := make([]int, 0, want)
	for len(out) < want {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("loader: %w: unexpected end of input", mscsc.ErrMalformedInput)
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("loader: %w: %q is not an integer", mscsc.ErrMalformedInput, field)
			}
			out = append(out, v)
			if len(out) == want {
				break
			}
		}
	}
	return out, nil
}

// LoadGraph reads "N M" followed by M "s t" lines and returns a
// constructed mscsc.Graph over vertices 0..N along with the parsed edge
// list (useful for callers that also want to replay the same edges
// elsewhere).
func LoadGraph(r io.Reader) (*mscsc.Graph, []Edge, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, err := scanInts(sc, 2)
	if err != nil {
		return nil, nil, err
	}
	n, m := header[0], header[1]

	g := mscsc.NewGraph(n)
	edges := make([]Edge, 0, m)
	for i := 0; i < m; i++ {
		pair, err := scanInts(sc, 2)
		if err != nil {
			return nil, nil, fmt.Errorf("loader: edge %d: %w", i, err)
		}
		s, t := pair[0], pair[1]
		g.AddInitialEdge(s, t)
		edges = append(edges, Edge{S: s, T: t})
	}

	g.Construction()
	return g, edges, nil
}

// LoadUpdates reads "K" followed by K "s t" lines, the format an update
// file driving Insert/Delete replay uses.
func LoadUpdates(r io.Reader) ([]Edge, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, err := scanInts(sc, 1)
	if err != nil {
		return nil, err
	}
	k := header[0]

	edges := make([]Edge, 0, k)
	for i := 0; i < k; i++ {
		pair, err := scanInts(sc, 2)
		if err != nil {
			return nil, fmt.Errorf("loader: update %d: %w", i, err)
		}
		edges = append(edges, Edge{S: pair[0], T: pair[1]})
	}
	return edges, nil
}
