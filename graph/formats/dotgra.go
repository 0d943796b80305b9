package formats

import (
	"bufio"
	"io"
	"strconv"

	"github.com/grcolor/grcolor/graph"
	"github.com/grcolor/grcolor/internal/colorerr"
)

// loadDotGra parses the ".gra" format: a whitespace-tokenized stream where
// the first positive integer encountered is the vertex count V, followed
// by V adjacency blocks of shape "i: n1 n2 … #" using 0-based indices.
// Each listed neighbor is inserted in both directions, since this format's
// on-disk lists are not assumed to be symmetric the way ".graph" is.
func loadDotGra(r io.Reader, path string) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	v := -1
	for scanner.Scan() {
		if n, err := strconv.Atoi(scanner.Text()); err == nil && n > 0 {
			v = n
			break
		}
	}
	if v < 0 {
		return nil, colorerr.New(colorerr.CodeParse, "%s: no vertex count found", path)
	}

	g := graph.New(v)
	for i := 0; i < v; i++ {
		if !scanner.Scan() {
			return nil, colorerr.New(colorerr.CodeParse, "%s: truncated before block %d header", path, i)
		}
		// The block header token is "<i>:"; its value is not consulted,
		// the block index is taken from the loop counter instead.
		for scanner.Scan() && scanner.Text() != "#" {
			to, err := strconv.Atoi(scanner.Text())
			if err != nil {
				return nil, colorerr.Wrap(colorerr.CodeParse, err, "%s: block %d token %q", path, i, scanner.Text())
			}
			g.AddEdge(int32(i), int32(to))
			g.AddEdge(int32(to), int32(i))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, colorerr.Wrap(colorerr.CodeParse, err, "%s: reading body", path)
	}
	return g, nil
}
