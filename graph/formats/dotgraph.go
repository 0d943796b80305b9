package formats

import (
	"bufio"
	"io"
	"strings"

	"github.com/grcolor/grcolor/graph"
	"github.com/grcolor/grcolor/internal/colorerr"
)

// loadDotGraph parses the METIS-like ".graph" format: a header line
// "V E [fmt [ncon]]" followed by one adjacency line per vertex, 1-based,
// with '%'-prefixed lines treated as comments. fmt selects how each line's
// tokens are interpreted:
//
//	0:  plain neighbor indices
//	10: ncon vertex-weight tokens, then plain neighbor indices
//	1:  alternating (neighbor, edge weight) pairs; weights discarded
//	11: one leading vertex-weight token, then alternating pairs
//	100: resolved once, before the first adjacency line, to 10 if ncon != 0
//	     else 0
func loadDotGraph(r io.Reader, path string) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	haveHeader := false
	for scanner.Scan() {
		if !strings.HasPrefix(scanner.Text(), "%") {
			haveHeader = true
			break
		}
	}
	if !haveHeader {
		return nil, colorerr.New(colorerr.CodeParse, "%s: missing header line", path)
	}
	header, err := parseFields(scanner.Text())
	if err != nil || len(header) < 2 {
		return nil, colorerr.New(colorerr.CodeParse, "%s: malformed header %q", path, scanner.Text())
	}
	v, fmtCode, ncon := header[0], 0, 0
	if len(header) >= 3 {
		fmtCode = header[2]
	}
	if len(header) >= 4 {
		ncon = header[3]
	}
	if fmtCode == 100 {
		if ncon != 0 {
			fmtCode = 10
		} else {
			fmtCode = 0
		}
	}

	g := graph.New(v)
	from := 1
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "%") {
			continue
		}
		tokens, err := parseFields(line)
		if err != nil {
			return nil, colorerr.Wrap(colorerr.CodeParse, err, "%s: vertex %d", path, from)
		}
		if err := insertDotGraphLine(g, from, tokens, fmtCode, ncon); err != nil {
			return nil, colorerr.Wrap(colorerr.CodeParse, err, "%s: vertex %d", path, from)
		}
		from++
	}
	if err := scanner.Err(); err != nil {
		return nil, colorerr.Wrap(colorerr.CodeParse, err, "%s: reading body", path)
	}
	return g, nil
}

func insertDotGraphLine(g *graph.Graph, from int, tokens []int, fmtCode, ncon int) error {
	switch fmtCode {
	case 0:
		for _, to := range tokens {
			g.AddEdge(int32(from-1), int32(to-1))
		}
	case 10:
		if ncon > len(tokens) {
			return colorerr.New(colorerr.CodeParse, "line has %d tokens, need %d vertex weights", len(tokens), ncon)
		}
		for _, to := range tokens[ncon:] {
			g.AddEdge(int32(from-1), int32(to-1))
		}
	case 1:
		for i := 0; i < len(tokens); i += 2 {
			g.AddEdge(int32(from-1), int32(tokens[i]-1))
		}
	case 11:
		rest := tokens
		if len(rest) > 0 {
			rest = rest[1:]
		}
		for i := 0; i < len(rest); i += 2 {
			g.AddEdge(int32(from-1), int32(rest[i]-1))
		}
	default:
		return colorerr.New(colorerr.CodeParse, "invalid fmt %d", fmtCode)
	}
	return nil
}
