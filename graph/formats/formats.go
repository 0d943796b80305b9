// Package formats loads graphs from the two legacy file formats the
// benchmark driver consumes: the METIS-like ".graph" format and the
// whitespace-tokenized ".gra" format.
package formats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grcolor/grcolor/graph"
	"github.com/grcolor/grcolor/internal/colorerr"
)

// Load reads the graph at path, dispatching on its file extension (.graph
// or .gra). Any other extension, a missing file, or a malformed body
// produces a *colorerr.Error with Code colorerr.CodeParse; a closed file
// handle and a discarded partial graph are implicit in returning nil.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, colorerr.Wrap(colorerr.CodeParse, err, "opening %s", path)
	}
	defer f.Close()

	switch ext := filepath.Ext(path); ext {
	case ".graph":
		return loadDotGraph(f, path)
	case ".gra":
		return loadDotGra(f, path)
	default:
		return nil, colorerr.New(colorerr.CodeParse, "unsupported graph extension %q for %s", ext, path)
	}
}

// IsGraphFile reports whether name carries one of the two recognized graph
// extensions, used by the directory walker to filter candidate inputs.
func IsGraphFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".graph" || ext == ".gra"
}

func parseFields(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, tok := range fields {
		var v int
		if _, err := fmt.Sscanf(tok, "%d", &v); err != nil {
			return nil, fmt.Errorf("invalid integer token %q", tok)
		}
		out = append(out, v)
	}
	return out, nil
}
