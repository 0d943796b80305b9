package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/grcolor/grcolor/graph/formats"
	"github.com/grcolor/grcolor/internal/colorerr"
)

// ErrDirMissing reports that a graph directory does not exist. The CLI
// maps this specific failure to exit code 2, distinct from other I/O
// errors.
type ErrDirMissing struct {
	Dir string
}

func (e *ErrDirMissing) Error() string {
	return fmt.Sprintf("graph directory %s does not exist", e.Dir)
}

// DiscoverGraphs lists the .graph/.gra files directly inside dir, sorted
// by path, for the no-files-given CLI invocation.
func DiscoverGraphs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrDirMissing{Dir: dir}
		}
		return nil, colorerr.Wrap(colorerr.CodeIO, err, "reading directory %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if formats.IsGraphFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
