// Command grcolor benchmarks the heuristic vertex-coloring algorithms in
// package coloring against graph files loaded from disk.
package main

import (
	"os"

	"github.com/grcolor/grcolor/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
