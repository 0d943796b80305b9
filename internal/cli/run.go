package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/grcolor/grcolor/graph"
	"github.com/grcolor/grcolor/graph/coloring"
	"github.com/grcolor/grcolor/graph/formats"
	"github.com/grcolor/grcolor/internal/bench"
	"github.com/grcolor/grcolor/internal/colorerr"
)

// RunOptions collects everything a benchmark run needs once flags have been
// parsed and validated.
type RunOptions struct {
	Files        []string
	GraphDir     string
	Threads      int
	Iterations   int
	WriteCSV     bool
	CSVPath      string
	ParallelOnly bool
	Rand         *rand.Rand
}

// Run executes the benchmark loop: resolve the input files, load and
// summarize each graph, then run every applicable coloring method on it
// Iterations times, logging and optionally recording each result to CSV.
func Run(ctx context.Context, logger *charmlog.Logger, opts RunOptions) error {
	files := opts.Files
	if len(files) == 0 {
		discovered, err := bench.DiscoverGraphs(opts.GraphDir)
		if err != nil {
			if _, ok := err.(*bench.ErrDirMissing); ok {
				return &ExitError{Code: 2, Err: err}
			}
			return &ExitError{Code: 1, Err: err}
		}
		files = discovered
	}

	var csvWriter *bench.CSVWriter
	if opts.WriteCSV {
		path, f, err := createCSVFile(opts.CSVPath)
		if err != nil {
			return &ExitError{Code: 3, Err: colorerr.Wrap(colorerr.CodeIO, err, "opening CSV output")}
		}
		defer f.Close()
		csvWriter = bench.NewCSVWriter(f)
		if err := csvWriter.WriteHeader(); err != nil {
			return &ExitError{Code: 3, Err: err}
		}
		logger.Infof("writing results to %s", path)
	}

	methods := coloring.Methods
	if opts.ParallelOnly {
		methods = []string{coloring.ParallelJPMethod, coloring.ParallelLDFMethod, coloring.ParallelLDFPlusMethod}
	}

	for _, path := range files {
		name := filepath.Base(path)
		var g *graph.Graph
		var loadErr error
		loadDuration := bench.Time(func() {
			g, loadErr = formats.Load(path)
		})
		if loadErr != nil {
			logger.Errorf("skipping %s: %v", path, loadErr)
			continue
		}

		summary := bench.Summarize(name, g, loadDuration)
		logger.Infof("loaded %s: V=%d maxDegree=%d loadTime=%s estMemory=%.2fMB",
			summary.Name, summary.VertexCount, summary.MaxDegree, summary.LoadDuration,
			float64(summary.EstimatedBytes)/(1024*1024))

		for iter := 0; iter < opts.Iterations; iter++ {
			for _, method := range methods {
				colorOneMethod(ctx, logger, csvWriter, name, g, method, opts)
			}
		}
	}
	return nil
}

func colorOneMethod(ctx context.Context, logger *charmlog.Logger, csvWriter *bench.CSVWriter, name string, g *graph.Graph, method string, opts RunOptions) {
	var colors []int32
	var err error
	duration := bench.Time(func() {
		colors, err = coloring.Color(ctx, g, method, opts.Threads, opts.Rand)
	})
	if err != nil {
		logger.Errorf("%s/%s: %v", name, method, err)
		return
	}
	if !g.Valid(colors) {
		logger.Errorf("%s/%s produced an invalid coloring", name, method)
		return
	}

	used := distinctColors(colors)
	logger.Infof("%s method=%s threads=%d colors=%d time=%s", name, method, opts.Threads, used, duration)

	if csvWriter == nil {
		return
	}
	if err := csvWriter.WriteRow(name, g.VertexCount(), method, opts.Threads, duration, used); err != nil {
		logger.Errorf("writing csv row: %v", err)
	}
}

func distinctColors(colors []int32) int {
	seen := map[int32]bool{}
	for _, c := range colors {
		seen[c] = true
	}
	return len(seen)
}

// createCSVFile opens the output CSV file at explicitPath if given, otherwise
// a timestamped file under results/.
func createCSVFile(explicitPath string) (string, *os.File, error) {
	name := explicitPath
	if name == "" {
		if err := os.MkdirAll("results", 0o755); err != nil {
			return "", nil, err
		}
		name = fmt.Sprintf("results/results_%s.csv", time.Now().Format("2006-01-02_15-04-05"))
	} else if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", nil, err
		}
	}
	f, err := os.Create(name)
	if err != nil {
		return "", nil, err
	}
	return name, f, nil
}
