// Package cli implements the grcolor command-line benchmark driver: a flat
// flag set over a positional list of graph files, logging via
// charmbracelet/log and dispatching every (graph, method) pair through the
// coloring package's dispatcher.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/grcolor/grcolor/internal/colorerr"
	"github.com/grcolor/grcolor/internal/config"
)

// NewRootCommand builds the grcolor command: `grcolor [files…] [-t N]
// [-n ITERATIONS] [--csv] [--par]`. With no positional files, the benchmark
// driver falls back to scanning the configured graph directory.
func NewRootCommand() *cobra.Command {
	var (
		threads      int
		iterations   int
		writeCSV     bool
		parallelOnly bool
		verbose      bool
		configPath   string
	)

	root := &cobra.Command{
		Use:          "grcolor [files...]",
		Short:        "Benchmark heuristic graph vertex-coloring algorithms",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags always win; a value the user never typed falls back to
			// whatever the config file or environment supplied.
			flags := cmd.Flags()
			if !flags.Changed("threads") {
				threads = cfg.Benchmark.Threads
			}
			if !flags.Changed("iterations") {
				iterations = cfg.Benchmark.Iterations
			}
			if !flags.Changed("csv") {
				writeCSV = cfg.Benchmark.CSVPath != ""
			}
			if !flags.Changed("par") {
				parallelOnly = cfg.Benchmark.ParallelOnly
			}

			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			if threads <= 0 {
				return &ExitError{Code: 1, Err: colorerr.New(colorerr.CodeInvalidThreadCount, "'-t|--threads' must be a positive integer, got %d", threads)}
			}
			if iterations <= 0 {
				return &ExitError{Code: 1, Err: colorerr.New(colorerr.CodeInvalidThreadCount, "'-n' must be a positive integer, got %d", iterations)}
			}
			if threads > runtime.NumCPU() {
				logger.Warnf("lowering thread count from %d to %d (available CPUs)", threads, runtime.NumCPU())
				threads = runtime.NumCPU()
			}

			opts := RunOptions{
				Files:        args,
				GraphDir:     cfg.Benchmark.GraphDir,
				Threads:      threads,
				Iterations:   iterations,
				WriteCSV:     writeCSV,
				CSVPath:      cfg.Benchmark.CSVPath,
				ParallelOnly: parallelOnly,
				Rand:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
			}
			return Run(cmd.Context(), logger, opts)
		},
	}

	root.Flags().IntVarP(&threads, "threads", "t", runtime.NumCPU(), "number of worker threads for parallel methods")
	root.Flags().IntVarP(&iterations, "iterations", "n", 1, "number of iterations per graph")
	root.Flags().BoolVar(&writeCSV, "csv", false, "export results to a timestamped CSV file under results/")
	root.Flags().BoolVar(&parallelOnly, "par", false, "skip the sequential methods")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&configPath, "config", "", "path to a grcolor config file")

	return root
}

// Execute runs the grcolor CLI against os.Args and returns the process
// exit code, mapping *ExitError to its carried code and anything else to 1.
func Execute() int {
	root := NewRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Err)
			return exitErr.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
