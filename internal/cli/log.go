package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger builds a logger writing to w at the given level, timestamped to
// the millisecond so the per-graph and per-method lines in a benchmark run
// stay ordered against each other when skimmed after the fact.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})
}
