package bench

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Header is the CSV column order written by CSVWriter. The first six
// columns are the contract the benchmark driver's consumers rely on; run_id
// is an addition that lets rows from the same invocation be grouped when
// several CSV files accumulate across runs.
var Header = []string{
	"graph_name", "vertex_count", "coloring_method", "n_threads",
	"coloring_time", "colors_used", "run_id",
}

// CSVWriter emits one row per (graph, method) coloring result, stamping
// every row from one CSVWriter with the same run identifier.
type CSVWriter struct {
	w     *csv.Writer
	runID string
}

// NewCSVWriter wraps w, generating a fresh run identifier.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w), runID: uuid.NewString()}
}

// RunID returns the identifier stamped into every row this writer emits.
func (c *CSVWriter) RunID() string {
	return c.runID
}

// WriteHeader writes the column header row.
func (c *CSVWriter) WriteHeader() error {
	if err := c.w.Write(Header); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

// WriteRow writes one result row and flushes immediately, so a crash mid-run
// leaves a CSV file valid up to the last completed coloring call.
func (c *CSVWriter) WriteRow(graphName string, vertexCount int, method string, threads int, coloringTime time.Duration, colorsUsed int) error {
	row := []string{
		graphName,
		strconv.Itoa(vertexCount),
		method,
		strconv.Itoa(threads),
		strconv.FormatFloat(coloringTime.Seconds(), 'f', 6, 64),
		strconv.Itoa(colorsUsed),
		c.runID,
	}
	if err := c.w.Write(row); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}
