// Package output provides adapters for writing application output.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

// Writer writes batch reports to the configured output destination.
// By default, it writes to stdout.
type Writer struct {
	out io.Writer
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{out: os.Stdout}
}

// NewWriterWithOutput creates a new Writer with a custom output
// destination. This is useful for testing.
func NewWriterWithOutput(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteReport writes the batch report. The first line is the bare
// terminal status for consumption by external systems; detail lines
// follow.
func (w *Writer) WriteReport(report *domain.BatchReport) error {
	if _, err := fmt.Fprintln(w.out, string(report.Status)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w.out, "batch=%s requested=%d written=%d slow=%d\n",
		report.BatchID, report.Requested, len(report.Written), len(report.SlowPath)); err != nil {
		return err
	}

	if len(report.SlowPath) > 0 {
		if _, err := fmt.Fprintf(w.out, "slow-path: %s\n", strings.Join(report.SlowPath, ", ")); err != nil {
			return err
		}
	}

	if report.Rejected != "" {
		if _, err := fmt.Fprintf(w.out, "rejected: %s\n", report.Rejected); err != nil {
			return err
		}
	}

	return nil
}
