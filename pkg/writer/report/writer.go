// Package report provides the fixed-width mass report writer
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charlesjban/MassSpec/pkg/core"
)

// Format renders a peptide as one report line (without newline). Columns are
// name (left, 20), number (2), m/z (10), missed cleavages (1), charge (1),
// enzyme (1) and the sequence. Widths are minimums and never truncate.
func Format(pep core.ComputedPeptide) string {
	return fmt.Sprintf("%-20s %2s %10s %1s %1d %1s %s",
		pep.ProteinName,
		pep.OccurrenceNumber,
		core.FormatMZ(pep.MZ),
		pep.MissedCleavages,
		pep.Charge,
		pep.Enzyme,
		pep.Sequence,
	)
}

// Writer writes formatted report lines
type Writer struct {
	bw    *bufio.Writer
	f     *os.File
	count int
}

// NewWriter wraps w in a buffered report writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Create creates (or truncates) the report file at path
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	w := NewWriter(f)
	w.f = f
	return w, nil
}

// WritePeptide writes one report line
func (w *Writer) WritePeptide(pep core.ComputedPeptide) error {
	if _, err := w.bw.WriteString(Format(pep)); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of lines written
func (w *Writer) Count() int {
	return w.count
}

// Close flushes buffered lines and closes the file, if any
func (w *Writer) Close() error {
	err := w.bw.Flush()
	if w.f != nil {
		if cerr := w.f.Close(); err == nil {
			err = cerr
		}
		w.f = nil
	}
	return err
}
