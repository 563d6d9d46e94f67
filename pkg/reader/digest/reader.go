// Package digest provides streaming readers for digested peptide files: one
// ">name number cleavages enzyme" header line followed by one sequence line.
package digest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charlesjban/MassSpec/pkg/core"
)

// Reader provides streaming access to digest files
type Reader struct {
	scanner    *bufio.Scanner
	lineNum    int
	currentRec core.PeptideRecord
	count      int
	err        error
}

// NewReader creates a new digest reader
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	return &Reader{
		scanner: scanner,
	}
}

// Next advances to the next record. Returns false when no more records or error.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	r.currentRec = core.PeptideRecord{}

	rec, err := r.readRecord()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}

	r.currentRec = rec
	r.count++
	return true
}

// Record returns the current record
func (r *Reader) Record() core.PeptideRecord {
	return r.currentRec
}

// Count returns the number of records read so far
func (r *Reader) Count() int {
	return r.count
}

// Err returns any error encountered during reading
func (r *Reader) Err() error {
	return r.err
}

// nextLine returns the next non-empty line with line endings removed
func (r *Reader) nextLine() (string, error) {
	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimRight(r.scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, nil
	}

	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// readRecord reads one header/sequence pair
func (r *Reader) readRecord() (core.PeptideRecord, error) {
	header, err := r.nextLine()
	if err != nil {
		return core.PeptideRecord{}, err
	}
	headerLine := r.lineNum

	rec, err := core.ParseHeader(header)
	if err != nil {
		return core.PeptideRecord{}, &core.MalformedRecordError{Line: headerLine, Message: err.Error()}
	}

	seq, err := r.nextLine()
	if err == io.EOF {
		return core.PeptideRecord{}, &core.MalformedRecordError{
			Line:    headerLine,
			Message: fmt.Sprintf("header for %s has no sequence line", rec.ProteinName),
		}
	}
	if err != nil {
		return core.PeptideRecord{}, err
	}
	if strings.HasPrefix(seq, ">") {
		return core.PeptideRecord{}, &core.MalformedRecordError{
			Line:    headerLine,
			Message: fmt.Sprintf("header for %s is followed by another header", rec.ProteinName),
		}
	}

	rec.Sequence = strings.TrimSpace(seq)
	return rec, nil
}
