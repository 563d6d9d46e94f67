// Package core provides the record models and validation logic for digested
// peptide data.
package core

import (
	"fmt"
	"strings"
)

// PeptideRecord is one parsed header/sequence pair from a digest file.
type PeptideRecord struct {
	ProteinName      string // header name without the leading '>'
	OccurrenceNumber string // peptide number within the protein
	MissedCleavages  string // single digit taken from the third header token
	Enzyme           string
	Sequence         string
}

// ComputedPeptide is a PeptideRecord with its calculated m/z.
type ComputedPeptide struct {
	PeptideRecord
	MZ     float64
	Charge int
}

// MalformedRecordError reports a structural problem in the input file.
type MalformedRecordError struct {
	Line    int // 1-based line number of the offending line
	Message string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("malformed record: %s", e.Message)
}

// MissedCleavageIndex is the position in the third header token that holds
// the missed-cleavage digit.
const MissedCleavageIndex = 7

// ParseHeader splits a header line into its record fields. The sequence is
// left empty.
func ParseHeader(line string) (PeptideRecord, error) {
	if !strings.HasPrefix(line, ">") {
		return PeptideRecord{}, fmt.Errorf("header must start with '>', got %q", line)
	}

	fields := strings.Fields(line)
	if len(fields) < 4 {
		return PeptideRecord{}, fmt.Errorf("header %q has %d fields, expected 4 (name, number, missed cleavages, enzyme)", line, len(fields))
	}

	name := strings.TrimPrefix(fields[0], ">")
	if name == "" {
		return PeptideRecord{}, fmt.Errorf("header %q has an empty name", line)
	}

	cleave := fields[2]
	if len(cleave) <= MissedCleavageIndex {
		return PeptideRecord{}, fmt.Errorf("missed cleavage token %q is shorter than %d characters", cleave, MissedCleavageIndex+1)
	}

	return PeptideRecord{
		ProteinName:      name,
		OccurrenceNumber: fields[1],
		MissedCleavages:  cleave[MissedCleavageIndex : MissedCleavageIndex+1],
		Enzyme:           fields[3],
	}, nil
}

// Name returns the record name in format "Protein/Number"
func (r PeptideRecord) Name() string {
	return fmt.Sprintf("%s/%s", r.ProteinName, r.OccurrenceNumber)
}
