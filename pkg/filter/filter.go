// Package filter provides terminal peptide selection across repeated protein names
package filter

import (
	"fmt"
	"strings"

	"github.com/charlesjban/MassSpec/pkg/core"
)

// TerminalMode selects which peptides of a protein are reported
type TerminalMode int

const (
	// All reports every peptide in input order
	All TerminalMode = iota
	// FirstOccurrence reports the first peptide seen per protein (N-terminal)
	FirstOccurrence
	// LastOccurrence reports the last peptide seen per protein (C-terminal)
	LastOccurrence
)

// String returns the single-letter code used on the command line
func (m TerminalMode) String() string {
	switch m {
	case FirstOccurrence:
		return "n"
	case LastOccurrence:
		return "c"
	default:
		return "a"
	}
}

// ParseTerminalMode accepts "n", "c", "a" or "all" (case-insensitive)
func ParseTerminalMode(s string) (TerminalMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "n-terminal", "first":
		return FirstOccurrence, nil
	case "c", "c-terminal", "last":
		return LastOccurrence, nil
	case "a", "all":
		return All, nil
	default:
		return All, fmt.Errorf("invalid terminal mode '%s', must be 'n' (n-terminal), 'c' (c-terminal) or 'a' (all peptides)", s)
	}
}

// EmitFunc receives each peptide that survives selection
type EmitFunc func(core.ComputedPeptide) error

// Selector decides which peptides reach the output
type Selector interface {
	// Add offers a peptide; it may emit zero or one peptides immediately
	Add(pep core.ComputedPeptide, emit EmitFunc) error
	// Flush emits anything held back until end of input
	Flush(emit EmitFunc) error
}

// NewSelector returns the selector for mode
func NewSelector(mode TerminalMode) Selector {
	switch mode {
	case FirstOccurrence:
		return &firstSelector{seen: make(map[string]struct{})}
	case LastOccurrence:
		return &lastSelector{latest: make(map[string]core.ComputedPeptide)}
	default:
		return allSelector{}
	}
}

type allSelector struct{}

func (allSelector) Add(pep core.ComputedPeptide, emit EmitFunc) error {
	return emit(pep)
}

func (allSelector) Flush(EmitFunc) error {
	return nil
}

// firstSelector emits a protein's first peptide and drops the rest
type firstSelector struct {
	seen map[string]struct{}
}

func (s *firstSelector) Add(pep core.ComputedPeptide, emit EmitFunc) error {
	if _, ok := s.seen[pep.ProteinName]; ok {
		return nil
	}
	s.seen[pep.ProteinName] = struct{}{}
	return emit(pep)
}

func (s *firstSelector) Flush(EmitFunc) error {
	return nil
}

// lastSelector keeps the latest peptide per protein and emits them in
// first-seen protein order on Flush
type lastSelector struct {
	order  []string
	latest map[string]core.ComputedPeptide
}

func (s *lastSelector) Add(pep core.ComputedPeptide, _ EmitFunc) error {
	if _, ok := s.latest[pep.ProteinName]; !ok {
		s.order = append(s.order, pep.ProteinName)
	}
	s.latest[pep.ProteinName] = pep
	return nil
}

func (s *lastSelector) Flush(emit EmitFunc) error {
	for _, name := range s.order {
		if err := emit(s.latest[name]); err != nil {
			return err
		}
	}
	s.order = nil
	s.latest = make(map[string]core.ComputedPeptide)
	return nil
}
