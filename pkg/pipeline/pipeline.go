// Package pipeline runs the single pass from parsed records to report sinks
package pipeline

import (
	"errors"
	"fmt"

	"github.com/charlesjban/MassSpec/pkg/core"
	"github.com/charlesjban/MassSpec/pkg/filter"
	"github.com/charlesjban/MassSpec/pkg/stats"
)

// Source yields parsed records one at a time
type Source interface {
	Next() bool
	Record() core.PeptideRecord
	Err() error
}

// Sink receives every peptide that survives terminal selection
type Sink interface {
	WritePeptide(core.ComputedPeptide) error
}

// Config holds the per-run settings
type Config struct {
	Table         *core.MassTable
	Charge        int
	Phosphorylate bool
	Mode          filter.TerminalMode

	// Warn receives one message per unknown residue occurrence
	Warn func(msg string)
	// Progress, if set, is called every ProgressInterval records
	Progress         func(records int)
	ProgressInterval int
}

// Validate checks the settings the calculator depends on
func (c *Config) Validate() error {
	if c.Table == nil {
		return errors.New("mass table is required")
	}
	if c.Charge < 1 || c.Charge > 3 {
		return fmt.Errorf("charge must be 1, 2 or 3, got %d", c.Charge)
	}
	return nil
}

// Result summarises a completed run
type Result struct {
	Counter  *stats.Counter
	Records  int
	Emitted  int
	Warnings int
}

// Run reads every record from src, computes its m/z, applies terminal
// selection and writes the survivors to each sink in order. It stops at the
// first read or write error.
func Run(src Source, cfg Config, sinks ...Sink) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Counter: stats.NewCounter()}
	selector := filter.NewSelector(cfg.Mode)

	emit := func(pep core.ComputedPeptide) error {
		for _, s := range sinks {
			if err := s.WritePeptide(pep); err != nil {
				return fmt.Errorf("failed to write peptide %s: %w", pep.Name(), err)
			}
		}
		res.Emitted++
		return nil
	}

	for src.Next() {
		rec := src.Record()

		pep, unknown := core.Compute(rec, cfg.Table, cfg.Phosphorylate, cfg.Charge)
		for _, u := range unknown {
			res.Warnings++
			if cfg.Warn != nil {
				cfg.Warn(core.UnknownResidueWarning(rec.ProteinName, rec.Sequence, u))
			}
		}

		res.Counter.Add(rec.ProteinName)
		res.Records++

		if err := selector.Add(pep, emit); err != nil {
			return res, err
		}

		if cfg.Progress != nil && cfg.ProgressInterval > 0 && res.Records%cfg.ProgressInterval == 0 {
			cfg.Progress(res.Records)
		}
	}

	if err := src.Err(); err != nil {
		return res, fmt.Errorf("error reading input file: %w", err)
	}

	if err := selector.Flush(emit); err != nil {
		return res, err
	}

	return res, nil
}
