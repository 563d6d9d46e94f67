// Package core provides residue mass tables and peptide m/z calculations
package core

import (
	"fmt"
	"strings"
)

// Pseudo-symbols stored alongside the residue codes
const (
	SymbolWater     = "H2O"
	SymbolProton    = "proton"
	SymbolPhosphate = "PO3"
)

// MassModel selects which isotopic mass table a run uses.
type MassModel int

const (
	Average MassModel = iota
	Monoisotopic
)

// String returns the single-letter code used on the command line
func (m MassModel) String() string {
	switch m {
	case Monoisotopic:
		return "m"
	default:
		return "a"
	}
}

// ParseMassModel accepts "m", "monoisotopic", "a" or "average" (case-insensitive).
func ParseMassModel(s string) (MassModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "mono", "monoisotopic":
		return Monoisotopic, nil
	case "a", "avg", "average", "averageisotopic":
		return Average, nil
	default:
		return Average, fmt.Errorf("invalid mass model '%s', must be 'm' (monoisotopic) or 'a' (average)", s)
	}
}

// MassTable maps residue symbols to masses in Da. It is immutable once built.
type MassTable struct {
	model  MassModel
	masses map[string]float64
}

// Monoisotopic residue masses
var monoisotopicMasses = map[string]float64{
	"A": 71.0371, "C": 103.0092, "D": 115.0269,
	"E": 129.0426, "F": 147.0684, "G": 57.0215,
	"H": 137.0589, "I": 113.0841, "K": 128.0950,
	"L": 113.0841, "M": 131.0405, "N": 114.0429,
	"P": 97.0528, "Q": 128.0586, "R": 156.1011,
	"S": 87.0320, "T": 101.0477, "V": 99.0684,
	"W": 186.0793, "Y": 163.0633, "*": 0.0,
	SymbolWater: 18.0106, SymbolProton: 1, SymbolPhosphate: 79.9663,
}

// Average isotopic residue masses
var averageMasses = map[string]float64{
	"A": 71.08, "C": 103.14, "D": 115.09,
	"E": 129.12, "F": 147.18, "G": 57.05,
	"H": 137.14, "I": 113.16, "K": 128.17,
	"L": 113.16, "M": 131.19, "N": 114.10,
	"P": 97.12, "Q": 128.13, "R": 156.19,
	"S": 87.08, "T": 101.10, "V": 99.13,
	"W": 186.21, "Y": 163.18, "*": 0.0, "X": 0,
	SymbolWater: 18.0153, SymbolProton: 1, SymbolPhosphate: 79.98,
}

// NewMassTable returns the built-in table for the given model, with any
// overrides applied on top. The overrides map is copied.
func NewMassTable(model MassModel, overrides map[string]float64) *MassTable {
	base := averageMasses
	if model == Monoisotopic {
		base = monoisotopicMasses
	}

	masses := make(map[string]float64, len(base)+len(overrides))
	for sym, mass := range base {
		masses[sym] = mass
	}
	for sym, mass := range overrides {
		masses[sym] = mass
	}

	return &MassTable{model: model, masses: masses}
}

// MonoisotopicTable returns the built-in monoisotopic table
func MonoisotopicTable() *MassTable {
	return NewMassTable(Monoisotopic, nil)
}

// AverageTable returns the built-in average isotopic table
func AverageTable() *MassTable {
	return NewMassTable(Average, nil)
}

// Model reports which isotopic model the table was built from
func (t *MassTable) Model() MassModel {
	return t.model
}

// Lookup returns the mass for symbol. ok is false for unknown symbols, in
// which case the mass is 0.
func (t *MassTable) Lookup(symbol string) (mass float64, ok bool) {
	mass, ok = t.masses[symbol]
	return mass, ok
}

// Water returns the mass of H2O
func (t *MassTable) Water() float64 {
	return t.masses[SymbolWater]
}

// Proton returns the table's proton entry
func (t *MassTable) Proton() float64 {
	return t.masses[SymbolProton]
}

// Phosphate returns the mass of a PO3 group
func (t *MassTable) Phosphate() float64 {
	return t.masses[SymbolPhosphate]
}
