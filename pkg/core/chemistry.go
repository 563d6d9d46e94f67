package core

import (
	"fmt"
	"math"
	"strconv"
)

// UnknownResidue records a residue code that has no entry in the mass table.
type UnknownResidue struct {
	Residue  rune
	Position int // 1-based position in the sequence
}

// IsPhosphorylatable reports whether a residue carries a phosphate when
// phosphorylation is enabled (Ser, Thr, Tyr).
func IsPhosphorylatable(residue rune) bool {
	return residue == 'S' || residue == 'T' || residue == 'Y'
}

// ResidueMassSum adds up the table mass of every residue in sequence. With
// phosphorylate set, each S/T/Y also contributes one phosphate mass on top of
// its own. Unknown residues contribute 0 and are returned in order.
func ResidueMassSum(sequence string, table *MassTable, phosphorylate bool) (float64, []UnknownResidue) {
	var (
		sum     float64
		unknown []UnknownResidue
	)

	pos := 0
	for _, aa := range sequence {
		pos++
		mass, ok := table.Lookup(string(aa))
		if !ok {
			unknown = append(unknown, UnknownResidue{Residue: aa, Position: pos})
		}
		sum += mass

		if phosphorylate && IsPhosphorylatable(aa) {
			sum += table.Phosphate()
		}
	}

	return sum, unknown
}

// ComputeMZ returns the m/z of sequence at the given charge.
//
// The charge is added as a raw offset of one unit per charge rather than
// charge*ProtonMass: mz = (residues + charge + water) / charge.
func ComputeMZ(sequence string, table *MassTable, phosphorylate bool, charge int) (float64, []UnknownResidue) {
	sum, unknown := ResidueMassSum(sequence, table, phosphorylate)
	z := float64(charge)
	return (sum + z + table.Water()) / z, unknown
}

// Compute builds a ComputedPeptide from a parsed record.
func Compute(rec PeptideRecord, table *MassTable, phosphorylate bool, charge int) (ComputedPeptide, []UnknownResidue) {
	mz, unknown := ComputeMZ(rec.Sequence, table, phosphorylate, charge)
	return ComputedPeptide{
		PeptideRecord: rec,
		MZ:            mz,
		Charge:        charge,
	}, unknown
}

// FormatMZ renders an m/z value with 4 decimal places
func FormatMZ(mz float64) string {
	return strconv.FormatFloat(mz, 'f', 4, 64)
}

// UnknownResidueWarning describes an unknown residue for the diagnostics stream
func UnknownResidueWarning(name, sequence string, u UnknownResidue) string {
	return fmt.Sprintf("unknown amino acid '%c' at position %d of %s in %s, m/z contribution 0",
		u.Residue, u.Position, sequence, name)
}

// RoundFloat rounds a float to n decimal places
func RoundFloat(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
