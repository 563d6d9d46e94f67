package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/charlesjban/MassSpec/pkg/core"
	"github.com/charlesjban/MassSpec/pkg/stats"
)

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "masses.db")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	defer w.Close()

	counter := stats.NewCounter()
	peps := []core.ComputedPeptide{
		{PeptideRecord: core.PeptideRecord{ProteinName: "P1", OccurrenceNumber: "1", MissedCleavages: "0", Enzyme: "trypsin", Sequence: "ACDE"}, MZ: 437.1264, Charge: 1},
		{PeptideRecord: core.PeptideRecord{ProteinName: "P2", OccurrenceNumber: "1", MissedCleavages: "1", Enzyme: "trypsin", Sequence: "GGK"}, MZ: 280.1, Charge: 1},
	}
	for _, p := range peps {
		counter.Add(p.ProteinName)
		if err := w.WritePeptide(p); err != nil {
			t.Fatalf("WritePeptide() error = %v", err)
		}
	}
	counter.Add("P1")

	if err := w.WriteCounts(counter); err != nil {
		t.Fatalf("WriteCounts() error = %v", err)
	}
	if err := w.Finalize(RunInfo{InputFile: "x.fasta", MassModel: "m", Charge: 1, TerminalMode: "a"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() after Finalize error = %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM PeptideTable`).Scan(&n); err != nil {
		t.Fatalf("count peptides: %v", err)
	}
	if n != 2 {
		t.Errorf("PeptideTable rows = %d, want 2", n)
	}

	var mzText string
	if err := db.QueryRow(`SELECT MZText FROM PeptideTable WHERE PeptideId = 1`).Scan(&mzText); err != nil {
		t.Fatalf("select mz: %v", err)
	}
	if mzText != "437.1264" {
		t.Errorf("MZText = %s, want 437.1264", mzText)
	}

	var count int
	if err := db.QueryRow(`SELECT PeptideCount FROM ProteinTable WHERE ProteinName = 'P1'`).Scan(&count); err != nil {
		t.Fatalf("select count: %v", err)
	}
	if count != 2 {
		t.Errorf("P1 PeptideCount = %d, want 2", count)
	}

	var model string
	if err := db.QueryRow(`SELECT MassModel FROM HeaderTable`).Scan(&model); err != nil {
		t.Fatalf("select header: %v", err)
	}
	if model != "m" {
		t.Errorf("MassModel = %s, want m", model)
	}
}

func TestWriterCloseDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aborted.db")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	pep := core.ComputedPeptide{PeptideRecord: core.PeptideRecord{ProteinName: "P1", Sequence: "A"}, MZ: 90, Charge: 1}
	if err := w.WritePeptide(pep); err != nil {
		t.Fatalf("WritePeptide() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM PeptideTable`).Scan(&n); err != nil {
		t.Fatalf("count peptides: %v", err)
	}
	if n != 0 {
		t.Errorf("PeptideTable rows = %d, want 0 after Close without Finalize", n)
	}
}
