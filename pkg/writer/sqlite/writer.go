// Package sqlite provides SQLite database export of computed peptide masses
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charlesjban/MassSpec/pkg/core"
	"github.com/charlesjban/MassSpec/pkg/stats"
	_ "github.com/mattn/go-sqlite3"
)

// Date format for HeaderTable (ISO 8601)
const headerDateFormat = "2006-01-02"

// RunInfo describes the settings a database was produced with
type RunInfo struct {
	InputFile     string
	MassModel     string
	Charge        int
	TerminalMode  string
	Phosphorylate bool
}

// Writer handles writing peptides to SQLite database files
type Writer struct {
	db          *sql.DB
	tx          *sql.Tx
	outputPath  string
	peptideStmt *sql.Stmt
	peptideID   int
	closed      bool
}

// NewWriter creates a new SQLite writer. All rows are written in a single
// transaction committed by Finalize.
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:         db,
		outputPath: outputPath,
		peptideID:  1,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	w.tx, err = db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := w.prepareStatements(); err != nil {
		w.tx.Rollback()
		db.Close()
		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema
func (w *Writer) createTables() error {
	schema := `
	DROP TABLE IF EXISTS PeptideTable;
	DROP TABLE IF EXISTS ProteinTable;
	DROP TABLE IF EXISTS HeaderTable;

	CREATE TABLE PeptideTable (
		PeptideId INTEGER PRIMARY KEY,
		ProteinName TEXT NOT NULL,
		OccurrenceNumber TEXT,
		MissedCleavages TEXT,
		Enzyme TEXT,
		Sequence TEXT,
		MZ DOUBLE,
		MZText TEXT,
		Charge INTEGER
	);

	CREATE TABLE ProteinTable (
		ProteinName TEXT PRIMARY KEY,
		PeptideCount INTEGER
	);

	CREATE TABLE HeaderTable (
		CreationDate TEXT,
		InputFile TEXT,
		MassModel TEXT,
		Charge INTEGER,
		TerminalMode TEXT,
		Phosphorylated BOOL
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion
func (w *Writer) prepareStatements() error {
	var err error

	w.peptideStmt, err = w.tx.Prepare(`
		INSERT INTO PeptideTable (
			PeptideId, ProteinName, OccurrenceNumber, MissedCleavages,
			Enzyme, Sequence, MZ, MZText, Charge
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare peptide statement: %w", err)
	}

	return nil
}

// WritePeptide writes a single peptide to the database
func (w *Writer) WritePeptide(pep core.ComputedPeptide) error {
	_, err := w.peptideStmt.Exec(
		w.peptideID,           // PeptideId
		pep.ProteinName,       // ProteinName
		pep.OccurrenceNumber,  // OccurrenceNumber
		pep.MissedCleavages,   // MissedCleavages
		pep.Enzyme,            // Enzyme
		pep.Sequence,          // Sequence
		pep.MZ,                // MZ
		core.FormatMZ(pep.MZ), // MZText
		pep.Charge,            // Charge
	)
	if err != nil {
		return fmt.Errorf("failed to insert peptide %s: %w", pep.Name(), err)
	}

	w.peptideID++
	return nil
}

// WriteCounts writes the per-protein peptide counts
func (w *Writer) WriteCounts(c *stats.Counter) error {
	stmt, err := w.tx.Prepare(`INSERT INTO ProteinTable (ProteinName, PeptideCount) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare protein statement: %w", err)
	}
	defer stmt.Close()

	for _, name := range c.Proteins() {
		if _, err := stmt.Exec(name, c.Count(name)); err != nil {
			return fmt.Errorf("failed to insert protein %s: %w", name, err)
		}
	}
	return nil
}

// Finalize writes the header table, commits and closes the database
func (w *Writer) Finalize(info RunInfo) error {
	if w.closed {
		return nil
	}

	_, err := w.tx.Exec(`
		INSERT INTO HeaderTable (CreationDate, InputFile, MassModel, Charge, TerminalMode, Phosphorylated)
		VALUES (?, ?, ?, ?, ?, ?)
	`, time.Now().Format(headerDateFormat), info.InputFile, info.MassModel, info.Charge, info.TerminalMode, info.Phosphorylate)
	if err != nil {
		w.Close()
		return fmt.Errorf("failed to insert header: %w", err)
	}

	if w.peptideStmt != nil {
		w.peptideStmt.Close()
	}

	if err := w.tx.Commit(); err != nil {
		w.Close()
		return fmt.Errorf("failed to commit: %w", err)
	}

	w.closed = true
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Close discards uncommitted rows and closes the database. It is a no-op
// after Finalize.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.peptideStmt != nil {
		w.peptideStmt.Close()
	}
	w.tx.Rollback()
	return w.db.Close()
}
