package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charlesjban/MassSpec/pkg/core"
	"github.com/charlesjban/MassSpec/pkg/filter"
	"github.com/charlesjban/MassSpec/pkg/pipeline"
	"github.com/charlesjban/MassSpec/pkg/reader/digest"
	"github.com/charlesjban/MassSpec/pkg/writer/report"
	"github.com/charlesjban/MassSpec/pkg/writer/sqlite"
	"github.com/spf13/cobra"
)

var massesCmd = &cobra.Command{
	Use:   "masses",
	Short: "Compute peptide m/z values for a digest file",
	Long: `Compute the m/z of every digested peptide and write a fixed-width report
to <input>.masses. With --stats y, also write <input>.csv (peptides per protein)
and <input>.stats (overview).

Examples:
  # Average masses, charge 1, every peptide
  massspec masses -f digested.fasta

  # Monoisotopic, charge 2, C-terminal peptides with statistics
  massspec masses -f digested.fasta -i m -c 2 -t c -s y

  # Phosphorylated N-terminal peptides, exported to SQLite as well
  massspec masses -f digested.fasta.gz -t n -p y --db digested.db`,
	RunE: runMasses,
}

// massesOptions is the validated form of the masses command flags
type massesOptions struct {
	InputFile     string
	OutputBase    string
	Model         core.MassModel
	Charge        int
	Mode          filter.TerminalMode
	Stats         bool
	Phosphorylate bool
	MassesCSV     string
	DBFile        string
	ProgressEvery int
}

func optionsFromFlags() (*massesOptions, error) {
	opts := &massesOptions{
		InputFile:     inputFile,
		MassesCSV:     massesCSV,
		DBFile:        dbFile,
		ProgressEvery: progressEvery,
	}

	var err error
	if opts.Stats, err = parseYesNo("stats (-s)", statsFlag); err != nil {
		return nil, err
	}
	if opts.Model, err = core.ParseMassModel(isotope); err != nil {
		return nil, err
	}
	if charge < 1 || charge > 3 {
		return nil, fmt.Errorf("charge (-c) can only take value of 1, 2 or 3, got %d", charge)
	}
	opts.Charge = charge
	if opts.Mode, err = filter.ParseTerminalMode(terminal); err != nil {
		return nil, err
	}
	if opts.OutputBase, err = outputBase(inputFile); err != nil {
		return nil, err
	}
	if opts.Phosphorylate, err = parseYesNo("phosphorylation (-p)", phosphoFlag); err != nil {
		return nil, err
	}
	if err := checkInput(inputFile); err != nil {
		return nil, err
	}
	if quiet {
		opts.ProgressEvery = 0
	}

	return opts, nil
}

func runMasses(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if quiet {
		out = io.Discard
	}
	return computeMasses(opts, out)
}

// loadMassTable builds the run's mass table, applying CSV overrides if given
func loadMassTable(model core.MassModel, csvPath string) (*core.MassTable, error) {
	if csvPath == "" {
		return core.NewMassTable(model, nil), nil
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open mass override CSV: %w", err)
	}
	defer f.Close()

	overrides, err := core.LoadMassOverridesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load mass override CSV: %w", err)
	}
	return core.NewMassTable(model, overrides), nil
}

func computeMasses(opts *massesOptions, out io.Writer) error {
	table, err := loadMassTable(opts.Model, opts.MassesCSV)
	if err != nil {
		return err
	}

	reportPath := opts.OutputBase + ".masses"

	fmt.Fprintf(out, "Computing masses for %s...\n", opts.InputFile)
	fmt.Fprintf(out, "Mass model: %s\n", opts.Model)
	fmt.Fprintf(out, "Charge: %d\n", opts.Charge)
	fmt.Fprintf(out, "Terminal: %s\n", opts.Mode)
	if opts.Phosphorylate {
		fmt.Fprintf(out, "Phosphorylation: Ser, Thr, Tyr\n")
	}
	if opts.MassesCSV != "" {
		fmt.Fprintf(out, "Mass overrides: %s\n", opts.MassesCSV)
	}

	// Open input file
	in, err := digest.Open(opts.InputFile)
	if err != nil {
		return err
	}
	defer in.Close()

	// Create report writer
	rw, err := report.Create(reportPath)
	if err != nil {
		return err
	}
	defer rw.Close()

	sinks := []pipeline.Sink{rw}

	var dbw *sqlite.Writer
	if opts.DBFile != "" {
		dbw, err = sqlite.NewWriter(opts.DBFile)
		if err != nil {
			return fmt.Errorf("failed to create output database: %w", err)
		}
		defer dbw.Close()
		sinks = append(sinks, dbw)
	}

	cfg := pipeline.Config{
		Table:         table,
		Charge:        opts.Charge,
		Phosphorylate: opts.Phosphorylate,
		Mode:          opts.Mode,
		Warn: func(msg string) {
			Warnf("%s", msg)
		},
		Progress: func(n int) {
			printer.Fprintf(out, "Processed %d peptides...\n", n)
		},
		ProgressInterval: opts.ProgressEvery,
	}

	res, err := pipeline.Run(in, cfg, sinks...)
	if err != nil {
		return err
	}

	if err := rw.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if dbw != nil {
		if err := dbw.WriteCounts(res.Counter); err != nil {
			return err
		}
		info := sqlite.RunInfo{
			InputFile:     filepath.Base(opts.InputFile),
			MassModel:     opts.Model.String(),
			Charge:        opts.Charge,
			TerminalMode:  opts.Mode.String(),
			Phosphorylate: opts.Phosphorylate,
		}
		if err := dbw.Finalize(info); err != nil {
			return fmt.Errorf("failed to finalize database: %w", err)
		}
	}

	if opts.Stats {
		if err := writeStats(opts, res); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nDone!\n")
	printer.Fprintf(out, "Processed: %d peptides from %d proteins\n", res.Records, res.Counter.TotalProteins())
	printer.Fprintf(out, "Reported: %d peptides\n", res.Emitted)
	if res.Warnings > 0 {
		printer.Fprintf(out, "Unknown residues: %d (counted as 0 Da)\n", res.Warnings)
	}
	fmt.Fprintf(out, "Output: %s\n", reportPath)
	if opts.DBFile != "" {
		fmt.Fprintf(out, "Database: %s\n", opts.DBFile)
	}

	return nil
}

// writeStats writes the listing (.csv) and overview (.stats) files
func writeStats(opts *massesOptions, res *pipeline.Result) error {
	listing, err := os.Create(opts.OutputBase + ".csv")
	if err != nil {
		return fmt.Errorf("failed to create statistics file: %w", err)
	}
	defer listing.Close()

	if err := res.Counter.WriteListing(listing); err != nil {
		return fmt.Errorf("failed to write statistics file: %w", err)
	}
	if err := listing.Close(); err != nil {
		return fmt.Errorf("failed to write statistics file: %w", err)
	}

	overview, err := os.Create(opts.OutputBase + ".stats")
	if err != nil {
		return fmt.Errorf("failed to create overview file: %w", err)
	}
	defer overview.Close()

	if err := res.Counter.WriteSummary(overview, opts.InputFile); err != nil {
		return fmt.Errorf("failed to write overview file: %w", err)
	}
	return overview.Close()
}
