// Package cmd provides CLI command implementations
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// Flags for masses command
	inputFile     string
	isotope       string
	charge        int
	terminal      string
	statsFlag     string
	phosphoFlag   string
	massesCSV     string
	dbFile        string
	quiet         bool
	progressEvery int
)

var (
	warnColor = color.New(color.FgYellow)
	printer   = message.NewPrinter(language.English)
)

var rootCmd = &cobra.Command{
	Use:   "massspec",
	Short: "massspec - Peptide m/z calculator for in-silico digests",
	Long: `massspec computes the mass-to-charge ratio of every peptide in a digest file
(alternating ">name number cleavages enzyme" and sequence lines) and writes a
fixed-width .masses report next to the input.

Supports:
- Monoisotopic or average isotopic residue masses
- Charge states 1 to 3
- N-terminal, C-terminal or all peptides per protein
- Phosphorylation of Ser, Thr and Tyr
- Per-protein statistics and SQLite export`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(massesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(summarizeCmd)

	// Masses command flags
	massesCmd.Flags().StringVarP(&inputFile, "fasta", "f", "", "Digest file ending in .fasta or .fasta.gz (required)")
	massesCmd.Flags().StringVarP(&isotope, "isotope", "i", "a", "Isotopic masses: 'm' (monoisotopic) or 'a' (average)")
	massesCmd.Flags().IntVarP(&charge, "charge", "c", 1, "Peptide charge: 1, 2 or 3")
	massesCmd.Flags().StringVarP(&terminal, "terminal", "t", "a", "Report 'n' (N-terminal), 'c' (C-terminal) or 'a' (all) peptides")
	massesCmd.Flags().StringVarP(&statsFlag, "stats", "s", "n", "Write .csv and .stats statistics files: 'y' or 'n'")
	massesCmd.Flags().StringVarP(&phosphoFlag, "phospho", "p", "n", "Add a phosphate group to Ser, Thr and Tyr: 'y' or 'n'")
	massesCmd.Flags().StringVar(&massesCSV, "masses", "", "CSV of residue mass overrides (symbol,mass)")
	massesCmd.Flags().StringVar(&dbFile, "db", "", "Also export emitted peptides to this SQLite database")
	massesCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	massesCmd.Flags().IntVar(&progressEvery, "progress-every", 10000, "Print progress every N records (0 = never)")

	massesCmd.MarkFlagRequired("fasta")
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate digest file structure",
	Long:  `Parse every header/sequence pair and report the record count or the first malformed record.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize peptides per protein",
	Long:  `Print protein and peptide counts for a digest file without writing any output files.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

// Warnf prints a colored warning to stderr
func Warnf(format string, args ...interface{}) {
	warnColor.Fprint(os.Stderr, "Warning: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// parseYesNo accepts 'y'/'yes' and 'n'/'no' (case-insensitive)
func parseYesNo(flag, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%s argument must be 'y' or 'n', got '%s'", flag, value)
	}
}

// outputBase strips the .fasta or .fasta.gz suffix from an input path
func outputBase(path string) (string, error) {
	lower := strings.ToLower(path)
	for _, suffix := range []string{".fasta.gz", ".fasta"} {
		if strings.HasSuffix(lower, suffix) {
			return path[:len(path)-len(suffix)], nil
		}
	}
	return "", fmt.Errorf("input file '%s' must be named with a '.fasta' or '.fasta.gz' suffix", path)
}

// checkInput validates that path exists and is a regular file
func checkInput(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path is a directory: %s", path)
	}
	return nil
}
