package cmd

import (
	"fmt"
	"io"

	"github.com/charlesjban/MassSpec/pkg/reader/digest"
	"github.com/charlesjban/MassSpec/pkg/stats"
	"github.com/spf13/cobra"
)

func runValidate(cmd *cobra.Command, args []string) error {
	return validateFile(args[0], cmd.OutOrStdout())
}

func runSummarize(cmd *cobra.Command, args []string) error {
	return summarizeFile(args[0], cmd.OutOrStdout())
}

// scanFile reads every record of path into a counter
func scanFile(path string) (*stats.Counter, error) {
	if err := checkInput(path); err != nil {
		return nil, err
	}

	in, err := digest.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	counter := stats.NewCounter()
	for in.Next() {
		counter.Add(in.Record().ProteinName)
	}
	if err := in.Err(); err != nil {
		return counter, fmt.Errorf("error reading input file: %w", err)
	}
	return counter, nil
}

func validateFile(path string, out io.Writer) error {
	counter, err := scanFile(path)
	if err != nil {
		return err
	}

	printer.Fprintf(out, "%s: OK, %d records from %d proteins\n", path, counter.TotalPeptides(), counter.TotalProteins())
	return nil
}

func summarizeFile(path string, out io.Writer) error {
	counter, err := scanFile(path)
	if err != nil {
		return err
	}

	printer.Fprintf(out, "Proteins: %d\n", counter.TotalProteins())
	printer.Fprintf(out, "Peptides: %d\n", counter.TotalPeptides())
	fmt.Fprintf(out, "Average peptides per protein: %.4f\n", counter.Average())

	if len(counter.Proteins()) > 0 {
		fmt.Fprintln(out)
		if err := counter.WriteListing(out); err != nil {
			return err
		}
	}
	return nil
}
