// massspec - Peptide m/z calculator for in-silico digests
package main

import (
	"os"

	"github.com/charlesjban/MassSpec/cmd/massspec/cmd"
	"github.com/fatih/color"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
