// Package stats counts peptides per protein and writes the listing and
// summary files
package stats

import (
	"bufio"
	"fmt"
	"io"
)

// Counter tracks how many peptide records each protein produced, in
// first-seen order
type Counter struct {
	order  []string
	counts map[string]int
	total  int
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add counts one record for name
func (c *Counter) Add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
	c.total++
}

// Count returns the number of records seen for name
func (c *Counter) Count(name string) int {
	return c.counts[name]
}

// Proteins returns the distinct protein names in first-seen order
func (c *Counter) Proteins() []string {
	return append([]string(nil), c.order...)
}

// TotalProteins returns the number of distinct protein names
func (c *Counter) TotalProteins() int {
	return len(c.order)
}

// TotalPeptides returns the number of records counted
func (c *Counter) TotalPeptides() int {
	return c.total
}

// Average returns peptides per protein, or 0 when nothing was counted
func (c *Counter) Average() float64 {
	if len(c.order) == 0 {
		return 0
	}
	return float64(c.total) / float64(len(c.order))
}

// WriteListing writes one "name , count" line per protein
func (c *Counter) WriteListing(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, name := range c.order {
		if _, err := fmt.Fprintf(bw, "%s , %d\n", name, c.counts[name]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSummary writes the three-sentence overview for inputName
func (c *Counter) WriteSummary(w io.Writer, inputName string) error {
	_, err := fmt.Fprintf(w,
		"There are %d digested proteins which cleave to make peptides in the required range\n"+
			"There are %d of these peptides in total\n"+
			"The average number of peptides (in given range) per (\"useful\") protein for %s is %.4f\n",
		c.TotalProteins(), c.TotalPeptides(), inputName, c.Average())
	return err
}
