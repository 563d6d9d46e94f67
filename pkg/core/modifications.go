// Package core provides loading of custom residue masses
package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadMassOverridesCSV reads residue mass overrides (format: symbol,mass).
// The first line is a header and is skipped.
func LoadMassOverridesCSV(r io.Reader) (map[string]float64, error) {
	scanner := bufio.NewScanner(r)

	// Skip header line
	if scanner.Scan() {
		// header line
	}

	result := make(map[string]float64)
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 fields (symbol,mass), got %d", lineNum, len(parts))
		}

		symbol := strings.TrimSpace(parts[0])
		massStr := strings.TrimSpace(parts[1])
		if symbol == "" {
			return nil, fmt.Errorf("line %d: empty symbol", lineNum)
		}

		mass, err := strconv.ParseFloat(massStr, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid mass value '%s': %w", lineNum, massStr, err)
		}
		if mass < 0 {
			return nil, fmt.Errorf("line %d: mass for '%s' must not be negative", lineNum, symbol)
		}

		result[symbol] = mass
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	return result, nil
}
