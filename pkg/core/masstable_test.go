package core

import (
	"strings"
	"testing"
)

func TestParseMassModel(t *testing.T) {
	tests := []struct {
		in      string
		want    MassModel
		wantErr bool
	}{
		{"m", Monoisotopic, false},
		{"Monoisotopic", Monoisotopic, false},
		{"a", Average, false},
		{"average", Average, false},
		{" A ", Average, false},
		{"x", Average, true},
		{"", Average, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMassModel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMassModel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMassModel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMassTableLookup(t *testing.T) {
	mono := MonoisotopicTable()
	avg := AverageTable()

	if m, ok := mono.Lookup("A"); !ok || m != 71.0371 {
		t.Errorf("mono A = %v, %v", m, ok)
	}
	if m, ok := avg.Lookup("A"); !ok || m != 71.08 {
		t.Errorf("avg A = %v, %v", m, ok)
	}
	if m, ok := mono.Lookup("*"); !ok || m != 0 {
		t.Errorf("mono * = %v, %v", m, ok)
	}
	if m, ok := mono.Lookup("B"); ok || m != 0 {
		t.Errorf("mono B = %v, %v, want 0, false", m, ok)
	}

	// X only exists in the average table
	if _, ok := avg.Lookup("X"); !ok {
		t.Error("avg table should contain X")
	}
	if _, ok := mono.Lookup("X"); ok {
		t.Error("mono table should not contain X")
	}

	if mono.Water() != 18.0106 || avg.Water() != 18.0153 {
		t.Errorf("water = %v / %v", mono.Water(), avg.Water())
	}
	if mono.Phosphate() != 79.9663 || avg.Phosphate() != 79.98 {
		t.Errorf("phosphate = %v / %v", mono.Phosphate(), avg.Phosphate())
	}
	if mono.Proton() != 1 || avg.Proton() != 1 {
		t.Errorf("proton = %v / %v", mono.Proton(), avg.Proton())
	}
}

func TestNewMassTableOverrides(t *testing.T) {
	overrides := map[string]float64{"C": 160.0306, "U": 150.9536}
	table := NewMassTable(Monoisotopic, overrides)

	if m, _ := table.Lookup("C"); m != 160.0306 {
		t.Errorf("C = %v, want override 160.0306", m)
	}
	if _, ok := table.Lookup("U"); !ok {
		t.Error("U override missing")
	}

	// Later changes to the overrides map must not leak into the table
	overrides["C"] = 1
	if m, _ := table.Lookup("C"); m != 160.0306 {
		t.Errorf("table mutated through overrides map: C = %v", m)
	}

	// Built-in tables are untouched
	if m, _ := MonoisotopicTable().Lookup("C"); m != 103.0092 {
		t.Errorf("built-in C = %v, want 103.0092", m)
	}
}

func TestLoadMassOverridesCSV(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := "symbol,mass\nC, 160.0306\n\nU,150.9536\n"
		got, err := LoadMassOverridesCSV(strings.NewReader(in))
		if err != nil {
			t.Fatalf("LoadMassOverridesCSV() error = %v", err)
		}
		if len(got) != 2 || got["C"] != 160.0306 || got["U"] != 150.9536 {
			t.Errorf("LoadMassOverridesCSV() = %v", got)
		}
	})

	bad := []struct {
		name string
		in   string
	}{
		{"missing field", "symbol,mass\nC\n"},
		{"bad mass", "symbol,mass\nC,heavy\n"},
		{"negative mass", "symbol,mass\nC,-1\n"},
		{"empty symbol", "symbol,mass\n,12\n"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadMassOverridesCSV(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
