package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    PeptideRecord
		wantErr bool
	}{
		{
			name: "valid header",
			line: ">P1 1 cleave07 trypsin",
			want: PeptideRecord{ProteinName: "P1", OccurrenceNumber: "1", MissedCleavages: "7", Enzyme: "trypsin"},
		},
		{
			name: "extra whitespace and tokens",
			line: ">sp|Q9|X  12\tmissed=2extra  lys-c  trailing",
			want: PeptideRecord{ProteinName: "sp|Q9|X", OccurrenceNumber: "12", MissedCleavages: "2", Enzyme: "lys-c"},
		},
		{name: "missing enzyme", line: ">P1 1 cleave07", wantErr: true},
		{name: "short cleavage token", line: ">P1 1 cleave0 trypsin", wantErr: true},
		{name: "no marker", line: "P1 1 cleave07 trypsin", wantErr: true},
		{name: "empty name", line: "> 1 cleave07 trypsin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeader(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHeader() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMalformedRecordError(t *testing.T) {
	var err error = fmt.Errorf("error reading input file: %w", &MalformedRecordError{Line: 3, Message: "dangling header"})

	var mre *MalformedRecordError
	if !errors.As(err, &mre) {
		t.Fatal("errors.As failed to find MalformedRecordError")
	}
	if mre.Line != 3 {
		t.Errorf("Line = %d, want 3", mre.Line)
	}

	want := "malformed record at line 3: dangling header"
	if mre.Error() != want {
		t.Errorf("Error() = %q, want %q", mre.Error(), want)
	}
}

func TestRecordName(t *testing.T) {
	rec := PeptideRecord{ProteinName: "P1", OccurrenceNumber: "4"}
	if got := rec.Name(); got != "P1/4" {
		t.Errorf("Name() = %s, want P1/4", got)
	}
}
