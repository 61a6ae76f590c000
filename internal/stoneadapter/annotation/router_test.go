package annotation

import (
	"bytes"
	"testing"
)

func TestLineToIndices(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantStart int
		wantEnd   int
	}{
		{"directive", "P->V[3:10]", 3, 10},
		{"not a directive", "Trace 0: Decommitment: node 5: Hash(0xabcd)", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := LineToIndices(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("LineToIndices(%q) = (%d,%d), expected (%d,%d)", tt.line, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestLineToIndicesMalformed(t *testing.T) {
	if _, _, err := LineToIndices("P->V[3]"); err == nil {
		t.Errorf("expected error for malformed directive")
	}
}

func TestRouteSkipsTypedLinesAndCopiesByteRanges(t *testing.T) {
	original := []byte("0123456789")
	lines := []string{
		"P->V[0:3]",
		"Trace 0: Decommitment: node 5: Hash(0xabcd)",
		"P->V[3:6]",
		"Layer 1: Decommitment: Row 2, Column 3: Field Element(0xabcd)",
		"P->V[6:10]",
	}

	mainProof, _, err := Route(original, lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte("0123456789")
	if !bytes.Equal(mainProof, want) {
		t.Errorf("mainProof = %q, expected %q", mainProof, want)
	}
}

func TestRouteOutOfBoundsIsInvariantViolation(t *testing.T) {
	original := []byte("01")
	lines := []string{"P->V[0:5]"}
	if _, _, err := Route(original, lines); err == nil {
		t.Errorf("expected error for out-of-bounds byte range")
	}
}
