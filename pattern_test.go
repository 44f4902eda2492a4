package locres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCode(t *testing.T) {
	valid := []string{"FRA", "LIR", "JFK", "ABC", "ZZZ"}
	for _, s := range valid {
		if !IsValidCode(s) {
			t.Errorf("IsValidCode(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "FR", "FRAN", "fra", "F1A", "FR!", " FRA", "FRA ", "ＦＲＡ"}
	for _, s := range invalid {
		if IsValidCode(s) {
			t.Errorf("IsValidCode(%q) = true, want false", s)
		}
	}
}

func TestTryDirect(t *testing.T) {
	cases := []struct {
		in           string
		origin, dest string
		ok           bool
	}{
		{"FRA to LIR", "FRA", "LIR", true},
		{"fra to lir", "FRA", "LIR", true},
		{"FRA-LIR", "FRA", "LIR", true},
		{"FRA - LIR", "FRA", "LIR", true},
		{"FRA -> LIR", "FRA", "LIR", true},
		{"FRA → LIR", "FRA", "LIR", true},
		{"  jfk to sfo  ", "JFK", "SFO", true},
		{"Frankfurt to Liberia", "", "", false},
		{"FRAN to LIR", "", "", false},
		{"FR to LIR", "", "", false},
		{"FRA to", "", "", false},
		{"FRA", "", "", false},
		{"", "", "", false},
		{"FRAtoLIR", "", "", false}, // "to" needs surrounding whitespace
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			origin, dest, ok := TryDirect(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.origin, origin)
			assert.Equal(t, tc.dest, dest)
		})
	}
}
