package simd

import (
	"strings"
	"testing"
)

func TestIndexByte(t *testing.T) {
	tests := []struct {
		s    string
		c    byte
		want int
	}{
		{"", 'a', -1},
		{"hello", 'h', 0},
		{"hello", 'o', 4},
		{"hello", 'z', -1},
		{"abcdefghij", 'i', 8}, // spans the 8-byte unrolled chunk boundary
		{strings.Repeat("x", 20) + "y", 'y', 20},
	}
	for _, tt := range tests {
		t.Run(tt.s+"/"+string(tt.c), func(t *testing.T) {
			if got := IndexByte(tt.s, tt.c); got != tt.want {
				t.Errorf("IndexByte(%q, %q) = %d, want %d", tt.s, tt.c, got, tt.want)
			}
		})
	}
}

func TestSummaryIsOneOfKnownValues(t *testing.T) {
	switch Detected.Summary() {
	case "avx2", "sse4.2", "scalar":
	default:
		t.Errorf("Summary() = %q, want one of avx2/sse4.2/scalar", Detected.Summary())
	}
}
