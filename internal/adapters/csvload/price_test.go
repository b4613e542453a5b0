package csvload

import (
	"math"
	"testing"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"$85.00", 85},
		{"$1,234.00", 1234},
		{"$1,234,567.89", 1234567.89},
		{"99.5", 99.5},
		{" $60 ", 60},
		{"$0.00", 0},
	}

	for _, tc := range cases {
		got, err := ParsePrice(tc.raw)
		if err != nil {
			t.Errorf("ParsePrice(%q) returned error: %v", tc.raw, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ParsePrice(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParsePriceInvalid(t *testing.T) {
	for _, raw := range []string{"", "free", "$", "N/A"} {
		if _, err := ParsePrice(raw); err == nil {
			t.Errorf("ParsePrice(%q) should have failed", raw)
		}
	}
}
