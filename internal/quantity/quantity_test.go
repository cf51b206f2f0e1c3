package quantity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func q(amount string, unit string) Quantity {
	return New(decimal.RequireFromString(amount), unit)
}

func TestExactUnit_Satisfies(t *testing.T) {
	t.Parallel()
	cmp := ExactUnit{}

	cases := []struct {
		name string
		have Quantity
		need Quantity
		want bool
	}{
		{"equal amount same unit", q("2", "cup"), q("2", "cup"), true},
		{"greater amount same unit", q("3", "cup"), q("1", "cup"), true},
		{"lesser amount same unit", q("1", "unit"), q("2", "unit"), false},
		{"unit mismatch never matches", q("500", "g"), q("1", "kg"), false},
		{"units are case-sensitive", q("1", "Cup"), q("1", "cup"), false},
		{"fractional amounts compare exactly", q("0.3", "cup"), q("0.1", "cup"), true},
		{"no float drift", q("0.3", "cup"), q("0.30", "cup"), true},
	}
	for _, tc := range cases {
		if got := cmp.Satisfies(tc.have, tc.need); got != tc.want {
			t.Fatalf("%s: Satisfies(%v %s, %v %s) = %v, want %v",
				tc.name, tc.have.Amount, tc.have.Unit, tc.need.Amount, tc.need.Unit, got, tc.want)
		}
	}
}
