// Package quantity defines the unit-comparable quantity primitive shared by
// the feasibility classifier and the consumption transaction.
package quantity

import "github.com/shopspring/decimal"

// Quantity is a (numeric amount, unit) pair. Amounts are exact decimals so
// repeated deductions conserve quantity; units are opaque strings.
type Quantity struct {
	Amount decimal.Decimal
	Unit   string
}

// New builds a Quantity from an amount and unit.
func New(amount decimal.Decimal, unit string) Quantity {
	return Quantity{Amount: amount, Unit: unit}
}

// Comparator decides whether an available quantity covers a required one.
// The matching rule is pluggable so unit conversion can be introduced later
// without touching classifier or consumption control flow.
type Comparator interface {
	// Satisfies reports whether have fully covers need.
	Satisfies(have, need Quantity) bool
}

// ExactUnit is the default comparator: units must match exactly (no
// conversion, no normalization) and the available amount must be at least
// the required amount. A mismatched unit is always a non-match.
type ExactUnit struct{}

// Satisfies implements Comparator.
func (ExactUnit) Satisfies(have, need Quantity) bool {
	return have.Unit == need.Unit && have.Amount.GreaterThanOrEqual(need.Amount)
}
