// Package budget implements the aggregation model: the pure
// computations that turn the entries of a month into totals, rankings
// and budget warnings.
package budget

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw textual amount into a decimal.
//
// Leading and trailing whitespace is stripped and a comma is accepted
// as decimal separator. The empty string and anything unparseable
// convert to zero, ParseAmount never fails. This is the contract every
// raw amount passes through before it enters the aggregation.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return amount
}

// FormatAmount renders a decimal with a comma as decimal separator,
// the convention used for CSV exports.
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", ",", 1)
}
