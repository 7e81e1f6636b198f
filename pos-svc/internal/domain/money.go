package domain

import "github.com/shopspring/decimal"

// FormatMoney renders an amount with two decimals. Computation elsewhere keeps
// full float precision; rounding happens only here.
func FormatMoney(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}
