package service

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RoundCents rounds a currency amount to two decimals.
func RoundCents(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// FormatUSD renders value as whole US dollars, e.g. "$826,676".
func FormatUSD(value float64) string {
	dollars := decimal.NewFromFloat(value).Round(0).IntPart()
	if dollars < 0 {
		return "-$" + humanize.Comma(-dollars)
	}
	return "$" + humanize.Comma(dollars)
}
