package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatRate rounds rate text to precision places. Text that does not parse
// as a number is returned unchanged.
// Example: "0.920000000000000012" with precision 4 returns "0.9200"
func FormatRate(rate string, precision int) string {
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return rate
	}
	return FormatWithPrecision(d, precision)
}
