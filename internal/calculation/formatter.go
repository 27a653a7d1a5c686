package calculation

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders grouped integers ("1,234") in the en-US style the results page uses.
var printer = message.NewPrinter(language.English)

// FormatQuantity renders n with exactly two decimals and thousand separators.
// Example: FormatQuantity(1234.567) returns "1,234.57".
func FormatQuantity(n float64) string {
	return formatGrouped(n, 2)
}

// FormatCurrencyAmount renders n as whole euros.
// Example: FormatCurrencyAmount(76) returns "€76".
func FormatCurrencyAmount(n float64) string {
	s := formatGrouped(n, 0)
	if strings.HasPrefix(s, "-") {
		return "-" + CurrencySymbol + s[1:]
	}
	return CurrencySymbol + s
}

// formatGrouped rounds n to precision decimals and groups the integer part.
func formatGrouped(n float64, precision int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', precision, 64)
	}

	// round half away from zero before rendering; strconv alone rounds ties to even
	scale := math.Pow(10, float64(precision))
	rounded := math.Round(math.Abs(n)*scale) / scale
	abs := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, frac, hasFrac := strings.Cut(abs, ".")

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// beyond int64; fall back to the ungrouped rendering
		return strconv.FormatFloat(n, 'f', precision, 64)
	}

	out := printer.Sprintf("%d", whole)
	if hasFrac {
		out += "." + frac
	}
	if n < 0 && !isZeroDigits(abs) {
		out = "-" + out
	}
	return out
}

// isZeroDigits reports whether a rendered number is all zeros, so "-0.00" never appears.
func isZeroDigits(s string) bool {
	return strings.Trim(s, "0.") == ""
}
