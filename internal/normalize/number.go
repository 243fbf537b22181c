// Package normalize converts raw spreadsheet cell text into the numeric and
// date values the reconstruction engine works with.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ToDecimal parses a cell value as a locale-invariant decimal. Thousands
// separators (",") are stripped and whitespace trimmed. Empty or non-numeric
// input yields zero; callers must not rely on distinguishing "zero" from
// "unparseable" at this layer.
func ToDecimal(s string) decimal.Decimal {
	clean := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if clean == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// ToFloat is ToDecimal for callers that need a float64 operand, such as the
// calc expression evaluator.
func ToFloat(s string) float64 {
	f, _ := ToDecimal(s).Float64()
	return f
}

// FormatBalance renders a balance magnitude for the output document: absolute
// value, at most 2 decimal places, integers without a decimal point.
func FormatBalance(d decimal.Decimal) string {
	d = d.Abs().Round(2)
	if d.IsInteger() {
		return d.StringFixed(0)
	}

	return d.String()
}

// Direction returns "D" for negative amounts and "C" otherwise.
func Direction(d decimal.Decimal) string {
	if d.IsNegative() {
		return "D"
	}

	return "C"
}

// FormatCurrency formats a numeric string with thousands separators and up to
// 3 fractional digits for display in editable inputs. A trailing decimal
// point is preserved so a value mid-keystroke ("1234.") is not rejected.
// Non-numeric input is returned unchanged.
func FormatCurrency(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	trailingPoint := strings.HasSuffix(s, ".")

	clean := strings.ReplaceAll(s, ",", "")
	if trailingPoint {
		clean = strings.TrimSuffix(clean, ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return s
	}

	out := groupThousands(d.Round(3))
	if trailingPoint {
		out += "."
	}

	return out
}

// groupThousands inserts "," separators into the integer part.
func groupThousands(d decimal.Decimal) string {
	s := d.String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := sign + sb.String()
	if hasFrac {
		out += "." + fracPart
	}

	return out
}
