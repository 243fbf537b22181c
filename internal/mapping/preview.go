package mapping

import (
	"strings"

	"github.com/kritsw/bankconv/internal/normalize"
	"github.com/kritsw/bankconv/internal/template"
)

// PreviewHeader renders the type-1 output line with the current bindings,
// using placeholders for the parts only conversion can fill in. Clients show
// it live while the operator edits the mapping.
func PreviewHeader(bs Bindings) string {
	opening := bs.Value(template.FieldOpeningBalance)

	openingDir := ""
	if opening != "" {
		openingDir = normalize.Direction(normalize.ToDecimal(opening))
	}

	dateRef := bs[template.FieldDateHeader].Ref()

	return strings.Join([]string{
		"1",
		bs.Value(template.FieldAccountID),
		dateRef,
		openingDir,
		opening,
		dateRef,
		"[Closing Direction]",
		"[Closing Amount]",
		bs.Value(template.FieldCurrency),
		bs.Value(template.FieldStatementID),
		"",
	}, ";")
}

// PreviewTransaction renders the type-2 output line shape: each pointer-bound
// field as its cell reference, unbound fields empty.
func PreviewTransaction(bs Bindings) string {
	cell := func(f template.Field) string {
		b := bs[f]
		if b.Kind != PointerBinding {
			return ""
		}

		return b.Ref()
	}

	dateRef := cell(template.FieldDateHeader)

	return strings.Join([]string{
		"2",
		"NTRF",
		cell(template.FieldBankCode),
		dateRef,
		dateRef,
		cell(template.FieldDebit),
		cell(template.FieldCredit),
		cell(template.FieldDescription),
		cell(template.FieldReference),
		cell(template.FieldOriginalAmount),
		cell(template.FieldOriginalCurrency),
		"",
	}, ";")
}
