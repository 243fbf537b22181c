// Package template holds the canonical output fields and the static per-bank
// mapping templates that bind them to spreadsheet cells.
package template

// Field is one of the twelve canonical attributes the output schema requires,
// independent of any bank's native column layout. The string values are the
// external contract: mapping payloads and templates are keyed by them.
type Field string

const (
	FieldAccountID      Field = "Account ID *"
	FieldDateHeader     Field = "Date [Header] *"
	FieldOpeningBalance Field = "Opening balance amount *"
	FieldCurrency       Field = "Account Currency *"
	FieldStatementID    Field = "Statement ID *"

	FieldBankCode         Field = "Internal Bank Transaction Code"
	FieldDebit            Field = "Debit Amount *"
	FieldCredit           Field = "Credit Amount *"
	FieldDescription      Field = "Description"
	FieldReference        Field = "Reference"
	FieldOriginalAmount   Field = "Transaction Original Amount"
	FieldOriginalCurrency Field = "Transaction Original Amount Currency"
)

// HeaderFields are resolved once per statement: fixed values or fixed cells.
var HeaderFields = []Field{
	FieldAccountID,
	FieldDateHeader,
	FieldOpeningBalance,
	FieldCurrency,
	FieldStatementID,
}

// TransactionFields vary per data row; their bindings are column pointers.
var TransactionFields = []Field{
	FieldBankCode,
	FieldDebit,
	FieldCredit,
	FieldDescription,
	FieldReference,
	FieldOriginalAmount,
	FieldOriginalCurrency,
}

// AllFields lists every canonical field, header fields first.
func AllFields() []Field {
	out := make([]Field, 0, len(HeaderFields)+len(TransactionFields))
	out = append(out, HeaderFields...)
	out = append(out, TransactionFields...)

	return out
}

// Mandatory reports whether the field must be bound before conversion. The
// five header fields plus the debit and credit amounts are mandatory.
func (f Field) Mandatory() bool {
	switch f {
	case FieldAccountID, FieldDateHeader, FieldOpeningBalance,
		FieldCurrency, FieldStatementID, FieldDebit, FieldCredit:
		return true
	}

	return false
}

// IsHeader reports whether the field belongs to the per-statement header
// group rather than the per-transaction group.
func (f Field) IsHeader() bool {
	for _, h := range HeaderFields {
		if f == h {
			return true
		}
	}

	return false
}

// IsIdentifier reports whether the field holds an identifier that must be
// stripped of formatting characters (hyphens, commas, whitespace) before use.
func (f Field) IsIdentifier() bool {
	return f == FieldAccountID || f == FieldStatementID
}
