package template

import "strings"

// Bank is a per-bank statement layout: canonical field -> reference spec.
// Specs are the raw expression strings the mapping resolver understands
// (literals, "[A1]" references, "calc(...)", "concat(...)"); empty means the
// operator must bind the field by hand.
type Bank struct {
	Code   string
	Name   string
	Fields map[Field]string
}

// filenamePrefixLen is how many leading filename characters are matched
// against template codes during auto-detection.
const filenamePrefixLen = 3

// FindByCode returns the template with the given code, case-insensitively.
func FindByCode(code string) (Bank, bool) {
	for _, b := range catalog {
		if strings.EqualFold(b.Code, code) {
			return b, true
		}
	}

	return Bank{}, false
}

// FindByFilename matches the first 3 characters of a statement filename
// against template codes. First-registered wins when prefixes collide.
func FindByFilename(filename string) (Bank, bool) {
	if len(filename) < filenamePrefixLen {
		return Bank{}, false
	}

	return FindByCode(filename[:filenamePrefixLen])
}

// All returns every registered template in registration order.
func All() []Bank {
	out := make([]Bank, len(catalog))
	copy(out, catalog)

	return out
}

// catalog is the static template registry. Cell references are display
// coordinates (1-based rows). For transaction fields the referenced row is
// the header row; the column is what carries over to every data row.
var catalog = []Bank{
	{
		Code: "BAY",
		Name: "Bank of Ayudhya",
		Fields: map[Field]string{
			FieldDateHeader: "[A1]",
			FieldDebit:      "[E1]",
			FieldCredit:     "[F1]",
		},
	},
	{
		Code: "BBL",
		Name: "Bangkok Bank",
		Fields: map[Field]string{
			FieldAccountID:   "[G3]",
			FieldDateHeader:  "[A5]",
			FieldCurrency:    "THB",
			FieldStatementID: "[G3]",
			FieldDebit:       "[L5]",
			FieldCredit:      "[N5]",
			FieldDescription: "[E5]",
		},
	},
	{
		Code: "CTI",
		Name: "Citibank",
		Fields: map[Field]string{
			FieldAccountID:   "[A2]",
			FieldDateHeader:  "[D1]",
			FieldCurrency:    "[E2]",
			FieldStatementID: "[A2]",
			FieldDebit:       "[F1]",
			FieldCredit:      "[F1]",
			FieldDescription: "[L1]",
			FieldReference:   "[I1]",
		},
	},
	{
		Code: "KBANK",
		Name: "Kasikornbank",
		Fields: map[Field]string{
			FieldDateHeader:  "[A1]",
			FieldCurrency:    "[I2]",
			FieldDebit:       "[E1]",
			FieldCredit:      "[F1]",
			FieldDescription: "[C1]",
		},
	},
	{
		Code: "KTB",
		Name: "Krung Thai Bank",
		Fields: map[Field]string{
			FieldAccountID:   "[B1]",
			FieldDateHeader:  "[A6]",
			FieldCurrency:    "[D1]",
			FieldStatementID: "[B1]",
			FieldDebit:       "[F6]",
			FieldCredit:      "[F6]",
			FieldDescription: "[D6]",
		},
	},
	{
		Code: "SCB",
		Name: "Siam Commercial Bank",
		Fields: map[Field]string{
			FieldAccountID:   "[A2]",
			FieldDateHeader:  "[B1]",
			FieldCurrency:    "THB",
			FieldStatementID: "[A2]",
			FieldDebit:       "[G1]",
			FieldCredit:      "[H1]",
			FieldDescription: "[K1]",
		},
	},
	{
		Code: "SIC",
		Name: "Siam Commercial Bank (SCB)",
		Fields: map[Field]string{
			FieldAccountID:   "[A2]",
			FieldDateHeader:  "[B1]",
			FieldStatementID: "[A2]",
			FieldDebit:       "[G1]",
			FieldCredit:      "[H1]",
			FieldDescription: "[K1]",
		},
	},
	{
		Code: "VCB",
		Name: "Vietcombank",
		Fields: map[Field]string{
			FieldAccountID:      "[B4]",
			FieldDateHeader:     "[A11]",
			FieldOpeningBalance: "[D10]",
			FieldCurrency:       "[B7]",
			FieldStatementID:    "[B4]",
			FieldDebit:          "[C11]",
			FieldCredit:         "[D11]",
			FieldDescription:    "[E11]",
			FieldReference:      "[B11]",
		},
	},
	{
		Code: "VTB",
		Name: "VietinBank",
		Fields: map[Field]string{
			FieldAccountID:      "[C12]",
			FieldDateHeader:     "[B25]",
			FieldOpeningBalance: "[C17]",
			FieldCurrency:       "[C14]",
			FieldStatementID:    "[C12]",
			FieldDebit:          "[D25]",
			FieldCredit:         "[E25]",
			FieldDescription:    "[C25]",
		},
	},
}
