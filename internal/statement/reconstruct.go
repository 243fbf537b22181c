package statement

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kritsw/bankconv/internal/mapping"
	"github.com/kritsw/bankconv/internal/normalize"
	"github.com/kritsw/bankconv/internal/template"
)

// Transaction is one normalized data row inside a date group.
type Transaction struct {
	Row    Row
	Date   time.Time
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// DateGroup is the set of transactions sharing one calendar date, the unit
// over which opening and closing balances are computed.
type DateGroup struct {
	Date           time.Time
	Transactions   []Transaction
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
}

// Summary reports row counts back to the caller for display. It is not
// persisted as part of the document.
type Summary struct {
	TotalRows           int   `json:"totalRows"`
	ValidTransactions   int   `json:"validTransactions"`
	InvalidTransactions []int `json:"invalidTransactions"`
}

// Result is a reconstructed statement: the grouped ledger, the emitted
// document lines, and the row summary.
type Result struct {
	Groups  []DateGroup
	Lines   []string
	Summary Summary
}

// Document renders the output file content.
func (r *Result) Document() string {
	if len(r.Lines) == 0 {
		return ""
	}

	return strings.Join(r.Lines, "\n") + "\n"
}

// Reconstruct groups the re-keyed rows by transaction date, carries the
// running balance across groups, and emits the output lines. Rows whose date
// does not parse are dropped from grouping and reported in the summary by
// their 1-based sheet row.
func Reconstruct(bs mapping.Bindings, rk *Rekeyed) *Result {
	res := &Result{
		Summary: Summary{
			TotalRows:           len(rk.Rows),
			InvalidTransactions: []int{},
		},
	}

	groups := make(map[string][]Transaction)

	for i, row := range rk.Rows {
		date, ok := normalize.ParseDate(row[template.FieldDateHeader])
		if !ok {
			res.Summary.InvalidTransactions = append(res.Summary.InvalidTransactions, rk.SheetRows[i])
			continue
		}

		res.Summary.ValidTransactions++

		key := date.Format("2006-01-02")
		groups[key] = append(groups[key], Transaction{
			Row:    row,
			Date:   date,
			Debit:  normalize.ToDecimal(row[template.FieldDebit]),
			Credit: normalize.ToDecimal(row[template.FieldCredit]),
		})
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	balance := normalize.ToDecimal(bs.Value(template.FieldOpeningBalance))

	for _, key := range keys {
		txs := groups[key]

		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, tx := range txs {
			totalDebit = totalDebit.Add(tx.Debit)
			totalCredit = totalCredit.Add(tx.Credit)
		}

		group := DateGroup{
			Date:           txs[0].Date,
			Transactions:   txs,
			OpeningBalance: balance,
			ClosingBalance: balance.Add(totalCredit).Sub(totalDebit),
		}

		res.Groups = append(res.Groups, group)
		res.Lines = append(res.Lines, balanceLine(bs, group))

		for _, tx := range txs {
			res.Lines = append(res.Lines, transactionLine(bs, tx))
		}

		// Carry-forward: this group's closing balance opens the next.
		balance = group.ClosingBalance
	}

	return res
}

const outputDate = "20060102"

// balanceLine emits the type-1 daily balance record.
func balanceLine(bs mapping.Bindings, g DateGroup) string {
	date := g.Date.Format(outputDate)

	return strings.Join([]string{
		"1",
		bs.Value(template.FieldAccountID),
		date,
		normalize.Direction(g.OpeningBalance),
		normalize.FormatBalance(g.OpeningBalance),
		date,
		normalize.Direction(g.ClosingBalance),
		normalize.FormatBalance(g.ClosingBalance),
		bs.Value(template.FieldCurrency),
		bs.Value(template.FieldStatementID),
		"",
	}, ";")
}

// transactionLine emits the type-2 transaction record. Direction is "D" when
// a non-zero debit is present, else "C" when a non-zero credit is present,
// else both direction and amount stay empty.
func transactionLine(bs mapping.Bindings, tx Transaction) string {
	direction := ""
	amount := ""

	debitRaw, hasDebit := tx.Row[template.FieldDebit]
	creditRaw, hasCredit := tx.Row[template.FieldCredit]

	switch {
	case hasDebit && strings.TrimSpace(debitRaw) != "" && !tx.Debit.IsZero():
		direction = "D"
		amount = normalize.FormatBalance(tx.Debit)
	case hasCredit && strings.TrimSpace(creditRaw) != "" && !tx.Credit.IsZero():
		direction = "C"
		amount = normalize.FormatBalance(tx.Credit)
	}

	date := tx.Date.Format(outputDate)

	return strings.Join([]string{
		"2",
		"NTRF",
		tx.Row[template.FieldBankCode],
		date,
		date,
		direction,
		amount,
		bs.Value(template.FieldCurrency),
		sanitizeDescription(tx.Row[template.FieldDescription]),
		tx.Row[template.FieldReference],
		tx.Row[template.FieldOriginalAmount],
		tx.Row[template.FieldOriginalCurrency],
		"",
	}, ";")
}

// sanitizeDescription replaces literal delimiters so free text cannot break
// the positional schema.
func sanitizeDescription(s string) string {
	return strings.ReplaceAll(s, ";", ".")
}
