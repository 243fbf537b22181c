package statement_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritsw/bankconv/internal/grid"
	"github.com/kritsw/bankconv/internal/mapping"
	"github.com/kritsw/bankconv/internal/statement"
	"github.com/kritsw/bankconv/internal/template"
)

// baseSpecs maps a minimal three-column statement: header row 1 with Date,
// Debit, Credit.
func baseSpecs() map[template.Field]string {
	return map[template.Field]string{
		template.FieldAccountID:      "ACC1",
		template.FieldDateHeader:     "[A1]",
		template.FieldOpeningBalance: "1000",
		template.FieldCurrency:       "THB",
		template.FieldStatementID:    "ST1",
		template.FieldDebit:          "[B1]",
		template.FieldCredit:         "[C1]",
	}
}

func resolve(t *testing.T, specs map[template.Field]string, g grid.Grid) mapping.Bindings {
	t.Helper()

	bs := mapping.Resolve(specs, g)
	require.Empty(t, bs.Validate())

	return bs
}

func TestRekey(t *testing.T) {
	g := grid.Grid{
		{"Date", "Debit", "Credit"},
		{"01/01/2024", "100"},
		{"01/01/2024", "", "50"},
	}

	bs := resolve(t, baseSpecs(), g)

	rk, err := statement.Rekey(bs, g)
	require.NoError(t, err)

	assert.Equal(t, 1, rk.HeaderRow)
	require.Len(t, rk.Rows, 2)
	assert.Equal(t, []int{2, 3}, rk.SheetRows)

	assert.Equal(t, "100", rk.Rows[0][template.FieldDebit])

	// Credit cell absent in the ragged first data row: field present but empty
	// comes only from an actual cell, absence from a missing column mapping.
	_, hasCredit := rk.Rows[0][template.FieldCredit]
	assert.False(t, hasCredit)

	assert.Equal(t, "50", rk.Rows[1][template.FieldCredit])

	// Description was never mapped: absent from every row.
	_, hasDesc := rk.Rows[0][template.FieldDescription]
	assert.False(t, hasDesc)
}

func TestRekey_MissingHeaderDate(t *testing.T) {
	g := grid.Grid{{"Date", "Debit", "Credit"}}

	specs := baseSpecs()
	specs[template.FieldDateHeader] = ""

	bs := mapping.Resolve(specs, g)

	_, err := statement.Rekey(bs, g)
	assert.ErrorIs(t, err, statement.ErrNoHeaderDate)
}

func TestRekey_ConcatPerRow(t *testing.T) {
	g := grid.Grid{
		{"Date", "Debit", "Credit", "Type", "Detail"},
		{"01/01/2024", "100", "", "TRANSFER", "Salary"},
	}

	specs := baseSpecs()
	specs[template.FieldDescription] = "concat([D1],[E1])"

	bs := mapping.Resolve(specs, g)

	rk, err := statement.Rekey(bs, g)
	require.NoError(t, err)

	assert.Equal(t, "TRANSFER Salary", rk.Rows[0][template.FieldDescription])
}

func TestReconstruct_SingleGroup(t *testing.T) {
	g := grid.Grid{
		{"Date", "Debit", "Credit"},
		{"01/01/2024", "100", ""},
		{"01/01/2024", "", "50"},
	}

	bs := resolve(t, baseSpecs(), g)

	rk, err := statement.Rekey(bs, g)
	require.NoError(t, err)

	res := statement.Reconstruct(bs, rk)

	require.Len(t, res.Groups, 1)
	group := res.Groups[0]
	assert.True(t, group.OpeningBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, group.ClosingBalance.Equal(decimal.NewFromInt(950)))

	require.Len(t, res.Lines, 3)
	assert.Equal(t, "1;ACC1;20240101;C;1000;20240101;C;950;THB;ST1;", res.Lines[0])
	assert.Equal(t, "2;NTRF;;20240101;20240101;D;100;THB;;;;;", res.Lines[1])
	assert.Equal(t, "2;NTRF;;20240101;20240101;C;50;THB;;;;;", res.Lines[2])

	assert.Equal(t, 2, res.Summary.TotalRows)
	assert.Equal(t, 2, res.Summary.ValidTransactions)
	assert.Empty(t, res.Summary.InvalidTransactions)
}

func TestReconstruct_BalanceCarryForward(t *testing.T) {
	g := grid.Grid{
		{"Date", "Debit", "Credit"},
		{"02/01/2024", "200", ""},
		{"01/01/2024", "", "500"},
		{"03/01/2024", "50", ""},
		{"02/01/2024", "", "100"},
	}

	bs := resolve(t, baseSpecs(), g)

	rk, err := statement.Rekey(bs, g)
	require.NoError(t, err)

	res := statement.Reconstruct(bs, rk)
	require.Len(t, res.Groups, 3)

	// Groups come out in ascending date order regardless of sheet order.
	assert.Equal(t, "2024-01-01", res.Groups[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-02", res.Groups[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-03", res.Groups[2].Date.Format("2006-01-02"))

	for i, g := range res.Groups {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, tx := range g.Transactions {
			totalDebit = totalDebit.Add(tx.Debit)
			totalCredit = totalCredit.Add(tx.Credit)
		}

		assert.True(t, g.ClosingBalance.Equal(g.OpeningBalance.Add(totalCredit).Sub(totalDebit)),
			"group %d violates the balance equation", i)

		if i > 0 {
			assert.True(t, g.OpeningBalance.Equal(res.Groups[i-1].ClosingBalance),
				"group %d does not carry forward", i)
		}
	}

	// 1000 +500, then -200+100, then -50.
	assert.Equal(t, "1500", res.Groups[0].ClosingBalance.String())
	assert.Equal(t, "1400", res.Groups[1].ClosingBalance.String())
	assert.Equal(t, "1350", res.Groups[2].ClosingBalance.String())
}

func TestReconstruct_NegativeBalanceDirection(t *testing.T) {
	g := grid.Grid{
		{"Date", "Debit", "Credit"},
		{"01/01/2024", "1500", ""},
	}

	specs := baseSpecs()
	specs[template.FieldOpeningBalance] = "1000"

	bs := resolve(t, specs, g)

	rk, err := statement.Rekey(bs, g)
	require.NoError(t, err)

	res := statement.Reconstruct(bs, rk)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "1;ACC1;20240101;C;1000;20240101;D;500;THB;ST1;", res.Lines[0])
}

func TestReconstruct_InvalidDatesExcluded(t *testing.T) {
	g := grid.Grid{
		{"Date", "Debit", "Credit"},
		{"01/01/2024", "100", ""},
		{"not a date", "999", ""},
		{"", "1", ""},
		{"02/01/2024", "", "50"},
	}

	bs := resolve(t, baseSpecs(), g)

	rk, err := statement.Rekey(bs, g)
	require.NoError(t, err)

	res := statement.Reconstruct(bs, rk)

	assert.Equal(t, 4, res.Summary.TotalRows)
	assert.Equal(t, 2, res.Summary.ValidTransactions)
	assert.Equal(t, []int{3, 4}, res.Summary.InvalidTransactions)

	// The dropped rows influence neither grouping nor balances.
	require.Len(t, res.Groups, 2)
	assert.Equal(t, "950", res.Groups[1].ClosingBalance.String())
}

func TestReconstruct_EmptyAmounts(t *testing.T) {
	g := grid.Grid{
		{"Date", "Debit", "Credit"},
		{"01/01/2024", "", ""},
	}

	bs := resolve(t, baseSpecs(), g)

	rk, err := statement.Rekey(bs, g)
	require.NoError(t, err)

	res := statement.Reconstruct(bs, rk)
	require.Len(t, res.Lines, 2)

	// No debit and no credit: empty direction and amount, not a crash.
	assert.Equal(t, "2;NTRF;;20240101;20240101;;;THB;;;;;", res.Lines[1])
}

func TestReconstruct_DescriptionDelimiterEscaped(t *testing.T) {
	g := grid.Grid{
		{"Date", "Debit", "Credit", "Description"},
		{"01/01/2024", "100", "", "TRANSFER; URGENT; A/C"},
	}

	specs := baseSpecs()
	specs[template.FieldDescription] = "[D1]"

	bs := resolve(t, specs, g)

	rk, err := statement.Rekey(bs, g)
	require.NoError(t, err)

	res := statement.Reconstruct(bs, rk)
	assert.Equal(t, "2;NTRF;;20240101;20240101;D;100;THB;TRANSFER. URGENT. A/C;;;;", res.Lines[1])
}

func TestReconstruct_Idempotent(t *testing.T) {
	g := grid.Grid{
		{"Date", "Debit", "Credit"},
		{"01/01/2024", "100", ""},
		{"02/01/2024", "", "50"},
	}

	bs := resolve(t, baseSpecs(), g)

	run := func() string {
		rk, err := statement.Rekey(bs, g)
		require.NoError(t, err)

		return statement.Reconstruct(bs, rk).Document()
	}

	assert.Equal(t, run(), run())
}

func TestOutputFilename(t *testing.T) {
	assert.Equal(t, "KTB_jan_converted.txt", statement.OutputFilename("KTB_jan.xlsx"))
	assert.Equal(t, "scb.2024_converted.txt", statement.OutputFilename("scb.2024.csv"))
	assert.Equal(t, "statement_converted.txt", statement.OutputFilename("statement"))
}
