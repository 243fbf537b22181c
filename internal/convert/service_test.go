package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritsw/bankconv/internal/template"
)

func testSpecs() map[template.Field]string {
	return map[template.Field]string{
		template.FieldAccountID:      "ACC1",
		template.FieldStatementID:    "ST1",
		template.FieldOpeningBalance: "1000",
		template.FieldCurrency:       "THB",
		template.FieldDateHeader:     "[A1]",
		template.FieldDebit:          "[B1]",
		template.FieldCredit:         "[C1]",
	}
}

func TestConvert_CSV(t *testing.T) {
	csv := strings.Join([]string{
		"Date,Debit,Credit",
		"01/01/2024,100,",
		"01/01/2024,,50",
	}, "\n")

	svc := NewService()

	res, err := svc.Convert("stmt.csv", strings.NewReader(csv), testSpecs())
	require.NoError(t, err)

	assert.Equal(t, "stmt_converted.txt", res.Filename)

	want := strings.Join([]string{
		"1;ACC1;20240101;C;1000;20240101;C;950;THB;ST1;",
		"2;NTRF;;20240101;20240101;D;100;THB;;;;;",
		"2;NTRF;;20240101;20240101;C;50;THB;;;;;",
	}, "\n") + "\n"
	assert.Equal(t, want, res.Content)

	assert.Equal(t, 2, res.Summary.TotalRows)
	assert.Equal(t, 2, res.Summary.ValidTransactions)
	assert.Empty(t, res.Summary.InvalidTransactions)
}

func TestConvert_MissingMandatory(t *testing.T) {
	specs := testSpecs()
	delete(specs, template.FieldCredit)

	svc := NewService()

	_, err := svc.Convert("stmt.csv", strings.NewReader("Date,Debit,Credit\n01/01/2024,100,\n"), specs)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []template.Field{template.FieldCredit}, verr.Missing)
}

func TestConvert_NoHeaderMatch(t *testing.T) {
	specs := testSpecs()
	specs[template.FieldDateHeader] = "January"

	svc := NewService()

	_, err := svc.Convert("stmt.csv", strings.NewReader("Date,Debit,Credit\n01/01/2024,100,\n"), specs)
	require.Error(t, err)
}

func TestSpecsFor(t *testing.T) {
	svc := NewService()

	specs, ok := svc.SpecsFor("VCB", "")
	require.True(t, ok)
	assert.Equal(t, "[D10]", specs[template.FieldOpeningBalance])

	specs, ok = svc.SpecsFor("", "SCB_statement_jan.xlsx")
	require.True(t, ok)
	assert.NotEmpty(t, specs)

	_, ok = svc.SpecsFor("XXX", "")
	assert.False(t, ok)

	_, ok = svc.SpecsFor("", "unknown.csv")
	assert.False(t, ok)
}
