package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritsw/bankconv/internal/calc"
)

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"1+2", 3},
		{"100 + 50 - 25", 125},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10/4", 2.5},
		{"-5+10", 5},
		{"3*-2", -6},
		{"1000.25 + 0", 1000.25},
		{"((1))", 1},
		{"1000 + 0 - 0", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := calc.Eval(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	exprs := []string{
		"",
		"1+",
		"(1+2",
		"1/0",
		"abc",
		"1 2",
		"[A1]+1", // refs must be substituted before evaluation
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := calc.Eval(expr)
			assert.Error(t, err)
		})
	}
}
