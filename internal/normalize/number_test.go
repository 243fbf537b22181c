package normalize_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kritsw/bankconv/internal/normalize"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1,234.50", "1234.5"},
		{"1234.50", "1234.5"},
		{"  100  ", "100"},
		{"-588.74", "-588.74"},
		{"", "0"},
		{"garbage", "0"},
		{"12,345,678.901", "12345678.901"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.ToDecimal(tt.input).String())
		})
	}
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1234.5, normalize.ToFloat("1,234.50"))
	assert.Equal(t, 0.0, normalize.ToFloat(""))
	assert.Equal(t, 0.0, normalize.ToFloat("n/a"))
}

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1000", "1000"},
		{"-950", "950"},
		{"950.5", "950.5"},
		{"950.505", "950.51"},
		{"0", "0"},
		{"1234.00", "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d := decimal.RequireFromString(tt.input)
			assert.Equal(t, tt.want, normalize.FormatBalance(d))
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "D", normalize.Direction(decimal.NewFromInt(-1)))
	assert.Equal(t, "C", normalize.Direction(decimal.NewFromInt(1)))
	assert.Equal(t, "C", normalize.Direction(decimal.Zero))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1234", "1,234"},
		{"1234567.89", "1,234,567.89"},
		{"1234.", "1,234."},
		{"-9876.5", "-9,876.5"},
		{"12.3456", "12.346"},
		{"", ""},
		{"abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.FormatCurrency(tt.input))
		})
	}
}
