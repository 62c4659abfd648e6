package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "integer", text: "1200", want: "1200"},
		{name: "fraction", text: "12.50", want: "12.5"},
		{name: "negative", text: "-99.99", want: "-99.99"},
		{name: "explicit plus", text: "+7", want: "7"},
		{name: "leading dot", text: ".5", want: "0.5"},
		{name: "trailing dot", text: "5.", want: "5"},
		{name: "exponent", text: "1e3", want: "1000"},
		{name: "surrounding whitespace", text: "  42 ", want: "42"},
		{name: "numeric prefix", text: "12abc", want: "12"},
		{name: "dangling exponent", text: "3e", want: "3"},
		{name: "empty", text: "", want: "NaN"},
		{name: "letters", text: "abc", want: "NaN"},
		{name: "lone sign", text: "-", want: "NaN"},
		{name: "lone dot", text: ".", want: "NaN"},
		{name: "overflow", text: "1e400", want: "Infinity"},
		{name: "negative overflow", text: "-1e400", want: "-Infinity"},
		{name: "huge exponent", text: "1e20000000", want: "Infinity"},
		{name: "underflow", text: "1e-400", want: "0"},
		{name: "huge negative exponent", text: "5e-20000000", want: "0"},
		{name: "zero with huge exponent", text: "0e99999999", want: "0"},
		{name: "large exponent", text: "1e20", want: "100000000000000000000"},
		{name: "infinity", text: "Infinity", want: "Infinity"},
		{name: "negative infinity prefix", text: "-Infinity and beyond", want: "-Infinity"},
		{name: "lowercase infinity", text: "infinity", want: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).String())
		})
	}
}

func TestArithmetic(t *testing.T) {
	balance := Zero().Add(FromInt(10000)).Sub(Zero())
	assert.Equal(t, "10000", balance.String())

	balance = balance.Add(Zero()).Sub(FromInt(5000))
	assert.Equal(t, "5000", balance.String())

	balance = balance.Add(New(decimal.RequireFromString("0.1"))).Add(New(decimal.RequireFromString("0.2")))
	assert.Equal(t, "5000.3", balance.String())
}

func TestNaNPropagates(t *testing.T) {
	assert.True(t, FromInt(5).Add(NaN()).IsNaN())
	assert.True(t, NaN().Sub(FromInt(5)).IsNaN())
	assert.True(t, NaN().Add(FromInt(1)).Add(FromInt(2)).IsNaN())
	assert.True(t, NaN().Decimal().IsZero())
}

func TestInfinity(t *testing.T) {
	assert.True(t, Parse("1e400").IsInf())
	assert.False(t, Parse("1e400").IsNaN())
	assert.True(t, Inf(1).Decimal().IsZero())

	assert.Equal(t, "-Infinity", FromInt(10000).Sub(Parse("1e20000000")).String())
	assert.Equal(t, "Infinity", Inf(1).Add(FromInt(5)).String())
	assert.Equal(t, "Infinity", FromInt(5).Sub(Inf(-1)).String())
	assert.Equal(t, "Infinity", Inf(1).Add(Inf(1)).String())
	assert.True(t, Inf(1).Add(Inf(-1)).IsNaN())
	assert.True(t, Inf(1).Sub(Inf(1)).IsNaN())
	assert.True(t, Inf(-1).Add(NaN()).IsNaN())
}

func TestAddOverflowsToInfinity(t *testing.T) {
	big := Parse("1.7e308")
	require.False(t, big.IsInf())

	assert.Equal(t, "Infinity", big.Add(big).String())
	assert.Equal(t, "-Infinity", Zero().Sub(big).Sub(big).String())
}

func TestEqual(t *testing.T) {
	assert.True(t, FromInt(12).Equal(Parse("12.00")))
	assert.False(t, FromInt(12).Equal(FromInt(13)))
	assert.True(t, NaN().Equal(Parse("nope")))
	assert.False(t, NaN().Equal(Zero()))
	assert.True(t, Amount{}.Equal(Zero()))
	assert.True(t, Inf(1).Equal(Parse("1e999")))
	assert.False(t, Inf(1).Equal(Inf(-1)))
	assert.False(t, Inf(1).Equal(NaN()))
}
