package amount

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPrefix matches the leading number of a form field: sign, integer part, fraction, exponent.
var numericPrefix = regexp.MustCompile(`^([+-]?)(\d*)(?:\.(\d*))?([eE][+-]?\d+)?`)

const infinityText = "Infinity"

// maxFinite is the largest magnitude an amount keeps as a decimal. Anything
// beyond float64 range becomes infinite, as it would in a browser.
var maxFinite = decimal.NewFromFloat(math.MaxFloat64)

// Amount is a decimal money value that may be NaN or infinite.
// NaN comes from coercing non-numeric form text and poisons any arithmetic it touches.
type Amount struct {
	value decimal.Decimal
	nan   bool
	inf   int8
}

// Zero returns the zero amount.
func Zero() Amount {
	return Amount{value: decimal.Zero}
}

// NaN returns the not-a-number amount.
func NaN() Amount {
	return Amount{nan: true}
}

// Inf returns positive infinity for sign >= 0 and negative infinity otherwise.
func Inf(sign int) Amount {
	if sign < 0 {
		return Amount{inf: -1}
	}
	return Amount{inf: 1}
}

// New wraps a decimal value.
func New(value decimal.Decimal) Amount {
	return finite(value)
}

// FromInt returns the amount for a whole number.
func FromInt(n int64) Amount {
	return Amount{value: decimal.NewFromInt(n)}
}

func finite(value decimal.Decimal) Amount {
	if value.Abs().GreaterThan(maxFinite) {
		return Inf(value.Sign())
	}
	return Amount{value: value}
}

// Parse coerces free text into an Amount the way a browser parses a numeric
// form field: the longest leading number is used and anything after it is
// ignored. Text without a leading number, including empty text, is NaN.
// Values outside float64 range become infinite and values too small for it
// become zero.
func Parse(text string) Amount {
	text = strings.TrimSpace(text)
	match := numericPrefix.FindStringSubmatch(text)
	if match == nil {
		return NaN()
	}

	sign, intPart, fracPart, exponent := match[1], match[2], match[3], match[4]
	if intPart == "" && fracPart == "" {
		if strings.HasPrefix(text[len(sign):], infinityText) {
			if sign == "-" {
				return Inf(-1)
			}
			return Inf(1)
		}
		return NaN()
	}

	var normalized strings.Builder
	if sign == "-" {
		normalized.WriteString("-")
	}
	if intPart == "" {
		intPart = "0"
	}
	normalized.WriteString(intPart)
	if fracPart != "" {
		normalized.WriteString(".")
		normalized.WriteString(fracPart)
	}
	normalized.WriteString(exponent)

	// The exponent is unbounded text, so range is checked on a float first.
	f, err := strconv.ParseFloat(normalized.String(), 64)
	switch {
	case math.IsInf(f, 0):
		return Inf(int(math.Copysign(1, f)))
	case err != nil:
		return NaN()
	case f == 0:
		return Zero()
	}

	value, err := decimal.NewFromString(normalized.String())
	if err != nil {
		return NaN()
	}
	return finite(value)
}

// IsNaN reports whether a is not a number.
func (a Amount) IsNaN() bool {
	return a.nan
}

// IsInf reports whether a is positive or negative infinity.
func (a Amount) IsInf() bool {
	return a.inf != 0
}

// Decimal returns the underlying value. NaN and infinite amounts return zero.
func (a Amount) Decimal() decimal.Decimal {
	if a.nan || a.inf != 0 {
		return decimal.Zero
	}
	return a.value
}

// Add returns a + b. Infinities of opposite sign add up to NaN.
func (a Amount) Add(b Amount) Amount {
	switch {
	case a.nan || b.nan:
		return NaN()
	case a.inf != 0 && b.inf != 0:
		if a.inf != b.inf {
			return NaN()
		}
		return a
	case a.inf != 0:
		return a
	case b.inf != 0:
		return b
	}
	return finite(a.value.Add(b.value))
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return a.Add(b.neg())
}

func (a Amount) neg() Amount {
	if a.nan {
		return a
	}
	if a.inf != 0 {
		return Amount{inf: -a.inf}
	}
	return Amount{value: a.value.Neg()}
}

// Equal compares by value. Two NaN amounts are equal.
func (a Amount) Equal(b Amount) bool {
	if a.nan || b.nan {
		return a.nan == b.nan
	}
	if a.inf != 0 || b.inf != 0 {
		return a.inf == b.inf
	}
	return a.value.Equal(b.value)
}

func (a Amount) String() string {
	switch {
	case a.nan:
		return "NaN"
	case a.inf > 0:
		return infinityText
	case a.inf < 0:
		return "-" + infinityText
	}
	return a.value.String()
}
