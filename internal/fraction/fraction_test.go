package fraction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Fraction {
	t.Helper()
	f, err := Parse(s)
	require.NoError(t, err)
	return f
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		num         int64
		den         int64
	}{
		{name: "Integer", input: "10", num: 10, den: 1},
		{name: "TwoPlaces", input: "10.00", num: 10, den: 1},
		{name: "Half", input: "12.5", num: 25, den: 2},
		{name: "NegativeSign", input: "-0.03", num: -3, den: 100},
		{name: "PlusSign", input: "+4.20", num: 21, den: 5},
		{name: "LeadingPoint", input: ".5", num: 1, den: 2},
		{name: "TrailingPoint", input: "12.", num: 12, den: 1},
		{name: "InteriorWhitespace", input: " 1 2.5 ", num: 25, den: 2},
		{name: "NegativeZeroPoint", input: "-0.5", num: -1, den: 2},
		{name: "Empty", input: "", expectError: true},
		{name: "TwoPoints", input: "1.2.3", expectError: true},
		{name: "Letters", input: "12a.5", expectError: true},
		{name: "Exponent", input: "1e5", expectError: true},
		{name: "ThousandsSeparator", input: "1,200", expectError: true},
		{name: "SignInFraction", input: "1.-5", expectError: true},
		{name: "LonePoint", input: ".", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				var malformed *MalformedNumberError
				assert.ErrorAs(t, err, &malformed)
				return
			}
			require.NoError(t, err)
			expected, err := New(tt.num, tt.den)
			require.NoError(t, err)
			assert.True(t, expected.Equal(f), "parsed %s, want %s", f, expected)
		})
	}
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := New(1, 0)
	var divZero *DivisionByZeroError
	assert.ErrorAs(t, err, &divZero)
}

func TestZeroValue(t *testing.T) {
	var f Fraction
	assert.True(t, f.IsZero())
	assert.Equal(t, "0.00", f.Format(2))
	assert.True(t, f.Equal(Zero()))
}

func TestArithmetic(t *testing.T) {
	third, err := New(1, 3)
	require.NoError(t, err)

	t.Run("AddExact", func(t *testing.T) {
		sum := third.Add(third).Add(third)
		assert.True(t, sum.Equal(FromInt(1)))
	})

	t.Run("Sum", func(t *testing.T) {
		s := Sum([]Fraction{third, third, third})
		assert.True(t, s.Equal(FromInt(1)))

		assert.True(t, Sum(nil).IsZero())
	})

	t.Run("MulDiv", func(t *testing.T) {
		product := mustParse(t, "12.5").Mul(mustParse(t, "0.4"))
		assert.True(t, product.Equal(FromInt(5)))

		quotient, err := FromInt(100).Div(FromInt(3))
		require.NoError(t, err)
		hundredThirds, err := New(100, 3)
		require.NoError(t, err)
		assert.True(t, quotient.Equal(hundredThirds))
	})

	t.Run("DivByZero", func(t *testing.T) {
		_, err := FromInt(1).Div(Zero())
		var divZero *DivisionByZeroError
		assert.ErrorAs(t, err, &divZero)
	})

	t.Run("SubNegAbs", func(t *testing.T) {
		d := FromInt(2).Sub(FromInt(5))
		assert.True(t, d.IsNegative())
		assert.True(t, d.Neg().Equal(FromInt(3)))
		assert.True(t, d.Abs().Equal(FromInt(3)))
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		places   int
		expected string
	}{
		{name: "PadToTwoPlaces", input: "10", places: 2, expected: "10.00"},
		{name: "ExactTwoPlaces", input: "12.5", places: 2, expected: "12.50"},
		{name: "RoundHalfUp", input: "0.125", places: 2, expected: "0.13"},
		{name: "RoundDown", input: "0.124", places: 2, expected: "0.12"},
		{name: "TieGoesUp", input: "2.5", places: 0, expected: "3"},
		{name: "NegativeTieTowardPositive", input: "-2.5", places: 0, expected: "-2"},
		{name: "NegativeBelowTie", input: "-2.51", places: 0, expected: "-3"},
		{name: "SmallNegativeToZero", input: "-0.004", places: 2, expected: "0.00"},
		{name: "ZeroPlaces", input: "99.99", places: 0, expected: "100"},
		{name: "Fractional", input: "0.5", places: 3, expected: "0.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustParse(t, tt.input).Format(tt.places))
		})
	}

	t.Run("NonTerminatingThird", func(t *testing.T) {
		third, err := New(1, 3)
		require.NoError(t, err)
		assert.Equal(t, "0.33", third.Format(2))

		twoThirds, err := New(2, 3)
		require.NoError(t, err)
		assert.Equal(t, "0.67", twoThirds.Format(2))
	})

	t.Run("NegativePlacesPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			FromInt(1).Format(-1)
		})
	})
}

func TestFormat_ParseRoundTrip(t *testing.T) {
	inputs := []string{"10.00", "0.05", "-3.25", "1234567890123456789.99", "0.00"}
	for _, s := range inputs {
		assert.Equal(t, s, mustParse(t, s).Format(2))
	}
}

func TestParseText(t *testing.T) {
	t.Run("Decimal", func(t *testing.T) {
		f, err := ParseText("12.5")
		require.NoError(t, err)
		assert.True(t, f.Equal(mustParse(t, "12.5")))
	})

	t.Run("Rational", func(t *testing.T) {
		f, err := ParseText("1/3")
		require.NoError(t, err)
		third, err := New(1, 3)
		require.NoError(t, err)
		assert.True(t, f.Equal(third))
	})

	t.Run("NegativeRational", func(t *testing.T) {
		f, err := ParseText("-2/3")
		require.NoError(t, err)
		minusTwoThirds, err := New(-2, 3)
		require.NoError(t, err)
		assert.True(t, f.Equal(minusTwoThirds))
	})

	t.Run("ZeroDenominator", func(t *testing.T) {
		_, err := ParseText("1/0")
		var divZero *DivisionByZeroError
		assert.ErrorAs(t, err, &divZero)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, s := range []string{"1/x", "a/3", "1/2/3", "abc"} {
			_, err := ParseText(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestTextRoundTrip(t *testing.T) {
	t.Run("TerminatingDecimal", func(t *testing.T) {
		f := mustParse(t, "12.5")
		text, err := f.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "12.5", string(text))

		var back Fraction
		require.NoError(t, back.UnmarshalText(text))
		assert.True(t, f.Equal(back))
	})

	t.Run("Integer", func(t *testing.T) {
		f := FromInt(600)
		text, err := f.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "600", string(text))
	})

	t.Run("NonTerminating", func(t *testing.T) {
		third, err := New(1, 3)
		require.NoError(t, err)
		text, err := third.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "1/3", string(text))

		var back Fraction
		require.NoError(t, back.UnmarshalText(text))
		assert.True(t, third.Equal(back))
	})

	t.Run("MalformedText", func(t *testing.T) {
		var f Fraction
		assert.Error(t, f.UnmarshalText([]byte("1/x")))
		assert.Error(t, f.UnmarshalText([]byte("1/0")))
		assert.Error(t, f.UnmarshalText([]byte("abc")))
	})
}

func TestDecimalInterop(t *testing.T) {
	d := decimal.RequireFromString("12.50")
	f := FromDecimal(d)
	assert.True(t, f.Equal(mustParse(t, "12.5")))

	third, err := New(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "0.33", third.Decimal(2).StringFixed(2))
}

func TestString(t *testing.T) {
	assert.Equal(t, "25/2", mustParse(t, "12.5").String())
	assert.Equal(t, "10", mustParse(t, "10.00").String())
}
