// Package fraction provides an exact rational number type for monetary math.
// All arithmetic runs on unbounded-precision integer numerator/denominator
// pairs; values are never converted to binary floating point.
package fraction

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// MalformedNumberError reports an input string that is not a valid decimal literal.
type MalformedNumberError struct {
	Input string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed decimal number: %q", e.Input)
}

// DivisionByZeroError reports a division by the zero fraction or a zero denominator.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "fraction: division by zero"
}

// Fraction is an immutable exact rational number. The zero value is 0/1.
// The denominator is always positive; the sign is carried by the numerator.
type Fraction struct {
	rat *big.Rat
}

// rational returns the backing rational, treating the zero value as 0/1.
// Callers must not mutate the result.
func (f Fraction) rational() *big.Rat {
	if f.rat == nil {
		return new(big.Rat)
	}
	return f.rat
}

// Zero returns the zero fraction.
func Zero() Fraction {
	return Fraction{}
}

// New creates a fraction num/den reduced to lowest terms.
// A zero denominator is rejected.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, &DivisionByZeroError{}
	}
	return Fraction{rat: big.NewRat(num, den)}, nil
}

// FromInt creates a fraction with value n.
func FromInt(n int64) Fraction {
	return Fraction{rat: new(big.Rat).SetInt64(n)}
}

// FromDecimal creates a fraction with the exact value of d.
func FromDecimal(d decimal.Decimal) Fraction {
	return Fraction{rat: new(big.Rat).Set(d.Rat())}
}

// Parse creates a fraction from a decimal string such as "12.5" or "-0.03".
// Whitespace is stripped first. An optional leading sign, an integer part and
// at most one decimal point are accepted; exponents and thousands separators
// are not. The result is the exact rational value of the literal.
func Parse(text string) (Fraction, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	parts := strings.Split(s, ".")
	switch len(parts) {
	case 1:
		num, ok := new(big.Int).SetString(parts[0], 10)
		if !ok {
			return Fraction{}, &MalformedNumberError{Input: text}
		}
		return Fraction{rat: new(big.Rat).SetInt(num)}, nil
	case 2:
		// "12.5" becomes 125/10. Concatenating the digit parts keeps the
		// sign handling of the integer part and rejects stray signs or
		// non-digits in the fractional part.
		num, ok := new(big.Int).SetString(parts[0]+parts[1], 10)
		if !ok {
			return Fraction{}, &MalformedNumberError{Input: text}
		}
		den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(parts[1]))), nil)
		return Fraction{rat: new(big.Rat).SetFrac(num, den)}, nil
	default:
		return Fraction{}, &MalformedNumberError{Input: text}
	}
}

// Add returns f + other.
func (f Fraction) Add(other Fraction) Fraction {
	return Fraction{rat: new(big.Rat).Add(f.rational(), other.rational())}
}

// Sub returns f - other.
func (f Fraction) Sub(other Fraction) Fraction {
	return Fraction{rat: new(big.Rat).Sub(f.rational(), other.rational())}
}

// Mul returns f * other.
func (f Fraction) Mul(other Fraction) Fraction {
	return Fraction{rat: new(big.Rat).Mul(f.rational(), other.rational())}
}

// Div returns f / other, or DivisionByZeroError when other is zero.
func (f Fraction) Div(other Fraction) (Fraction, error) {
	if other.IsZero() {
		return Fraction{}, &DivisionByZeroError{}
	}
	return Fraction{rat: new(big.Rat).Quo(f.rational(), other.rational())}, nil
}

// Sum folds Add over fs starting from zero. Exact rational addition is
// associative and commutative, so the result is order-independent.
func Sum(fs []Fraction) Fraction {
	s := Zero()
	for _, f := range fs {
		s = s.Add(f)
	}
	return s
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{rat: new(big.Rat).Neg(f.rational())}
}

// Abs returns the absolute value of f.
func (f Fraction) Abs() Fraction {
	return Fraction{rat: new(big.Rat).Abs(f.rational())}
}

// Sign returns -1, 0 or 1 depending on the sign of f.
func (f Fraction) Sign() int {
	return f.rational().Sign()
}

// IsZero returns true when f equals 0.
func (f Fraction) IsZero() bool {
	return f.Sign() == 0
}

// IsPositive returns true when f is strictly greater than 0.
func (f Fraction) IsPositive() bool {
	return f.Sign() > 0
}

// IsNegative returns true when f is strictly less than 0.
func (f Fraction) IsNegative() bool {
	return f.Sign() < 0
}

// Cmp compares f and other, returning -1, 0 or 1.
func (f Fraction) Cmp(other Fraction) int {
	return f.rational().Cmp(other.rational())
}

// Equal returns true when f and other represent the same rational value.
func (f Fraction) Equal(other Fraction) bool {
	return f.Cmp(other) == 0
}

// Format renders f as a fixed-point decimal string with exactly places digits
// after the point, rounding half up: ties round toward positive infinity, so
// 2.5 formats as "3" and -2.5 as "-2" at zero places. Negative places is a
// programming error and panics.
func (f Fraction) Format(places int) string {
	if places < 0 {
		panic("fraction: negative decimal places")
	}
	r := f.rational()

	// floor(f*10^places + 1/2) computed as floor((2*num*10^places + den) / (2*den)).
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	num := new(big.Int).Mul(r.Num(), pow)
	num.Lsh(num, 1).Add(num, r.Denom())
	den := new(big.Int).Lsh(r.Denom(), 1)
	scaled := new(big.Int).Div(num, den)

	neg := scaled.Sign() < 0
	digits := new(big.Int).Abs(scaled).String()
	if places == 0 {
		if neg {
			return "-" + digits
		}
		return digits
	}
	if len(digits) < places+1 {
		digits = strings.Repeat("0", places+1-len(digits)) + digits
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(digits[:len(digits)-places])
	b.WriteByte('.')
	b.WriteString(digits[len(digits)-places:])
	return b.String()
}

// Decimal converts f to a decimal rounded to places digits with the same
// half-up rule as Format. Only for boundary rendering; core arithmetic must
// stay on Fraction values.
func (f Fraction) Decimal(places int) decimal.Decimal {
	d, _ := decimal.NewFromString(f.Format(places))
	return d
}

// String returns "num/den", or just "num" for integral values.
func (f Fraction) String() string {
	return f.rational().RatString()
}

// terminatingPlaces reports how many decimal digits render f exactly, and
// false when the decimal expansion does not terminate.
func (f Fraction) terminatingPlaces() (int, bool) {
	den := new(big.Int).Set(f.rational().Denom())
	two := big.NewInt(2)
	five := big.NewInt(5)
	mod := new(big.Int)
	twos, fives := 0, 0
	for mod.Mod(den, two).Sign() == 0 {
		den.Quo(den, two)
		twos++
	}
	for mod.Mod(den, five).Sign() == 0 {
		den.Quo(den, five)
		fives++
	}
	if den.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if fives > twos {
		return fives, true
	}
	return twos, true
}

// MarshalText renders f as an exact decimal string when its expansion
// terminates, and as "num/den" otherwise. Either form round-trips through
// ParseText, so persisted amounts reload to the identical rational.
func (f Fraction) MarshalText() ([]byte, error) {
	if places, ok := f.terminatingPlaces(); ok {
		return []byte(f.Format(places)), nil
	}
	return []byte(f.String()), nil
}

// ParseText creates a fraction from either form MarshalText produces: a
// decimal literal such as "12.5", or a "num/den" pair such as "1/3" for
// values with no finite decimal expansion.
func ParseText(text string) (Fraction, error) {
	if num, den, ok := strings.Cut(text, "/"); ok {
		n, okN := new(big.Int).SetString(strings.TrimSpace(num), 10)
		d, okD := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !okN || !okD {
			return Fraction{}, &MalformedNumberError{Input: text}
		}
		if d.Sign() == 0 {
			return Fraction{}, &DivisionByZeroError{}
		}
		return Fraction{rat: new(big.Rat).SetFrac(n, d)}, nil
	}
	return Parse(text)
}

// UnmarshalText accepts the two forms produced by MarshalText.
func (f *Fraction) UnmarshalText(text []byte) error {
	parsed, err := ParseText(string(text))
	if err != nil {
		return err
	}
	f.rat = parsed.rational()
	return nil
}
