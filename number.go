package rpnresolver

import (
	"math"
	"math/big"
	"strconv"
)

// Number is an immutable numeric value: either an exact, arbitrary-precision
// integer or a float64. The zero value is the float 0.
//
// Binary operations follow one promotion rule: two integer operands produce
// an exact integer result, and any float operand promotes both sides to
// float64. Division is the exception and always produces a float, except
// that an integer division by integer zero is an error rather than an
// infinity.
type Number struct {
	nat *big.Int
	dec float64
}

// Natural returns the exact integer x as a Number. The argument is copied.
func Natural(x *big.Int) Number {
	return Number{nat: new(big.Int).Set(x)}
}

// NaturalInt64 returns the exact integer x as a Number.
func NaturalInt64(x int64) Number {
	return Number{nat: big.NewInt(x)}
}

// Decimal returns the float x as a Number.
func Decimal(x float64) Number {
	return Number{dec: x}
}

// IsNatural reports whether n is an exact integer.
func (n Number) IsNatural() bool {
	return n.nat != nil
}

// Float64 converts n to a float64. Integers too large for a float64 convert
// with the usual lossy rounding, overflowing to an infinity.
func (n Number) Float64() float64 {
	if n.nat == nil {
		return n.dec
	}
	f, _ := new(big.Float).SetInt(n.nat).Float64()
	return f
}

// Int64 converts n to an int64, truncating a float toward zero. It returns
// a ConversionError if the value does not fit.
func (n Number) Int64() (int64, error) {
	if n.nat != nil {
		if !n.nat.IsInt64() {
			return 0, &ConversionError{Value: n.String(), Target: "int64"}
		}
		return n.nat.Int64(), nil
	}
	if math.IsNaN(n.dec) || n.dec >= math.MaxInt64 || n.dec < math.MinInt64 {
		return 0, &ConversionError{Value: n.String(), Target: "int64"}
	}
	return int64(n.dec), nil
}

// BigInt converts n to a big integer, truncating a float toward zero. It
// returns a ConversionError for infinities and NaN.
func (n Number) BigInt() (*big.Int, error) {
	if n.nat != nil {
		return new(big.Int).Set(n.nat), nil
	}
	if math.IsInf(n.dec, 0) || math.IsNaN(n.dec) {
		return nil, &ConversionError{Value: n.String(), Target: "integer"}
	}
	r, _ := big.NewFloat(n.dec).Int(nil)
	return r, nil
}

// Add returns n + o under the promotion rule.
func (n Number) Add(o Number) Number {
	if n.nat != nil && o.nat != nil {
		return Number{nat: new(big.Int).Add(n.nat, o.nat)}
	}
	return Number{dec: n.Float64() + o.Float64()}
}

// Sub returns n - o under the promotion rule.
func (n Number) Sub(o Number) Number {
	if n.nat != nil && o.nat != nil {
		return Number{nat: new(big.Int).Sub(n.nat, o.nat)}
	}
	return Number{dec: n.Float64() - o.Float64()}
}

// Mul returns n * o under the promotion rule.
func (n Number) Mul(o Number) Number {
	if n.nat != nil && o.nat != nil {
		return Number{nat: new(big.Int).Mul(n.nat, o.nat)}
	}
	return Number{dec: n.Float64() * o.Float64()}
}

// Div returns n / o. The quotient is always a float. Dividing an integer by
// integer zero returns a DivisionError; float division follows IEEE
// semantics, so 1.0/0 is +Inf, not an error.
func (n Number) Div(o Number) (Number, error) {
	if n.nat != nil && o.nat != nil && o.nat.Sign() == 0 {
		return Number{}, &DivisionError{Dividend: n.String()}
	}
	return Number{dec: n.Float64() / o.Float64()}, nil
}

// Pow returns n raised to o. With two integer operands the result is exact;
// the exponent must be a non-negative value that fits in a machine-sized
// integer or Pow returns an ExponentError. Any float operand computes
// math.Pow.
func (n Number) Pow(o Number) (Number, error) {
	if n.nat != nil && o.nat != nil {
		if o.nat.Sign() < 0 || !o.nat.IsUint64() || o.nat.Uint64() > math.MaxInt {
			return Number{}, &ExponentError{Exponent: o.String()}
		}
		return Number{nat: new(big.Int).Exp(n.nat, o.nat, nil)}, nil
	}
	return Number{dec: math.Pow(n.Float64(), o.Float64())}, nil
}

// Neg returns -n.
func (n Number) Neg() Number {
	if n.nat != nil {
		return Number{nat: new(big.Int).Neg(n.nat)}
	}
	return Number{dec: -n.dec}
}

// Factorial returns n!. The operand must be a non-negative integer small
// enough to enumerate; anything else is a DomainError.
func (n Number) Factorial() (Number, error) {
	if n.nat == nil || n.nat.Sign() < 0 || !n.nat.IsInt64() {
		return Number{}, &DomainError{Value: n.String(), Op: "!"}
	}
	return Number{nat: new(big.Int).MulRange(1, n.nat.Int64())}, nil
}

// Cmp compares n and o under the promotion rule, returning -1, 0, or +1.
// Comparisons involving NaN return -1 without meaning.
func (n Number) Cmp(o Number) int {
	if n.nat != nil && o.nat != nil {
		return n.nat.Cmp(o.nat)
	}
	a, b := n.Float64(), o.Float64()
	switch {
	case a == b:
		return 0
	case a > b:
		return 1
	}
	return -1
}

// Equal reports whether n and o are numerically equal under the promotion
// rule. An integer and a float compare equal when the float conversion of
// the integer equals the float.
func (n Number) Equal(o Number) bool {
	if n.nat != nil && o.nat != nil {
		return n.nat.Cmp(o.nat) == 0
	}
	return n.Float64() == o.Float64()
}

// String formats an integer in exact decimal form and a float with the
// shortest representation that round-trips.
func (n Number) String() string {
	if n.nat != nil {
		return n.nat.String()
	}
	return strconv.FormatFloat(n.dec, 'g', -1, 64)
}
