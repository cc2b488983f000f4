package rpnresolver

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestNumberPromotion(t *testing.T) {
	cases := []struct {
		name    string
		op      func(a, b Number) Number
		a, b    Number
		want    Number
		natural bool
	}{
		{"add-nat", Number.Add, NaturalInt64(1), NaturalInt64(2), NaturalInt64(3), true},
		{"add-mixed", Number.Add, NaturalInt64(1), Decimal(2.5), Decimal(3.5), false},
		{"add-dec", Number.Add, Decimal(1.5), Decimal(2.5), Decimal(4), false},
		{"sub-nat", Number.Sub, NaturalInt64(10), NaturalInt64(3), NaturalInt64(7), true},
		{"sub-mixed", Number.Sub, Decimal(10), NaturalInt64(3), Decimal(7), false},
		{"mul-nat", Number.Mul, NaturalInt64(6), NaturalInt64(7), NaturalInt64(42), true},
		{"mul-mixed", Number.Mul, NaturalInt64(6), Decimal(0.5), Decimal(3), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.op(c.a, c.b)
			if !got.Equal(c.want) {
				t.Errorf("want %v, got %v", c.want, got)
			}
			if got.IsNatural() != c.natural {
				t.Errorf("want IsNatural=%v, got %v", c.natural, got.IsNatural())
			}
		})
	}
}

func TestNumberExactBigArithmetic(t *testing.T) {
	big1, ok := new(big.Int).SetString("99999999999999999999", 10)
	if !ok {
		t.Fatal("setup failed")
	}
	got := Natural(big1).Add(NaturalInt64(1))
	want, _ := new(big.Int).SetString("100000000000000000000", 10)
	if !got.IsNatural() || got.String() != want.String() {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestNumberDiv(t *testing.T) {
	t.Run("naturals-give-decimal", func(t *testing.T) {
		got, err := NaturalInt64(6).Div(NaturalInt64(3))
		if err != nil {
			t.Fatal(err)
		}
		if got.IsNatural() || got.Float64() != 2 {
			t.Errorf("want decimal 2, got %v", got)
		}
	})
	t.Run("natural-by-zero", func(t *testing.T) {
		_, err := NaturalInt64(1).Div(NaturalInt64(0))
		var derr *DivisionError
		if !errors.As(err, &derr) {
			t.Errorf("want DivisionError, got %v", err)
		}
	})
	t.Run("float-by-zero", func(t *testing.T) {
		got, err := Decimal(1).Div(NaturalInt64(0))
		if err != nil {
			t.Fatal(err)
		}
		if !math.IsInf(got.Float64(), 1) {
			t.Errorf("want +Inf, got %v", got)
		}
	})
}

func TestNumberPow(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		got, err := NaturalInt64(2).Pow(NaturalInt64(64))
		if err != nil {
			t.Fatal(err)
		}
		if !got.IsNatural() || got.String() != "18446744073709551616" {
			t.Errorf("want 2^64 exact, got %v", got)
		}
	})
	t.Run("negative-exponent", func(t *testing.T) {
		_, err := NaturalInt64(2).Pow(NaturalInt64(-1))
		var eerr *ExponentError
		if !errors.As(err, &eerr) {
			t.Errorf("want ExponentError, got %v", err)
		}
	})
	t.Run("word-sized-exponent", func(t *testing.T) {
		got, err := NaturalInt64(1).Pow(NaturalInt64(math.MaxInt32 + 2))
		if err != nil {
			t.Fatalf("exponent beyond 32 bits must be accepted: %v", err)
		}
		if !got.IsNatural() || got.String() != "1" {
			t.Errorf("want 1, got %v", got)
		}
	})
	t.Run("huge-exponent", func(t *testing.T) {
		e, _ := new(big.Int).SetString("99999999999999999999", 10)
		_, err := NaturalInt64(2).Pow(Natural(e))
		var eerr *ExponentError
		if !errors.As(err, &eerr) {
			t.Errorf("want ExponentError, got %v", err)
		}
	})
	t.Run("float", func(t *testing.T) {
		got, err := Decimal(2).Pow(Decimal(-1))
		if err != nil {
			t.Fatal(err)
		}
		if got.Float64() != 0.5 {
			t.Errorf("want 0.5, got %v", got)
		}
	})
}

func TestNumberFactorial(t *testing.T) {
	cases := []struct {
		name string
		in   Number
		want string
		ok   bool
	}{
		{"zero", NaturalInt64(0), "1", true},
		{"four", NaturalInt64(4), "24", true},
		{"twenty", NaturalInt64(20), "2432902008176640000", true},
		{"negative", NaturalInt64(-1), "", false},
		{"decimal", Decimal(4.5), "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.in.Factorial()
			if !c.ok {
				var derr *DomainError
				if !errors.As(err, &derr) {
					t.Errorf("want DomainError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != c.want {
				t.Errorf("want %v, got %v", c.want, got)
			}
		})
	}
}

func TestNumberCmp(t *testing.T) {
	cases := []struct {
		name string
		a, b Number
		want int
	}{
		{"nat-nat", NaturalInt64(1), NaturalInt64(2), -1},
		{"nat-dec", NaturalInt64(3), Decimal(2.5), 1},
		{"dec-nat", Decimal(2), NaturalInt64(2), 0},
		{"dec-dec", Decimal(2.5), Decimal(2.5), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Cmp(c.b); got != c.want {
				t.Errorf("want %d, got %d", c.want, got)
			}
		})
	}
}

func TestNumberConversions(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		v, err := Decimal(2.9).Int64()
		if err != nil || v != 2 {
			t.Errorf("want 2, got %d (err %v)", v, err)
		}
	})
	t.Run("int64-overflow", func(t *testing.T) {
		big1, _ := new(big.Int).SetString("99999999999999999999", 10)
		_, err := Natural(big1).Int64()
		var cerr *ConversionError
		if !errors.As(err, &cerr) {
			t.Errorf("want ConversionError, got %v", err)
		}
	})
	t.Run("bigint-from-inf", func(t *testing.T) {
		_, err := Decimal(math.Inf(1)).BigInt()
		var cerr *ConversionError
		if !errors.As(err, &cerr) {
			t.Errorf("want ConversionError, got %v", err)
		}
	})
}

func TestNumberString(t *testing.T) {
	cases := []struct {
		in   Number
		want string
	}{
		{NaturalInt64(42), "42"},
		{NaturalInt64(-7), "-7"},
		{Decimal(2.1), "2.1"},
		{Decimal(26), "26"},
		{Number{}, "0"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String(%#v): want %q, got %q", c.in, c.want, got)
		}
	}
}
