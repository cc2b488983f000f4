package rpnresolver

import (
	"math"
	"testing"
)

func TestFunctionNamed(t *testing.T) {
	cases := []struct {
		name string
		fn   MathFunction
		ok   bool
	}{
		{"sin", Sin, true},
		{"SIN", Sin, true},
		{"Cos", Cos, true},
		{"atan", ATan, true},
		{"ln", Ln, true},
		{"log", Log, true},
		{"sqrt", Sqrt, true},
		{"max", Max, true},
		{"min", Min, true},
		{"sinh", FuncNone, false},
		{"x", FuncNone, false},
	}
	for _, c := range cases {
		fn, ok := functionNamed(c.name)
		if ok != c.ok || fn != c.fn {
			t.Errorf("functionNamed(%q) = %v, %v; want %v, %v", c.name, fn, ok, c.fn, c.ok)
		}
	}
}

func TestFunctionApply(t *testing.T) {
	cases := []struct {
		fn   MathFunction
		args []float64
		want float64
	}{
		{Sin, []float64{0}, 0},
		{Cos, []float64{0}, 1},
		{Tan, []float64{0}, 0},
		{ASin, []float64{1}, math.Pi / 2},
		{ACos, []float64{1}, 0},
		{ATan, []float64{0}, 0},
		{Ln, []float64{math.E}, 1},
		{Log, []float64{1000}, 3},
		{Abs, []float64{-2.5}, 2.5},
		{Sqrt, []float64{9}, 3},
		{Max, []float64{1, 2}, 2},
		{Min, []float64{1, 2}, 1},
	}
	for _, c := range cases {
		if got := c.fn.apply(c.args); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%v%v = %g, want %g", c.fn, c.args, got, c.want)
		}
	}
}

func TestFunctionArity(t *testing.T) {
	for _, fn := range []MathFunction{Sin, Cos, Tan, ASin, ACos, ATan, Ln, Log, Abs, Sqrt} {
		if fn.arity() != 1 {
			t.Errorf("%v should be unary", fn)
		}
	}
	for _, fn := range []MathFunction{Max, Min} {
		if fn.arity() != 2 {
			t.Errorf("%v should be binary", fn)
		}
	}
}

func TestFunctionSentinelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("applying the sentinel should panic")
		}
	}()
	FuncNone.apply([]float64{0})
}
