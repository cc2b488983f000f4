package rpnresolver

import (
	"math"
	"strings"
)

// MathFunction is one of the built-in math functions. All functions
// produce a float result regardless of operand types.
type MathFunction int

const (
	// FuncNone is a sentinel. It is never produced by the tokenizer and
	// never evaluated; reaching it during evaluation is a bug.
	FuncNone MathFunction = iota
	Sin
	Cos
	Tan
	ASin
	ACos
	ATan
	// Ln is the natural logarithm.
	Ln
	// Log is the base-10 logarithm.
	Log
	Abs
	Sqrt
	Max
	Min
)

var funcNames = map[string]MathFunction{
	"sin":  Sin,
	"cos":  Cos,
	"tan":  Tan,
	"asin": ASin,
	"acos": ACos,
	"atan": ATan,
	"ln":   Ln,
	"log":  Log,
	"abs":  Abs,
	"sqrt": Sqrt,
	"max":  Max,
	"min":  Min,
}

// functionNamed maps a name to its function, case-insensitively.
func functionNamed(name string) (MathFunction, bool) {
	fn, ok := funcNames[strings.ToLower(name)]
	return fn, ok
}

func (fn MathFunction) String() string {
	for name, f := range funcNames {
		if f == fn {
			return name
		}
	}
	return "none"
}

// arity is the number of operands fn pops during evaluation.
func (fn MathFunction) arity() int {
	if fn == Max || fn == Min {
		return 2
	}
	return 1
}

// apply computes fn over its arguments in stack pop order: args[0] is the
// most recently pushed operand. Out-of-domain arguments follow math
// package conventions and produce NaN rather than an error.
func (fn MathFunction) apply(args []float64) float64 {
	switch fn {
	case Sin:
		return math.Sin(args[0])
	case Cos:
		return math.Cos(args[0])
	case Tan:
		return math.Tan(args[0])
	case ASin:
		return math.Asin(args[0])
	case ACos:
		return math.Acos(args[0])
	case ATan:
		return math.Atan(args[0])
	case Ln:
		return math.Log(args[0])
	case Log:
		return math.Log10(args[0])
	case Abs:
		return math.Abs(args[0])
	case Sqrt:
		return math.Sqrt(args[0])
	case Max:
		return math.Max(args[0], args[1])
	case Min:
		return math.Min(args[0], args[1])
	}
	panic("rpnresolver: evaluating function sentinel " + fn.String())
}
