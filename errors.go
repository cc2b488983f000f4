package rpnresolver

import "strconv"

// The error taxonomy has three branches. Lexical errors come out of
// Tokenize. Structural errors (UnderflowError, BracketError, ResultError)
// and arithmetic errors (DivisionError, ExponentError, DomainError,
// ConversionError) come out of Resolve. All of them terminate the whole
// call; there are no partial results.

// InputError is implemented by every error resulting from invalid input,
// as opposed to internal invariant violations, which panic.
type InputError interface {
	error
	// Fragment returns the piece of the expression the error refers to,
	// or the empty string when it concerns the expression as a whole.
	Fragment() string
}

// LexError indicates an input chunk that matches no token class. With the
// fallback-to-variable rule the only such chunks are malformed numeric
// literals, e.g. "1.2.3".
type LexError struct {
	// Chunk is the text that could not be classified.
	Chunk string
}

func (err *LexError) Error() string {
	return "invalid numeric literal " + strconv.Quote(err.Chunk)
}

// UnderflowError indicates an operator or function with too few operands
// on the evaluation stack.
type UnderflowError struct {
	// Cause is the operator or function that was being applied.
	Cause string
}

func (err *UnderflowError) Error() string {
	return "malformed expression: missing operand for " + strconv.Quote(err.Cause)
}

// BracketError indicates unbalanced brackets. An unmatched open bracket is
// only detected when it reaches the evaluator, so this surfaces from
// Resolve rather than Parse.
type BracketError struct{}

func (err *BracketError) Error() string {
	return "malformed expression: unbalanced brackets"
}

// ResultError indicates that evaluation finished with other than exactly
// one value on the stack.
type ResultError struct {
	// Leftover is the number of values remaining.
	Leftover int
}

func (err *ResultError) Error() string {
	if err.Leftover == 0 {
		return "malformed expression: no result"
	}
	return "malformed expression: " + strconv.Itoa(err.Leftover) + " leftover values"
}

// DivisionError indicates an integer division by integer zero. Float
// division by zero is not an error; it follows IEEE semantics.
type DivisionError struct {
	// Dividend is the textual form of the left operand.
	Dividend string
}

func (err *DivisionError) Error() string {
	return "division of " + err.Dividend + " by zero"
}

// ExponentError indicates an integer exponent that is negative or too
// large to represent as a machine-sized exponent.
type ExponentError struct {
	// Exponent is the textual form of the offending exponent.
	Exponent string
}

func (err *ExponentError) Error() string {
	return "exponent " + err.Exponent + " out of range"
}

// DomainError indicates an operand outside an operator's domain, e.g. the
// factorial of a negative or non-integer value.
type DomainError struct {
	// Value is the textual form of the operand.
	Value string
	// Op is the operator that rejected it.
	Op string
}

func (err *DomainError) Error() string {
	return err.Value + " outside domain of " + strconv.Quote(err.Op)
}

// ConversionError indicates a numeric conversion that cannot represent its
// input in the target type.
type ConversionError struct {
	// Value is the textual form of the value being converted.
	Value string
	// Target names the conversion target.
	Target string
}

func (err *ConversionError) Error() string {
	return "cannot convert " + err.Value + " to " + err.Target
}

// Fragment returns the chunk that could not be classified.
func (err *LexError) Fragment() string { return err.Chunk }

// Fragment returns the operator or function missing an operand.
func (err *UnderflowError) Fragment() string { return err.Cause }

// Fragment returns the empty string; the error concerns the expression as
// a whole.
func (err *BracketError) Fragment() string { return "" }

// Fragment returns the empty string; the error concerns the expression as
// a whole.
func (err *ResultError) Fragment() string { return "" }

// Fragment returns the textual form of the dividend.
func (err *DivisionError) Fragment() string { return err.Dividend }

// Fragment returns the textual form of the exponent.
func (err *ExponentError) Fragment() string { return err.Exponent }

// Fragment returns the textual form of the rejected operand.
func (err *DomainError) Fragment() string { return err.Value }

// Fragment returns the textual form of the unconvertible value.
func (err *ConversionError) Fragment() string { return err.Value }

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*UnderflowError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ResultError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*ExponentError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*ConversionError)(nil)
)
