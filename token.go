package rpnresolver

import "strconv"

// Operator is a unary or binary math operator.
type Operator int

const (
	// Add is binary +.
	Add Operator = iota
	// Sub is binary -.
	Sub
	// Mul is binary *.
	Mul
	// Div is binary /.
	Div
	// Pow is binary ^.
	Pow
	// Une is unary negation.
	Une
	// Fac is postfix factorial.
	Fac
	// Eql is assignment. It is an expression yielding its right-hand value.
	Eql
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Une:
		return "#"
	case Fac:
		return "!"
	case Eql:
		return "="
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

type associativity int

const (
	leftAssociative associativity = iota
	rightAssociative
)

// precedence returns the binding priority and associativity used by the
// shunting-yard conversion. Panics on an operator outside the table; that
// is an internal invariant, not an input condition.
func (op Operator) precedence() (int, associativity) {
	switch op {
	case Eql:
		return 0, leftAssociative
	case Add, Sub:
		return 1, leftAssociative
	case Mul, Div:
		return 2, leftAssociative
	case Pow:
		return 3, rightAssociative
	case Une:
		return 4, rightAssociative
	case Fac:
		return 5, leftAssociative
	}
	panic("rpnresolver: operator " + op.String() + " has no precedence")
}

// arity is the number of operands op pops during evaluation.
func (op Operator) arity() int {
	if op == Une || op == Fac {
		return 1
	}
	return 2
}

// yieldsTo reports whether op should be pushed above top on the operator
// stack, per the shunting-yard tie-break: a left-associative operator
// yields to equal or higher precedence, a right-associative one only to
// strictly higher.
func (op Operator) yieldsTo(top Operator) bool {
	p1, a1 := op.precedence()
	p2, _ := top.precedence()
	if a1 == leftAssociative {
		return p1 <= p2
	}
	return p1 < p2
}

// Bracket is a grouping symbol. Round and square brackets are
// interchangeable.
type Bracket int

const (
	// Open is ( or [.
	Open Bracket = iota
	// Close is ) or ].
	Close
)

func (b Bracket) String() string {
	if b == Open {
		return "("
	}
	return ")"
}

type tokenKind int

const (
	kindOperand tokenKind = iota
	kindOperator
	kindBracket
	kindFunction
	kindVariable
)

// Token is the smallest chunk of an expression: an operand, an operator, a
// bracket, a function name, or a variable name.
type Token struct {
	kind tokenKind
	num  Number
	op   Operator
	br   Bracket
	fn   MathFunction
	name string
}

// OperandToken returns a Token holding the value n.
func OperandToken(n Number) Token {
	return Token{kind: kindOperand, num: n}
}

// OperatorToken returns a Token for op.
func OperatorToken(op Operator) Token {
	return Token{kind: kindOperator, op: op}
}

// BracketToken returns a Token for b.
func BracketToken(b Bracket) Token {
	return Token{kind: kindBracket, br: b}
}

// FunctionToken returns a Token for fn.
func FunctionToken(fn MathFunction) Token {
	return Token{kind: kindFunction, fn: fn}
}

// VariableToken returns a Token naming the variable name. The identifier
// is kept exactly as written.
func VariableToken(name string) Token {
	return Token{kind: kindVariable, name: name}
}

// IsOperand reports whether t holds a Number.
func (t Token) IsOperand() bool { return t.kind == kindOperand }

// IsOperator reports whether t is an operator.
func (t Token) IsOperator() bool { return t.kind == kindOperator }

// Operand returns the Number held by an operand token.
func (t Token) Operand() Number { return t.num }

// Operator returns the operator of an operator token.
func (t Token) Operator() Operator { return t.op }

// String returns the token's lexeme. Tokenizing the space-joined lexemes
// of a token sequence reproduces the sequence.
func (t Token) String() string {
	switch t.kind {
	case kindOperand:
		return t.num.String()
	case kindOperator:
		return t.op.String()
	case kindBracket:
		return t.br.String()
	case kindFunction:
		return t.fn.String()
	case kindVariable:
		return t.name
	}
	return "token(" + strconv.Itoa(int(t.kind)) + ")"
}
