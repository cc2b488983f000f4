package rpnresolver

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Symbols contains the single-character operator and bracket symbols. Each
// occurrence in the input is its own token regardless of surrounding
// whitespace; contiguous runs of any other non-space characters form one
// chunk.
const Symbols = "+-*/^!=#()[]"

// Tokenize splits a raw expression into an ordered token sequence, or
// fails with a LexError on a chunk that cannot be classified. Empty input
// yields an empty sequence.
//
// A chunk is classified in order as operator symbol, bracket symbol,
// integer literal, float literal, function name (case-insensitive), and
// finally variable identifier (case-sensitive, kept as written). A - is
// unary negation when it starts the expression or follows an operator or
// an open bracket, and binary subtraction otherwise; # is always unary
// negation. Commas separate function arguments and produce no token.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	var chunk strings.Builder
	flush := func() error {
		if chunk.Len() == 0 {
			return nil
		}
		t, err := classify(chunk.String())
		chunk.Reset()
		if err != nil {
			return err
		}
		toks = append(toks, t)
		return nil
	}
	for _, r := range src {
		switch {
		case unicode.IsSpace(r), r == ',':
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.ContainsRune(Symbols, r):
			if err := flush(); err != nil {
				return nil, err
			}
			toks = append(toks, symbolToken(r, toks))
		default:
			chunk.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return toks, nil
}

// symbolToken converts one symbol rune to its token. prev is the sequence
// scanned so far, consulted to disambiguate unary from binary minus.
func symbolToken(r rune, prev []Token) Token {
	switch r {
	case '+':
		return OperatorToken(Add)
	case '-':
		if prefixPosition(prev) {
			return OperatorToken(Une)
		}
		return OperatorToken(Sub)
	case '*':
		return OperatorToken(Mul)
	case '/':
		return OperatorToken(Div)
	case '^':
		return OperatorToken(Pow)
	case '!':
		return OperatorToken(Fac)
	case '=':
		return OperatorToken(Eql)
	case '#':
		return OperatorToken(Une)
	case '(', '[':
		return BracketToken(Open)
	case ')', ']':
		return BracketToken(Close)
	}
	panic("rpnresolver: unknown symbol " + strconv.QuoteRune(r))
}

// prefixPosition reports whether the next operator is in prefix position:
// at the start of the expression, after another operator, or after an
// open bracket. Factorial is postfix, so its result stands as an operand
// and what follows it is binary.
func prefixPosition(prev []Token) bool {
	if len(prev) == 0 {
		return true
	}
	t := prev[len(prev)-1]
	return t.kind == kindOperator && t.op != Fac || t.kind == kindBracket && t.br == Open
}

func classify(chunk string) (Token, error) {
	if v, ok := new(big.Int).SetString(chunk, 10); ok {
		return OperandToken(Number{nat: v}), nil
	}
	if f, err := strconv.ParseFloat(chunk, 64); err == nil {
		return OperandToken(Decimal(f)), nil
	}
	if fn, ok := functionNamed(chunk); ok {
		return FunctionToken(fn), nil
	}
	// A chunk that looks numeric but parses as neither integer nor float,
	// e.g. "1.2.3", is a lexical error rather than a variable.
	if c := chunk[0]; '0' <= c && c <= '9' || c == '.' {
		return Token{}, &LexError{Chunk: chunk}
	}
	return VariableToken(chunk), nil
}
