package rpnresolver

import "strings"

// convert reorders an infix token sequence into postfix (Reverse Polish
// Notation) with the shunting-yard algorithm, and seeds env with every
// identifier the expression references that it does not already bind.
//
// Conversion itself never fails. An unmatched close bracket simply empties
// the operator stack; an unmatched open bracket ends up in the postfix
// sequence, where the evaluator rejects it. Arity mistakes are likewise
// left for the evaluator.
func convert(infix []Token, env *Env) []Token {
	var ops []Token
	postfix := make([]Token, 0, len(infix))
	for _, t := range infix {
		switch t.kind {
		case kindOperand:
			postfix = append(postfix, t)
		case kindBracket:
			if t.br == Open {
				ops = append(ops, t)
				break
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == kindBracket && top.br == Open {
					// Closing a call's argument list flushes the function
					// that introduced it.
					if len(ops) > 0 && ops[len(ops)-1].kind == kindFunction {
						postfix = append(postfix, ops[len(ops)-1])
						ops = ops[:len(ops)-1]
					}
					break
				}
				postfix = append(postfix, top)
			}
		case kindOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != kindOperator || !t.op.yieldsTo(top.op) {
					break
				}
				postfix = append(postfix, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		case kindFunction:
			// Functions take no part in precedence comparison; they are
			// flushed by a closing bracket or end of input.
			ops = append(ops, t)
		case kindVariable:
			t.name = env.declare(t.name)
			postfix = append(postfix, t)
		}
		logger.Trace().Stringer("token", t).Str("out", dump(postfix)).Str("ops", dump(ops)).Msg("shunting")
	}
	for len(ops) > 0 {
		postfix = append(postfix, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	logger.Debug().Str("postfix", dump(postfix)).Msg("converted")
	return postfix
}

// dump renders a token sequence for the debug traces.
func dump(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
