package rpnresolver

// operand is one entry on the evaluation stack. name records the
// identifier the value was pushed from, if any; it is what assignment
// binds.
type operand struct {
	num  Number
	name string
}

// key is the environment key an assignment to this operand uses: the
// originating identifier when there is one, otherwise the value's textual
// form.
func (o operand) key() string {
	if o.name != "" {
		return o.name
	}
	return o.num.String()
}

// evaluate consumes a postfix token sequence against env and returns the
// single resulting Number. The sequence itself is not modified. Every
// malformed-input condition, including operand-stack underflow, surfaces
// as a typed error.
func evaluate(postfix []Token, env *Env) (Number, error) {
	var stack []operand
	pop := func(cause string) (operand, error) {
		if len(stack) == 0 {
			return operand{}, &UnderflowError{Cause: cause}
		}
		o := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return o, nil
	}
	push := func(n Number) {
		stack = append(stack, operand{num: n})
	}
	for _, t := range postfix {
		switch t.kind {
		case kindOperand:
			push(t.num)
		case kindOperator:
			if t.op.arity() == 1 {
				x, err := pop(t.op.String())
				if err != nil {
					return Number{}, err
				}
				r, err := applyUnary(t.op, x.num)
				if err != nil {
					return Number{}, err
				}
				push(r)
				break
			}
			right, err := pop(t.op.String())
			if err != nil {
				return Number{}, err
			}
			left, err := pop(t.op.String())
			if err != nil {
				return Number{}, err
			}
			if t.op == Eql {
				logger.Debug().Str("name", left.key()).Stringer("value", right.num).Msg("assign")
				env.Set(left.key(), right.num)
				push(right.num)
				break
			}
			r, err := applyBinary(t.op, left.num, right.num)
			if err != nil {
				return Number{}, err
			}
			push(r)
		case kindFunction:
			args := make([]float64, t.fn.arity())
			for i := range args {
				x, err := pop(t.fn.String())
				if err != nil {
					return Number{}, err
				}
				args[i] = x.num.Float64()
			}
			push(Decimal(t.fn.apply(args)))
		case kindVariable:
			stack = append(stack, operand{num: env.Lookup(t.name), name: t.name})
		case kindBracket:
			return Number{}, &BracketError{}
		}
	}
	if len(stack) != 1 {
		return Number{}, &ResultError{Leftover: len(stack)}
	}
	return stack[0].num, nil
}

func applyUnary(op Operator, x Number) (Number, error) {
	switch op {
	case Une:
		return x.Neg(), nil
	case Fac:
		return x.Factorial()
	}
	panic("rpnresolver: operator " + op.String() + " is not unary")
}

func applyBinary(op Operator, left, right Number) (Number, error) {
	switch op {
	case Add:
		return left.Add(right), nil
	case Sub:
		return left.Sub(right), nil
	case Mul:
		return left.Mul(right), nil
	case Div:
		return left.Div(right)
	case Pow:
		return left.Pow(right)
	}
	panic("rpnresolver: operator " + op.String() + " is not binary")
}
