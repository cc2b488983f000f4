package rpnresolver

// Resolver owns the postfix form of one parsed expression together with
// its variable environment. It is not safe for concurrent use; separately
// parsed Resolvers share nothing and may be used concurrently.
type Resolver struct {
	postfix []Token
	env     *Env
}

// Parse tokenizes expr and converts it to postfix, seeding a fresh
// environment with the built-in PI constant and every identifier the
// expression references. Bracket balance is not checked here; an
// unbalanced expression parses successfully and fails at Resolve.
func Parse(expr string) (*Resolver, error) {
	return ParseInEnv(expr, NewEnv())
}

// ParseInEnv is like Parse but binds the Resolver to env instead of a
// fresh environment, so variables assigned by one expression are visible
// to expressions parsed later in the same environment. Identifiers the
// environment does not already bind are seeded with integer zero.
func ParseInEnv(expr string, env *Env) (*Resolver, error) {
	toks, err := Tokenize(expr)
	if err != nil {
		return nil, err
	}
	return &Resolver{postfix: convert(toks, env), env: env}, nil
}

// Resolve evaluates the expression against the Resolver's environment and
// returns the resulting Number. Resolution does not consume the
// expression: Resolve may be called repeatedly, and assignments made by
// one call are visible to the next.
func (r *Resolver) Resolve() (Number, error) {
	return evaluate(r.postfix, r.env)
}

// Set binds name to value in the Resolver's environment for subsequent
// calls to Resolve.
func (r *Resolver) Set(name string, value Number) {
	r.env.Set(name, value)
}

// Lookup returns the value currently bound to name, or integer zero if
// name is unbound.
func (r *Resolver) Lookup(name string) Number {
	return r.env.Lookup(name)
}

// ResolveString parses and resolves expr in one step against a fresh
// environment.
func ResolveString(expr string) (Number, error) {
	r, err := Parse(expr)
	if err != nil {
		return Number{}, err
	}
	return r.Resolve()
}
