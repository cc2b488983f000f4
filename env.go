package rpnresolver

import "strings"

// Env is a variable environment: a mapping from identifier to Number. Each
// Resolver owns exactly one Env; it is mutated by assignment during
// resolution and by Set, and it is not safe for concurrent use.
type Env struct {
	vars map[string]Number
}

// NewEnv returns an environment holding only the built-in constant PI.
// PI is fixed at 3.1415, not math.Pi.
func NewEnv() *Env {
	return &Env{vars: map[string]Number{"PI": Decimal(3.1415)}}
}

// Set binds name to value, overwriting any previous binding.
func (e *Env) Set(name string, value Number) {
	e.vars[name] = value
}

// Lookup returns the value bound to name, or integer zero if name is
// unbound.
func (e *Env) Lookup(name string) Number {
	if v, ok := e.vars[name]; ok {
		return v
	}
	return NaturalInt64(0)
}

// constants are the built-in bindings whose names resolve
// case-insensitively. User variables are case-sensitive.
var constants = map[string]bool{"PI": true}

// declare ensures name is bound and returns its canonical key. A fresh
// identifier is inserted bound to integer zero. An identifier that matches
// a built-in constant case-insensitively (pi against the seeded PI)
// resolves to the constant's key instead of shadowing it; any other
// identifier is matched exactly.
func (e *Env) declare(name string) string {
	if _, ok := e.vars[name]; ok {
		return name
	}
	for k := range constants {
		if strings.EqualFold(k, name) {
			return k
		}
	}
	e.vars[name] = NaturalInt64(0)
	return name
}
