// Package rpnresolver evaluates arithmetic expressions by converting them
// to Reverse Polish Notation and resolving the result against a variable
// environment.
//
// Integers are exact and unbounded; any operation touching a float operand
// promotes to float64. Expressions may reference variables, assign to them
// with =, call the usual math functions, and group with round or square
// brackets:
//
//	r, err := rpnresolver.Parse("x = 3 * 2^3 + 6 / (2 + 1)")
//	n, err := r.Resolve()
//
// A Resolver owns its environment, so variables assigned in one Resolve
// survive into the next on the same instance. Resolving does not consume
// the parsed expression; Resolve may be called any number of times, with
// Set in between to rebind variables.
package rpnresolver
