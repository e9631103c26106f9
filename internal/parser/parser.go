// Package parser turns a token stream into a typed AST plus an ordered
// diagnostics list. It is organized as a Pratt dispatcher: initial
// parselets (pratt.go, initial.go) open an expression, consequent
// parselets (pratt.go, comparisons.go, calls.go, style.go, regression.go,
// substitution.go) extend an already-parsed left operand, and the
// statement loop (statements.go) drives the whole thing with
// statement-level error recovery.
package parser
