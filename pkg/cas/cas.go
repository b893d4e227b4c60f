// Package cas implements the symbolic rewrite engine: exact single-variable
// differentiation and integration over a closed set of elementary forms, and
// algebraic simplification to a fixed point.  Every operation is
// deterministic: rules are applied depth first, left to right, and the same
// input always yields a structurally identical output.  Inputs are never
// mutated; every transformation builds a fresh expression.
package cas

import (
	"github.com/axion-project/axion/pkg/expr"
)

// Rule identifies one of the engine's transformations.  The set is closed
// per engine version: adding a rule is an engine-level change, not data.
type Rule uint8

// The closed set of engine rules.
const (
	Differentiate Rule = iota
	Integrate
	Simplify
)

// String returns the external name of this rule.
func (r Rule) String() string {
	switch r {
	case Differentiate:
		return "differentiate"
	case Integrate:
		return "integrate"
	case Simplify:
		return "simplify"
	}

	panic("unknown engine rule")
}

// RuleOf maps an external rule name to its identifier.
func RuleOf(name string) (Rule, bool) {
	switch name {
	case "differentiate":
		return Differentiate, true
	case "integrate":
		return Integrate, true
	case "simplify":
		return Simplify, true
	}

	return 0, false
}

// Apply a given engine rule to an expression, producing a new expression.
// Differentiation and integration are taken with respect to the implicit
// free variable of the expression, and their raw results are simplified
// before being returned.  Expressions outside the supported closed form set
// are rejected with an UnsupportedOperationError; they are never silently
// approximated.
func Apply(rule Rule, e expr.Expr) (expr.Expr, error) {
	switch rule {
	case Differentiate:
		v, err := implicitVariable(rule, e)
		if err != nil {
			return nil, err
		}

		d, err := derivative(e, v)
		if err != nil {
			return nil, err
		}

		return simplify(d)
	case Integrate:
		v, err := implicitVariable(rule, e)
		if err != nil {
			return nil, err
		}

		d, err := antiderivative(e, v)
		if err != nil {
			return nil, err
		}

		return simplify(d)
	case Simplify:
		return simplify(e)
	}

	panic("unknown engine rule")
}

// Determine the variable an expression is implicitly taken over: its unique
// free variable.  Expressions without free variables default to "x" (which
// only matters for integration).  Multivariate calculus is out of scope, so
// more than one free variable is rejected.
func implicitVariable(rule Rule, e expr.Expr) (string, error) {
	free := expr.FreeVars(e)
	//
	switch len(free) {
	case 0:
		return "x", nil
	case 1:
		return free[0], nil
	}
	//
	return "", &UnsupportedOperationError{rule.String(), e}
}

// Check whether an expression is constant with respect to the given
// variable, i.e. the variable does not occur free within it.
func constantWith(e expr.Expr, v string) bool {
	for _, name := range expr.FreeVars(e) {
		if name == v {
			return false
		}
	}

	return true
}
