package kernel

import (
	"github.com/axion-project/axion/pkg/expr"
)

// Decide whether target is a structurally correct capture-avoiding
// substitution of some term for the named variable within pattern, i.e.
// whether target == pattern[name ↦ t] for some t.  The candidate term is
// inferred by walking pattern and target in parallel; the claim is then
// checked authoritatively by performing the substitution and comparing for
// structural equality, so capture-avoiding renaming is honoured exactly as
// expr.Substitute performs it.
func checkInstance(pattern expr.Expr, target expr.Expr, name string) (expr.Expr, bool) {
	term := inferTerm(pattern, target, name, false)
	if term == nil {
		// No free occurrence contributes a term; the identity
		// binding must make both sides coincide.
		term = expr.NewVariable(name)
	}

	if !expr.Equal(expr.Substitute(pattern, name, term), target) {
		return nil, false
	}

	return term, true
}

// Locate the first free occurrence of the named variable in pattern and
// return the subtree target holds at the corresponding position.  Branches
// whose shapes diverge are simply skipped: correctness is established by
// the substitution check afterwards, not here.
func inferTerm(pattern expr.Expr, target expr.Expr, name string, shadowed bool) expr.Expr {
	if v, ok := pattern.(*expr.Variable); ok && v.Name == name {
		if shadowed {
			return nil
		}

		return target
	}
	//
	switch pt := pattern.(type) {
	case *expr.Unary:
		if tt, ok := target.(*expr.Unary); ok {
			return inferTerm(pt.Operand, tt.Operand, name, shadowed)
		}
	case *expr.Binary:
		if tt, ok := target.(*expr.Binary); ok {
			if term := inferTerm(pt.Left, tt.Left, name, shadowed); term != nil {
				return term
			}

			return inferTerm(pt.Right, tt.Right, name, shadowed)
		}
	case *expr.Application:
		if tt, ok := target.(*expr.Application); ok && len(pt.Args) == len(tt.Args) {
			for i := range pt.Args {
				if term := inferTerm(pt.Args[i], tt.Args[i], name, shadowed); term != nil {
					return term
				}
			}
		}
	case *expr.Quantifier:
		if tt, ok := target.(*expr.Quantifier); ok {
			return inferTerm(pt.Body, tt.Body, name, shadowed || pt.Binder == name)
		}
	}
	//
	return nil
}
