package expr

import (
	"sort"
)

// FreeVars returns the free variables of an expression in lexicographic
// order.  A variable is free when it occurs outside the scope of any
// quantifier binding the same name.
func FreeVars(e Expr) []string {
	found := make(map[string]bool)
	collectFreeVars(e, make(map[string]uint), found)
	//
	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}

	sort.Strings(names)
	//
	return names
}

func collectFreeVars(e Expr, bound map[string]uint, found map[string]bool) {
	switch t := e.(type) {
	case *Variable:
		if bound[t.Name] == 0 {
			found[t.Name] = true
		}
	case *Constant:
		// terminal
	case *Unary:
		collectFreeVars(t.Operand, bound, found)
	case *Binary:
		collectFreeVars(t.Left, bound, found)
		collectFreeVars(t.Right, bound, found)
	case *Application:
		for _, arg := range t.Args {
			collectFreeVars(arg, bound, found)
		}
	case *Quantifier:
		bound[t.Binder]++
		collectFreeVars(t.Body, bound, found)
		bound[t.Binder]--
	}
}

// Substitute returns a copy of e in which every free occurrence of the named
// variable is replaced by the given term.  The substitution is capture
// avoiding: quantifiers whose binder would capture a free variable of the
// replacement are renamed first.  The input expression is never modified.
func Substitute(e Expr, name string, with Expr) Expr {
	switch t := e.(type) {
	case *Variable:
		if t.Name == name {
			return with
		}

		return t
	case *Constant:
		return t
	case *Unary:
		return &Unary{t.Op, Substitute(t.Operand, name, with)}
	case *Binary:
		return &Binary{t.Op, Substitute(t.Left, name, with), Substitute(t.Right, name, with)}
	case *Application:
		args := make([]Expr, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Substitute(arg, name, with)
		}

		return &Application{t.Functor, args}
	case *Quantifier:
		if t.Binder == name {
			// Shadowed: no free occurrences below this point.
			return t
		}

		if contains(FreeVars(with), t.Binder) {
			// Rename the binder before descending, else the
			// replacement's free variable would be captured.
			fresh := freshName(t.Binder, append(FreeVars(with), FreeVars(t.Body)...))
			body := Substitute(t.Body, t.Binder, &Variable{fresh})
			//
			return &Quantifier{t.Kind, fresh, Substitute(body, name, with)}
		}

		return &Quantifier{t.Kind, t.Binder, Substitute(t.Body, name, with)}
	}
	// Unreachable for the closed set of forms
	return e
}

// Construct a variable name derived from base which does not clash with any
// of the given names.
func freshName(base string, taken []string) string {
	name := base
	for contains(taken, name) {
		name = name + "'"
	}

	return name
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
