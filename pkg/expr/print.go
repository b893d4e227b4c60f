package expr

import (
	"strings"
)

// The canonical printer.  Its output is the fixed textual encoding used both
// by the proof hasher and as the round-trip oracle for the parser: for any
// expression e, parsing e.String() yields a tree structurally equal to e.
//
// Formatting rules: multiplicative and power operators print without spaces
// ("2*x", "x^2"), all other infix operators with single spaces ("x + 1",
// "P ⟹ Q"), quantifiers as "∀x: body", applications as "f(a, b)".
// Brackets are emitted only where precedence demands them.

func (e *Variable) String() string {
	return e.Name
}

func (e *Variable) precedence() prec { return precAtom }

func (e *Constant) String() string {
	return e.Value.String()
}

func (e *Constant) precedence() prec {
	if e.Value.Sign() < 0 {
		return precNeg
	}

	return precAtom
}

func (e *Unary) String() string {
	return e.Op.String() + bracket(e.Operand, e.precedence(), true)
}

func (e *Unary) precedence() prec {
	if e.Op == Not {
		return precNot
	}

	return precNeg
}

func (e *Binary) String() string {
	var (
		p     = e.Op.precedence()
		left  = bracket(e.Left, p, e.Op.rightAssociative())
		right = bracket(e.Right, p, !e.Op.rightAssociative())
	)
	//
	if p >= precMul {
		return left + e.Op.String() + right
	}

	return left + " " + e.Op.String() + " " + right
}

func (e *Binary) precedence() prec { return e.Op.precedence() }

func (e *Application) String() string {
	var builder strings.Builder
	//
	builder.WriteString(e.Functor)
	builder.WriteString("(")

	for i, arg := range e.Args {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(arg.String())
	}

	builder.WriteString(")")
	//
	return builder.String()
}

func (e *Application) precedence() prec { return precAtom }

func (e *Quantifier) String() string {
	return e.Kind.String() + e.Binder + ": " + e.Body.String()
}

func (e *Quantifier) precedence() prec { return precQuantifier }

// Render a child expression, bracketing it when its outermost construct binds
// no tighter than the parent.  A strict comparison is used on the associating
// side so that e.g. "x + y + z" prints without brackets whilst "x - (y - z)"
// keeps them.
func bracket(child Expr, parent prec, strict bool) string {
	p := child.precedence()
	//
	if p < parent || (strict && p == parent) {
		return "(" + child.String() + ")"
	}

	return child.String()
}
