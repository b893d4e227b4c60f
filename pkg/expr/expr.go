// Package expr provides the immutable tree representation of mathematical
// statements and terms shared by the parser, the rewrite engine and the
// inference kernel.  Expressions are value types: once constructed they are
// never mutated, and every transformation returns a fresh tree.  Structural
// equality (see Equal) is the sole notion of identity.
package expr

import (
	"math/big"
)

// Expr is implemented by every expression form.  The set of forms is closed:
// code consuming expressions should switch exhaustively over the concrete
// types below.
type Expr interface {
	// String returns the canonical textual rendering of this expression.
	// The canonical form re-parses to a structurally equal tree.
	String() string
	// Precedence of the outermost construct, used to decide bracketing
	// when printing.
	precedence() prec
}

// Variable is a named symbol, e.g. "x" or "ℕ".
type Variable struct {
	Name string
}

// Constant is an exact integer literal.
type Constant struct {
	Value *big.Int
}

// Unary applies a prefix operator (negation, logical not) to an operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary applies an infix operator to two operands.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Application applies a named functor to one or more ordered arguments,
// e.g. S(n) or gcd(a, b).
type Application struct {
	Functor string
	Args    []Expr
}

// Quantifier binds a single variable over a body, e.g. "∀x: x = x".
// Multi-binder and membership-constrained forms are desugared by the parser
// into nests of this form.
type Quantifier struct {
	Kind   QuantKind
	Binder string
	Body   Expr
}

// NewVariable constructs a variable with the given name.
func NewVariable(name string) *Variable {
	return &Variable{name}
}

// NewConstant constructs a constant from a machine integer.
func NewConstant(value int64) *Constant {
	return &Constant{big.NewInt(value)}
}

// NewBigConstant constructs a constant from an arbitrary-precision integer.
// The argument is copied, preserving immutability of the resulting node.
func NewBigConstant(value *big.Int) *Constant {
	return &Constant{new(big.Int).Set(value)}
}

// Equal determines whether two expressions are structurally equal, node for
// node.  Textual formatting plays no role; this is the basis for premise
// matching and axiom citation during proof validation.
func Equal(l Expr, r Expr) bool {
	switch lt := l.(type) {
	case *Variable:
		rt, ok := r.(*Variable)
		return ok && lt.Name == rt.Name
	case *Constant:
		rt, ok := r.(*Constant)
		return ok && lt.Value.Cmp(rt.Value) == 0
	case *Unary:
		rt, ok := r.(*Unary)
		return ok && lt.Op == rt.Op && Equal(lt.Operand, rt.Operand)
	case *Binary:
		rt, ok := r.(*Binary)
		return ok && lt.Op == rt.Op && Equal(lt.Left, rt.Left) && Equal(lt.Right, rt.Right)
	case *Application:
		rt, ok := r.(*Application)
		if !ok || lt.Functor != rt.Functor || len(lt.Args) != len(rt.Args) {
			return false
		}

		for i := range lt.Args {
			if !Equal(lt.Args[i], rt.Args[i]) {
				return false
			}
		}

		return true
	case *Quantifier:
		rt, ok := r.(*Quantifier)
		return ok && lt.Kind == rt.Kind && lt.Binder == rt.Binder && Equal(lt.Body, rt.Body)
	}
	// Unreachable for the closed set of forms
	return false
}
