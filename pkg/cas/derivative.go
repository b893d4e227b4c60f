package cas

import (
	"math/big"

	"github.com/axion-project/axion/pkg/expr"
)

// Structural recursion applying the closed-form derivative identities:
// constant rule, variable rule, sum and difference rules, negation,
// constant-factor rule, product rule, power rule with constant exponent
// (including the chain rule for powers of a subexpression), and division by
// a constant.  Anything else has no closed-form rule here and is rejected.
// The result is returned unsimplified.
func derivative(e expr.Expr, v string) (expr.Expr, error) {
	// Constant rule
	if constantWith(e, v) {
		return expr.NewConstant(0), nil
	}
	//
	switch t := e.(type) {
	case *expr.Variable:
		// Necessarily the variable of differentiation
		return expr.NewConstant(1), nil
	case *expr.Unary:
		if t.Op == expr.Neg {
			d, err := derivative(t.Operand, v)
			if err != nil {
				return nil, err
			}

			return &expr.Unary{Op: expr.Neg, Operand: d}, nil
		}
	case *expr.Binary:
		return binaryDerivative(t, v)
	}
	//
	return nil, &UnsupportedOperationError{Differentiate.String(), e}
}

func binaryDerivative(t *expr.Binary, v string) (expr.Expr, error) {
	switch t.Op {
	case expr.Add, expr.Sub:
		// Sum / difference rules
		dl, err := derivative(t.Left, v)
		if err != nil {
			return nil, err
		}

		dr, err := derivative(t.Right, v)
		if err != nil {
			return nil, err
		}

		return &expr.Binary{Op: t.Op, Left: dl, Right: dr}, nil
	case expr.Mul:
		// Constant-factor rules
		if constantWith(t.Left, v) {
			dr, err := derivative(t.Right, v)
			if err != nil {
				return nil, err
			}

			return &expr.Binary{Op: expr.Mul, Left: t.Left, Right: dr}, nil
		}

		if constantWith(t.Right, v) {
			dl, err := derivative(t.Left, v)
			if err != nil {
				return nil, err
			}

			return &expr.Binary{Op: expr.Mul, Left: dl, Right: t.Right}, nil
		}
		// Product rule
		dl, err := derivative(t.Left, v)
		if err != nil {
			return nil, err
		}

		dr, err := derivative(t.Right, v)
		if err != nil {
			return nil, err
		}

		lhs := &expr.Binary{Op: expr.Mul, Left: dl, Right: t.Right}
		rhs := &expr.Binary{Op: expr.Mul, Left: t.Left, Right: dr}
		//
		return &expr.Binary{Op: expr.Add, Left: lhs, Right: rhs}, nil
	case expr.Div:
		// Division by a constant only
		if constantWith(t.Right, v) {
			dl, err := derivative(t.Left, v)
			if err != nil {
				return nil, err
			}

			return &expr.Binary{Op: expr.Div, Left: dl, Right: t.Right}, nil
		}
	case expr.Pow:
		// Power rule with constant exponent, chained through the base:
		// d/dv[f^n] = n*f^(n-1) * f'
		if n, ok := t.Right.(*expr.Constant); ok {
			df, err := derivative(t.Left, v)
			if err != nil {
				return nil, err
			}

			exponent := new(big.Int).Sub(n.Value, big.NewInt(1))
			power := &expr.Binary{Op: expr.Pow, Left: t.Left, Right: expr.NewBigConstant(exponent)}
			scaled := &expr.Binary{Op: expr.Mul, Left: expr.NewBigConstant(n.Value), Right: power}
			//
			return &expr.Binary{Op: expr.Mul, Left: scaled, Right: df}, nil
		}
	}
	//
	return nil, &UnsupportedOperationError{Differentiate.String(), t}
}
