package cas

import (
	"math/big"

	"github.com/axion-project/axion/pkg/expr"
)

var minusOne = big.NewInt(-1)

// Structural recursion applying the direct inverses of the supported
// derivative identities: constant rule, variable rule, power rule with
// constant exponent other than -1, sum and difference rules, negation,
// constant-factor rule, and division by a constant.  There is no general
// symbolic integration here (no integration by parts, no substitution
// search): anything outside this closed set is rejected, never silently
// approximated.  The result is returned unsimplified and carries no
// integration constant.
func antiderivative(e expr.Expr, v string) (expr.Expr, error) {
	// Constant rule
	if constantWith(e, v) {
		return &expr.Binary{Op: expr.Mul, Left: e, Right: expr.NewVariable(v)}, nil
	}
	//
	switch t := e.(type) {
	case *expr.Variable:
		// Necessarily the variable of integration: v^2/2
		square := &expr.Binary{Op: expr.Pow, Left: t, Right: expr.NewConstant(2)}
		return &expr.Binary{Op: expr.Div, Left: square, Right: expr.NewConstant(2)}, nil
	case *expr.Unary:
		if t.Op == expr.Neg {
			i, err := antiderivative(t.Operand, v)
			if err != nil {
				return nil, err
			}

			return &expr.Unary{Op: expr.Neg, Operand: i}, nil
		}
	case *expr.Binary:
		return binaryAntiderivative(t, v)
	}
	//
	return nil, &UnsupportedOperationError{Integrate.String(), e}
}

func binaryAntiderivative(t *expr.Binary, v string) (expr.Expr, error) {
	switch t.Op {
	case expr.Add, expr.Sub:
		// Sum / difference rules
		il, err := antiderivative(t.Left, v)
		if err != nil {
			return nil, err
		}

		ir, err := antiderivative(t.Right, v)
		if err != nil {
			return nil, err
		}

		return &expr.Binary{Op: t.Op, Left: il, Right: ir}, nil
	case expr.Mul:
		// Constant-factor rules
		if constantWith(t.Left, v) {
			ir, err := antiderivative(t.Right, v)
			if err != nil {
				return nil, err
			}

			return &expr.Binary{Op: expr.Mul, Left: t.Left, Right: ir}, nil
		}

		if constantWith(t.Right, v) {
			il, err := antiderivative(t.Left, v)
			if err != nil {
				return nil, err
			}

			return &expr.Binary{Op: expr.Mul, Left: t.Right, Right: il}, nil
		}
	case expr.Div:
		// Division by a constant only.  In particular 1/v (the exponent
		// -1 case) lies outside the closed power-rule set.
		if constantWith(t.Right, v) {
			il, err := antiderivative(t.Left, v)
			if err != nil {
				return nil, err
			}

			return &expr.Binary{Op: expr.Div, Left: il, Right: t.Right}, nil
		}
	case expr.Pow:
		// Power rule: v^n becomes v^(n+1)/(n+1), for constant n != -1
		base, isVar := t.Left.(*expr.Variable)
		n, isConst := t.Right.(*expr.Constant)
		//
		if isVar && base.Name == v && isConst && n.Value.Cmp(minusOne) != 0 {
			exponent := new(big.Int).Add(n.Value, big.NewInt(1))
			power := &expr.Binary{Op: expr.Pow, Left: base, Right: expr.NewBigConstant(exponent)}
			//
			return &expr.Binary{Op: expr.Div, Left: power, Right: expr.NewBigConstant(exponent)}, nil
		}
	}
	//
	return nil, &UnsupportedOperationError{Integrate.String(), t}
}
