package cas

import (
	"math/big"

	"github.com/axion-project/axion/pkg/expr"
)

// MaxSimplifyPasses caps the fixed-point search.  Reaching the cap means the
// rule set itself is broken (non-terminating), which is reported as a fatal
// EngineLimitError.
const MaxSimplifyPasses = 100

// The declared local rewrite rules, applied depth first and left to right
// until one full pass produces no change.  This set is the single source of
// truth for what simplify performs:
//
//	e + 0 → e    0 + e → e    e - 0 → e    e - e → 0
//	e * 1 → e    1 * e → e    e * 0 → 0    0 * e → 0
//	e / 1 → e    e / e → 1 (e not the constant 0)
//	e ^ 1 → e    e ^ 0 → 1
//	-(-e) → e    -c → folded constant
//	c1 ⊕ c2 → folded constant, for ⊕ in {+ - *}, for ^ with c2 ≥ 0,
//	            and for / when c2 ≠ 0 divides c1 exactly
//	c1 * (c2 * e) → (c1·c2) * e
//	(c * e) / c → e, for constant c ≠ 0
//
// Like-term consolidation is deliberately absent: "x + x" does not fold to
// "2*x".
func simplify(e expr.Expr) (expr.Expr, error) {
	current := e
	//
	for i := 0; i < MaxSimplifyPasses; i++ {
		next := rewrite(current)
		// Fixed point reached?
		if expr.Equal(next, current) {
			return current, nil
		}

		current = next
	}
	//
	return nil, &EngineLimitError{MaxSimplifyPasses}
}

// A single depth-first, left-to-right pass: children are rewritten before
// the local rules are tried at each node.
func rewrite(e expr.Expr) expr.Expr {
	switch t := e.(type) {
	case *expr.Unary:
		return rewriteUnary(&expr.Unary{Op: t.Op, Operand: rewrite(t.Operand)})
	case *expr.Binary:
		node := &expr.Binary{Op: t.Op, Left: rewrite(t.Left), Right: rewrite(t.Right)}
		return rewriteBinary(node)
	case *expr.Application:
		args := make([]expr.Expr, len(t.Args))
		for i, arg := range t.Args {
			args[i] = rewrite(arg)
		}

		return &expr.Application{Functor: t.Functor, Args: args}
	case *expr.Quantifier:
		return &expr.Quantifier{Kind: t.Kind, Binder: t.Binder, Body: rewrite(t.Body)}
	}
	// Variables and constants are already in normal form
	return e
}

func rewriteUnary(t *expr.Unary) expr.Expr {
	if t.Op != expr.Neg {
		return t
	}
	// -c → folded constant
	if c, ok := t.Operand.(*expr.Constant); ok {
		return expr.NewBigConstant(new(big.Int).Neg(c.Value))
	}
	// -(-e) → e
	if inner, ok := t.Operand.(*expr.Unary); ok && inner.Op == expr.Neg {
		return inner.Operand
	}

	return t
}

func rewriteBinary(t *expr.Binary) expr.Expr {
	lc, leftConst := t.Left.(*expr.Constant)
	rc, rightConst := t.Right.(*expr.Constant)
	//
	switch t.Op {
	case expr.Add:
		if leftConst && rightConst {
			return expr.NewBigConstant(new(big.Int).Add(lc.Value, rc.Value))
		}

		if leftConst && lc.Value.Sign() == 0 {
			return t.Right
		}

		if rightConst && rc.Value.Sign() == 0 {
			return t.Left
		}
	case expr.Sub:
		if leftConst && rightConst {
			return expr.NewBigConstant(new(big.Int).Sub(lc.Value, rc.Value))
		}

		if rightConst && rc.Value.Sign() == 0 {
			return t.Left
		}

		if expr.Equal(t.Left, t.Right) {
			return expr.NewConstant(0)
		}
	case expr.Mul:
		if leftConst && rightConst {
			return expr.NewBigConstant(new(big.Int).Mul(lc.Value, rc.Value))
		}

		if (leftConst && lc.Value.Sign() == 0) || (rightConst && rc.Value.Sign() == 0) {
			return expr.NewConstant(0)
		}

		if leftConst && isOne(lc) {
			return t.Right
		}

		if rightConst && isOne(rc) {
			return t.Left
		}
		// c1 * (c2 * e) → (c1·c2) * e
		if inner, ok := t.Right.(*expr.Binary); leftConst && ok && inner.Op == expr.Mul {
			if c2, ok := inner.Left.(*expr.Constant); ok {
				folded := expr.NewBigConstant(new(big.Int).Mul(lc.Value, c2.Value))
				return &expr.Binary{Op: expr.Mul, Left: folded, Right: inner.Right}
			}
		}
	case expr.Div:
		if rightConst && isOne(rc) {
			return t.Left
		}

		if leftConst && rightConst && rc.Value.Sign() != 0 {
			quotient, remainder := new(big.Int).QuoRem(lc.Value, rc.Value, new(big.Int))
			if remainder.Sign() == 0 {
				return expr.NewBigConstant(quotient)
			}
		}

		if !isZeroConstant(t.Left) && expr.Equal(t.Left, t.Right) {
			return expr.NewConstant(1)
		}
		// (c * e) / c → e
		if inner, ok := t.Left.(*expr.Binary); ok && rightConst && rc.Value.Sign() != 0 && inner.Op == expr.Mul {
			if c, ok := inner.Left.(*expr.Constant); ok && c.Value.Cmp(rc.Value) == 0 {
				return inner.Right
			}
		}
	case expr.Pow:
		if rightConst && rc.Value.Sign() == 0 {
			return expr.NewConstant(1)
		}

		if rightConst && isOne(rc) {
			return t.Left
		}

		if leftConst && rightConst && rc.Value.Sign() > 0 && rc.Value.IsInt64() {
			return expr.NewBigConstant(new(big.Int).Exp(lc.Value, rc.Value, nil))
		}
	}
	//
	return t
}

func isOne(c *expr.Constant) bool {
	return c.Value.Cmp(big.NewInt(1)) == 0
}

func isZeroConstant(e expr.Expr) bool {
	c, ok := e.(*expr.Constant)
	return ok && c.Value.Sign() == 0
}
