package cas

import (
	"fmt"

	"github.com/axion-project/axion/pkg/expr"
)

// UnsupportedOperationError indicates that the engine has no closed-form
// rule for the given expression shape.  This is an expected rejection of the
// input, not an engine fault.
type UnsupportedOperationError struct {
	// Name of the rule being applied.
	Operation string
	// The offending (sub)expression.
	Expr expr.Expr
}

// Error implements the error interface.
func (p *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: no closed-form %s rule for %q", p.Operation, p.Expr)
}

// EngineLimitError indicates that simplification failed to reach a fixed
// point within the iteration cap.  This signals a broken (non-terminating)
// rewrite rule set rather than a property of the input, and is therefore
// fatal.
type EngineLimitError struct {
	// The iteration cap which was exceeded.
	Limit uint
}

// Error implements the error interface.
func (p *EngineLimitError) Error() string {
	return fmt.Sprintf("engine limit exceeded: no fixed point after %d simplification passes", p.Limit)
}
