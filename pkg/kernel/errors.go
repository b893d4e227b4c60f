package kernel

import (
	"errors"
	"fmt"

	"github.com/axion-project/axion/pkg/expr"
)

// ErrProofFinalized is returned when attempting to append a step to a proof
// which has already been finalized.
var ErrProofFinalized = errors.New("proof is finalized")

// UnknownTheoryError indicates the named theory is not present in the
// kernel's library.
type UnknownTheoryError struct {
	// Name of the missing theory.
	Name string
}

// Error implements the error interface.
func (p *UnknownTheoryError) Error() string {
	return fmt.Sprintf("unknown theory %q", p.Name)
}

// InvalidPremiseError indicates a step cited a premise index at or beyond
// its own position.  Premises may only reference strictly earlier steps.
type InvalidPremiseError struct {
	// Index of the offending step.
	Step uint
	// The out-of-range premise index.
	Premise uint
}

// Error implements the error interface.
func (p *InvalidPremiseError) Error() string {
	return fmt.Sprintf("step %d: premise index %d does not reference an earlier step", p.Step, p.Premise)
}

// RuleShapeError indicates a step's statement is not a legal output of its
// rule applied to its premises.
type RuleShapeError struct {
	// Index of the offending step.
	Step uint
	// The rule whose shape check failed.
	Rule Rule
	// Description of the mismatch.
	Reason string
}

// Error implements the error interface.
func (p *RuleShapeError) Error() string {
	return fmt.Sprintf("step %d: %s: %s", p.Step, p.Rule, p.Reason)
}

// UnknownAxiomError indicates an axiom-application step whose statement
// matches no axiom of the proof's theory or its transitive dependencies.
type UnknownAxiomError struct {
	// Index of the offending step.
	Step uint
	// Theory whose axiom set was searched.
	Theory string
	// The statement which matched nothing.
	Statement expr.Expr
}

// Error implements the error interface.
func (p *UnknownAxiomError) Error() string {
	return fmt.Sprintf("step %d: %q is not an axiom of theory %s or its dependencies", p.Step, p.Statement, p.Theory)
}
