// Package kernel implements the inference kernel: construction of formal
// proofs one justified step at a time, independent re-validation of
// completed proofs, and tamper-evident hashing.  The kernel holds no
// mutable state of its own.  Every operation is a pure function of the
// proof under construction and the (read-only) theory library, so
// independent proofs may be built and validated concurrently without any
// locking.
package kernel

import (
	"fmt"

	"github.com/axion-project/axion/pkg/expr"
	"github.com/axion-project/axion/pkg/theory"
)

// Kernel applies and checks inference rules against a fixed theory library.
type Kernel struct {
	library *theory.Library
}

// New constructs a kernel over the given (read-only) theory library.
func New(library *theory.Library) *Kernel {
	return &Kernel{library}
}

// Library returns the theory library this kernel consults.
func (k *Kernel) Library() *theory.Library {
	return k.library
}

// CreateProof starts an empty proof of the given theorem within the named
// theory.  The theorem and theory are fixed for the proof's lifetime.
func (k *Kernel) CreateProof(theorem expr.Expr, theoryName string) (*Proof, error) {
	if _, ok := k.library.Theory(theoryName); !ok {
		return nil, &UnknownTheoryError{theoryName}
	}

	return &Proof{
		theorem:    theorem,
		theory:     theoryName,
		axiomsUsed: make(map[string]bool),
	}, nil
}

// AddStep appends a step to a proof under construction.  The step is
// checked on entry: premise indices must reference strictly earlier steps,
// and the statement must be a legal output of the rule applied to the cited
// premises (for axiom applications, it must equal an axiom of the proof's
// theory or one of its transitive dependencies).  Illegal steps are
// rejected and leave the proof unchanged.
func (k *Kernel) AddStep(p *Proof, statement expr.Expr, rule Rule,
	premises []uint, justification string) (Step, error) {
	if p.finalized {
		return Step{}, ErrProofFinalized
	}
	//
	index := uint(len(p.steps))
	// No forward or self references
	for _, premise := range premises {
		if premise >= index {
			return Step{}, &InvalidPremiseError{index, premise}
		}
	}
	// Rule-shape check against the cited premises
	cited := make([]Step, len(premises))
	for i, premise := range premises {
		cited[i] = p.steps[premise]
	}

	axiom, err := k.checkShape(p.theory, index, statement, rule, cited)
	if err != nil {
		return Step{}, err
	}

	step := Step{
		index:         index,
		statement:     statement,
		rule:          rule,
		premises:      append([]uint(nil), premises...),
		justification: justification,
	}
	//
	p.steps = append(p.steps, step)

	if axiom != "" {
		p.axiomsUsed[axiom] = true
	}

	return step, nil
}

// Reconstruct the claimed statement from rule and premises, reporting a
// structured error on any mismatch.  For axiom applications the qualified
// axiom name is returned.
func (k *Kernel) checkShape(theoryName string, index uint, statement expr.Expr,
	rule Rule, premises []Step) (string, error) {
	shape := func(reason string) error {
		return &RuleShapeError{index, rule, reason}
	}
	//
	switch rule {
	case AxiomApplication:
		if len(premises) != 0 {
			return "", shape("axiom application takes no premises")
		}

		axiom, ok := k.library.FindAxiom(theoryName, statement)
		if !ok {
			return "", &UnknownAxiomError{index, theoryName, statement}
		}

		return axiom, nil
	case ModusPonens:
		if len(premises) != 2 {
			return "", shape(fmt.Sprintf("expects premises [P, P ⟹ Q], got %d premises", len(premises)))
		}

		implication, ok := premises[1].statement.(*expr.Binary)
		if !ok || implication.Op != expr.Implies {
			return "", shape("second premise is not an implication")
		}

		if !expr.Equal(implication.Left, premises[0].statement) {
			return "", shape("first premise does not match the antecedent of the second")
		}

		if !expr.Equal(statement, implication.Right) {
			return "", shape("statement is not the consequent of the implication")
		}

		return "", nil
	case Substitution, UniversalInstantiation:
		if len(premises) != 1 {
			return "", shape("expects a single universally quantified premise")
		}

		universal, ok := premises[0].statement.(*expr.Quantifier)
		if !ok || universal.Kind != expr.Forall {
			return "", shape("premise is not universally quantified")
		}

		if _, ok := checkInstance(universal.Body, statement, universal.Binder); !ok {
			return "", shape("statement is not an instance of the premise")
		}

		return "", nil
	case UniversalGeneralization:
		if len(premises) != 1 {
			return "", shape("expects a single premise")
		}

		universal, ok := statement.(*expr.Quantifier)
		if !ok || universal.Kind != expr.Forall {
			return "", shape("statement is not universally quantified")
		}

		if _, ok := checkInstance(universal.Body, premises[0].statement, universal.Binder); !ok {
			return "", shape("premise is not an instance of the statement")
		}

		return "", nil
	}
	//
	return "", shape("unknown inference rule")
}

// Result is the outcome of validating a proof.  A failed validation is an
// expected outcome, not an exception, hence a value rather than an error.
type Result struct {
	// Whether every step reconstructed and the final step proves the
	// theorem.
	Valid bool
	// Index of the first failing step, or -1 when valid.
	FailingStep int
	// Description of the first failure, or empty when valid.
	Reason string
}

// Validate re-derives every step of a proof independently: each statement
// is reconstructed strictly from its cited premises and rule and compared
// structurally with what the step claims, and the final step must equal the
// proof's theorem.  Validation consults nothing beyond the proof's content
// and the kernel's theory library, making it a pure, repeatable function of
// its inputs.
func (k *Kernel) Validate(p *Proof) Result {
	if len(p.steps) == 0 {
		return Result{false, -1, "proof has no steps"}
	}
	//
	for i, step := range p.steps {
		for _, premise := range step.premises {
			if premise >= uint(i) {
				reason := fmt.Sprintf("premise index %d does not reference an earlier step", premise)
				return Result{false, i, reason}
			}
		}

		cited := make([]Step, len(step.premises))
		for j, premise := range step.premises {
			cited[j] = p.steps[premise]
		}

		if _, err := k.checkShape(p.theory, uint(i), step.statement, step.rule, cited); err != nil {
			return Result{false, i, err.Error()}
		}
	}
	// The last step must establish the theorem itself
	last := len(p.steps) - 1
	if !expr.Equal(p.steps[last].statement, p.theorem) {
		return Result{false, last, "final statement does not match the theorem"}
	}

	return Result{true, -1, ""}
}

// Finalize declares a proof complete: it is validated, its digest is
// computed, and it becomes immutable.  Finalizing an unmodified proof again
// reproduces the identical hash.
func (k *Kernel) Finalize(p *Proof) Result {
	result := k.Validate(p)
	//
	p.valid = result.Valid
	p.hash = digest(p)
	p.finalized = true
	//
	return result
}
