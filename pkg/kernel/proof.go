package kernel

import (
	"sort"

	"github.com/axion-project/axion/pkg/expr"
)

// Step is a single justified line of a proof.  Steps are immutable values:
// once appended they can be read but never edited, and they reference their
// premises by index rather than by copy, which structurally rules out
// forward and self references.
type Step struct {
	index         uint
	statement     expr.Expr
	rule          Rule
	premises      []uint
	justification string
}

// Index returns this step's ordinal position within its proof.
func (s Step) Index() uint {
	return s.index
}

// Statement returns the expression this step claims.
func (s Step) Statement() expr.Expr {
	return s.statement
}

// Rule returns the inference rule justifying this step.
func (s Step) Rule() Rule {
	return s.rule
}

// Premises returns the indices of the earlier steps this step builds on.
func (s Step) Premises() []uint {
	premises := make([]uint, len(s.premises))
	copy(premises, s.premises)
	//
	return premises
}

// Justification returns the human-readable annotation of this step.
func (s Step) Justification() string {
	return s.justification
}

// Proof is an append-only sequence of steps aiming at a fixed theorem
// within a fixed theory.  It is constructed through Kernel.CreateProof and
// Kernel.AddStep, and becomes immutable once finalized, at which point its
// validity and cryptographic hash are available.
type Proof struct {
	theorem expr.Expr
	theory  string
	steps   []Step
	// Qualified names of axioms cited by axiom-application steps.
	// Derived, never authored.
	axiomsUsed map[string]bool
	finalized  bool
	valid      bool
	hash       string
}

// Theorem returns the goal statement of this proof.
func (p *Proof) Theorem() expr.Expr {
	return p.theorem
}

// Theory returns the name of the theory this proof works within.
func (p *Proof) Theory() string {
	return p.theory
}

// Steps returns the proof's steps in order.
func (p *Proof) Steps() []Step {
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	//
	return steps
}

// Len returns the number of steps appended so far.
func (p *Proof) Len() int {
	return len(p.steps)
}

// AxiomsUsed returns the qualified names of the axioms cited by this
// proof's axiom-application steps, in lexicographic order.
func (p *Proof) AxiomsUsed() []string {
	names := make([]string, 0, len(p.axiomsUsed))
	for name := range p.axiomsUsed {
		names = append(names, name)
	}

	sort.Strings(names)
	//
	return names
}

// Finalized reports whether this proof has been declared complete.
func (p *Proof) Finalized() bool {
	return p.finalized
}

// IsValid reports whether validation succeeded at finalization time.
// Meaningless before the proof is finalized.
func (p *Proof) IsValid() bool {
	return p.valid
}

// Hash returns the proof's cryptographic digest, computed at finalization.
// Empty before the proof is finalized.
func (p *Proof) Hash() string {
	return p.hash
}
