package solver

import (
	"errors"
	"testing"

	"github.com/axion-project/axion/pkg/expr"
	"github.com/axion-project/axion/pkg/kernel"
	"github.com/axion-project/axion/pkg/parser"
	"github.com/axion-project/axion/pkg/theory"
)

func TestProveAxiom(t *testing.T) {
	proof := CheckProved(t, "∀x: x = x", "Logic")
	//
	if proof.Len() == 0 || !proof.IsValid() {
		t.Error("expected a finalized, valid proof")
	}
}

func TestProveByInstantiation(t *testing.T) {
	// 0 = 0 follows from ∀x: x = x with the candidate term 0
	proof := CheckProved(t, "0 = 0", "Logic")
	steps := proof.Steps()
	//
	last := steps[len(steps)-1]
	if last.Rule() != kernel.UniversalInstantiation {
		t.Errorf("expected final step by universal instantiation, got %s", last.Rule())
	}
}

func TestProveByChaining(t *testing.T) {
	proof := CheckProved(t, "R", "Chain")
	//
	// R needs two rounds: P ⟹ Q fires first, then Q ⟹ R
	rules := make(map[kernel.Rule]int)
	for _, step := range proof.Steps() {
		rules[step.Rule()]++
	}

	if rules[kernel.ModusPonens] < 2 {
		t.Errorf("expected at least two modus ponens steps, got %d", rules[kernel.ModusPonens])
	}
}

func TestProveFails(t *testing.T) {
	prover := NewTestProver()
	var notProved *NotProvedError
	//
	proof, err := prover.Prove(ParseFor(t, "0 = 1"), "Logic")
	if !errors.As(err, &notProved) {
		t.Fatalf("expected not-proved error, got %v", err)
	}
	// The partial search transcript is still returned
	if proof == nil || proof.Len() == 0 {
		t.Error("expected the partial proof to be returned")
	}
}

func TestProveUnknownTheory(t *testing.T) {
	prover := NewTestProver()
	//
	if _, err := prover.Prove(ParseFor(t, "0 = 0"), "Octonions"); err == nil {
		t.Error("expected an error for an unknown theory")
	}
}

func TestProveDeterministic(t *testing.T) {
	first := CheckProved(t, "R", "Chain")
	second := CheckProved(t, "R", "Chain")
	//
	if first.Hash() != second.Hash() {
		t.Errorf("identical searches must produce identical proofs: %s vs %s",
			first.Hash(), second.Hash())
	}
}

func TestRoundLimit(t *testing.T) {
	prover := NewTestProver()
	prover.MaxRounds = 1
	// One round is not enough to chain P ⟹ Q ⟹ R
	if _, err := prover.Prove(ParseFor(t, "R"), "Chain"); err == nil {
		t.Error("expected the round limit to stop the search")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func NewTestProver() *Prover {
	library := theory.StandardLibrary()
	//
	chain := theory.NewTheory("Chain", "Implication chain fixture")
	for _, axiom := range [][2]string{
		{"p", "P"},
		{"p_implies_q", "P ⟹ Q"},
		{"q_implies_r", "Q ⟹ R"},
	} {
		if err := chain.AddAxiom(axiom[0], axiom[1]); err != nil {
			panic(err)
		}
	}

	library.Add(chain)
	//
	return NewProver(kernel.New(library))
}

func ParseFor(t *testing.T, input string) expr.Expr {
	t.Helper()
	e, err := parser.Parse(input)

	if err != nil {
		t.Fatalf("parsing %q failed: %s", input, err)
	}

	return e
}

func CheckProved(t *testing.T, theorem string, theoryName string) *kernel.Proof {
	t.Helper()
	prover := NewTestProver()
	//
	proof, err := prover.Prove(ParseFor(t, theorem), theoryName)
	if err != nil {
		t.Fatalf("proving %q failed: %s", theorem, err)
	}

	if !proof.IsValid() {
		t.Fatalf("proof of %q did not validate", theorem)
	}

	return proof
}
