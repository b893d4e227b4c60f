package kernel

import (
	"errors"
	"testing"

	"github.com/axion-project/axion/pkg/expr"
	"github.com/axion-project/axion/pkg/parser"
	"github.com/axion-project/axion/pkg/theory"
)

// ============================================================================
// Proof Construction
// ============================================================================

func TestAxiomApplication_1(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "∀x: x = x", "Logic")
	//
	AddOk(t, k, p, "∀x: x = x", AxiomApplication, nil)
	//
	result := k.Finalize(p)
	if !result.Valid {
		t.Fatalf("expected valid proof, got failure at step %d: %s", result.FailingStep, result.Reason)
	}

	if !p.IsValid() || p.Hash() == "" {
		t.Error("finalized proof should carry validity and hash")
	}

	CheckStrings(t, []string{"Logic.identity"}, p.AxiomsUsed())
}

func TestAxiomApplication_2(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "∀x: x = x", "Logic")
	// Statement matching no axiom
	var unknown *UnknownAxiomError
	//
	_, err := k.AddStep(p, ParseFor(t, "Q ∧ Q"), AxiomApplication, nil, "")
	if !errors.As(err, &unknown) {
		t.Fatalf("expected unknown axiom error, got %v", err)
	}

	if p.Len() != 0 {
		t.Error("rejected step must leave the proof unchanged")
	}
}

func TestAxiomApplication_3(t *testing.T) {
	// Axioms of dependency theories are reachable transitively
	k := NewTestKernel()
	p := CreateFor(t, k, "∀a,b ∈ G: a · b ∈ G", "Fields")
	//
	AddOk(t, k, p, "∀a,b ∈ G: a · b ∈ G", AxiomApplication, nil)
	CheckStrings(t, []string{"Groups.closure"}, p.AxiomsUsed())
}

func TestModusPonens_1(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "Q", "Propositions")
	//
	AddOk(t, k, p, "P", AxiomApplication, nil)
	AddOk(t, k, p, "P ⟹ Q", AxiomApplication, nil)
	AddOk(t, k, p, "Q", ModusPonens, []uint{0, 1})
	//
	if result := k.Finalize(p); !result.Valid {
		t.Fatalf("expected valid proof, got failure at step %d: %s", result.FailingStep, result.Reason)
	}
}

func TestModusPonens_2(t *testing.T) {
	// Second premise not an implication
	k := NewTestKernel()
	p := CreateFor(t, k, "Q", "Propositions")
	//
	AddOk(t, k, p, "P", AxiomApplication, nil)
	AddOk(t, k, p, "Q ∨ R", AxiomApplication, nil)
	AddShapeErr(t, k, p, "Q", ModusPonens, []uint{0, 1})
}

func TestModusPonens_3(t *testing.T) {
	// Swapped premises: antecedent check must fail
	k := NewTestKernel()
	p := CreateFor(t, k, "Q", "Propositions")
	//
	AddOk(t, k, p, "P", AxiomApplication, nil)
	AddOk(t, k, p, "P ⟹ Q", AxiomApplication, nil)
	AddShapeErr(t, k, p, "P", ModusPonens, []uint{1, 0})
}

func TestUniversalInstantiation_1(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "0 = 0", "Logic")
	//
	AddOk(t, k, p, "∀x: x = x", AxiomApplication, nil)
	AddOk(t, k, p, "0 = 0", UniversalInstantiation, []uint{0})
	//
	if result := k.Finalize(p); !result.Valid {
		t.Fatalf("expected valid proof, got failure at step %d: %s", result.FailingStep, result.Reason)
	}
}

func TestUniversalInstantiation_2(t *testing.T) {
	// Inconsistent instantiation: x cannot be both 0 and 1
	k := NewTestKernel()
	p := CreateFor(t, k, "0 = 1", "Logic")
	//
	AddOk(t, k, p, "∀x: x = x", AxiomApplication, nil)
	AddShapeErr(t, k, p, "0 = 1", UniversalInstantiation, []uint{0})
}

func TestSubstitution_1(t *testing.T) {
	// Substitution with a compound term
	k := NewTestKernel()
	p := CreateFor(t, k, "S(n) + 0 = S(n)", "Peano")
	//
	AddOk(t, k, p, "∀n: n + 0 = n", AxiomApplication, nil)
	AddOk(t, k, p, "S(n) + 0 = S(n)", Substitution, []uint{0})
	//
	if result := k.Finalize(p); !result.Valid {
		t.Fatalf("expected valid proof, got failure at step %d: %s", result.FailingStep, result.Reason)
	}
}

func TestSubstitution_2(t *testing.T) {
	// Premise must be universally quantified
	k := NewTestKernel()
	p := CreateFor(t, k, "0 ∈ ℕ", "Peano")
	//
	AddOk(t, k, p, "0 ∈ ℕ", AxiomApplication, nil)
	AddShapeErr(t, k, p, "0 ∈ ℕ", Substitution, []uint{0})
}

func TestUniversalGeneralization_1(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "∀n: n ∈ ℕ", "Peano")
	//
	AddOk(t, k, p, "0 ∈ ℕ", AxiomApplication, nil)
	AddOk(t, k, p, "∀n: n ∈ ℕ", UniversalGeneralization, []uint{0})
	//
	if result := k.Finalize(p); !result.Valid {
		t.Fatalf("expected valid proof, got failure at step %d: %s", result.FailingStep, result.Reason)
	}
}

func TestInvalidPremise_1(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "Q", "Propositions")
	var invalid *InvalidPremiseError
	//
	AddOk(t, k, p, "P", AxiomApplication, nil)
	// Premise index beyond the current step count
	_, err := k.AddStep(p, ParseFor(t, "Q"), ModusPonens, []uint{0, 1}, "")
	if !errors.As(err, &invalid) {
		t.Fatalf("expected invalid premise error, got %v", err)
	}
	// Self reference
	_, err = k.AddStep(p, ParseFor(t, "Q"), ModusPonens, []uint{1, 0}, "")
	if !errors.As(err, &invalid) {
		t.Fatalf("expected invalid premise error, got %v", err)
	}
}

func TestUnknownTheory(t *testing.T) {
	k := NewTestKernel()
	var unknown *UnknownTheoryError
	//
	_, err := k.CreateProof(ParseFor(t, "∀x: x = x"), "Quaternions")
	if !errors.As(err, &unknown) {
		t.Fatalf("expected unknown theory error, got %v", err)
	}
}

func TestAppendAfterFinalize(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "∀x: x = x", "Logic")
	//
	AddOk(t, k, p, "∀x: x = x", AxiomApplication, nil)
	k.Finalize(p)
	//
	if _, err := k.AddStep(p, ParseFor(t, "∀x: x = x"), AxiomApplication, nil, ""); !errors.Is(err, ErrProofFinalized) {
		t.Fatalf("expected %v, got %v", ErrProofFinalized, err)
	}
}

// ============================================================================
// Validation
// ============================================================================

func TestValidateEmptyProof(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "∀x: x = x", "Logic")
	//
	if result := k.Validate(p); result.Valid {
		t.Error("empty proof must not validate")
	}
}

func TestValidateWrongConclusion(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "0 = 0", "Logic")
	//
	AddOk(t, k, p, "∀x: x = x", AxiomApplication, nil)
	//
	result := k.Validate(p)
	if result.Valid {
		t.Fatal("proof whose last step is not the theorem must not validate")
	}

	if result.FailingStep != 0 {
		t.Errorf("expected failure at step 0, got %d", result.FailingStep)
	}
}

func TestValidateSwappedPremises(t *testing.T) {
	// A tampered proof whose modus ponens premises are swapped must be
	// rejected at the right step.  Construct the steps directly, below
	// the AddStep gate, exactly as a hostile import would.
	k := NewTestKernel()
	p := CreateFor(t, k, "Q", "Propositions")
	//
	p.steps = []Step{
		{0, ParseFor(t, "P"), AxiomApplication, nil, ""},
		{1, ParseFor(t, "P ⟹ Q"), AxiomApplication, nil, ""},
		{2, ParseFor(t, "Q"), ModusPonens, []uint{1, 0}, ""},
	}
	//
	result := k.Validate(p)
	if result.Valid {
		t.Fatal("swapped premises must not validate")
	}

	if result.FailingStep != 2 {
		t.Errorf("expected failure at step 2, got %d", result.FailingStep)
	}
}

func TestValidateForgedStatement(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "R", "Propositions")
	//
	p.steps = []Step{
		{0, ParseFor(t, "P"), AxiomApplication, nil, ""},
		{1, ParseFor(t, "P ⟹ Q"), AxiomApplication, nil, ""},
		// Claims R, but the implication concludes Q
		{2, ParseFor(t, "R"), ModusPonens, []uint{0, 1}, ""},
	}
	//
	result := k.Validate(p)
	if result.Valid || result.FailingStep != 2 {
		t.Errorf("expected failure at step 2, got %+v", result)
	}
}

// ============================================================================
// Hashing
// ============================================================================

func TestHashReproducible(t *testing.T) {
	h1 := BuildIdentityProof(t).Hash()
	h2 := BuildIdentityProof(t).Hash()
	//
	if h1 != h2 {
		t.Errorf("identical proofs must hash identically: %s vs %s", h1, h2)
	}
}

func TestHashRefinalizeStable(t *testing.T) {
	k := NewTestKernel()
	p := CreateFor(t, k, "∀x: x = x", "Logic")
	AddOk(t, k, p, "∀x: x = x", AxiomApplication, nil)
	//
	k.Finalize(p)
	h1 := p.Hash()
	k.Finalize(p)
	//
	if h1 != p.Hash() {
		t.Error("re-finalizing an unmodified proof must reproduce the hash")
	}
}

func TestHashSensitivity(t *testing.T) {
	k := NewTestKernel()
	base := BuildModusPonensProof(t, k, "by modus ponens")
	//
	// Different justification text
	differing := BuildModusPonensProof(t, k, "different text")
	if base.Hash() == differing.Hash() {
		t.Error("changing a step's justification must change the hash")
	}
	// Different step order
	reordered := BuildModusPonensProof(t, k, "by modus ponens")
	reordered.steps[0], reordered.steps[1] = reordered.steps[1], reordered.steps[0]
	if base.Hash() == digest(reordered) {
		t.Error("reordering steps must change the hash")
	}
	// Different statement
	mutated := BuildModusPonensProof(t, k, "by modus ponens")
	mutated.steps[2].statement = ParseFor(t, "R")
	if base.Hash() == digest(mutated) {
		t.Error("mutating a statement must change the hash")
	}
	// Different rule
	ruled := BuildModusPonensProof(t, k, "by modus ponens")
	ruled.steps[2].rule = Substitution
	if base.Hash() == digest(ruled) {
		t.Error("mutating a rule must change the hash")
	}
	// Different premise order
	premised := BuildModusPonensProof(t, k, "by modus ponens")
	premised.steps[2].premises = []uint{1, 0}
	if base.Hash() == digest(premised) {
		t.Error("mutating premises must change the hash")
	}
}

// ============================================================================
// Helpers
// ============================================================================

// NewTestKernel builds a kernel over the standard library extended with a
// propositional test theory.
func NewTestKernel() *Kernel {
	library := theory.StandardLibrary()
	//
	propositions := theory.NewTheory("Propositions", "Test propositions")
	mustAddAxiom(propositions, "p", "P")
	mustAddAxiom(propositions, "p_implies_q", "P ⟹ Q")
	mustAddAxiom(propositions, "q_or_r", "Q ∨ R")
	library.Add(propositions)
	//
	return New(library)
}

func mustAddAxiom(th *theory.Theory, name string, statement string) {
	if err := th.AddAxiom(name, statement); err != nil {
		panic(err)
	}
}

func ParseFor(t *testing.T, input string) expr.Expr {
	t.Helper()
	e, err := parser.Parse(input)

	if err != nil {
		t.Fatalf("parsing %q failed: %s", input, err)
	}

	return e
}

func CreateFor(t *testing.T, k *Kernel, theorem string, theoryName string) *Proof {
	t.Helper()
	p, err := k.CreateProof(ParseFor(t, theorem), theoryName)

	if err != nil {
		t.Fatalf("creating proof failed: %s", err)
	}

	return p
}

func AddOk(t *testing.T, k *Kernel, p *Proof, statement string, rule Rule, premises []uint) {
	t.Helper()

	if _, err := k.AddStep(p, ParseFor(t, statement), rule, premises, ""); err != nil {
		t.Fatalf("adding step %q failed: %s", statement, err)
	}
}

func AddShapeErr(t *testing.T, k *Kernel, p *Proof, statement string, rule Rule, premises []uint) {
	t.Helper()
	var shape *RuleShapeError
	//
	_, err := k.AddStep(p, ParseFor(t, statement), rule, premises, "")
	if !errors.As(err, &shape) {
		t.Fatalf("adding step %q: expected rule shape error, got %v", statement, err)
	}
}

func BuildIdentityProof(t *testing.T) *Proof {
	t.Helper()
	k := NewTestKernel()
	p := CreateFor(t, k, "∀x: x = x", "Logic")
	//
	AddOk(t, k, p, "∀x: x = x", AxiomApplication, nil)

	if result := k.Finalize(p); !result.Valid {
		t.Fatalf("identity proof should be valid: %+v", result)
	}

	return p
}

func BuildModusPonensProof(t *testing.T, k *Kernel, justification string) *Proof {
	t.Helper()
	p := CreateFor(t, k, "Q", "Propositions")
	//
	AddOk(t, k, p, "P", AxiomApplication, nil)
	AddOk(t, k, p, "P ⟹ Q", AxiomApplication, nil)

	if _, err := k.AddStep(p, ParseFor(t, "Q"), ModusPonens, []uint{0, 1}, justification); err != nil {
		t.Fatal(err)
	}

	k.Finalize(p)
	//
	return p
}

func CheckStrings(t *testing.T, expected []string, actual []string) {
	t.Helper()

	if len(expected) != len(actual) {
		t.Errorf("expected %v, got %v", expected, actual)
		return
	}

	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("expected %v, got %v", expected, actual)
			return
		}
	}
}
