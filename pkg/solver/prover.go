// Package solver implements automated proof search on top of the inference
// kernel.  The prover performs bounded forward chaining: it seeds a proof
// with the axioms of the chosen theory, then repeatedly closes the derived
// set under modus ponens and universal instantiation (over a small pool of
// candidate terms) until the theorem appears, no new facts arise, or the
// round limit is hit.  Every derived fact enters the proof through
// Kernel.AddStep, so a successful search yields a proof the kernel itself
// has checked line by line.
package solver

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/axion-project/axion/pkg/expr"
	"github.com/axion-project/axion/pkg/kernel"
	"github.com/axion-project/axion/pkg/parser"
)

// DefaultMaxRounds bounds the number of forward-chaining rounds when the
// caller does not choose a limit.
const DefaultMaxRounds = 25

// Terms tried by universal instantiation, in order.
var candidateTerms = []string{"0", "1", "x", "a", "n"}

// NotProvedError indicates the search space was exhausted without deriving
// the theorem.
type NotProvedError struct {
	theorem expr.Expr
	rounds  uint
}

func (e *NotProvedError) Error() string {
	return fmt.Sprintf("could not prove %s within %d rounds", e.theorem, e.rounds)
}

// Prover searches for proofs by forward chaining.
type Prover struct {
	kernel *kernel.Kernel
	// MaxRounds bounds the number of chaining rounds per attempt.
	MaxRounds uint
}

// NewProver constructs a prover over the given kernel.
func NewProver(k *kernel.Kernel) *Prover {
	return &Prover{k, DefaultMaxRounds}
}

// Prove attempts to derive the theorem within the named theory.  On success
// the returned proof is finalized and valid.  On failure the partial proof
// explored so far is returned together with a NotProvedError, so callers can
// inspect how far the search got.
func (p *Prover) Prove(theorem expr.Expr, theoryName string) (*kernel.Proof, error) {
	proof, err := p.kernel.CreateProof(theorem, theoryName)
	if err != nil {
		return nil, err
	}
	// Canonical strings of every derived statement, for duplicate
	// suppression.
	derived := make(map[string]bool)
	//
	if p.seedAxioms(proof, theoryName, theorem, derived) {
		p.kernel.Finalize(proof)
		return proof, nil
	}

	for round := uint(0); round < p.MaxRounds; round++ {
		added := p.closeOnce(proof, theorem, derived)
		//
		log.Debugf("round %d derived %d new facts (%d steps total)", round, added, proof.Len())

		if derived[theorem.String()] {
			p.kernel.Finalize(proof)
			return proof, nil
		}

		if added == 0 {
			break
		}
	}
	//
	return proof, &NotProvedError{theorem, p.MaxRounds}
}

// Seed the proof with every axiom of the theory and its transitive
// dependencies, reporting whether the theorem itself was among them.
func (p *Prover) seedAxioms(proof *kernel.Proof, theoryName string,
	theorem expr.Expr, derived map[string]bool) bool {
	for _, name := range p.reachableTheories(theoryName) {
		th, _ := p.kernel.Library().Theory(name)
		//
		for _, axiom := range th.Axioms() {
			justification := fmt.Sprintf("axiom %s.%s", name, axiom.Name)

			if _, err := p.kernel.AddStep(proof, axiom.Statement,
				kernel.AxiomApplication, nil, justification); err != nil {
				// Axioms always pass the shape check within their
				// own theory chain.
				panic(err)
			}

			derived[axiom.Statement.String()] = true

			if expr.Equal(axiom.Statement, theorem) {
				return true
			}
		}
	}
	//
	return false
}

// Theories whose axioms the search may cite, in deterministic order: the
// named theory first, then dependencies breadth first.
func (p *Prover) reachableTheories(theoryName string) []string {
	var names []string
	//
	seen := map[string]bool{theoryName: true}
	worklist := []string{theoryName}

	for len(worklist) > 0 {
		name := worklist[0]
		worklist = worklist[1:]
		names = append(names, name)

		if th, ok := p.kernel.Library().Theory(name); ok {
			for _, dep := range th.Dependencies() {
				if !seen[dep] {
					seen[dep] = true
					worklist = append(worklist, dep)
				}
			}
		}
	}
	//
	return names
}

// Run one chaining round over the steps present at entry, returning the
// number of facts derived.  Facts added during the round become premises in
// the next round, which keeps the iteration order deterministic.
func (p *Prover) closeOnce(proof *kernel.Proof, theorem expr.Expr, derived map[string]bool) uint {
	steps := proof.Steps()
	added := uint(0)
	// Modus ponens over all (implication, antecedent) pairs
	for _, si := range steps {
		implication, ok := si.Statement().(*expr.Binary)
		if !ok || implication.Op != expr.Implies {
			continue
		}

		for _, sj := range steps {
			if !expr.Equal(sj.Statement(), implication.Left) {
				continue
			}

			consequent := implication.Right
			if derived[consequent.String()] {
				continue
			}

			premises := []uint{sj.Index(), si.Index()}
			if _, err := p.kernel.AddStep(proof, consequent,
				kernel.ModusPonens, premises, "modus ponens"); err != nil {
				continue
			}

			derived[consequent.String()] = true
			added++

			if expr.Equal(consequent, theorem) {
				return added
			}
		}
	}
	// Universal instantiation with the candidate term pool
	for _, si := range steps {
		universal, ok := si.Statement().(*expr.Quantifier)
		if !ok || universal.Kind != expr.Forall {
			continue
		}

		for _, text := range candidateTerms {
			term, err := parser.Parse(text)
			if err != nil {
				panic(err)
			}

			instance := expr.Substitute(universal.Body, universal.Binder, term)
			if derived[instance.String()] {
				continue
			}

			justification := fmt.Sprintf("instantiation with %s", text)
			if _, err := p.kernel.AddStep(proof, instance,
				kernel.UniversalInstantiation, []uint{si.Index()}, justification); err != nil {
				continue
			}

			derived[instance.String()] = true
			added++

			if expr.Equal(instance, theorem) {
				return added
			}
		}
	}
	//
	return added
}
