package kernel

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// The proof digest is SHA-256 over a canonical JSON serialization: fixed
// field order (guaranteed by the struct definitions below), steps in proof
// order, axiom names sorted, and every expression rendered through the
// canonical printer.  Two structurally identical proofs therefore hash
// identically regardless of how their intermediate objects were built,
// whilst any mutation or reordering of a step changes the digest.

type canonicalStep struct {
	Statement     string `json:"statement"`
	Rule          string `json:"rule"`
	Premises      []uint `json:"premises"`
	Justification string `json:"justification"`
}

type canonicalProof struct {
	Theorem string          `json:"theorem"`
	Theory  string          `json:"theory"`
	Axioms  []string        `json:"axioms"`
	Steps   []canonicalStep `json:"steps"`
}

// Compute the hex-encoded digest of a proof's full content.
func digest(p *Proof) string {
	steps := make([]canonicalStep, len(p.steps))
	//
	for i, step := range p.steps {
		premises := step.premises
		if premises == nil {
			premises = []uint{}
		}

		steps[i] = canonicalStep{
			Statement:     step.statement.String(),
			Rule:          step.rule.String(),
			Premises:      premises,
			Justification: step.justification,
		}
	}
	//
	canonical := canonicalProof{
		Theorem: p.theorem.String(),
		Theory:  p.theory,
		Axioms:  p.AxiomsUsed(),
		Steps:   steps,
	}
	// Canonical JSON of fixed-field structs cannot fail to marshal
	bytes, err := json.Marshal(canonical)
	if err != nil {
		panic(err)
	}

	sum := sha256.Sum256(bytes)
	//
	return hex.EncodeToString(sum[:])
}
