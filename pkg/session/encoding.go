package session

import (
	"encoding/json"
	"fmt"

	"github.com/axion-project/axion/pkg/kernel"
	"github.com/axion-project/axion/pkg/parser"
)

// Full proofs are exchanged as JSON carrying every step in canonical text
// form.  Decoding replays the steps through the kernel, so an imported
// proof is re-checked line by line, and its recomputed digest must match
// the one stored in the file.

type proofStepFile struct {
	Statement     string `json:"statement"`
	Rule          string `json:"rule"`
	Premises      []uint `json:"premises"`
	Justification string `json:"justification"`
}

type proofFile struct {
	Theorem string          `json:"theorem"`
	Theory  string          `json:"theory"`
	Hash    string          `json:"proof_hash"`
	Valid   bool            `json:"is_valid"`
	Steps   []proofStepFile `json:"steps"`
}

// EncodeProof serializes a finalized proof as indented JSON.
func EncodeProof(p *kernel.Proof) ([]byte, error) {
	if !p.Finalized() {
		return nil, fmt.Errorf("cannot encode a proof before it is finalized")
	}
	//
	steps := make([]proofStepFile, p.Len())
	for i, step := range p.Steps() {
		steps[i] = proofStepFile{
			Statement:     step.Statement().String(),
			Rule:          step.Rule().String(),
			Premises:      step.Premises(),
			Justification: step.Justification(),
		}
	}
	//
	return json.MarshalIndent(proofFile{
		Theorem: p.Theorem().String(),
		Theory:  p.Theory(),
		Hash:    p.Hash(),
		Valid:   p.IsValid(),
		Steps:   steps,
	}, "", "  ")
}

// DecodeProof rebuilds a proof from its serialized form by replaying every
// step through the kernel.  Steps that no longer check, or a recomputed
// digest differing from the stored one, fail the decode.
func DecodeProof(data []byte, k *kernel.Kernel) (*kernel.Proof, error) {
	var file proofFile
	//
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("malformed proof file: %w", err)
	}

	theorem, err := parser.Parse(file.Theorem)
	if err != nil {
		return nil, fmt.Errorf("theorem %q: %w", file.Theorem, err)
	}

	proof, err := k.CreateProof(theorem, file.Theory)
	if err != nil {
		return nil, err
	}

	for i, step := range file.Steps {
		statement, err := parser.Parse(step.Statement)
		if err != nil {
			return nil, fmt.Errorf("step %d statement %q: %w", i, step.Statement, err)
		}

		rule, ok := kernel.RuleOf(step.Rule)
		if !ok {
			return nil, fmt.Errorf("step %d: unknown rule %q", i, step.Rule)
		}

		if _, err := k.AddStep(proof, statement, rule, step.Premises, step.Justification); err != nil {
			return nil, fmt.Errorf("step %d does not check: %w", i, err)
		}
	}

	k.Finalize(proof)

	if proof.Hash() != file.Hash {
		return nil, fmt.Errorf("digest mismatch: recomputed %s, file claims %s",
			proof.Hash(), file.Hash)
	}
	//
	return proof, nil
}
