// Package session tracks completed proofs across a working session: each
// finalized proof is recorded with its digest and a fresh identifier, and
// the resulting history can be queried, summarized, exported to JSON and
// imported again.
package session

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/axion-project/axion/pkg/kernel"
)

// Record summarises one completed proof.  Records are self-contained: they
// carry the canonical theorem text rather than referencing the proof object,
// so a session survives export and re-import losslessly.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Theorem    string    `json:"theorem"`
	Theory     string    `json:"theory"`
	ProofHash  string    `json:"proof_hash"`
	Timestamp  time.Time `json:"timestamp"`
	AxiomsUsed []string  `json:"axioms_used"`
	StepCount  int       `json:"step_count"`
	Valid      bool      `json:"is_valid"`
}

// Session is an in-memory history of proof records.  Not safe for
// concurrent use.
type Session struct {
	records []Record
	// Record indices by theorem text.
	byTheorem map[string][]int
	// Overridable clock.
	now func() time.Time
}

// NewSession constructs an empty session.
func NewSession() *Session {
	return &Session{
		byTheorem: make(map[string][]int),
		now:       time.Now,
	}
}

// Add registers a finalized proof and returns its record.
func (s *Session) Add(p *kernel.Proof) (Record, error) {
	if !p.Finalized() {
		return Record{}, fmt.Errorf("cannot record a proof before it is finalized")
	}
	//
	record := Record{
		ID:         uuid.New(),
		Theorem:    p.Theorem().String(),
		Theory:     p.Theory(),
		ProofHash:  p.Hash(),
		Timestamp:  s.now(),
		AxiomsUsed: p.AxiomsUsed(),
		StepCount:  p.Len(),
		Valid:      p.IsValid(),
	}
	//
	s.insert(record)
	//
	return record, nil
}

func (s *Session) insert(record Record) {
	s.records = append(s.records, record)
	s.byTheorem[record.Theorem] = append(s.byTheorem[record.Theorem], len(s.records)-1)
}

// ByHash retrieves the record of the proof with the given digest.
func (s *Session) ByHash(hash string) (Record, bool) {
	for _, record := range s.records {
		if record.ProofHash == hash {
			return record, true
		}
	}
	//
	return Record{}, false
}

// Verify reports whether a proof with the given digest was recorded and
// validated.
func (s *Session) Verify(hash string) bool {
	record, ok := s.ByHash(hash)
	//
	return ok && record.Valid
}

// List returns the recorded proofs in insertion order, restricted to the
// named theory when one is given.
func (s *Session) List(theory string) []Record {
	var records []Record
	//
	for _, record := range s.records {
		if theory == "" || record.Theory == theory {
			records = append(records, record)
		}
	}
	//
	return records
}

// Theorems returns the distinct validly proven theorems, sorted, restricted
// to the named theory when one is given.
func (s *Session) Theorems(theory string) []string {
	seen := make(map[string]bool)
	var theorems []string
	//
	for _, record := range s.records {
		if !record.Valid || (theory != "" && record.Theory != theory) {
			continue
		}

		if !seen[record.Theorem] {
			seen[record.Theorem] = true
			theorems = append(theorems, record.Theorem)
		}
	}

	sort.Strings(theorems)
	//
	return theorems
}

// Statistics summarises a session's history.
type Statistics struct {
	TotalProofs    int            `json:"total_proofs"`
	ValidProofs    int            `json:"valid_proofs"`
	UniqueTheorems int            `json:"unique_theorems"`
	TheoriesUsed   []string       `json:"theories_used"`
	AxiomUsage     map[string]int `json:"axiom_usage"`
}

// Statistics computes summary figures over the recorded history.
func (s *Session) Statistics() Statistics {
	theories := make(map[string]bool)
	usage := make(map[string]int)
	valid := 0
	//
	for _, record := range s.records {
		theories[record.Theory] = true

		if record.Valid {
			valid++
		}

		for _, axiom := range record.AxiomsUsed {
			usage[axiom]++
		}
	}

	names := make([]string, 0, len(theories))
	for name := range theories {
		names = append(names, name)
	}

	sort.Strings(names)
	//
	return Statistics{
		TotalProofs:    len(s.records),
		ValidProofs:    valid,
		UniqueTheorems: len(s.byTheorem),
		TheoriesUsed:   names,
		AxiomUsage:     usage,
	}
}

// Clear discards all recorded history.
func (s *Session) Clear() {
	s.records = nil
	s.byTheorem = make(map[string][]int)
}

type sessionFile struct {
	ExportedAt time.Time `json:"exported_at"`
	ProofCount int       `json:"proof_count"`
	Records    []Record  `json:"records"`
}

// Export writes the session history as indented JSON.
func (s *Session) Export(w io.Writer) error {
	file := sessionFile{
		ExportedAt: s.now(),
		ProofCount: len(s.records),
		Records:    s.records,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	//
	return encoder.Encode(file)
}

// Import appends the records of a previously exported session.
func (s *Session) Import(r io.Reader) error {
	var file sessionFile
	//
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return fmt.Errorf("malformed session file: %w", err)
	}

	for _, record := range file.Records {
		s.insert(record)
	}
	//
	return nil
}
