// Package theory provides named collections of axioms with dependency edges
// between them.  From the kernel's perspective a theory is read only: axiom
// lookup during proof construction never mutates the library, which is what
// keeps proof validation a pure function of its inputs and lets independent
// proofs share one library across goroutines.
package theory

import (
	"fmt"

	"github.com/axion-project/axion/pkg/expr"
	"github.com/axion-project/axion/pkg/parser"
)

// Axiom pairs an axiom's name with its parsed statement.
type Axiom struct {
	Name      string
	Statement expr.Expr
}

// Theory is a named, closed set of axioms plus dependency edges to other
// theories.  Axioms retain their declaration order so that listings and
// axiom seeding are deterministic.
type Theory struct {
	name        string
	description string
	axioms      map[string]expr.Expr
	// Declaration order of axiom names
	order        []string
	dependencies []string
}

// NewTheory constructs an empty theory with the given dependencies.
func NewTheory(name string, description string, dependencies ...string) *Theory {
	return &Theory{
		name:         name,
		description:  description,
		axioms:       make(map[string]expr.Expr),
		dependencies: dependencies,
	}
}

// Name returns the name of this theory.
func (t *Theory) Name() string {
	return t.name
}

// Description returns the human-readable description of this theory.
func (t *Theory) Description() string {
	return t.description
}

// Dependencies returns the names of the theories this theory builds upon.
func (t *Theory) Dependencies() []string {
	deps := make([]string, len(t.dependencies))
	copy(deps, t.dependencies)
	//
	return deps
}

// AddAxiom parses a statement and records it under the given name,
// replacing any previous axiom of that name.
func (t *Theory) AddAxiom(name string, statement string) error {
	e, err := parser.Parse(statement)
	if err != nil {
		return fmt.Errorf("axiom %s.%s: %w", t.name, name, err)
	}

	if _, exists := t.axioms[name]; !exists {
		t.order = append(t.order, name)
	}

	t.axioms[name] = e
	//
	return nil
}

// Axiom looks up an axiom of this theory by name.
func (t *Theory) Axiom(name string) (expr.Expr, bool) {
	e, ok := t.axioms[name]
	return e, ok
}

// Axioms returns all axioms of this theory in declaration order.
func (t *Theory) Axioms() []Axiom {
	axioms := make([]Axiom, len(t.order))
	for i, name := range t.order {
		axioms[i] = Axiom{name, t.axioms[name]}
	}

	return axioms
}

// Library is a repository of theories.  Once populated it should be treated
// as read only; the kernel and solver only ever query it.
type Library struct {
	theories map[string]*Theory
	// Registration order of theory names
	order []string
}

// NewLibrary constructs an empty library.
func NewLibrary() *Library {
	return &Library{theories: make(map[string]*Theory)}
}

// Add registers a theory, replacing any previous theory of the same name.
func (l *Library) Add(t *Theory) {
	if _, exists := l.theories[t.name]; !exists {
		l.order = append(l.order, t.name)
	}

	l.theories[t.name] = t
}

// Theory looks up a theory by name.
func (l *Library) Theory(name string) (*Theory, bool) {
	t, ok := l.theories[name]
	return t, ok
}

// List returns the names of all registered theories in registration order.
func (l *Library) List() []string {
	names := make([]string, len(l.order))
	copy(names, l.order)
	//
	return names
}

// FindAxiom searches the named theory and, transitively, its declared
// dependencies for an axiom whose statement is structurally equal to the
// given expression.  On success it returns the qualified "Theory.axiom"
// name.  The search order is deterministic: breadth first over dependencies
// in declaration order, axioms in declaration order.
func (l *Library) FindAxiom(theoryName string, statement expr.Expr) (string, bool) {
	visited := make(map[string]bool)
	worklist := []string{theoryName}
	//
	for len(worklist) > 0 {
		name := worklist[0]
		worklist = worklist[1:]
		//
		if visited[name] {
			continue
		}

		visited[name] = true
		//
		t, ok := l.theories[name]
		if !ok {
			continue
		}

		for _, axiom := range t.Axioms() {
			if expr.Equal(axiom.Statement, statement) {
				return fmt.Sprintf("%s.%s", t.name, axiom.Name), true
			}
		}

		worklist = append(worklist, t.dependencies...)
	}
	//
	return "", false
}
