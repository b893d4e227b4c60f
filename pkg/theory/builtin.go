package theory

// The built-in theories.  Only axioms expressible in the parser grammar are
// carried; further theories can be supplied as YAML files (see LoadFile).
// Statements use the sugared quantifier forms, which the parser desugars.
var builtins = []struct {
	name         string
	description  string
	dependencies []string
	axioms       [][2]string
}{
	{
		name:        "Logic",
		description: "Classical first-order logic",
		axioms: [][2]string{
			{"excluded_middle", "∀P: P ∨ ¬P"},
			{"non_contradiction", "∀P: ¬(P ∧ ¬P)"},
			{"identity", "∀x: x = x"},
			{"leibniz_equality", "∀x,y: x = y ⟹ (∀P: P(x) ⟺ P(y))"},
		},
	},
	{
		name:        "Peano",
		description: "Natural number arithmetic",
		axioms: [][2]string{
			{"zero_natural", "0 ∈ ℕ"},
			{"successor_natural", "∀n ∈ ℕ: S(n) ∈ ℕ"},
			{"zero_not_successor", "∀n ∈ ℕ: S(n) ≠ 0"},
			{"successor_injective", "∀m,n ∈ ℕ: S(m) = S(n) ⟹ m = n"},
			{"induction", "∀P: (P(0) ∧ (∀n: P(n) ⟹ P(S(n)))) ⟹ (∀n: P(n))"},
			{"addition_zero", "∀n: n + 0 = n"},
			{"addition_successor", "∀m,n: m + S(n) = S(m + n)"},
			{"multiplication_zero", "∀n: n × 0 = 0"},
			{"multiplication_successor", "∀m,n: m × S(n) = m × n + m"},
		},
	},
	{
		name:        "Groups",
		description: "Abstract group theory",
		axioms: [][2]string{
			{"closure", "∀a,b ∈ G: a · b ∈ G"},
			{"associativity", "∀a,b,c ∈ G: (a · b) · c = a · (b · c)"},
			{"identity", "∃e ∈ G: ∀a ∈ G: e · a = a ∧ a · e = a"},
			{"inverse", "∀a ∈ G: ∃b ∈ G: a · b = e ∧ b · a = e"},
		},
	},
	{
		name:         "Rings",
		description:  "Ring theory axioms",
		dependencies: []string{"Groups"},
		axioms: [][2]string{
			{"multiplicative_closure", "∀a,b ∈ R: a × b ∈ R"},
			{"multiplicative_associativity", "∀a,b,c ∈ R: (a × b) × c = a × (b × c)"},
			{"distributivity_left", "∀a,b,c ∈ R: a × (b + c) = a × b + a × c"},
			{"distributivity_right", "∀a,b,c ∈ R: (a + b) × c = a × c + b × c"},
		},
	},
	{
		name:         "Fields",
		description:  "Field theory axioms",
		dependencies: []string{"Rings"},
		axioms: [][2]string{
			{"multiplicative_identity", "∀a ∈ F: 1 × a = a"},
			{"multiplicative_inverse", "∀a ∈ F: a ≠ 0 ⟹ (∃b ∈ F: a × b = 1)"},
		},
	},
}

// StandardLibrary constructs a library populated with the built-in theories.
func StandardLibrary() *Library {
	library := NewLibrary()
	//
	for _, b := range builtins {
		t := NewTheory(b.name, b.description, b.dependencies...)

		for _, axiom := range b.axioms {
			if err := t.AddAxiom(axiom[0], axiom[1]); err != nil {
				// Built-in axioms are fixed text; failing to parse
				// one is a programming error.
				panic(err)
			}
		}

		library.Add(t)
	}
	//
	return library
}
