package kernel

// Rule enumerates the justifications a proof step may carry.  The set is
// closed per kernel version: adding a rule is a kernel-level change with its
// own reconstruction logic, not runtime registration.
type Rule uint8

// The closed set of inference rules.
const (
	// Statement equals an axiom of the proof's theory (or a transitive
	// dependency).  Takes no premises.
	AxiomApplication Rule = iota
	// From P and P ⟹ Q, derive Q.
	ModusPonens
	// From ∀x: φ(x), derive φ(t) for a term t.
	Substitution
	// Specialization of substitution removing a quantifier.
	UniversalInstantiation
	// The converse: from φ(t), derive ∀x: φ(x).
	UniversalGeneralization
)

// String returns the external name of this rule.
func (r Rule) String() string {
	switch r {
	case AxiomApplication:
		return "axiom_application"
	case ModusPonens:
		return "modus_ponens"
	case Substitution:
		return "substitution"
	case UniversalInstantiation:
		return "universal_instantiation"
	case UniversalGeneralization:
		return "universal_generalization"
	}

	panic("unknown inference rule")
}

// RuleOf maps an external rule name to its identifier.
func RuleOf(name string) (Rule, bool) {
	switch name {
	case "axiom_application":
		return AxiomApplication, true
	case "modus_ponens":
		return ModusPonens, true
	case "substitution":
		return Substitution, true
	case "universal_instantiation":
		return UniversalInstantiation, true
	case "universal_generalization":
		return UniversalGeneralization, true
	}

	return 0, false
}
