package expr

// BinaryOp identifies an infix operator.
type BinaryOp uint8

// The closed set of infix operators.
const (
	// Arithmetic
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Pow
	// Relations
	Equals
	NotEquals
	In
	SubsetEq
	// Connectives
	And
	Or
	Implies
	Iff
)

// UnaryOp identifies a prefix operator.
type UnaryOp uint8

// The closed set of prefix operators.
const (
	Neg UnaryOp = iota
	Not
)

// QuantKind distinguishes universal from existential quantification.
type QuantKind uint8

// The two quantifier kinds.
const (
	Forall QuantKind = iota
	Exists
)

// prec orders operators by binding strength; larger values bind tighter.
type prec uint8

const (
	precQuantifier prec = iota
	precIff
	precImplies
	precOr
	precAnd
	precNot
	precRelation
	precAdd
	precMul
	precNeg
	precPow
	precAtom
)

// String returns the canonical symbol for this operator.
func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Equals:
		return "="
	case NotEquals:
		return "≠"
	case In:
		return "∈"
	case SubsetEq:
		return "⊆"
	case And:
		return "∧"
	case Or:
		return "∨"
	case Implies:
		return "⟹"
	case Iff:
		return "⟺"
	}

	panic("unknown binary operator")
}

// String returns the canonical symbol for this operator.
func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "¬"
	}

	panic("unknown unary operator")
}

// String returns the canonical symbol for this quantifier kind.
func (k QuantKind) String() string {
	switch k {
	case Forall:
		return "∀"
	case Exists:
		return "∃"
	}

	panic("unknown quantifier kind")
}

// precedence returns the binding strength of a binary operator.
func (op BinaryOp) precedence() prec {
	switch op {
	case Iff:
		return precIff
	case Implies:
		return precImplies
	case Or:
		return precOr
	case And:
		return precAnd
	case Equals, NotEquals, In, SubsetEq:
		return precRelation
	case Add, Sub:
		return precAdd
	case Mul, Div:
		return precMul
	case Pow:
		return precPow
	}

	panic("unknown binary operator")
}

// rightAssociative reports whether the operator groups to the right.
func (op BinaryOp) rightAssociative() bool {
	return op == Pow || op == Implies
}
