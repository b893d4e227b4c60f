// Package parser converts textual mathematical notation into expression
// trees.  It is the sole ingestion point for expressions: axiom statements,
// theorems and rewrite-engine inputs all pass through Parse.
//
// The grammar covers identifiers, integer literals, function application,
// the infix operators + - * / ^ = ≠ ∈ ⊆ ∧ ∨ ⟹ ⟺, the prefix operators
// - and ¬, parentheses, and the quantifiers ∀ and ∃ with ":" separating
// binder from body.  The fixed precedence table, from loosest to tightest
// binding, is:
//
//	⟺  <  ⟹  <  ∨  <  ∧  <  ¬  <  (= ≠ ∈ ⊆)  <  (+ -)  <  (* /)  <  -(unary)  <  ^
//
// All infix operators are left associative except ⟹ and ^, which are right
// associative.  A quantifier binds the remainder of the expression to its
// right, up to an enclosing bracket boundary.
//
// Two sugared quantifier forms are desugared during parsing: multiple
// binders "∀x,y: φ" nest as "∀x: ∀y: φ", and membership-constrained binders
// become implications or conjunctions, i.e. "∀x ∈ S: φ" parses as
// "∀x: x ∈ S ⟹ φ" and "∃x ∈ S: φ" as "∃x: x ∈ S ∧ φ".
package parser

import (
	"math/big"

	"github.com/axion-project/axion/pkg/expr"
)

// Parse a given string into an expression, or return a syntax error if the
// string is malformed.  Parsing is deterministic and total over the declared
// grammar: the entire input must be consumed.
func Parse(text string) (expr.Expr, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	//
	e, serr := p.parseExpression()
	if serr != nil {
		return nil, serr
	}
	// Sanity check everything was parsed
	if p.lookahead.Kind != EndOfInput {
		return nil, p.unexpected("end of input")
	}

	return e, nil
}

// Binding strength of each infix operator, mirroring the canonical printer.
// Larger values bind tighter.
var infixOperators = map[string]expr.BinaryOp{
	"⟺": expr.Iff,
	"⟹": expr.Implies,
	"∨": expr.Or,
	"∧": expr.And,
	"=": expr.Equals,
	"≠": expr.NotEquals,
	"∈": expr.In,
	"⊆": expr.SubsetEq,
	"+": expr.Add,
	"-": expr.Sub,
	"*": expr.Mul,
	"/": expr.Div,
	"^": expr.Pow,
}

var infixPrecedence = map[expr.BinaryOp]int{
	expr.Iff: 1, expr.Implies: 2, expr.Or: 3, expr.And: 4,
	expr.Equals: 6, expr.NotEquals: 6, expr.In: 6, expr.SubsetEq: 6,
	expr.Add: 7, expr.Sub: 7,
	expr.Mul: 8, expr.Div: 8,
	expr.Pow: 10,
}

const (
	lowestPrecedence   = 0
	relationPrecedence = 6
	unaryPrecedence    = 9
)

// parser holds the token cursor during a parse of a single input string.
type parser struct {
	lexer *lexer
	// One token of lookahead
	lookahead Token
}

func newParser(text string) (*parser, *SyntaxError) {
	p := &parser{newLexer(text), Token{}}
	// Prime the lookahead
	if err := p.advance(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *parser) advance() *SyntaxError {
	token, err := p.lexer.next()
	if err != nil {
		return err
	}

	p.lookahead = token
	//
	return nil
}

// Consume the lookahead token, which must be of the given kind.
func (p *parser) expect(kind TokenKind, description string) (Token, *SyntaxError) {
	token := p.lookahead
	if token.Kind != kind {
		return Token{}, p.unexpected(description)
	}

	return token, p.advance()
}

func (p *parser) unexpected(expected string) *SyntaxError {
	return NewSyntaxError(p.lookahead.Span, expected, p.lookahead.Text)
}

// Parse an expression at the lowest precedence level.
func (p *parser) parseExpression() (expr.Expr, *SyntaxError) {
	return p.parseBinary(lowestPrecedence)
}

// Precedence-climbing loop for infix operators.
func (p *parser) parseBinary(minPrecedence int) (expr.Expr, *SyntaxError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	//
	for p.lookahead.Kind == OperatorToken {
		op, ok := infixOperators[p.lookahead.Text]
		if !ok {
			break
		}

		precedence := infixPrecedence[op]
		if precedence < minPrecedence {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
		// Left-associative operators exclude their own level on the
		// right; right-associative ones include it.
		next := precedence + 1
		if op == expr.Pow || op == expr.Implies {
			next = precedence
		}

		right, err := p.parseBinary(next)
		if err != nil {
			return nil, err
		}

		left = &expr.Binary{Op: op, Left: left, Right: right}
	}
	//
	return left, nil
}

func (p *parser) parseUnary() (expr.Expr, *SyntaxError) {
	switch {
	case p.lookahead.Kind == ForallToken || p.lookahead.Kind == ExistsToken:
		return p.parseQuantified()
	case p.lookahead.Kind == OperatorToken && p.lookahead.Text == "¬":
		if err := p.advance(); err != nil {
			return nil, err
		}

		operand, err := p.parseBinary(relationPrecedence)
		if err != nil {
			return nil, err
		}

		return &expr.Unary{Op: expr.Not, Operand: operand}, nil
	case p.lookahead.Kind == OperatorToken && p.lookahead.Text == "-":
		if err := p.advance(); err != nil {
			return nil, err
		}

		operand, err := p.parseBinary(unaryPrecedence + 1)
		if err != nil {
			return nil, err
		}

		return &expr.Unary{Op: expr.Neg, Operand: operand}, nil
	}
	//
	return p.parseAtom()
}

func (p *parser) parseAtom() (expr.Expr, *SyntaxError) {
	switch p.lookahead.Kind {
	case Number:
		value := new(big.Int)
		if _, ok := value.SetString(p.lookahead.Text, 10); !ok {
			return nil, p.unexpected("integer literal")
		}

		return expr.NewBigConstant(value), p.advance()
	case Identifier:
		name := p.lookahead.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		// Function application?
		if p.lookahead.Kind == LeftParen {
			return p.parseApplication(name)
		}

		return expr.NewVariable(name), nil
	case LeftParen:
		if err := p.advance(); err != nil {
			return nil, err
		}

		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(RightParen, "')'"); err != nil {
			return nil, err
		}

		return e, nil
	}
	//
	return nil, p.unexpected("expression")
}

func (p *parser) parseApplication(functor string) (expr.Expr, *SyntaxError) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	//
	var args []expr.Expr

	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
		//
		if p.lookahead.Kind != Comma {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	//
	if _, err := p.expect(RightParen, "')'"); err != nil {
		return nil, err
	}

	return &expr.Application{Functor: functor, Args: args}, nil
}

// Parse "∀x,y ∈ S: body" and friends, desugaring into nested single-binder
// quantifiers.
func (p *parser) parseQuantified() (expr.Expr, *SyntaxError) {
	kind := expr.Forall
	if p.lookahead.Kind == ExistsToken {
		kind = expr.Exists
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	// Binder list
	var binders []string

	for {
		token, err := p.expect(Identifier, "binder")
		if err != nil {
			return nil, err
		}

		binders = append(binders, token.Text)
		//
		if p.lookahead.Kind != Comma {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	// Optional membership constraint
	var domain expr.Expr

	if p.lookahead.Kind == OperatorToken && p.lookahead.Text == "∈" {
		if err := p.advance(); err != nil {
			return nil, err
		}

		e, err := p.parseBinary(relationPrecedence + 1)
		if err != nil {
			return nil, err
		}

		domain = e
	}
	//
	if _, err := p.expect(Colon, "':'"); err != nil {
		return nil, err
	}
	// The body extends to the end of the enclosing expression.
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	// Desugar innermost binder first
	for i := len(binders) - 1; i >= 0; i-- {
		if domain != nil {
			membership := &expr.Binary{
				Op:    expr.In,
				Left:  expr.NewVariable(binders[i]),
				Right: domain,
			}
			//
			if kind == expr.Forall {
				body = &expr.Binary{Op: expr.Implies, Left: membership, Right: body}
			} else {
				body = &expr.Binary{Op: expr.And, Left: membership, Right: body}
			}
		}

		body = &expr.Quantifier{Kind: kind, Binder: binders[i], Body: body}
	}
	//
	return body, nil
}
