package parser

import (
	"unicode"
)

// TokenKind classifies a lexed token.
type TokenKind uint8

// The token kinds recognised by the lexer.
const (
	// End of the input string.
	EndOfInput TokenKind = iota
	// Unsigned integer literal.
	Number
	// Variable or functor name.
	Identifier
	// Infix or prefix operator symbol.
	OperatorToken
	// Punctuation
	LeftParen
	RightParen
	Comma
	Colon
	// Quantifier symbols ∀ / ∃.
	ForallToken
	ExistsToken
)

// Token associates a token kind and its text with a given range of
// characters in the string being scanned.
type Token struct {
	Kind TokenKind
	Text string
	Span Span
}

// The set of single-rune operator symbols.  Note "·" and "×" are accepted as
// aliases of "*"; the canonical printer always emits "*".
var operatorRunes = map[rune]string{
	'+': "+", '-': "-", '*': "*", '·': "*", '×': "*", '/': "/", '^': "^",
	'=': "=", '≠': "≠", '∈': "∈", '⊆': "⊆",
	'∧': "∧", '∨': "∨", '⟹': "⟹", '⟺': "⟺", '¬': "¬",
}

// lexer walks the input string rune by rune, producing one token at a time.
// It is whitespace insensitive.
type lexer struct {
	// Text being lexed
	text []rune
	// Current position within text
	index int
}

func newLexer(text string) *lexer {
	return &lexer{[]rune(text), 0}
}

// next extracts the next token from the input, or a syntax error on an
// unrecognised character.
func (l *lexer) next() (Token, *SyntaxError) {
	l.skipWhitespace()
	//
	if l.index == len(l.text) {
		return Token{EndOfInput, "end of input", NewSpan(l.index, l.index)}, nil
	}
	//
	start := l.index
	c := l.text[start]
	//
	switch {
	case c == '(':
		l.index++
		return l.token(LeftParen, start), nil
	case c == ')':
		l.index++
		return l.token(RightParen, start), nil
	case c == ',':
		l.index++
		return l.token(Comma, start), nil
	case c == ':':
		l.index++
		return l.token(Colon, start), nil
	case c == '∀':
		l.index++
		return l.token(ForallToken, start), nil
	case c == '∃':
		l.index++
		return l.token(ExistsToken, start), nil
	case unicode.IsDigit(c):
		return l.scanNumber(start), nil
	case isIdentifierStart(c):
		return l.scanIdentifier(start), nil
	}
	//
	if text, ok := operatorRunes[c]; ok {
		l.index++
		return Token{OperatorToken, text, NewSpan(start, l.index)}, nil
	}
	//
	return Token{}, NewSyntaxError(NewSpan(start, start+1), "token", string(c))
}

func (l *lexer) token(kind TokenKind, start int) Token {
	return Token{kind, string(l.text[start:l.index]), NewSpan(start, l.index)}
}

func (l *lexer) skipWhitespace() {
	for l.index < len(l.text) {
		switch l.text[l.index] {
		case ' ', '\t', '\n', '\r':
			l.index++
		default:
			return
		}
	}
}

func (l *lexer) scanNumber(start int) Token {
	for l.index < len(l.text) && unicode.IsDigit(l.text[l.index]) {
		l.index++
	}

	return l.token(Number, start)
}

func (l *lexer) scanIdentifier(start int) Token {
	for l.index < len(l.text) && isIdentifierPart(l.text[l.index]) {
		l.index++
	}

	return l.token(Identifier, start)
}

// Identifiers begin with a letter (including letter-like symbols such as ℕ)
// or underscore.
func isIdentifierStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

// Subsequent identifier characters additionally admit digits and primes,
// e.g. "x'" as produced by capture-avoiding renaming.
func isIdentifierPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '\''
}
