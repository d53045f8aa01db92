package lib

import "fmt"

type TokenType int

const (
	TokenTypeNumber TokenType = iota
	TokenTypePlus
	TokenTypeMinus
	TokenTypeMul
	TokenTypeDiv
	TokenTypeLParen
	TokenTypeRParen
	TokenTypeVar
	TokenTypeAssign
	TokenTypeEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeNumber:
		return "NUMBER"
	case TokenTypePlus:
		return "PLUS"
	case TokenTypeMinus:
		return "MINUS"
	case TokenTypeMul:
		return "MUL"
	case TokenTypeDiv:
		return "DIV"
	case TokenTypeLParen:
		return "LPAREN"
	case TokenTypeRParen:
		return "RPAREN"
	case TokenTypeVar:
		return "VAR"
	case TokenTypeAssign:
		return "ASSIGN"
	case TokenTypeEOF:
		return "EOF"
	default:
		return "?"
	}
}

type charLocation struct {
	line int
	col  int
}

// Location is a 1-based line and column within the scanned input.
type Location struct {
	Line int
	Col  int
}

func (l charLocation) export() Location {
	return Location{Line: l.line, Col: l.col}
}

// Token is a single lexeme. The payload that is set depends on tokType:
// number for NUMBER, ch for the single character kinds, name for VAR and
// nothing for EOF.
type Token struct {
	tokType  TokenType
	number   int64
	ch       rune
	name     string
	position int
	location charLocation
}

func numberToken(n int64, position int, loc charLocation) Token {
	return Token{tokType: TokenTypeNumber, number: n, position: position, location: loc}
}

func charToken(tokType TokenType, ch rune, position int, loc charLocation) Token {
	return Token{tokType: tokType, ch: ch, position: position, location: loc}
}

func varToken(name string, position int, loc charLocation) Token {
	return Token{tokType: TokenTypeVar, name: name, position: position, location: loc}
}

func eofToken(position int, loc charLocation) Token {
	return Token{tokType: TokenTypeEOF, position: position, location: loc}
}

func (t Token) Type() TokenType {
	return t.tokType
}

// Number returns the value of a NUMBER token.
func (t Token) Number() (int64, bool) {
	if t.tokType != TokenTypeNumber {
		return 0, false
	}
	return t.number, true
}

// Char returns the character of an operator, parenthesis or ASSIGN token.
func (t Token) Char() (rune, bool) {
	if !t.isChar() {
		return 0, false
	}
	return t.ch, true
}

// Name returns the identifier of a VAR token.
func (t Token) Name() (string, bool) {
	if t.tokType != TokenTypeVar {
		return "", false
	}
	return t.name, true
}

// Position is the index of the first character of the lexeme.
func (t Token) Position() int {
	return t.position
}

func (t Token) Location() Location {
	return t.location.export()
}

func (t Token) isChar() bool {
	switch t.tokType {
	case TokenTypePlus, TokenTypeMinus, TokenTypeMul, TokenTypeDiv,
		TokenTypeLParen, TokenTypeRParen, TokenTypeAssign:
		return true
	}
	return false
}

func (t Token) String() string {
	switch {
	case t.tokType == TokenTypeNumber:
		return fmt.Sprintf("%s %d", t.tokType, t.number)
	case t.tokType == TokenTypeVar:
		return fmt.Sprintf("%s '%s'", t.tokType, t.name)
	case t.isChar():
		return fmt.Sprintf("%s '%c'", t.tokType, t.ch)
	default:
		return t.tokType.String()
	}
}
