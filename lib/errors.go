package lib

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by NewScanner when there is no first character
// to read.
var ErrEmptyInput = errors.New("cannot scan empty input")

// UnexpectedTokenError is raised by a parser when a lexically valid token
// shows up where the grammar does not allow it.
type UnexpectedTokenError struct {
	Position int
	Input    string
	Location Location
	Token    Token
}

func (e *UnexpectedTokenError) Error() string {
	return errorAt(e.Location, "unexpected token %s at position %d", e.Token, e.Position)
}

// UnexpectedEndOfFileError is raised by a parser that needs more tokens than
// the input holds.
type UnexpectedEndOfFileError struct {
	Position int
	Input    string
	Location Location
}

func (e *UnexpectedEndOfFileError) Error() string {
	return errorAt(e.Location, "unexpected end of input at position %d", e.Position)
}

// IllegalCharacterError is returned by NextToken for a character that does
// not start any token.
type IllegalCharacterError struct {
	Position int
	Input    string
	Location Location
	Char     rune
}

func (e *IllegalCharacterError) Error() string {
	return errorAt(e.Location, "illegal character %q at position %d", e.Char, e.Position)
}

// NumericOverflowError is returned when an integer literal does not fit in
// an int64.
type NumericOverflowError struct {
	Position int
	Input    string
	Location Location
	Literal  string
}

func (e *NumericOverflowError) Error() string {
	return errorAt(e.Location, "integer literal %s at position %d overflows int64", e.Literal, e.Position)
}

func errorAt(loc Location, msg string, args ...interface{}) string {
	formatted := fmt.Sprintf(msg, args...)
	return fmt.Sprintf("Error at line %d:%d: %s", loc.Line, loc.Col, formatted)
}
