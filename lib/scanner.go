package lib

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// EOFChar is the current character once the cursor has moved past the end
// of the input. No decoded rune is negative, so it never collides with
// real input.
const EOFChar rune = -1

// Scanner turns an expression into tokens one NextToken call at a time.
// It is not safe for concurrent use.
type Scanner struct {
	input           []rune
	length          int
	position        int
	currentChar     rune
	currentLocation charLocation
}

func NewScanner(input string) (*Scanner, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	runes := []rune(input)
	return &Scanner{
		input:           runes,
		length:          len(runes),
		position:        0,
		currentChar:     runes[0],
		currentLocation: charLocation{line: 1, col: 1},
	}, nil
}

func (s *Scanner) Input() string {
	return string(s.input)
}

func (s *Scanner) Position() int {
	return s.position
}

func (s *Scanner) CurrentChar() rune {
	return s.currentChar
}

// Location is the line and column of the current character.
func (s *Scanner) Location() Location {
	return s.currentLocation.export()
}

// Advance moves the cursor one character forward. Past the end it keeps
// reporting EOFChar and stops moving.
func (s *Scanner) Advance() {
	if s.IsAtEnd() {
		return
	}
	if s.currentChar == '\n' {
		s.currentLocation.line++
		s.currentLocation.col = 1
	} else {
		s.currentLocation.col++
	}
	s.position++
	s.currentChar = s.charAt(s.position)
}

// Peek returns the character after the current one without consuming
// anything.
func (s *Scanner) Peek() rune {
	return s.charAt(s.position + 1)
}

func (s *Scanner) IsAtEnd() bool {
	return s.currentChar == EOFChar
}

func (s *Scanner) SkipWhitespace() {
	for !s.IsAtEnd() && unicode.IsSpace(s.currentChar) {
		s.Advance()
	}
}

// ScanInteger consumes a run of decimal digits. The caller must have
// checked that the current character is a digit.
func (s *Scanner) ScanInteger() (int64, error) {
	start := s.position
	startLoc := s.currentLocation

	var buf strings.Builder
	for !s.IsAtEnd() && isDigit(s.currentChar) {
		buf.WriteRune(s.currentChar)
		s.Advance()
	}

	n, err := strconv.ParseInt(buf.String(), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &NumericOverflowError{
				Position: start,
				Input:    s.Input(),
				Location: startLoc.export(),
				Literal:  buf.String(),
			}
		}
		return 0, err
	}
	return n, nil
}

// ScanIdentifier consumes a letter followed by any run of letters and
// digits. The caller must have checked that the current character is a
// letter.
func (s *Scanner) ScanIdentifier() string {
	var buf strings.Builder
	buf.WriteRune(s.currentChar)
	s.Advance()
	for !s.IsAtEnd() && (unicode.IsLetter(s.currentChar) || unicode.IsDigit(s.currentChar)) {
		buf.WriteRune(s.currentChar)
		s.Advance()
	}
	return buf.String()
}

// NextToken returns the next token in the input. Once the input is used up
// it returns an EOF token on every call.
func (s *Scanner) NextToken() (Token, error) {
	for !s.IsAtEnd() {
		if unicode.IsSpace(s.currentChar) {
			s.SkipWhitespace()
			continue
		}

		start := s.position
		startLoc := s.currentLocation
		ch := s.currentChar

		switch {
		case isDigit(ch):
			n, err := s.ScanInteger()
			if err != nil {
				return Token{}, err
			}
			return numberToken(n, start, startLoc), nil
		case ch == '+':
			return s.single(TokenTypePlus), nil
		case ch == '-':
			return s.single(TokenTypeMinus), nil
		case ch == '*':
			return s.single(TokenTypeMul), nil
		case ch == '/':
			return s.single(TokenTypeDiv), nil
		case ch == '(':
			return s.single(TokenTypeLParen), nil
		case ch == ')':
			return s.single(TokenTypeRParen), nil
		case unicode.IsLetter(ch):
			return varToken(s.ScanIdentifier(), start, startLoc), nil
		case ch == '=':
			return s.single(TokenTypeAssign), nil
		default:
			return Token{}, &IllegalCharacterError{
				Position: start,
				Input:    s.Input(),
				Location: startLoc.export(),
				Char:     ch,
			}
		}
	}
	return eofToken(s.position, s.currentLocation), nil
}

// ErrorUnexpectedToken builds the error a parser returns when tok is not
// allowed where it appears.
func (s *Scanner) ErrorUnexpectedToken(tok Token) error {
	return &UnexpectedTokenError{
		Position: s.position,
		Input:    s.Input(),
		Location: s.Location(),
		Token:    tok,
	}
}

// ErrorUnexpectedEndOfFile builds the error a parser returns when it needs
// another token but the input is exhausted.
func (s *Scanner) ErrorUnexpectedEndOfFile() error {
	return &UnexpectedEndOfFileError{
		Position: s.position,
		Input:    s.Input(),
		Location: s.Location(),
	}
}

func (s *Scanner) single(tokType TokenType) Token {
	tok := charToken(tokType, s.currentChar, s.position, s.currentLocation)
	s.Advance()
	return tok
}

func (s *Scanner) charAt(i int) rune {
	if i >= s.length {
		return EOFChar
	}
	return s.input[i]
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
