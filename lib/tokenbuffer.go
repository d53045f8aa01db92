package lib

type peekResult struct {
	tok  Token
	done bool
	err  error
}

// tokenBuffer reads from a scanner and holds at most one token of lookahead.
type tokenBuffer struct {
	scanner     *Scanner
	peeked      *peekResult
	eofReturned bool
	err         error
}

func NewTokenReader(s *Scanner) TokenReader {
	return newTokenBuffer(s)
}

func newTokenBuffer(s *Scanner) *tokenBuffer {
	return &tokenBuffer{
		scanner:     s,
		peeked:      nil,
		eofReturned: false,
	}
}

func (tb *tokenBuffer) Next() (tok Token, done bool, err error) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.done, res.err
	}

	if tb.err != nil {
		return Token{}, false, tb.err
	}
	if tb.eofReturned {
		return eofToken(tb.scanner.position, tb.scanner.currentLocation), true, nil
	}

	tok, err = tb.scanner.NextToken()
	if err != nil {
		tb.err = err
		return Token{}, false, err
	}
	if tok.Type() == TokenTypeEOF {
		tb.eofReturned = true
	}
	return tok, false, nil
}

func (tb *tokenBuffer) Peek() (Token, bool, error) {
	if tb.peeked != nil {
		return tb.peeked.tok, tb.peeked.done, tb.peeked.err
	}
	tok, done, err := tb.Next()
	tb.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}
