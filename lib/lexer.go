package lib

// Lex scans the whole input, calling emit for every token up to and
// including the final EOF token.
func Lex(input string, emit func(Token)) error {
	s, err := NewScanner(input)
	if err != nil {
		return err
	}
	for {
		tok, err := s.NextToken()
		if err != nil {
			return err
		}
		emit(tok)
		if tok.Type() == TokenTypeEOF {
			return nil
		}
	}
}

func Tokenize(input string) ([]Token, error) {
	tokens := []Token{}
	err := Lex(input, func(t Token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
