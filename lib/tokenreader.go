package lib

// TokenReader is what a parser pulls tokens from. done is true once the
// EOF token has already been handed out.
type TokenReader interface {
	Next() (tok Token, done bool, err error)
	Peek() (tok Token, done bool, err error)
}
