package lexer

// Tokenize scans the whole source and returns its tokens in source order,
// terminated by a KindEOF token. Scanning stops at the first malformed token.
func Tokenize(source string) ([]Token, error) {
	s := NewScanner(source)
	var tokens []Token
	for {
		tok := s.Next()
		if tok.Kind == KindError {
			return nil, s.Err()
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}
