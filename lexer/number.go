/*
File    : pytok/lexer/number.go
Package : lexer
*/
package lexer

// scanNumber recognizes a NUMBER lexeme: either '.' followed by a
// digit run, or a digit run optionally followed by a single '.' and a
// further (possibly empty) digit run. No exponent, sign, base
// prefix, or digit-grouping underscore is recognized — the lexeme is
// never converted to a numeric value, only delimited.
//
// The dispatcher guarantees Current is either a digit or a '.'
// immediately followed by a digit; scanNumber consumes that first
// byte itself.
func (s *Scanner) scanNumber() Token {
	hasPoint := s.advance() == '.'

	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && !hasPoint {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.makeToken(NUMBER)
}
