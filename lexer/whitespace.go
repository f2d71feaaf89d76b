/*
File    : pytok/lexer/whitespace.go
Package : lexer
*/
package lexer

// skipWhitespace consumes spaces, tabs, and carriage returns, and
// '#'-to-end-of-line comments. It never consumes a line feed: newline
// significance is decided by the driver loop, not here, so a comment
// is skipped only up to (not including) the terminating '\n'.
func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.advance()
		case '#':
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
			return
		default:
			return
		}
	}
}
