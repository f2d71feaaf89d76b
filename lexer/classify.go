/*
File    : pytok/lexer/classify.go
Package : lexer
*/
package lexer

// Pure, allocation-free predicates over a single source byte. All of
// them are restricted to ASCII: spec scope excludes Unicode identifier
// classes, so classification never needs to look at anything but the
// byte in hand.

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentStart reports whether c can begin an identifier.
func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

// isIdentContinue reports whether c can continue an identifier already
// in progress.
func isIdentContinue(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// isHorizontalSpace reports whether c is space, tab, or carriage
// return — the bytes skipWhitespace consumes outside of comments.
func isHorizontalSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
