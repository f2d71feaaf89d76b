/*
File    : pytok/lexer/next.go
Package : lexer
*/
package lexer

// Next pulls the next Token from s. It is the single entry point the
// rest of the package exists to support: everything else (indentation
// engine, recognizers, whitespace skipper) is plumbing Next drives.
//
// Next is an explicit loop, not a recursive descent: every case that
// doesn't have a token ready yet (a blank line, a drained comment, an
// explicit line continuation) falls through to `continue` rather than
// calling itself, so a pathological input can't blow the Go stack.
func Next(s *Scanner) Token {
	for {
		if s.Level == 0 && (s.IsLineStart || s.PendingDedents > 0 || (s.atEnd() && s.IndentTop > 0)) {
			switch s.classifyIndent() {
			case indentIncrement:
				s.markStart()
				return s.makeToken(INDENT)

			case indentDecrement:
				s.markStart()
				return s.makeToken(DEDENT)

			case indentExceed:
				s.markStart()
				return s.errorToken("indents exceeded the maximum indentation limit")

			case indentError:
				s.markStart()
				return s.errorToken("unexpected indent")

			case indentEmpty:
				// Blank or comment-only line: consume its terminator (if
				// any) and re-run indentation resolution on whatever
				// follows. classifyIndent's own whitespace/comment
				// consumption may have cleared IsLineStart as a side
				// effect of advancing past non-newline bytes; restore it
				// so the gate re-fires instead of falling through to
				// mid-line dispatch.
				if !s.atEnd() {
					s.advance() // the '\n'
				}
				s.IsLineStart = true
				continue

			case indentNone:
				// This line's indentation matches the current level: no
				// token, and the decision for this logical line is made,
				// so stop re-entering this block while scanning its body.
				s.IsLineStart = false
			}
		}

		s.skipWhitespace()

		if s.atEnd() {
			s.markStart()
			if s.Level > 0 {
				s.Level = 0
				return s.errorToken("EOF in multi-line statement")
			}
			return s.makeToken(ENDMARKER)
		}

		if s.peek() == '\n' {
			s.markStart()
			s.advance()
			if s.Level > 0 {
				// Newlines are not significant while bracketed.
				continue
			}
			return s.makeToken(NEWLINE)
		}

		if s.peek() == '\\' {
			s.markStart()
			s.advance()
			if s.match('\n') {
				// Explicit continuation: consuming '\n' marked
				// IsLineStart true as it would for a real line break;
				// this isn't one, so undo that before looping.
				s.IsLineStart = false
				continue
			}
			return s.errorToken("unexpected character after line continuation character")
		}

		s.markStart()
		switch {
		case isDigit(s.peek()) || (s.peek() == '.' && isDigit(s.peekNext())):
			return s.scanNumber()
		case isIdentStart(s.peek()):
			return s.scanIdentifier()
		case s.peek() == '"' || s.peek() == '\'':
			return s.scanString()
		default:
			return s.scanOperator()
		}
	}
}
