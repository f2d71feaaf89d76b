/*
File    : pytok/lexer/indent.go
Package : lexer
*/
package lexer

// indentState is the result of one classifyIndent call: what the
// indentation engine decided about the logical line currently at the
// cursor, and therefore what (if anything) the driver loop should
// return or do next.
type indentState int

const (
	indentIncrement indentState = iota // push a wider level, emit one INDENT
	indentDecrement                    // pop one level, emit one DEDENT
	indentExceed                       // indent stack is already at capacity
	indentError                        // width matches no stacked level
	indentNone                         // width unchanged, no token
	indentEmpty                        // blank or comment-only line, no token
)

// classifyIndent is invoked by the driver when, and only when, Level ==
// 0 and either IsLineStart, a DEDENT is still owed, or end-of-input has
// been reached with the indent stack non-empty (so a dangling indent on
// a final line with no trailing newline still gets drained). It
// measures the leading horizontal whitespace of a logical line as an
// integer width (space = 1, tab = 4) and compares it against the top of
// the indent stack.
//
// If PendingDedents is already nonzero — meaning a previous call
// computed a multi-level decrease and is still draining it — this call
// does no measurement at all: it simply pays down one more pending
// DEDENT. Only the call that first detects the decrease measures the
// line and pushes the full count.
func (s *Scanner) classifyIndent() indentState {
	if s.PendingDedents > 0 {
		s.PendingDedents--
		return indentDecrement
	}

	width := 0
	for {
		if s.match(' ') {
			width++
		} else if s.match('\t') {
			width += 4
		} else {
			break
		}
	}

	// A line that is blank, or whose only content is a comment, never
	// changes the indent stack. skipWhitespace consumes the comment (if
	// any) up to but not including the line terminator.
	if isHorizontalSpace(s.peek()) || s.peek() == '#' {
		s.skipWhitespace()
		return indentEmpty
	}
	if s.peek() == '\n' {
		return indentEmpty
	}
	// Trailing whitespace with nothing after it is not a line of its
	// own: at end of input the width is 0, so open levels drain as
	// DEDENTs and no new level is pushed.
	if s.atEnd() {
		width = 0
	}

	top := s.Indents[s.IndentTop]
	switch {
	case top == width:
		return indentNone

	case top < width:
		if s.IndentTop+1 == maxIndent {
			return indentExceed
		}
		s.IndentTop++
		s.Indents[s.IndentTop] = width
		return indentIncrement

	default:
		for s.Indents[s.IndentTop] > width {
			s.IndentTop--
			s.PendingDedents++
		}
		if s.Indents[s.IndentTop] < width {
			// Width falls strictly between two stacked levels.
			return indentError
		}
		// One of the pops just counted is satisfied by this very call.
		s.PendingDedents--
		return indentDecrement
	}
}
