/*
File    : pytok/lexer/next_test.go
Package : lexer
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// expected is a (Kind, Lexeme) pair; structural tokens (NEWLINE, INDENT,
// DEDENT, ENDMARKER) are listed with an empty Lexeme since the driver
// contract never renders one for them.
type expected struct {
	Kind   TokenKind
	Lexeme string
}

// collect drains a Scanner down to (and including) its ENDMARKER.
func collect(t *testing.T, src string) []Token {
	t.Helper()
	s := NewScanner(src)
	var got []Token
	for {
		tok := Next(s)
		got = append(got, tok)
		if tok.Kind == ENDMARKER || tok.Kind == ERROR {
			break
		}
	}
	return got
}

func assertKinds(t *testing.T, src string, want []expected) {
	t.Helper()
	got := collect(t, src)
	require := assert.New(t)
	require.Equal(len(want), len(got), "token count for %q: %+v", src, got)
	for i := range want {
		if i >= len(got) {
			break
		}
		require.Equalf(want[i].Kind, got[i].Kind, "token %d of %q", i, src)
		if want[i].Lexeme != "" {
			require.Equalf(want[i].Lexeme, got[i].Lexeme, "token %d of %q", i, src)
		}
	}
}

func TestNext_SimpleLine(t *testing.T) {
	assertKinds(t, "a\n", []expected{
		{NAME, "a"},
		{NEWLINE, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_NoTrailingNewline(t *testing.T) {
	// No trailing LF means no NEWLINE is ever synthesized for the final
	// line: NEWLINE only fires when the scanner actually consumes a '\n'.
	assertKinds(t, "a", []expected{
		{NAME, "a"},
		{ENDMARKER, ""},
	})
}

// A final indented line with no trailing LF still owes its DEDENT(s):
// end-of-input must drain the indent stack even though IsLineStart is
// false and there is no PendingDedents yet when ENDMARKER is about to
// be considered.
func TestNext_DedentDrainsAtEOFWithoutTrailingNewline(t *testing.T) {
	assertKinds(t, "if x:\n    y", []expected{
		{IF, "if"},
		{NAME, "x"},
		{COLON, ":"},
		{NEWLINE, ""},
		{INDENT, ""},
		{NAME, "y"},
		{DEDENT, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_MultiLevelDedentDrainsAtEOFWithoutTrailingNewline(t *testing.T) {
	assertKinds(t, "a\n    b\n        c", []expected{
		{NAME, "a"},
		{NEWLINE, ""},
		{INDENT, ""},
		{NAME, "b"},
		{NEWLINE, ""},
		{INDENT, ""},
		{NAME, "c"},
		{DEDENT, ""},
		{DEDENT, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_IndentDedent(t *testing.T) {
	assertKinds(t, "if x:\n    y\n", []expected{
		{IF, "if"},
		{NAME, "x"},
		{COLON, ":"},
		{NEWLINE, ""},
		{INDENT, ""},
		{NAME, "y"},
		{NEWLINE, ""},
		{DEDENT, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_DoubleDedent(t *testing.T) {
	assertKinds(t, "if x:\n    if y:\n        z\nw\n", []expected{
		{IF, "if"},
		{NAME, "x"},
		{COLON, ":"},
		{NEWLINE, ""},
		{INDENT, ""},
		{IF, "if"},
		{NAME, "y"},
		{COLON, ":"},
		{NEWLINE, ""},
		{INDENT, ""},
		{NAME, "z"},
		{NEWLINE, ""},
		{DEDENT, ""},
		{DEDENT, ""},
		{NAME, "w"},
		{NEWLINE, ""},
		{ENDMARKER, ""},
	})
}

// The tokenizer has no notion of which statements open a block: any
// increase in leading whitespace produces INDENT regardless of what
// line precedes it. Rejecting this belongs to the parser, not here.
func TestNext_IndentWithoutColonStillTokenizes(t *testing.T) {
	assertKinds(t, "a\n    b\n", []expected{
		{NAME, "a"},
		{NEWLINE, ""},
		{INDENT, ""},
		{NAME, "b"},
		{NEWLINE, ""},
		{DEDENT, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_UnindentMismatch(t *testing.T) {
	got := collect(t, "if x:\n        y\n    z\n")
	require := assert.New(t)
	last := got[len(got)-1]
	require.Equal(ERROR, last.Kind)
	require.Equal("unexpected indent", last.Lexeme)
}

// One level of indentation is pushed per line, so maxIndent+1 distinct
// widths overflow the fixed-capacity stack (125) before ever dedenting.
func TestNext_IndentExceedsCapacity(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= maxIndent+1; i++ {
		b.WriteString(strings.Repeat(" ", i))
		b.WriteString("a\n")
	}
	got := collect(t, b.String())
	last := got[len(got)-1]
	require := assert.New(t)
	require.Equal(ERROR, last.Kind)
	require.Equal("indents exceeded the maximum indentation limit", last.Lexeme)
}

func TestNext_BlankAndCommentLinesDoNotAffectIndent(t *testing.T) {
	assertKinds(t, "if x:\n\n    # a comment\n    y\n", []expected{
		{IF, "if"},
		{NAME, "x"},
		{COLON, ":"},
		{NEWLINE, ""},
		{INDENT, ""},
		{NAME, "y"},
		{NEWLINE, ""},
		{DEDENT, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_BracketSuppressesNewlineAndIndent(t *testing.T) {
	assertKinds(t, "x = (\n    1,\n    2,\n)\n", []expected{
		{NAME, "x"},
		{EQUAL, "="},
		{LPAR, "("},
		{NUMBER, "1"},
		{COMMA, ","},
		{NUMBER, "2"},
		{COMMA, ","},
		{RPAR, ")"},
		{NEWLINE, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_LineContinuation(t *testing.T) {
	assertKinds(t, "x = 1 + \\\n    2\n", []expected{
		{NAME, "x"},
		{EQUAL, "="},
		{NUMBER, "1"},
		{PLUS, "+"},
		{NUMBER, "2"},
		{NEWLINE, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_TripleQuotedStringSpansLines(t *testing.T) {
	got := collect(t, "x = \"\"\"a\nb\"\"\"\n")
	require := assert.New(t)
	require.Equal(NAME, got[0].Kind)
	require.Equal(EQUAL, got[1].Kind)
	require.Equal(STRING, got[2].Kind)
	require.Equal("\"\"\"a\nb\"\"\"", got[2].Lexeme)
	require.Equal(NEWLINE, got[3].Kind)
	require.Equal(ENDMARKER, got[4].Kind)
}

func TestNext_EllipsisVsDotDot(t *testing.T) {
	assertKinds(t, "x = ...\n", []expected{
		{NAME, "x"},
		{EQUAL, "="},
		{ELLIPSIS, "..."},
		{NEWLINE, ""},
		{ENDMARKER, ""},
	})
	assertKinds(t, "x = ..\n", []expected{
		{NAME, "x"},
		{EQUAL, "="},
		{DOT, "."},
		{DOT, "."},
		{NEWLINE, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_EOFInsideOpenBracket(t *testing.T) {
	got := collect(t, "x = (1, 2")
	last := got[len(got)-1]
	assert.Equal(t, ERROR, last.Kind)
	assert.Equal(t, "EOF in multi-line statement", last.Lexeme)
}

func TestNext_OperatorMaximalMunch(t *testing.T) {
	assertKinds(t, "a **= b // c <<= d\n", []expected{
		{NAME, "a"},
		{DOUBLESTAREQUAL, "**="},
		{NAME, "b"},
		{DOUBLESLASH, "//"},
		{NAME, "c"},
		{LEFTSHIFTEQUAL, "<<="},
		{NAME, "d"},
		{NEWLINE, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_LoneBangIsError(t *testing.T) {
	got := collect(t, "a ! b\n")
	require := assert.New(t)
	require.Equal(NAME, got[0].Kind)
	require.Equal(ERROR, got[1].Kind)
	require.Equal("unexpected character", got[1].Lexeme)
}

func TestNext_AmpersandNotSwapped(t *testing.T) {
	assertKinds(t, "a &= b & c\n", []expected{
		{NAME, "a"},
		{AMPEREQUAL, "&="},
		{NAME, "b"},
		{AMPER, "&"},
		{NAME, "c"},
		{NEWLINE, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_Tilde(t *testing.T) {
	assertKinds(t, "~a\n", []expected{
		{TILDE, "~"},
		{NAME, "a"},
		{NEWLINE, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_KeywordVsIdentifier(t *testing.T) {
	assertKinds(t, "class Async:\n    pass\n", []expected{
		{CLASS, "class"},
		{NAME, "Async"},
		{COLON, ":"},
		{NEWLINE, ""},
		{INDENT, ""},
		{PASS, "pass"},
		{NEWLINE, ""},
		{DEDENT, ""},
		{ENDMARKER, ""},
	})
}

func TestNext_EndmarkerIdempotent(t *testing.T) {
	s := NewScanner("a\n")
	_ = Next(s) // NAME
	_ = Next(s) // NEWLINE
	first := Next(s)
	second := Next(s)
	assert.Equal(t, ENDMARKER, first.Kind)
	assert.Equal(t, ENDMARKER, second.Kind)
}

func TestNext_EmptySource(t *testing.T) {
	assertKinds(t, "", []expected{
		{ENDMARKER, ""},
	})
}
