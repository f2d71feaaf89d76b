/*
File    : pytok/repl/repl.go
Package : repl

Package repl implements the Read-Eval-Print Loop for pytok. Unlike an
interpreter's REPL, there is no eval step: each line the user enters is
tokenized in isolation and the resulting tokens are printed back.

The REPL uses the readline library for enhanced line editing and
integrates with the lexer package to tokenize user input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/gomix-lang/pytok/lexer"
)

var (
	blueColor    = color.New(color.FgBlue)
	yellowColor  = color.New(color.FgYellow)
	redColor     = color.New(color.FgRed)
	greenColor   = color.New(color.FgGreen)
	cyanColor    = color.New(color.FgCyan)
	magentaColor = color.New(color.FgMagenta)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates
// all the configuration needed to run an interactive tokenizing
// session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to pytok!")
	cyanColor.Fprintf(writer, "%s\n", "Type a line of source and press enter to see its tokens")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: it prints the banner, reads lines
// from reader with readline, and tokenizes each one until the user
// exits or EOF is reached.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		if line == "" {
			continue
		}

		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		r.tokenizeWithRecovery(writer, line)
	}
}

// tokenizeWithRecovery scans line to completion and prints one
// rendered token per line. Unlike file mode, the REPL never exits on
// an ERROR token or a recovered panic — it reports and returns to the
// prompt so the user can correct their input and try again.
func (r *Repl) tokenizeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	s := lexer.NewScanner(line)
	for {
		tok := lexer.Next(s)
		printToken(writer, tok)
		if tok.Kind == lexer.ENDMARKER {
			break
		}
	}
}

// printToken renders a single token in the same format and colors as
// cmd/pytok's file mode. Because each input line is trimmed and
// tokenized on its own, the token stream for a multi-line source
// differs from "pytok <file>" (no NEWLINE, INDENT or DEDENT across
// lines, and one ENDMARKER per line).
func printToken(writer io.Writer, tok lexer.Token) {
	c := color.New(color.Reset)
	switch {
	case tok.Kind == lexer.ERROR:
		c = redColor
	case tok.IsStructural():
		c = cyanColor
	case tok.Kind >= lexer.AND && tok.Kind <= lexer.YIELD:
		c = magentaColor
	case tok.Kind == lexer.NAME:
		c = greenColor
	}

	if tok.IsStructural() {
		c.Fprintf(writer, "%02d, %02d: \t %-16s\n", tok.Line, tok.Column, tok.Kind)
		return
	}
	c.Fprintf(writer, "%02d, %02d: \t %-16s '%s'\n", tok.Line, tok.Column, tok.Kind, tok.Lexeme)
}
