/*
File    : pytok/cmd/pytok/main.go
Package : main

Package main is the entry point for pytok, a standalone tokenizer for
an indentation-sensitive, Python-like language. It provides three modes
of operation:
 1. REPL Mode (default): interactive per-line tokenization
 2. File Mode: tokenize a source file from the command line
 3. Server Mode: one REPL session per TCP connection

pytok only tokenizes; it never parses or evaluates.
*/
package main

import (
	"io"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/gomix-lang/pytok/lexer"
	"github.com/gomix-lang/pytok/repl"
)

// VERSION is the current version of pytok.
var VERSION = "v1.0.0"

// AUTHOR contains the maintainer contact information.
var AUTHOR = "pytok maintainers"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "pytok >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ██████╗ ██╗   ██╗████████╗ ██████╗ ██╗  ██╗
 ██╔══██╗╚██╗ ██╔╝╚══██╔══╝██╔═══██╗██║ ██╔╝
 ██████╔╝ ╚████╔╝    ██║   ██║   ██║█████╔╝
 ██╔═══╝   ╚██╔╝     ██║   ██║   ██║██╔═██╗
 ██║        ██║      ██║   ╚██████╔╝██║  ██╗
 ╚═╝        ╚═╝      ╚═╝    ╚═════╝ ╚═╝  ╚═╝
`

// LINE is a separator used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor     = color.New(color.FgRed)
	yellowColor  = color.New(color.FgYellow)
	cyanColor    = color.New(color.FgCyan)
	greenColor   = color.New(color.FgGreen)
	magentaColor = color.New(color.FgMagenta)
	plainColor   = color.New(color.Reset)
)

// main dispatches on the command line:
//
//	pytok              - start interactive REPL mode
//	pytok <path>       - tokenize the given file
//	pytok server <port> - start a tokenize-as-a-service TCP server
//	pytok --help        - display help information
//	pytok --version     - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: pytok server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("pytok - a tokenizer for an indentation-sensitive language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  pytok                      Start interactive REPL mode")
	yellowColor.Println("  pytok <path-to-file>       Tokenize a source file")
	yellowColor.Println("  pytok server <port>        Start tokenizer server on specified port")
	yellowColor.Println("  pytok --help               Display this help message")
	yellowColor.Println("  pytok --version            Display version information")
}

func showVersion() {
	cyanColor.Println("pytok - a tokenizer for an indentation-sensitive language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName and tokenizes it, printing one line per
// token using the driver-contract rendering convention: each non-
// structural token prints its lexeme quoted; INDENT, DEDENT, NEWLINE,
// and ENDMARKER omit theirs since their lexeme carries no information
// beyond the kind itself. Exits 1 if any ERROR token was produced.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	sawError := tokenizeWithRecovery(os.Stdout, string(content))
	if sawError {
		os.Exit(1)
	}
}

// startServer listens on port and hands each connection to its own
// REPL session, tokenizing whatever lines the client sends.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("pytok tokenizer server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// tokenizeWithRecovery drains every token from source, printing each
// with renderToken, and reports whether any ERROR token was seen. A
// panic recovery wraps the loop: Next is expected never to panic on
// any input, so a recovered panic indicates a genuine bug rather than
// a malformed-input condition, and is reported distinctly from an
// ordinary ERROR token.
func tokenizeWithRecovery(w io.Writer, source string) (sawError bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[INTERNAL ERROR] %v\n", recovered)
			sawError = true
		}
	}()

	s := lexer.NewScanner(source)
	for {
		tok := lexer.Next(s)
		renderToken(w, tok)
		if tok.Kind == lexer.ERROR {
			sawError = true
		}
		if tok.Kind == lexer.ENDMARKER {
			break
		}
	}
	return sawError
}

// renderToken prints one token as "LINE, COLUMN:\tKIND 'LEXEME'",
// coloring by category: errors in red, structural tokens in cyan,
// keywords in magenta, NAME in green, everything else in the default
// color.
func renderToken(w io.Writer, tok lexer.Token) {
	c := plainColor
	switch {
	case tok.Kind == lexer.ERROR:
		c = redColor
	case tok.IsStructural():
		c = cyanColor
	case isKeywordKind(tok.Kind):
		c = magentaColor
	case tok.Kind == lexer.NAME:
		c = greenColor
	}

	if tok.IsStructural() {
		c.Fprintf(w, "%02d, %02d: \t %-16s\n", tok.Line, tok.Column, tok.Kind)
		return
	}
	c.Fprintf(w, "%02d, %02d: \t %-16s '%s'\n", tok.Line, tok.Column, tok.Kind, tok.Lexeme)
}

func isKeywordKind(k lexer.TokenKind) bool {
	return k >= lexer.AND && k <= lexer.YIELD
}
