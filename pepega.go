/*
File    : pepega/pepega.go
Package : pepega

Package pepega is the language core's single entry point for embedders
and the CLI driver alike: Run wires the lexer, parser, and interpreter
together exactly per spec.md §1's external-interface contract — the
core consumes a source string and a line-tagged error reporting
callback, and exposes "Run(source) -> (output lines, errors)". Argv
parsing, the REPL prompt loop, and the stderr error sink are the outer
driver's job (cmd/pepega, repl, server), not this package's.
*/
package pepega

import (
	"bytes"
	"strings"

	"github.com/KunalKatiyar/pepega/interpreter"
	"github.com/KunalKatiyar/pepega/lexer"
	"github.com/KunalKatiyar/pepega/parser"
)

// Reporter receives one error at a time: the source line it occurred
// on, a "where" fragment (empty for lex/runtime errors, "at '<tok>'" /
// "at end" for parse errors), and the message itself.
type Reporter func(line int, where, message string)

// Run lexes, parses, and executes source against a fresh global
// environment, calling report for every lex, parse, or runtime error
// encountered. It returns the lines "chatting" printed, in order.
//
// Per spec.md §4.2, a non-empty set of lex/parse errors aborts before
// interpretation ever begins — Run never executes a program it failed
// to fully parse.
func Run(source string, report Reporter) ([]string, error) {
	if report == nil {
		report = func(int, string, string) {}
	}

	hadLexError := false
	lx := lexer.New(source, func(line int, message string) {
		hadLexError = true
		report(line, "", message)
	})
	tokens := lx.ScanTokens()

	p := parser.New(tokens)
	statements := p.Parse()
	for _, pe := range p.Errors {
		report(pe.Line, pe.Where(), pe.Message)
	}

	if hadLexError || p.HasErrors() {
		return nil, &StaticError{}
	}

	var out bytes.Buffer
	in := interpreter.New(&out)
	if err := in.Interpret(statements); err != nil {
		if rerr, ok := err.(*interpreter.RuntimeError); ok {
			report(rerr.Line, "", rerr.Message)
		}
		return outputLines(out.String()), err
	}

	return outputLines(out.String()), nil
}

// StaticError signals that Run aborted during lexing or parsing; no
// statement ever executed. Its message is a fixed generic string — every
// individual problem was already delivered through the Reporter.
type StaticError struct{}

func (*StaticError) Error() string { return "source failed to parse" }

// outputLines splits Run's captured stdout into the line slice the
// Run(source) -> (output lines, errors) contract promises, dropping
// the final empty element a trailing newline would otherwise leave.
func outputLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
