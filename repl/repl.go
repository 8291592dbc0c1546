/*
File    : pepega/repl/repl.go
Package : repl

Package repl implements Pepega's interactive Read-Eval-Print Loop.
Grounded on go-mix's repl.Repl (repl/repl.go): the banner/color/
readline-history shape is kept almost verbatim, but the evaluation
core is swapped for Pepega's own lexer/parser/interpreter pipeline, and
state now persists across lines through one long-lived
*interpreter.Interpreter rather than a fresh evaluator per call — a
variable defined on one line must still be visible on the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KunalKatiyar/pepega/interpreter"
	"github.com/KunalKatiyar/pepega/internal/applog"
	"github.com/KunalKatiyar/pepega/lexer"
	"github.com/KunalKatiyar/pepega/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner  = "PEPEGA"
	version = "0.1.0"
	line    = "----------------------------------------"
)

// Repl is one interactive session's settings: a prompt string and a
// logger. Start creates the persistent interpreter that lines
// accumulate into.
type Repl struct {
	Prompt string
	Log    applog.Logger
}

// New creates a Repl with the given prompt (".pepegarc.yaml"'s "prompt"
// setting, or config.Default().Prompt if none was configured). log
// receives one entry per session opened/closed, the same correlation
// pattern server.Server uses per WebSocket connection; a nil log
// discards these entries.
func New(prompt string, log applog.Logger) *Repl {
	if log == nil {
		log = applog.NewNop()
	}
	return &Repl{Prompt: prompt, Log: log}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "Pepega %s: >>>> Interactive Mode <<<<\n", version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type your code and press enter.")
	cyanColor.Fprintln(w, "/env   - print the names bound in the global environment")
	cyanColor.Fprintln(w, "/exit  - quit the session")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the loop until the user quits (/exit, Ctrl+D, or a
// readline error). writer receives both the banner/diagnostics and
// whatever the running program's "chatting" statements print.
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	sessionID := uuid.NewString()
	r.Log.Info("session opened", zap.String("session_id", sessionID))
	defer r.Log.Info("session closed", zap.String("session_id", sessionID))

	in := interpreter.New(writer)

	for {
		input, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "/exit" {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}
		if input == "/env" {
			r.printEnv(writer, in)
			continue
		}

		rl.SaveHistory(input)
		r.evalLine(writer, input, in)
	}
}

func (r *Repl) printEnv(writer io.Writer, in *interpreter.Interpreter) {
	names := in.Globals.Names()
	if len(names) == 0 {
		yellowColor.Fprintln(writer, "(no bindings yet)")
		return
	}
	for _, name := range names {
		yellowColor.Fprintf(writer, "%s\n", name)
	}
}

// evalLine lexes, parses, and runs one line of input against the
// session's persistent interpreter. A panic during evaluation is
// reported like any other runtime error and does not end the session —
// the REPL's whole point is to survive a mistake and let the user try
// again.
func (r *Repl) evalLine(writer io.Writer, line string, in *interpreter.Interpreter) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", rec)
		}
	}()

	hadLexError := false
	lx := lexer.New(line, func(lineNo int, message string) {
		hadLexError = true
		redColor.Fprintf(writer, "[line %d] Error: %s\n", lineNo, message)
	})
	tokens := lx.ScanTokens()

	p := parser.New(tokens)
	statements := p.Parse()
	if p.HasErrors() {
		for _, pe := range p.Errors {
			redColor.Fprintf(writer, "%s\n", pe.Error())
		}
		return
	}
	if hadLexError {
		return
	}

	if err := in.Interpret(statements); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
