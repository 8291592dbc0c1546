/*
File    : pepega/interpreter/interpreter.go
Package : interpreter

Package interpreter is the tree-walking evaluator: AST -> observable
side effects (print, mutation) plus a final Value per expression. It
is driven by a lexically scoped Environment chain and Pepega's tagged
Value representation (see the value and environment packages).

Control flow inside the evaluator is the sum type spec.md §4.5
describes as Value | Return(Value) | Error(msg): execStmt returns a
plain error for a runtime fault, a *returnSignal for an in-flight
"xdd" (return), or nil on ordinary completion. Call sites tell these
apart with a type assertion on *returnSignal, the way go-mix's evalCallExpression
unwraps its ReturnValue sentinel at the call boundary and nowhere
else.
*/
package interpreter

import (
	"fmt"
	"io"

	"github.com/KunalKatiyar/pepega/environment"
	"github.com/KunalKatiyar/pepega/parser"
	"github.com/KunalKatiyar/pepega/value"
)

// returnSignal is the non-local-exit carrier for "xdd". It implements
// error only so it can travel through the same return channel as a
// runtime fault; it is never shown to a user.
type returnSignal struct {
	Value value.Value
}

func (r *returnSignal) Error() string { return "return" }

// RuntimeError is a Pepega-level runtime fault: a type mismatch,
// undefined name, wrong arity, and so on. Line is the source line the
// fault occurred on, for the "[line <n>] Error: <message>" sink format.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func runtimeErrorf(line int, format string, args ...interface{}) error {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Interpreter walks a parsed program. Globals is the root of the
// environment chain; Out is where "chatting" writes its output lines.
type Interpreter struct {
	Globals *environment.Environment
	Out     io.Writer
}

// New creates an Interpreter with a fresh global environment, writing
// "chatting" output to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{Globals: environment.NewGlobal(), Out: out}
}

// Interpret executes a full program against the interpreter's global
// environment. A non-nil error is always a *RuntimeError — parse
// errors are the caller's responsibility to check before ever calling
// Interpret (spec.md §4.2: a non-empty parser error set aborts before
// interpretation begins).
func (in *Interpreter) Interpret(statements []parser.Stmt) error {
	for _, stmt := range statements {
		if err := in.execStmt(stmt, in.Globals); err != nil {
			if _, isReturn := err.(*returnSignal); isReturn {
				// A return reaching the top level only happens if the
				// parser failed to reject it; treat as a no-op rather
				// than leaking the sentinel to the caller.
				continue
			}
			return err
		}
	}
	return nil
}
