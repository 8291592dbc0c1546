/*
File    : pepega/environment/environment.go
Package : environment

Implements the scope chain described in spec.md §3/§4.4: a singly
linked chain of name->value maps, innermost scope first. A block
creates a new Environment enclosing the current one on entry and
drops it on exit; a captured closure holds onto the Environment that
was current at the point the function was declared.
*/
package environment

import (
	"fmt"
	"sort"

	"github.com/KunalKatiyar/pepega/lexer"
	"github.com/KunalKatiyar/pepega/value"
)

// Environment is one scope in the chain. Enclosing is nil only for the
// global (root) scope.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// NewGlobal creates the root scope, with no enclosing parent.
func NewGlobal() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewEnclosed creates a scope nested inside parent. parent must not be
// nil — use NewGlobal for the root.
func NewEnclosed(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: parent}
}

// Define binds name to val in this scope only. A second Define of the
// same name in the same scope silently shadows the first — this is
// how "lulw x = 1; lulw x = 2;" is allowed to redeclare within one
// block.
func (e *Environment) Define(name string, val value.Value) {
	e.values[name] = val
}

// Get resolves name by walking outward from this scope to the root.
func (e *Environment) Get(name lexer.Token) (value.Value, error) {
	if val, ok := e.values[name.Lexeme]; ok {
		return val, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name.Lexeme)
}

// Assign finds the nearest scope (starting here, walking outward) that
// already defines name and overwrites its binding there. It never
// creates a new binding — assigning to an undeclared name is an error.
func (e *Environment) Assign(name lexer.Token, val value.Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = val
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, val)
	}
	return fmt.Errorf("Undefined variable '%s'.", name.Lexeme)
}

// Names returns the names bound in this scope only, sorted — used by
// the REPL's "/env" meta-command to show what's in scope.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
