/*
File    : pepega/callable/callable.go
Package : callable

Package callable holds the three value.Value variants that need more
than a bare scalar: Function, Class, and Instance. They live in their
own package (rather than value) because each closes over an
*environment.Environment, and environment already depends on value for
its variable map — keeping Function/Class/Instance in value would
create an import cycle. This mirrors how go-mix keeps its Function type
in its own package, separate from objects, for the same reason.
*/
package callable

import (
	"fmt"

	"github.com/KunalKatiyar/pepega/environment"
	"github.com/KunalKatiyar/pepega/parser"
	"github.com/KunalKatiyar/pepega/value"
)

// Function is a user-defined function or method value. Closure is the
// environment that was current when the function was declared —
// capturing it (rather than the environment at call time) is what
// gives Pepega closures.
type Function struct {
	Declaration *parser.FunctionStmt
	Closure     *environment.Environment
	// IsInitializer marks a class's "init" method: its call result is
	// always the receiver, never the evaluated return expression.
	IsInitializer bool
}

func (f *Function) Kind() value.Kind { return value.FunctionKind }
func (f *Function) String() string   { return "function" }
func (f *Function) Truthy() bool     { return true }

// EqualTo is always false: see SPEC_FULL.md §9 — two Function values
// never compare equal, even when built from the same declaration,
// since Pepega's equality is structural and carries no notion of
// object identity for callables.
func (f *Function) EqualTo(value.Value) bool { return false }

// Arity is the declared parameter count.
func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Bind produces a new Function identical to f except that its closure
// is a fresh environment, enclosing f's original closure, with "this"
// defined to inst. This is how a method accessed via Get — whether or
// not it is immediately called — becomes a bound method: the receiver
// travels with the function value from that point on.
func (f *Function) Bind(inst *Instance) *Function {
	env := environment.NewEnclosed(f.Closure)
	env.Define("this", inst)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Class is a class declaration: a name and its method set. Pepega
// classes have no inheritance, so this is the complete method table.
type Class struct {
	Name    string
	Methods map[string]*Function
}

func (c *Class) Kind() value.Kind         { return value.ClassKind }
func (c *Class) String() string           { return "class" }
func (c *Class) Truthy() bool             { return true }
func (c *Class) EqualTo(value.Value) bool { return false }

// FindMethod looks up a method by name; ok is false if the class
// declares no such method.
func (c *Class) FindMethod(name string) (*Function, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Arity is the constructor's parameter count: the "init" method's
// arity if one is declared, otherwise zero.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Instance is a live object: a reference to its class plus a mutable
// field table. Per spec.md §3's invariant, Fields is seeded with the
// class's methods at construction time — methods and fields share one
// map, so Set can overwrite a method slot with a plain value.
type Instance struct {
	Class  *Class
	Fields map[string]value.Value
}

// NewInstance constructs an instance whose Fields map already holds
// every declared method, bound to this instance.
func NewInstance(class *Class) *Instance {
	inst := &Instance{Class: class, Fields: make(map[string]value.Value)}
	for name, method := range class.Methods {
		inst.Fields[name] = method.Bind(inst)
	}
	return inst
}

func (i *Instance) Kind() value.Kind { return value.InstanceKind }
func (i *Instance) String() string   { return i.Class.Name }
func (i *Instance) Truthy() bool     { return true }

// EqualTo compares instances by reference identity — Pepega has no
// other notion of object equality for instances.
func (i *Instance) EqualTo(o value.Value) bool {
	other, ok := o.(*Instance)
	return ok && other == i
}

// Get reads a field or (bound) method by name.
func (i *Instance) Get(name string) (value.Value, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

// Set creates or overwrites a field (or a method slot, which Pepega
// permits — see spec.md §4.5's Set semantics).
func (i *Instance) Set(name string, v value.Value) {
	i.Fields[name] = v
}

// UndefinedPropertyError formats the exact runtime error message for
// accessing a name an instance does not have.
func UndefinedPropertyError(name string) error {
	return fmt.Errorf("Undefined property '%s'.", name)
}
