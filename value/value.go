/*
File    : pepega/value/value.go
Package : value

Package value defines Pepega's tagged-union runtime representation.
Every expression evaluates to exactly one Value. Int and Float are
distinct variants on purpose: spec.md §4.5 forbids cross-promotion
between them, so an Int combined with a Float is a type error rather
than a silent widening. Every NUMBER literal lexes to a Float (so
"1 + 1.0" is Float + Float); only internally built Ints can mismatch.

The callable variants (Function, Class, Instance) live in the
callable package rather than here, since they need to reference an
*environment.Environment for closures — keeping them here would create
an import cycle (environment already depends on value for its variable
map). Value stays the shared vocabulary both packages build on.
*/
package value

import "strconv"

// Kind is the closed set of runtime value categories.
type Kind string

const (
	NilKind      Kind = "nil"
	BoolKind     Kind = "bool"
	IntKind      Kind = "int"
	FloatKind    Kind = "float"
	StringKind   Kind = "string"
	FunctionKind Kind = "function"
	ClassKind    Kind = "class"
	InstanceKind Kind = "instance"
)

// Value is implemented by every Pepega runtime value.
type Value interface {
	// Kind identifies which variant this value is.
	Kind() Kind
	// String is the display form used by "chatting" and the REPL.
	String() string
	// Truthy is the coercion used by if/while/and/or conditions.
	Truthy() bool
	// EqualTo implements "==" per spec.md §4.5: values of different
	// variants are never equal.
	EqualTo(other Value) bool
}

// Nil is the single value of NilKind.
type Nil struct{}

func (Nil) Kind() Kind        { return NilKind }
func (Nil) String() string    { return "nil" }
func (Nil) Truthy() bool      { return false }
func (Nil) EqualTo(o Value) bool {
	_, ok := o.(Nil)
	return ok
}

// Bool wraps a boolean.
type Bool struct{ Val bool }

func (b Bool) Kind() Kind     { return BoolKind }
func (b Bool) String() string { return strconv.FormatBool(b.Val) }
func (b Bool) Truthy() bool   { return b.Val }
func (b Bool) EqualTo(o Value) bool {
	other, ok := o.(Bool)
	return ok && other.Val == b.Val
}

// Int wraps a 64-bit signed integer. Reachable only from internal
// computation, never from a literal — see SPEC_FULL.md §9.
type Int struct{ Val int64 }

func (i Int) Kind() Kind      { return IntKind }
func (i Int) String() string  { return strconv.FormatInt(i.Val, 10) }
func (i Int) Truthy() bool    { return i.Val != 0 }
func (i Int) EqualTo(o Value) bool {
	other, ok := o.(Int)
	return ok && other.Val == i.Val
}

// Float wraps a 64-bit IEEE-754 float. Every NUMBER literal the lexer
// scans produces a Float, regardless of whether it had a decimal point.
type Float struct{ Val float64 }

func (f Float) Kind() Kind     { return FloatKind }
func (f Float) String() string { return strconv.FormatFloat(f.Val, 'g', -1, 64) }
func (f Float) Truthy() bool   { return f.Val != 0.0 }
func (f Float) EqualTo(o Value) bool {
	other, ok := o.(Float)
	return ok && other.Val == f.Val
}

// Str wraps a string. Display is raw contents, with no quoting.
type Str struct{ Val string }

func (s Str) Kind() Kind     { return StringKind }
func (s Str) String() string { return s.Val }
func (s Str) Truthy() bool   { return s.Val != "" }
func (s Str) EqualTo(o Value) bool {
	other, ok := o.(Str)
	return ok && other.Val == s.Val
}

// TypeName renders a Kind the way runtime error messages refer to it.
func TypeName(v Value) string {
	return string(v.Kind())
}
