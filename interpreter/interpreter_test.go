/*
File    : pepega/interpreter/interpreter_test.go
Package : interpreter
*/
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunalKatiyar/pepega/lexer"
	"github.com/KunalKatiyar/pepega/parser"
)

// run lexes, parses, and interprets src against a fresh Interpreter,
// failing the test immediately on any lex or parse error (those are
// the parser package's concern, not this one's).
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	lx := lexer.New(src, func(line int, msg string) {
		t.Fatalf("unexpected lex error at line %d: %s", line, msg)
	})
	p := parser.New(lx.ScanTokens())
	statements := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors)

	var out bytes.Buffer
	in := New(&out)
	err := in.Interpret(statements)
	return out.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestInterpret_PrintsExpressionValues(t *testing.T) {
	out, err := run(t, `chatting 1 + 2; chatting "hi";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "hi"}, lines(out))
}

func TestInterpret_VariablesPersistAcrossStatements(t *testing.T) {
	out, err := run(t, `lulw x = 10; x = x + 1; chatting x;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"11"}, lines(out))
}

func TestInterpret_BlockScopingShadowsWithoutLeaking(t *testing.T) {
	out, err := run(t, `
		lulw x = "outer";
		{
			lulw x = "inner";
			chatting x;
		}
		chatting x;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"inner", "outer"}, lines(out))
}

func TestInterpret_IfElse(t *testing.T) {
	out, err := run(t, `clueless (kappa) { chatting "then"; } aware { chatting "else"; }`)
	require.NoError(t, err)
	assert.Equal(t, []string{"else"}, lines(out))
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, err := run(t, `
		lulw i = 0;
		residentsleeper (i < 3) {
			chatting i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestInterpret_ForLoop(t *testing.T) {
	out, err := run(t, `forsen (lulw i = 0; i < 3; i = i + 1) { chatting i; }`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestInterpret_FunctionCallAndReturn(t *testing.T) {
	out, err := run(t, `
		pog add(a, b) { xdd a + b; }
		chatting add(2, 3);
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, lines(out))
}

func TestInterpret_FunctionWithoutExplicitReturnYieldsNil(t *testing.T) {
	out, err := run(t, `
		pog sideEffect() { chatting "ran"; }
		chatting sideEffect();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"ran", "nil"}, lines(out))
}

func TestInterpret_ClosureCapturesDefiningEnvironment(t *testing.T) {
	out, err := run(t, `
		pog makeCounter() {
			lulw count = 0;
			pog increment() {
				count = count + 1;
				xdd count;
			}
			xdd increment;
		}
		lulw counter = makeCounter();
		chatting counter();
		chatting counter();
		chatting counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines(out))
}

func TestInterpret_ClassInstantiationAndMethodCall(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				chatting "hello " + this.name;
			}
		}
		lulw g = Greeter("pepega");
		g.greet();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello pepega"}, lines(out))
}

func TestInterpret_BareGetOnMethodYieldsBoundMethodValue(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			init(name) { this.name = name; }
			greet() { chatting "hi " + this.name; }
		}
		lulw g = Greeter("world");
		lulw bound = g.greet;
		bound();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi world"}, lines(out))
}

func TestInterpret_SetOverwritesField(t *testing.T) {
	out, err := run(t, `
		class Box {}
		lulw b = Box();
		b.value = 1;
		b.value = b.value + 41;
		chatting b.value;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, lines(out))
}

func TestInterpret_FunctionEqualityIsAlwaysFalse(t *testing.T) {
	out, err := run(t, `
		pog f() {}
		chatting f == f;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"false"}, lines(out))
}

func TestInterpret_ClassEqualityIsAlwaysFalse(t *testing.T) {
	out, err := run(t, `
		class C {}
		chatting C == C;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"false"}, lines(out))
}

// Every NUMBER literal the lexer scans is a Float (see value.Float's
// doc comment), so division by a zero literal follows native
// IEEE-754 semantics rather than Pepega's integer "Division by zero."
// check — arithmetic_test.go exercises that check directly against
// value.Int, the only way to reach it.
func TestInterpret_DivisionByFloatZeroFollowsIEEE754(t *testing.T) {
	out, err := run(t, `chatting 1 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"+Inf"}, lines(out))
}

func TestInterpret_UndefinedVariableIsARuntimeError(t *testing.T) {
	_, err := run(t, `chatting neverDeclared;`)
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'neverDeclared'.", err.(*RuntimeError).Message)
}

func TestInterpret_CallingANonCallableIsARuntimeError(t *testing.T) {
	_, err := run(t, `lulw x = 1; x();`)
	require.Error(t, err)
	assert.Equal(t, "Can only call functions and classes.", err.(*RuntimeError).Message)
}

func TestInterpret_WrongArityIsARuntimeError(t *testing.T) {
	_, err := run(t, `pog f(a, b) {} f(1);`)
	require.Error(t, err)
	assert.Equal(t, "Expected 2 arguments but got 1.", err.(*RuntimeError).Message)
}

func TestInterpret_StringConcatenationWithPlus(t *testing.T) {
	out, err := run(t, `chatting "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"foobar"}, lines(out))
}

func TestInterpret_MixedPlusOperandsIsARuntimeError(t *testing.T) {
	_, err := run(t, `chatting "foo" + 1;`)
	require.Error(t, err)
	assert.Equal(t, "Operands must be two numbers or two strings.", err.(*RuntimeError).Message)
}

func TestInterpret_LogicalOperatorsShortCircuitAndYieldOperandNotBool(t *testing.T) {
	// The last two right operands are undeclared: evaluating them would
	// be a runtime error, so a clean run shows they were skipped.
	out, err := run(t, `chatting kappa or "fallback"; chatting surely and "taken"; chatting surely or neverDeclared; chatting kappa and neverDeclared;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"fallback", "taken", "true", "false"}, lines(out))
}
