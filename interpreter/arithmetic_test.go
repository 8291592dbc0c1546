/*
File    : pepega/interpreter/arithmetic_test.go
Package : interpreter

Whitebox tests for the unexported arithmetic/compareNumbers helpers, exercised directly with value.Int since the lexer never
produces an Int literal (see value.Int's doc comment) — this is the
only way to reach the Int/SLASH "Division by zero." branch.
*/
package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunalKatiyar/pepega/lexer"
	"github.com/KunalKatiyar/pepega/value"
)

func TestArithmetic_IntDivisionByZeroIsARuntimeError(t *testing.T) {
	_, err := arithmetic(lexer.SLASH, value.Int{Val: 1}, value.Int{Val: 0}, 1)
	require.Error(t, err)
	assert.Equal(t, "Division by zero.", err.(*RuntimeError).Message)
}

func TestArithmetic_IntDivisionTruncates(t *testing.T) {
	v, err := arithmetic(lexer.SLASH, value.Int{Val: 7}, value.Int{Val: 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: 3}, v)
}

func TestArithmetic_MismatchedOperandsIsARuntimeError(t *testing.T) {
	_, err := arithmetic(lexer.MINUS, value.Int{Val: 1}, value.Float{Val: 1}, 1)
	require.Error(t, err)
	assert.Equal(t, "Operands must be two numbers.", err.(*RuntimeError).Message)
}

func TestCompareNumbers_OrderingOnFloats(t *testing.T) {
	v, err := compareNumbers(lexer.LESS, value.Float{Val: 1}, value.Float{Val: 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: true}, v)
}
