/*
File    : pepega/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunalKatiyar/pepega/lexer"
)

// parse scans and parses src, returning both the parser (for Errors)
// and the statement slice Parse() produced.
func parse(t *testing.T, src string) (*Parser, []Stmt) {
	t.Helper()
	lx := lexer.New(src, func(line int, msg string) {
		t.Fatalf("unexpected lex error at line %d: %s", line, msg)
	})
	p := New(lx.ScanTokens())
	statements := p.Parse()
	return p, statements
}

func TestParse_VarDeclarationWithInitializer(t *testing.T) {
	p, statements := parse(t, `lulw x = 1 + 2;`)
	require.False(t, p.HasErrors())
	require.Len(t, statements, 1)

	stmt, ok := statements[0].(*VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Name.Lexeme)
	_, ok = stmt.Initializer.(*BinaryExpr)
	assert.True(t, ok)
}

func TestParse_VarDeclarationWithoutInitializerDefaultsToNilLiteral(t *testing.T) {
	p, statements := parse(t, `lulw x;`)
	require.False(t, p.HasErrors())
	stmt := statements[0].(*VarStmt)
	lit, ok := stmt.Initializer.(*LiteralExpr)
	require.True(t, ok)
	assert.Nil(t, lit.Value)
}

func TestParse_IfElse(t *testing.T) {
	p, statements := parse(t, `clueless (surely) { chatting 1; } aware { chatting 2; }`)
	require.False(t, p.HasErrors())
	stmt := statements[0].(*IfStmt)
	assert.NotNil(t, stmt.Then)
	assert.NotNil(t, stmt.Else)
}

func TestParse_ForLoopDesugarsToWhileInsideBlocks(t *testing.T) {
	p, statements := parse(t, `forsen (lulw i = 0; i < 3; i = i + 1) { chatting i; }`)
	require.False(t, p.HasErrors())

	outer, ok := statements[0].(*BlockStmt)
	require.True(t, ok, "for-loop should desugar to an outer block holding the initializer")
	require.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*VarStmt)
	assert.True(t, ok, "first statement in the outer block should be the initializer")

	loop, ok := outer.Statements[1].(*WhileStmt)
	require.True(t, ok, "second statement should be the desugared while loop")

	body, ok := loop.Body.(*BlockStmt)
	require.True(t, ok, "loop body should be wrapped in its own block with the increment appended")
	assert.Len(t, body.Statements, 2)
}

func TestParse_ForLoopWithoutConditionDefaultsToTrue(t *testing.T) {
	// No initializer and no increment means forStatement has nothing to
	// wrap the WhileStmt in: it comes back as statements[0] directly,
	// unlike the initializer+increment case above.
	p, statements := parse(t, `forsen (;;) { chatting 1; }`)
	require.False(t, p.HasErrors())
	loop := statements[0].(*WhileStmt)
	lit, ok := loop.Condition.(*LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	p, statements := parse(t, `pog add(a, b) { xdd a + b; }`)
	require.False(t, p.HasErrors())
	fn := statements[0].(*FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)
}

func TestParse_TopLevelReturnIsAParseError(t *testing.T) {
	p, _ := parse(t, `xdd 1;`)
	require.True(t, p.HasErrors())
	assert.Equal(t, "Cannot return from top-level code.", p.Errors[0].Message)
}

func TestParse_ReturnInsideFunctionIsFine(t *testing.T) {
	p, _ := parse(t, `pog f() { xdd 1; }`)
	assert.False(t, p.HasErrors())
}

func TestParse_ClassDeclarationWithMethods(t *testing.T) {
	p, statements := parse(t, `
		class Greeter {
			init(name) { this.name = name; }
			greet() { chatting this.name; }
		}
	`)
	require.False(t, p.HasErrors())
	class := statements[0].(*ClassStmt)
	assert.Equal(t, "Greeter", class.Name.Lexeme)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
	assert.Equal(t, "greet", class.Methods[1].Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetIsAParseError(t *testing.T) {
	p, _ := parse(t, `1 + 2 = 3;`)
	require.True(t, p.HasErrors())
	assert.Equal(t, "Invalid assignment target.", p.Errors[0].Message)
}

func TestParse_ArityOverLimitIsAParseError(t *testing.T) {
	var params string
	for i := 0; i < maxArgs+1; i++ {
		if i > 0 {
			params += ", "
		}
		params += "p"
	}
	p, _ := parse(t, "pog f("+params+") { }")
	require.True(t, p.HasErrors())
	assert.Equal(t, "Can't have more than 255 parameters.", p.Errors[0].Message)
}

func TestParse_MissingSemicolonReportsErrorAtToken(t *testing.T) {
	p, _ := parse(t, `lulw x = 1`)
	require.True(t, p.HasErrors())
	err := p.Errors[0]
	assert.Equal(t, "Expect ';' after variable declaration.", err.Message)
	assert.Equal(t, "at end", err.Where())
}

func TestPrint_RendersAnIndentedTree(t *testing.T) {
	p, statements := parse(t, `lulw x = 1 + 2;`)
	require.False(t, p.HasErrors())
	tree := Print(statements)
	assert.Contains(t, tree, "Var x")
	assert.Contains(t, tree, "Binary +")
}
