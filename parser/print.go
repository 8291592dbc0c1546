/*
File    : pepega/parser/print.go
Package : parser

Adapted from go-mix's PrintingVisitor: an indenting tree-printer used
only for debugging, wired to the rc file's "echo_ast" setting. It has no effect on
language semantics.
*/
package parser

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// TreePrinter renders a parsed []Stmt as an indented tree into buf.
type TreePrinter struct {
	indent int
	buf    bytes.Buffer
}

// Print renders statements and returns the accumulated text.
func Print(statements []Stmt) string {
	p := &TreePrinter{}
	for _, s := range statements {
		s.Accept(p)
	}
	return p.buf.String()
}

func (p *TreePrinter) write(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

func (p *TreePrinter) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

// ---- statements ----

func (p *TreePrinter) VisitExpressionStmt(s *ExpressionStmt) {
	p.write("Expression")
	p.nested(func() { s.Expression.Accept(p) })
}

func (p *TreePrinter) VisitPrintStmt(s *PrintStmt) {
	p.write("Print")
	p.nested(func() { s.Expression.Accept(p) })
}

func (p *TreePrinter) VisitVarStmt(s *VarStmt) {
	p.write("Var %s", s.Name.Lexeme)
	p.nested(func() { s.Initializer.Accept(p) })
}

func (p *TreePrinter) VisitBlockStmt(s *BlockStmt) {
	p.write("Block")
	p.nested(func() {
		for _, stmt := range s.Statements {
			stmt.Accept(p)
		}
	})
}

func (p *TreePrinter) VisitIfStmt(s *IfStmt) {
	p.write("If")
	p.nested(func() {
		s.Condition.Accept(p)
		s.Then.Accept(p)
		if s.Else != nil {
			s.Else.Accept(p)
		}
	})
}

func (p *TreePrinter) VisitWhileStmt(s *WhileStmt) {
	p.write("While")
	p.nested(func() {
		s.Condition.Accept(p)
		s.Body.Accept(p)
	})
}

func (p *TreePrinter) VisitFunctionStmt(s *FunctionStmt) {
	names := make([]string, len(s.Params))
	for i, param := range s.Params {
		names[i] = param.Lexeme
	}
	p.write("Function %s(%v)", s.Name.Lexeme, names)
	p.nested(func() {
		for _, stmt := range s.Body {
			stmt.Accept(p)
		}
	})
}

func (p *TreePrinter) VisitReturnStmt(s *ReturnStmt) {
	p.write("Return")
	if s.Value != nil {
		p.nested(func() { s.Value.Accept(p) })
	}
}

func (p *TreePrinter) VisitClassStmt(s *ClassStmt) {
	p.write("Class %s", s.Name.Lexeme)
	p.nested(func() {
		for _, m := range s.Methods {
			p.VisitFunctionStmt(m)
		}
	})
}

// ---- expressions ----

func (p *TreePrinter) VisitLiteral(e *LiteralExpr) {
	p.write("Literal %v", e.Value)
}

func (p *TreePrinter) VisitVariable(e *VariableExpr) {
	p.write("Variable %s", e.Name.Lexeme)
}

func (p *TreePrinter) VisitUnary(e *UnaryExpr) {
	p.write("Unary %s", e.Operator.Lexeme)
	p.nested(func() { e.Right.Accept(p) })
}

func (p *TreePrinter) VisitBinary(e *BinaryExpr) {
	p.write("Binary %s", e.Operator.Lexeme)
	p.nested(func() {
		e.Left.Accept(p)
		e.Right.Accept(p)
	})
}

func (p *TreePrinter) VisitLogical(e *LogicalExpr) {
	p.write("Logical %s", e.Operator.Lexeme)
	p.nested(func() {
		e.Left.Accept(p)
		e.Right.Accept(p)
	})
}

func (p *TreePrinter) VisitGrouping(e *GroupingExpr) {
	p.write("Grouping")
	p.nested(func() { e.Expression.Accept(p) })
}

func (p *TreePrinter) VisitAssign(e *AssignExpr) {
	p.write("Assign %s", e.Name.Lexeme)
	p.nested(func() { e.Value.Accept(p) })
}

func (p *TreePrinter) VisitCall(e *CallExpr) {
	p.write("Call")
	p.nested(func() {
		e.Callee.Accept(p)
		for _, arg := range e.Arguments {
			arg.Accept(p)
		}
	})
}

func (p *TreePrinter) VisitGet(e *GetExpr) {
	p.write("Get %s", e.Name.Lexeme)
	p.nested(func() { e.Object.Accept(p) })
}

func (p *TreePrinter) VisitSet(e *SetExpr) {
	p.write("Set %s", e.Name.Lexeme)
	p.nested(func() {
		e.Object.Accept(p)
		e.Value.Accept(p)
	})
}

func (p *TreePrinter) VisitThis(e *ThisExpr) {
	p.write("This")
}
