/*
File    : pepega/parser/node.go
Package : parser

Defines the AST node families the parser produces and the
interpreter walks: Expr and Stmt. Nodes are pure data — owned
references to their children, no behavior beyond Accept for the
debug-printing Visitor in print.go.
*/
package parser

import "github.com/KunalKatiyar/pepega/lexer"

// Expr is implemented by every expression node kind.
type Expr interface {
	exprNode()
	Accept(v ExprVisitor)
}

// Stmt is implemented by every statement node kind.
type Stmt interface {
	stmtNode()
	Accept(v StmtVisitor)
}

// ExprVisitor is implemented by consumers that walk Expr trees without
// being the interpreter itself (currently: the debug printer).
type ExprVisitor interface {
	VisitLiteral(e *LiteralExpr)
	VisitVariable(e *VariableExpr)
	VisitUnary(e *UnaryExpr)
	VisitBinary(e *BinaryExpr)
	VisitLogical(e *LogicalExpr)
	VisitGrouping(e *GroupingExpr)
	VisitAssign(e *AssignExpr)
	VisitCall(e *CallExpr)
	VisitGet(e *GetExpr)
	VisitSet(e *SetExpr)
	VisitThis(e *ThisExpr)
}

// StmtVisitor is implemented by consumers that walk Stmt trees.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt)
	VisitPrintStmt(s *PrintStmt)
	VisitVarStmt(s *VarStmt)
	VisitBlockStmt(s *BlockStmt)
	VisitIfStmt(s *IfStmt)
	VisitWhileStmt(s *WhileStmt)
	VisitFunctionStmt(s *FunctionStmt)
	VisitReturnStmt(s *ReturnStmt)
	VisitClassStmt(s *ClassStmt)
}

// ---- Expressions ----

// LiteralExpr wraps a compile-time-known value: a number, string,
// boolean, or nil literal encountered directly in source.
type LiteralExpr struct {
	Value interface{} // float64, string, bool, or nil
}

// VariableExpr reads the current value bound to a name.
type VariableExpr struct {
	Name lexer.Token
}

// UnaryExpr applies a single prefix operator ("-" or "!") to Right.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

// BinaryExpr applies an infix operator to Left and Right. Both
// operands are evaluated before the operator is applied.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// LogicalExpr is "and"/"or". Unlike BinaryExpr it may short-circuit:
// Right is only evaluated when Left does not already decide the
// result.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// GroupingExpr is a parenthesized expression, kept as its own node so
// that the debug printer can show grouping explicitly.
type GroupingExpr struct {
	Expression Expr
}

// AssignExpr stores a new value under an existing name and yields
// that value.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

// CallExpr invokes Callee with Arguments. Paren is the closing ")"
// token, kept for error-line reporting on arity mismatches.
type CallExpr struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

// GetExpr reads a field or method from an instance.
type GetExpr struct {
	Object Expr
	Name   lexer.Token
}

// SetExpr stores a value into an instance field.
type SetExpr struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// ThisExpr resolves the receiver bound inside a method body.
type ThisExpr struct {
	Keyword lexer.Token
}

func (*LiteralExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}

func (e *LiteralExpr) Accept(v ExprVisitor)  { v.VisitLiteral(e) }
func (e *VariableExpr) Accept(v ExprVisitor) { v.VisitVariable(e) }
func (e *UnaryExpr) Accept(v ExprVisitor)    { v.VisitUnary(e) }
func (e *BinaryExpr) Accept(v ExprVisitor)   { v.VisitBinary(e) }
func (e *LogicalExpr) Accept(v ExprVisitor)  { v.VisitLogical(e) }
func (e *GroupingExpr) Accept(v ExprVisitor) { v.VisitGrouping(e) }
func (e *AssignExpr) Accept(v ExprVisitor)   { v.VisitAssign(e) }
func (e *CallExpr) Accept(v ExprVisitor)     { v.VisitCall(e) }
func (e *GetExpr) Accept(v ExprVisitor)      { v.VisitGet(e) }
func (e *SetExpr) Accept(v ExprVisitor)      { v.VisitSet(e) }
func (e *ThisExpr) Accept(v ExprVisitor)     { v.VisitThis(e) }

// ---- Statements ----

// ExpressionStmt evaluates an expression purely for its side effects
// and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its display form
// followed by a newline.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a new variable in the innermost scope. Initializer
// is never nil — the parser substitutes a LiteralExpr{nil} when the
// source omits "= expr".
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt runs Then when Condition is truthy, otherwise Else (which may
// be nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt repeatedly runs Body while Condition remains truthy. For
// loops are desugared into this node by the parser.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function (or, nested inside a
// ClassStmt, a method).
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// ReturnStmt signals a non-local exit from the nearest enclosing
// function, carrying Value (nil means "return nil").
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

// ClassStmt declares a class and its methods. Pepega classes have no
// inheritance — Methods is the complete method set.
type ClassStmt struct {
	Name    lexer.Token
	Methods []*FunctionStmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}

func (s *ExpressionStmt) Accept(v StmtVisitor) { v.VisitExpressionStmt(s) }
func (s *PrintStmt) Accept(v StmtVisitor)      { v.VisitPrintStmt(s) }
func (s *VarStmt) Accept(v StmtVisitor)        { v.VisitVarStmt(s) }
func (s *BlockStmt) Accept(v StmtVisitor)      { v.VisitBlockStmt(s) }
func (s *IfStmt) Accept(v StmtVisitor)         { v.VisitIfStmt(s) }
func (s *WhileStmt) Accept(v StmtVisitor)      { v.VisitWhileStmt(s) }
func (s *FunctionStmt) Accept(v StmtVisitor)   { v.VisitFunctionStmt(s) }
func (s *ReturnStmt) Accept(v StmtVisitor)     { v.VisitReturnStmt(s) }
func (s *ClassStmt) Accept(v StmtVisitor)      { v.VisitClassStmt(s) }
