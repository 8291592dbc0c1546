/*
File    : pepega/parser/parser_statements.go
Package : parser

Implements the statement and declaration grammar from spec.md §4.2:

	program    := declaration* EOF
	declaration:= classDecl | funDecl | varDecl | statement
	classDecl  := "class" IDENT "{" function* "}"
	funDecl    := "fun" function
	function   := IDENT "(" params? ")" "{" declaration* "}"
	params     := IDENT ("," IDENT)*   (max 255)
	varDecl    := "var" IDENT ("=" expression)? ";"
	statement  := ifStmt | printStmt | returnStmt | whileStmt |
	              forStmt | block | exprStmt
*/
package parser

import "github.com/KunalKatiyar/pepega/lexer"

// declaration parses one top-level or block-level declaration. On a
// parse error it synchronizes to the next statement boundary so a
// single malformed declaration does not cascade into spurious
// follow-on errors over the rest of the block.
func (p *Parser) declaration() Stmt {
	errorsBefore := len(p.Errors)

	var result Stmt
	switch {
	case p.match(lexer.CLASS):
		result = p.classDeclaration()
	case p.match(lexer.FUN):
		result = p.function("function")
	case p.match(lexer.VAR):
		result = p.varDeclaration()
	default:
		result = p.statement()
	}

	if len(p.Errors) > errorsBefore {
		p.synchronize()
	}
	return result
}

func (p *Parser) classDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")
	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")
	return &ClassStmt{Name: name, Methods: methods}
}

// function parses a single "IDENT ( params? ) { declaration* }" unit,
// shared by top-level funDecl and class method bodies. kind is used
// only in error messages ("function" or "method").
func (p *Parser) function(kind string) *FunctionStmt {
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.reportAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")

	p.functionDepth++
	body := p.block()
	p.functionDepth--

	return &FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer Expr = &LiteralExpr{Value: nil}
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.LEFT_BRACE):
		return &BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'clueless'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	if p.functionDepth == 0 {
		p.reportAt(keyword, "Cannot return from top-level code.")
	}
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'residentsleeper'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars "for (init; cond; incr) body" into:
//
//	{ init; while (cond ?? true) { { body; incr; } } }
//
// exactly per spec.md §4.2, so the interpreter never needs a separate
// For node: While already implements the repetition, and nesting body
// inside its own block keeps a single loop-variable binding visible to
// closures created in body across iterations.
func (p *Parser) forStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'forsen'.")

	var initializer Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &LiteralExpr{Value: true}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ExpressionStmt{Expression: expr}
}
