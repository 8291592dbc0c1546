/*
File    : pepega/parser/parser_expressions.go
Package : parser

Implements the expression grammar from spec.md §4.2, precedence
low to high:

	expression := assignment
	assignment := (call ".")? IDENT "=" assignment | logic_or
	logic_or   := logic_and ("or" logic_and)*
	logic_and  := equality ("and" equality)*
	equality   := comparison (("!="|"==") comparison)*
	comparison := term ((">"|">="|"<"|"<=") term)*
	term       := factor (("-"|"+") factor)*
	factor     := unary (("/"|"*") unary)*
	unary      := ("!"|"-") unary | call
	call       := primary ( "(" arguments? ")" | "." IDENT )*
	primary    := "false"|"true"|"nil"|"this"|NUMBER|STRING
	            | IDENT | "(" expression ")"
*/
package parser

import "github.com/KunalKatiyar/pepega/lexer"

func (p *Parser) expression() Expr {
	return p.assignment()
}

func (p *Parser) assignment() Expr {
	expr := p.logicOr()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Name: target.Name, Value: value}
		case *GetExpr:
			return &SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.reportAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *Parser) logicOr() Expr {
	expr := p.logicAnd()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.logicAnd()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: operator, Right: right}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else if p.match(lexer.DOT) {
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = &GetExpr{Object: expr, Name: name}
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.reportAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return &LiteralExpr{Value: false}
	case p.match(lexer.TRUE):
		return &LiteralExpr{Value: true}
	case p.match(lexer.NIL):
		return &LiteralExpr{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &LiteralExpr{Value: p.previous().Literal}
	case p.match(lexer.THIS):
		return &ThisExpr{Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Expression: expr}
	default:
		p.reportAt(p.peek(), "Expect expression.")
		// Advance so synchronize() has forward progress to find the
		// next statement boundary instead of looping on this token.
		p.advance()
		return &LiteralExpr{Value: nil}
	}
}
