/*
File    : pepega/interpreter/eval_expressions.go
Package : interpreter

Expression evaluation, one case per spec.md §4.5's expression table.
*/
package interpreter

import (
	"github.com/KunalKatiyar/pepega/callable"
	"github.com/KunalKatiyar/pepega/environment"
	"github.com/KunalKatiyar/pepega/lexer"
	"github.com/KunalKatiyar/pepega/parser"
	"github.com/KunalKatiyar/pepega/value"
)

func (in *Interpreter) evalExpr(expr parser.Expr, env *environment.Environment) (value.Value, error) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(e.Value), nil

	case *parser.GroupingExpr:
		return in.evalExpr(e.Expression, env)

	case *parser.VariableExpr:
		v, err := env.Get(e.Name)
		if err != nil {
			return nil, runtimeErrorf(e.Name.Line, "%s", err.Error())
		}
		return v, nil

	case *parser.AssignExpr:
		v, err := in.evalExpr(e.Value, env)
		if err != nil {
			return nil, err
		}
		if err := env.Assign(e.Name, v); err != nil {
			return nil, runtimeErrorf(e.Name.Line, "%s", err.Error())
		}
		return v, nil

	case *parser.UnaryExpr:
		return in.evalUnary(e, env)

	case *parser.BinaryExpr:
		return in.evalBinary(e, env)

	case *parser.LogicalExpr:
		return in.evalLogical(e, env)

	case *parser.CallExpr:
		return in.evalCall(e, env)

	case *parser.GetExpr:
		return in.evalGet(e, env)

	case *parser.SetExpr:
		return in.evalSet(e, env)

	case *parser.ThisExpr:
		v, err := env.Get(e.Keyword)
		if err != nil {
			return nil, runtimeErrorf(e.Keyword.Line, "%s", err.Error())
		}
		return v, nil

	default:
		return nil, runtimeErrorf(0, "Unknown expression.")
	}
}

// literalValue converts the interface{} payload a LiteralExpr carries
// (set by the parser from the lexer's already-parsed literal, or a
// bare bool/nil for keyword literals) into a Value.
func literalValue(v interface{}) value.Value {
	switch val := v.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Bool{Val: val}
	case float64:
		return value.Float{Val: val}
	case string:
		return value.Str{Val: val}
	default:
		return value.Nil{}
	}
}

func (in *Interpreter) evalUnary(e *parser.UnaryExpr, env *environment.Environment) (value.Value, error) {
	right, err := in.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case lexer.MINUS:
		switch r := right.(type) {
		case value.Int:
			return value.Int{Val: -r.Val}, nil
		case value.Float:
			return value.Float{Val: -r.Val}, nil
		default:
			return nil, runtimeErrorf(e.Operator.Line, "Invalid operand.")
		}
	case lexer.BANG:
		return value.Bool{Val: !right.Truthy()}, nil
	default:
		return nil, runtimeErrorf(e.Operator.Line, "Invalid operand.")
	}
}

func (in *Interpreter) evalLogical(e *parser.LogicalExpr, env *environment.Environment) (value.Value, error) {
	left, err := in.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == lexer.OR {
		if left.Truthy() {
			return left, nil
		}
	} else { // AND
		if !left.Truthy() {
			return left, nil
		}
	}
	return in.evalExpr(e.Right, env)
}

func (in *Interpreter) evalBinary(e *parser.BinaryExpr, env *environment.Environment) (value.Value, error) {
	left, err := in.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case lexer.EQUAL_EQUAL:
		return value.Bool{Val: left.EqualTo(right)}, nil
	case lexer.BANG_EQUAL:
		return value.Bool{Val: !left.EqualTo(right)}, nil

	case lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		return compareNumbers(e.Operator.Kind, left, right, e.Operator.Line)

	case lexer.PLUS:
		return addValues(left, right, e.Operator.Line)

	case lexer.MINUS, lexer.STAR, lexer.SLASH:
		return arithmetic(e.Operator.Kind, left, right, e.Operator.Line)

	default:
		return nil, runtimeErrorf(e.Operator.Line, "Invalid operator.")
	}
}

func compareNumbers(op lexer.TokenKind, left, right value.Value, line int) (value.Value, error) {
	const mismatch = "Operands must be two numbers."
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, runtimeErrorf(line, mismatch)
		}
		return value.Bool{Val: compareOrdered(op, float64(l.Val), float64(r.Val))}, nil
	case value.Float:
		r, ok := right.(value.Float)
		if !ok {
			return nil, runtimeErrorf(line, mismatch)
		}
		return value.Bool{Val: compareOrdered(op, l.Val, r.Val)}, nil
	default:
		return nil, runtimeErrorf(line, mismatch)
	}
}

func compareOrdered(op lexer.TokenKind, l, r float64) bool {
	switch op {
	case lexer.GREATER:
		return l > r
	case lexer.GREATER_EQUAL:
		return l >= r
	case lexer.LESS:
		return l < r
	default: // lexer.LESS_EQUAL
		return l <= r
	}
}

func addValues(left, right value.Value, line int) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		if r, ok := right.(value.Int); ok {
			return value.Int{Val: l.Val + r.Val}, nil
		}
	case value.Float:
		if r, ok := right.(value.Float); ok {
			return value.Float{Val: l.Val + r.Val}, nil
		}
	case value.Str:
		if r, ok := right.(value.Str); ok {
			return value.Str{Val: l.Val + r.Val}, nil
		}
	}
	return nil, runtimeErrorf(line, "Operands must be two numbers or two strings.")
}

func arithmetic(op lexer.TokenKind, left, right value.Value, line int) (value.Value, error) {
	const mismatch = "Operands must be two numbers."
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, runtimeErrorf(line, mismatch)
		}
		switch op {
		case lexer.MINUS:
			return value.Int{Val: l.Val - r.Val}, nil
		case lexer.STAR:
			return value.Int{Val: l.Val * r.Val}, nil
		default: // lexer.SLASH
			if r.Val == 0 {
				return nil, runtimeErrorf(line, "Division by zero.")
			}
			return value.Int{Val: l.Val / r.Val}, nil
		}
	case value.Float:
		r, ok := right.(value.Float)
		if !ok {
			return nil, runtimeErrorf(line, mismatch)
		}
		switch op {
		case lexer.MINUS:
			return value.Float{Val: l.Val - r.Val}, nil
		case lexer.STAR:
			return value.Float{Val: l.Val * r.Val}, nil
		default: // lexer.SLASH, native IEEE-754 semantics (Inf/NaN on zero)
			return value.Float{Val: l.Val / r.Val}, nil
		}
	default:
		return nil, runtimeErrorf(line, mismatch)
	}
}

func (in *Interpreter) evalGet(e *parser.GetExpr, env *environment.Environment) (value.Value, error) {
	obj, err := in.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*callable.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have properties.")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, &RuntimeError{Line: e.Name.Line, Message: callable.UndefinedPropertyError(e.Name.Lexeme).Error()}
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *parser.SetExpr, env *environment.Environment) (value.Value, error) {
	obj, err := in.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*callable.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have properties.")
	}
	v, err := in.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}
