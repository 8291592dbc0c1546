/*
File    : pepega/interpreter/eval_statements.go
Package : interpreter

Statement execution, one case per spec.md §4.5's statement table.
*/
package interpreter

import (
	"fmt"

	"github.com/KunalKatiyar/pepega/callable"
	"github.com/KunalKatiyar/pepega/environment"
	"github.com/KunalKatiyar/pepega/parser"
	"github.com/KunalKatiyar/pepega/value"
)

// execStmt runs one statement and returns:
//   - nil on ordinary completion
//   - *returnSignal when an "xdd" is in flight (caught by a call frame)
//   - any other error for a runtime fault
func (in *Interpreter) execStmt(stmt parser.Stmt, env *environment.Environment) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := in.evalExpr(s.Expression, env)
		return err

	case *parser.PrintStmt:
		v, err := in.evalExpr(s.Expression, env)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Out, v.String())
		return nil

	case *parser.VarStmt:
		v, err := in.evalExpr(s.Initializer, env)
		if err != nil {
			return err
		}
		env.Define(s.Name.Lexeme, v)
		return nil

	case *parser.BlockStmt:
		return in.execBlock(s.Statements, environment.NewEnclosed(env))

	case *parser.IfStmt:
		cond, err := in.evalExpr(s.Condition, env)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return in.execStmt(s.Then, env)
		}
		if s.Else != nil {
			return in.execStmt(s.Else, env)
		}
		return nil

	case *parser.WhileStmt:
		for {
			cond, err := in.evalExpr(s.Condition, env)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := in.execStmt(s.Body, env); err != nil {
				return err
			}
		}

	case *parser.FunctionStmt:
		fn := &callable.Function{Declaration: s, Closure: env}
		env.Define(s.Name.Lexeme, fn)
		return nil

	case *parser.ReturnStmt:
		var v value.Value = value.Nil{}
		if s.Value != nil {
			var err error
			v, err = in.evalExpr(s.Value, env)
			if err != nil {
				return err
			}
		}
		return &returnSignal{Value: v}

	case *parser.ClassStmt:
		return in.execClassStmt(s, env)

	default:
		return runtimeErrorf(0, "Unknown statement.")
	}
}

// execBlock runs statements in order inside env, which the caller has
// already created as a new enclosed scope. There is no explicit
// "restore previous environment" step because the caller never
// retains env past this call — each BlockStmt allocates its own.
func (in *Interpreter) execBlock(statements []parser.Stmt, env *environment.Environment) error {
	for _, stmt := range statements {
		if err := in.execStmt(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execClassStmt(s *parser.ClassStmt, env *environment.Environment) error {
	methods := make(map[string]*callable.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &callable.Function{
			Declaration:   m,
			Closure:       env,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}
	class := &callable.Class{Name: s.Name.Lexeme, Methods: methods}
	env.Define(s.Name.Lexeme, class)
	return nil
}
