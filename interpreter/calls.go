/*
File    : pepega/interpreter/calls.go
Package : interpreter

Call dispatch for the Call expression: evaluates the callee and
arguments, then dispatches on the callee's runtime Kind exactly per
spec.md §4.5 — Function invocation builds a fresh call-frame
environment enclosing the function's closure; Class invocation
constructs an Instance and runs "init" if declared; anything else is
"Can only call functions and classes."
*/
package interpreter

import (
	"github.com/KunalKatiyar/pepega/callable"
	"github.com/KunalKatiyar/pepega/environment"
	"github.com/KunalKatiyar/pepega/lexer"
	"github.com/KunalKatiyar/pepega/parser"
	"github.com/KunalKatiyar/pepega/value"
)

// thisToken looks up the receiver bound by Function.Bind; only its
// Lexeme matters to Environment.Get.
var thisToken = lexer.Token{Kind: lexer.THIS, Lexeme: "this"}

func (in *Interpreter) evalCall(e *parser.CallExpr, env *environment.Environment) (value.Value, error) {
	callee, err := in.evalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := in.evalExpr(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *callable.Function:
		if len(args) != fn.Arity() {
			return nil, runtimeErrorf(e.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return in.callFunction(fn, args)

	case *callable.Class:
		if len(args) != fn.Arity() {
			return nil, runtimeErrorf(e.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return in.instantiate(fn, args)

	default:
		return nil, runtimeErrorf(e.Paren.Line, "Can only call functions and classes.")
	}
}

// callFunction runs fn's body against a new environment binding its
// parameters positionally, enclosing fn's captured closure. It always
// returns a Value: the function's xdd result if one fired, otherwise
// Nil — except for "init" methods, which always yield the receiver
// regardless of what their body returns, per spec.md §4.5's class
// construction rule.
func (in *Interpreter) callFunction(fn *callable.Function, args []value.Value) (value.Value, error) {
	call := environment.NewEnclosed(fn.Closure)
	for i, param := range fn.Declaration.Params {
		call.Define(param.Lexeme, args[i])
	}

	err := in.execBlock(fn.Declaration.Body, call)
	if fn.IsInitializer {
		if err != nil {
			if _, isReturn := err.(*returnSignal); !isReturn {
				return nil, err
			}
		}
		this, _ := call.Get(thisToken)
		return this, nil
	}

	if err == nil {
		return value.Nil{}, nil
	}
	if ret, ok := err.(*returnSignal); ok {
		return ret.Value, nil
	}
	return nil, err
}

func (in *Interpreter) instantiate(class *callable.Class, args []value.Value) (value.Value, error) {
	inst := callable.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		bound := init.Bind(inst)
		if _, err := in.callFunction(bound, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
