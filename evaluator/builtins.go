package evaluator

import (
	"github.com/navionguy/flatbasic/ast"
	"github.com/navionguy/flatbasic/berrors"
	"github.com/navionguy/flatbasic/builtins"
	"github.com/navionguy/flatbasic/object"
)

// evalCallExpression applies a builtin to its single argument
func evalCallExpression(ce *ast.CallExpression, env *object.Environment) (float64, error) {
	fn, ok := builtins.Lookup(ce.Function)
	if !ok {
		return 0, berrors.New(berrors.UndefinedFunction, ce.Function)
	}

	arg, err := Eval(ce.Argument, env)
	if err != nil {
		return 0, err
	}

	return fn.Fn(arg), nil
}
