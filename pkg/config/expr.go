package config

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getmockd/mockdata/pkg/template"
	"github.com/getmockd/mockdata/pkg/value"
)

// exprEnv is what an !expr template sees.
type exprEnv struct {
	This any      `expr:"this"`
	Root any      `expr:"root"`
	Name string   `expr:"name"`
	Path []string `expr:"path"`
	// Mock expands the placeholders of its argument in place.
	Mock func(s string) (any, error) `expr:"mock"`
}

func newExprEnv(this any, opts template.Options) exprEnv {
	env := exprEnv{
		This: value.Plain(this),
		Name: opts.ParsedName,
	}
	ctx := opts.Context
	if ctx == nil {
		env.Mock = func(s string) (any, error) {
			return nil, fmt.Errorf("mock(%q) outside of a generation", s)
		}
		return env
	}
	env.Root = value.Plain(ctx.Root)
	env.Path = ctx.Path.Segments()
	env.Mock = func(s string) (any, error) {
		v, err := ctx.Generate(s)
		return value.Plain(v), err
	}
	return env
}

// CompileExpr compiles an expr-lang expression into a function template.
func CompileExpr(expression string) (template.Func, error) {
	program, err := expr.Compile(expression, expr.Env(exprEnv{}))
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return exprFunc(expression, program), nil
}

func exprFunc(expression string, program *vm.Program) template.Func {
	return func(this any, opts template.Options) (any, error) {
		result, err := expr.Run(program, newExprEnv(this, opts))
		if err != nil {
			return nil, fmt.Errorf("eval %q: %w", expression, err)
		}
		return result, nil
	}
}
