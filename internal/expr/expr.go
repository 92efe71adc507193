// Package expr compiles CEL expressions into column hooks. Declarative
// column configs use it to express value getters and grouping keys without
// Go code; the expression sees the current row record as the variable `row`.
package expr

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/gridx/pkg/column"
)

// Row is the record shape expression-backed hooks operate on.
type Row = map[string]any

// Compiler compiles CEL expressions against the grid's row environment.
type Compiler struct {
	env *cel.Env
}

// NewCompiler builds a compiler with the standard extension libraries
// enabled (strings, lists, math, encoders).
func NewCompiler() (*Compiler, error) {
	env, err := cel.NewEnv(
		cel.Variable("row", cel.DynType),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
		celext.Encoders(),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &Compiler{env: env}, nil
}

// Getter compiles expression into a ValueGetter. Compilation errors are
// reported here; evaluation errors at render time yield a nil cell value,
// keeping the hook total and side-effect-free as the column contract
// requires.
func (c *Compiler) Getter(expression string) (column.ValueGetter[Row], error) {
	prg, err := c.compile(expression)
	if err != nil {
		return nil, err
	}
	return func(p column.Params[Row]) any {
		out, _, err := prg.Eval(map[string]any{"row": p.Row})
		if err != nil {
			return nil
		}
		return ToGo(out)
	}, nil
}

func (c *Compiler) compile(expression string) (cel.Program, error) {
	ast, issues := c.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, issues.Err())
	}
	prg, err := c.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expression, err)
	}
	return prg, nil
}

// ToGo converts a CEL result to native Go types, recursing into lists and
// maps.
func ToGo(val ref.Val) any {
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Int:
		return int64(v)
	case types.Uint:
		return uint64(v)
	case types.Double:
		return float64(v)
	case types.String:
		return string(v)
	case types.Bytes:
		return []byte(v)
	case types.Null:
		return nil
	}

	inner := val.Value()
	switch iv := inner.(type) {
	case []ref.Val:
		out := make([]any, len(iv))
		for i, elem := range iv {
			out[i] = ToGo(elem)
		}
		return out
	case []any:
		out := make([]any, len(iv))
		for i, elem := range iv {
			if rv, ok := elem.(ref.Val); ok {
				out[i] = ToGo(rv)
			} else {
				out[i] = elem
			}
		}
		return out
	case map[ref.Val]ref.Val:
		out := make(map[string]any, len(iv))
		for k, v := range iv {
			out[fmt.Sprintf("%v", k.Value())] = ToGo(v)
		}
		return out
	default:
		return inner
	}
}
