package siglang

import (
	"fmt"
	"slices"

	"github.com/reusee/significance/numbers"
)

type Builtin struct {
	Name  string
	Arity int
	Func  func(args []numbers.Real) numbers.Real
}

var builtins = map[string]Builtin{
	"sin": {
		Name:  "sin",
		Arity: 1,
		Func: func(args []numbers.Real) numbers.Real {
			return args[0].Sin()
		},
	},
	"cos": {
		Name:  "cos",
		Arity: 1,
		Func: func(args []numbers.Real) numbers.Real {
			return args[0].Cos()
		},
	},
	"sqrt": {
		Name:  "sqrt",
		Arity: 1,
		Func: func(args []numbers.Real) numbers.Real {
			return args[0].Sqrt()
		},
	},
}

// BuiltinNames returns the built-in function names in sorted order.
func BuiltinNames() []string {
	var names []string
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// callBuiltin panics with *FatalError on unknown names and arity mismatches.
func callBuiltin(name string, args []numbers.Real, pos Pos) numbers.Real {
	builtin, ok := builtins[name]
	if !ok {
		panic(&FatalError{
			Msg: fmt.Sprintf("Unknown built-in function '%s'", name),
			Pos: pos,
		})
	}
	if len(args) != builtin.Arity {
		panic(&FatalError{
			Msg: fmt.Sprintf("%s expects %d argument, got %d", name, builtin.Arity, len(args)),
			Pos: pos,
		})
	}
	return builtin.Func(args)
}
