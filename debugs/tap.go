package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/significance/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark REPL with globals bound.
// Uncertain numbers appear as (magnitude, uncertainty) tuples.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap:" + what,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "tap", what)
			},
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}

// Globals converts Go values to starlark values.
func Globals(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict)
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
