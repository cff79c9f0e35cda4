package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/reusee/significance/debugs"
	"github.com/reusee/significance/logs"
	"github.com/reusee/significance/sigconfigs"
	"github.com/reusee/significance/siglang"
	"github.com/reusee/significance/sources"
)

type FileRun struct {
	Location string
	Stdout   io.Writer
	Stderr   io.Writer
	// DumpPath receives the YAML tree when not empty.
	DumpPath string
}

// ProcessFile runs one program. Lex and parse failures are returned as errors
// after an excerpt of the offending line is written to Stderr.
type ProcessFile func(ctx context.Context, run FileRun) (int, error)

func (Module) ProcessFile(
	readSource sources.ReadSource,
	newSpan logs.NewSpan,
	logger logs.Logger,
	force sigconfigs.Force,
	tapEnabled TapEnabled,
	tap debugs.Tap,
) ProcessFile {
	return func(ctx context.Context, run FileRun) (code int, err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
			}
		}()

		src, err := readSource(ctx, run.Location)
		if err != nil {
			return 1, err
		}

		opts := siglang.FileOptions{
			Stdout: run.Stdout,
			Stderr: run.Stderr,
			Force:  bool(force),
			Logger: logger,
		}
		// the dump is written only once parsing succeeded
		dump := new(bytes.Buffer)
		if run.DumpPath != "" {
			opts.DumpAST = dump
		}

		res, err := siglang.ProcessFile(ctx, src, opts)
		if dump.Len() > 0 {
			if err := os.WriteFile(run.DumpPath, dump.Bytes(), 0644); err != nil {
				return 1, wrap(err)
			}
		}
		if err != nil {
			var lexErr *siglang.LexError
			var parseErr *siglang.ParseError
			switch {
			case errors.As(err, &lexErr):
				fmt.Fprint(run.Stderr, src.Excerpt(lexErr.Pos))
			case errors.As(err, &parseErr):
				fmt.Fprint(run.Stderr, src.Excerpt(parseErr.Pos))
			}
			return 1, err
		}
		logger.InfoContext(ctx, "file done",
			"location", run.Location,
			"results", len(res.Results),
			"diagnostics", len(res.Diagnostics),
			"exit", res.ExitCode,
		)

		if tapEnabled {
			tap(ctx, run.Location, tapGlobals(run.Location, res.Evaluator))
		}

		return res.ExitCode, nil
	}
}

// tapGlobals binds each variable by name, plus helpers that program
// variables of the same name shadow.
func tapGlobals(location string, evaluator *siglang.Evaluator) map[string]any {
	vars := make(map[string]any)
	for _, v := range evaluator.Vars() {
		vars[v.Name] = v.Value
	}

	globals := map[string]any{
		"source": location,
		"vars":   vars,
		"show": func(name string) string {
			v, ok := evaluator.Get(name)
			if !ok {
				return ""
			}
			return v.String()
		},
	}
	maps.Copy(globals, vars)
	return globals
}
