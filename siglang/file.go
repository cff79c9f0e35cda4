package siglang

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reusee/significance/numbers"
	"github.com/samber/lo"
)

type FileOptions struct {
	Stdout io.Writer
	Stderr io.Writer
	// DumpAST receives a YAML dump of the parsed program when set.
	DumpAST io.Writer
	// Force runs the evaluator even when the checker reported problems.
	Force  bool
	Logger *slog.Logger
}

type FileResult struct {
	ExitCode    int
	Results     []numbers.Real
	Diagnostics []Diagnostic
	Evaluator   *Evaluator
}

// ProcessFile runs a whole source in fresh state. Lex and parse errors are
// returned as errors. Diagnostics are written to Stderr and set ExitCode to 1.
func ProcessFile(ctx context.Context, src *Source, opts FileOptions) (ret FileResult, err error) {
	defer recoverFatal(&err)

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	stdout := lo.Ternary[io.Writer](opts.Stdout != nil, opts.Stdout, io.Discard)
	stderr := lo.Ternary[io.Writer](opts.Stderr != nil, opts.Stderr, io.Discard)

	tokens, err := Tokenize(src)
	if err != nil {
		return ret, err
	}
	program, err := ParseProgram(tokens)
	if err != nil {
		return ret, err
	}
	logger.DebugContext(ctx, "parsed",
		"source", src.Name,
		"statements", len(program.Statements),
	)

	if opts.DumpAST != nil {
		if err := DumpProgram(opts.DumpAST, program); err != nil {
			return ret, err
		}
	}

	checker := NewChecker()
	checker.CheckProgram(program)
	ret.Diagnostics = append(ret.Diagnostics, checker.Diagnostics()...)

	evaluator := NewEvaluator()
	ret.Evaluator = evaluator
	if len(ret.Diagnostics) == 0 || opts.Force {
		for _, stmt := range program.Statements {
			if err := ctx.Err(); err != nil {
				return ret, err
			}
			value, ok := evaluator.ExecStatement(stmt)
			if !ok {
				continue
			}
			ret.Results = append(ret.Results, value)
			if _, err := fmt.Fprintln(stdout, value.String()); err != nil {
				return ret, wrap(err)
			}
		}
		ret.Diagnostics = append(ret.Diagnostics, evaluator.Diagnostics()...)
	} else {
		logger.InfoContext(ctx, "evaluation skipped",
			"source", src.Name,
			"diagnostics", len(ret.Diagnostics),
		)
	}

	for _, diag := range ret.Diagnostics {
		if _, err := fmt.Fprintln(stderr, diag.Error()); err != nil {
			return ret, wrap(err)
		}
	}
	if len(ret.Diagnostics) > 0 {
		ret.ExitCode = 1
	}

	return ret, nil
}
