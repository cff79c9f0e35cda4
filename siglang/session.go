package siglang

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Session processes input one line at a time. The symbol table and variable
// store persist across lines. A Session is not safe for concurrent use.
type Session struct {
	id         string
	checker    *Checker
	evaluator  *Evaluator
	output     io.Writer
	sourceName string
	logger     *slog.Logger
}

type SessionOption func(*Session)

func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) {
		s.output = w
	}
}

func WithSourceName(name string) SessionOption {
	return func(s *Session) {
		s.sourceName = name
	}
}

func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

func NewSession(options ...SessionOption) *Session {
	s := &Session{
		id:         uuid.NewString(),
		checker:    NewChecker(),
		evaluator:  NewEvaluator(),
		output:     os.Stdout,
		sourceName: "<input>",
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Checker() *Checker {
	return s.checker
}

func (s *Session) Evaluator() *Evaluator {
	return s.evaluator
}

// ProcessLine runs one statement. The returned messages are lex, parse, checker
// or evaluator problems; an empty list means success or that the line is
// incomplete. Expression results are written to the output.
// The error is non-nil for output failures and fatal evaluation conditions.
func (s *Session) ProcessLine(text string) (messages []string, err error) {
	defer recoverFatal(&err)

	s.checker.ClearDiagnostics()
	s.evaluator.ClearDiagnostics()

	text = strings.TrimSpace(text)
	tokens, err := Tokenize(NewSource(s.sourceName, text))
	if err != nil {
		var lexErr *LexError
		if errors.As(err, &lexErr) {
			return []string{lexErr.Error()}, nil
		}
		return nil, wrap(err)
	}

	if IsIncomplete(tokens) {
		s.logger.Debug("incomplete line", "session", s.id)
		return nil, nil
	}

	stmt, err := ParseStatement(tokens)
	if err != nil {
		return []string{err.Error()}, nil
	}
	if stmt == nil {
		return nil, nil
	}

	s.checker.CheckStatement(stmt)
	if diags := s.checker.Diagnostics(); len(diags) > 0 {
		s.logger.Debug("checker diagnostics", "session", s.id, "count", len(diags))
		return diagnosticMessages(diags), nil
	}

	value, ok := s.evaluator.ExecStatement(stmt)
	if ok {
		if _, err := fmt.Fprintln(s.output, value.String()); err != nil {
			return nil, wrap(err)
		}
	}

	return diagnosticMessages(s.evaluator.Diagnostics()), nil
}

func diagnosticMessages(diags []Diagnostic) []string {
	return lo.Map(diags, func(d Diagnostic, _ int) string {
		return d.Error()
	})
}
