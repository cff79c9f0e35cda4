package siglang

import "fmt"

type LexError struct {
	Msg string
	Pos Pos
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Msg, e.Pos.Line, e.Pos.Column)
}

type ParseError struct {
	Msg string
	Pos Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// FatalError aborts evaluation. It is raised with panic when a call reaches
// the evaluator that the checker would have rejected.
type FatalError struct {
	Msg string
	Pos Pos
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("Fatal error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// recoverFatal turns a *FatalError panic into an error. Other panics propagate.
func recoverFatal(err *error) {
	p := recover()
	if p == nil {
		return
	}
	if fatal, ok := p.(*FatalError); ok {
		*err = fatal
		return
	}
	panic(p)
}
