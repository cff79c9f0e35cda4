package main

import (
	"bytes"
	"testing"

	"github.com/reusee/significance/siglang"
)

func TestEvalLines(t *testing.T) {
	out := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	session := siglang.NewSession(siglang.WithOutput(out))
	code := evalLines(session, []string{
		"{x : real}",
		"x := 12.3 +/- 0.5",
		"x",
		"y",
	}, stderr)
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if out.String() != "12.3 +/- 0.5\n" {
		t.Fatalf("got %q", out.String())
	}
	if stderr.String() != "Error at 1:1: Variable 'y' not declared\n" {
		t.Fatalf("got %q", stderr.String())
	}
}

func TestProcessLineFatal(t *testing.T) {
	stderr := new(bytes.Buffer)
	session := siglang.NewSession(siglang.WithOutput(new(bytes.Buffer)))
	code, stop := processLine(session, "cos(1, 2)", stderr)
	if !stop || code != 1 {
		t.Fatalf("got %v %v", code, stop)
	}
	if stderr.Len() == 0 {
		t.Fatal()
	}
}

func TestStripComment(t *testing.T) {
	if got := stripComment("  x := # later "); got != "x :=" {
		t.Fatalf("got %q", got)
	}
	if got := stripComment("1 + 2"); got != "1 + 2" {
		t.Fatalf("got %q", got)
	}
	if !siglang.IsIncompleteLine(stripComment("x := # later")) {
		t.Fatal()
	}
}

func TestEvalLinesIncomplete(t *testing.T) {
	out := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	session := siglang.NewSession(siglang.WithOutput(out))
	code := evalLines(session, []string{
		"1 +",
		"2 * 3",
	}, stderr)
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if out.String() != "6\n" {
		t.Fatalf("got %q", out.String())
	}
	if stderr.String() != "Incomplete statement: 1 +\n" {
		t.Fatalf("got %q", stderr.String())
	}
}
