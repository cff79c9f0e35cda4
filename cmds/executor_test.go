package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var files []string
	var parallel int
	executor.Define("run", Func(func(location string) {
		files = append(files, location)
	}))
	executor.Define("-parallel", Func(func(n int) {
		parallel = n
	}))

	if err := executor.Execute([]string{
		"run", "a.sig",
		"-parallel", "4",
		"run", "https://example.com/b.sig",
	}); err != nil {
		t.Fatal(err)
	}
	if strings.Join(files, ",") != "a.sig,https://example.com/b.sig" {
		t.Fatalf("got %v", files)
	}
	if parallel != 4 {
		t.Fatalf("got %v", parallel)
	}

	err := executor.Execute([]string{
		"compile",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: compile") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-parallel", "many",
	})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestAlias(t *testing.T) {
	executor := NewExecutor()
	var n int
	executor.Define("eval", Func(func(string) {
		n++
	}).Alias("e"))

	if err := executor.Execute([]string{
		"eval", "1 + 2",
		"e", "sqrt(4)",
	}); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("got %v", n)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var prompt string
	executor.Define("repl", Func(func(width *int, p *string) {
		n = *width
		prompt = *p
	}))

	cases := []struct {
		args   []string
		n      int
		prompt string
	}{
		{[]string{"repl", "80", "sig>"}, 80, "sig>"},
		{[]string{"repl", "120"}, 120, ""},
		{[]string{"repl"}, 0, ""},
	}
	for _, c := range cases {
		if err := executor.Execute(c.args); err != nil {
			t.Fatal(err)
		}
		if n != c.n {
			t.Fatalf("%v: got %v", c.args, n)
		}
		if prompt != c.prompt {
			t.Fatalf("%v: got %q", c.args, prompt)
		}
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Func(func(location string) error {
		if location == "" {
			return fmt.Errorf("empty location")
		}
		return nil
	}))
	if err := executor.Execute([]string{"run", "a.sig"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"run", ""})
	if err == nil || err.Error() != "run: empty location" {
		t.Fatalf("got %v", err)
	}
}
