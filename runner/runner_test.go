package runner

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/significance/configs"
	"github.com/reusee/significance/debugs"
	"github.com/reusee/significance/modes"
	"github.com/reusee/significance/numbers"
	"github.com/reusee/significance/sigconfigs"
)

func newTestScope(t *testing.T, stdout, stderr *bytes.Buffer, defs ...any) dscope.Scope {
	defs = append([]any{
		dscope.Provide(configs.NewLoader(nil, "")),
		func() Stdout {
			return stdout
		},
		func() Stderr {
			return stderr
		},
	}, defs...)
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(defs...)
}

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewSession(t *testing.T) {
	stdout := new(bytes.Buffer)
	newTestScope(t, stdout, new(bytes.Buffer)).Call(func(
		newSession NewSession,
	) {
		session := newSession()
		for _, line := range []string{"{x : real}", "x := 8", "x ** 2 - 1"} {
			messages, err := session.ProcessLine(line)
			if err != nil {
				t.Fatal(err)
			}
			if len(messages) != 0 {
				t.Fatalf("got %v", messages)
			}
		}
		if got := stdout.String(); got != "63\n" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sig", "{x : real}\nx := 12.3 +/- 0.5\nx\n")
	b := writeFile(t, dir, "b.sig", "y := 5\n")
	c := writeFile(t, dir, "c.sig", "2 + 3 * 4\n")

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newTestScope(t, stdout, stderr,
		func() sigconfigs.Parallelism {
			return 2
		},
	).Call(func(
		runFiles RunFiles,
	) {
		code, err := runFiles(context.Background(), []string{a, b, c})
		if err != nil {
			t.Fatal(err)
		}
		if code != 1 {
			t.Fatalf("got %v", code)
		}
		if got := stdout.String(); got != "12.3 +/- 0.5\n14\n" {
			t.Fatalf("got %q", got)
		}
		if got := stderr.String(); got != "Error at 1:1: Variable 'y' not declared\n" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestRunFilesOrder(t *testing.T) {
	dir := t.TempDir()
	var locations []string
	var expected strings.Builder
	for i := range 20 {
		locations = append(locations, writeFile(t, dir, fmt.Sprintf("%d.sig", i), fmt.Sprintf("%d\n", i)))
		fmt.Fprintf(&expected, "%d\n", i)
	}

	stdout := new(bytes.Buffer)
	newTestScope(t, stdout, new(bytes.Buffer),
		func() sigconfigs.Parallelism {
			return 4
		},
	).Call(func(
		runFiles RunFiles,
	) {
		code, err := runFiles(context.Background(), locations)
		if err != nil {
			t.Fatal(err)
		}
		if code != 0 {
			t.Fatalf("got %v", code)
		}
		if stdout.String() != expected.String() {
			t.Fatalf("got %q", stdout.String())
		}
	})
}

func TestRunFilesParseError(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sig", "1\n2 +\n")
	b := writeFile(t, dir, "b.sig", "3\n")

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newTestScope(t, stdout, stderr).Call(func(
		runFiles RunFiles,
	) {
		code, err := runFiles(context.Background(), []string{a, b, filepath.Join(dir, "missing.sig")})
		if err != nil {
			t.Fatal(err)
		}
		if code != 1 {
			t.Fatalf("got %v", code)
		}
		// parse errors stop the file before evaluation
		if got := stdout.String(); got != "3\n" {
			t.Fatalf("got %q", got)
		}
		errOutput := stderr.String()
		if !strings.Contains(errOutput, "2 +\n   ^\n") {
			t.Fatalf("got %q", errOutput)
		}
		if !strings.Contains(errOutput, a+": Parse error at 2:4: Expected expression") {
			t.Fatalf("got %q", errOutput)
		}
		if !strings.Contains(errOutput, "missing.sig: ") {
			t.Fatalf("got %q", errOutput)
		}
	})
}

func TestRunFilesDump(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sig", "1 + 2\n")
	b := writeFile(t, dir, "b.sig", "sin(0)\n")
	dump := filepath.Join(dir, "ast.yaml")

	newTestScope(t, new(bytes.Buffer), new(bytes.Buffer),
		func() sigconfigs.ASTDumpPath {
			return sigconfigs.ASTDumpPath(dump)
		},
	).Call(func(
		runFiles RunFiles,
	) {
		if _, err := runFiles(context.Background(), []string{a, b}); err != nil {
			t.Fatal(err)
		}
		content, err := os.ReadFile(filepath.Join(dir, "ast.1.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "kind: binary") {
			t.Fatalf("got %s", content)
		}
		content, err = os.ReadFile(filepath.Join(dir, "ast.2.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "kind: call") {
			t.Fatalf("got %s", content)
		}
	})
}

func TestRunFilesRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "(2 +/- 0.5) * 2\n")
	}))
	defer server.Close()

	stdout := new(bytes.Buffer)
	newTestScope(t, stdout, new(bytes.Buffer)).Call(func(
		runFiles RunFiles,
	) {
		code, err := runFiles(context.Background(), []string{server.URL + "/a.sig"})
		if err != nil {
			t.Fatal(err)
		}
		if code != 0 {
			t.Fatalf("got %v", code)
		}
		if got := stdout.String(); got != "4 +/- 1\n" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestRunFilesForce(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sig", "y := 5\n7\n")

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newTestScope(t, stdout, stderr,
		func() sigconfigs.Force {
			return true
		},
	).Call(func(
		runFiles RunFiles,
	) {
		code, err := runFiles(context.Background(), []string{a})
		if err != nil {
			t.Fatal(err)
		}
		if code != 1 {
			t.Fatalf("got %v", code)
		}
		if stdout.String() != "7\n" {
			t.Fatalf("got %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "Undefined variable 'y' at 1:1.") {
			t.Fatalf("got %q", stderr.String())
		}
	})
}

func TestDumpPathFor(t *testing.T) {
	if got := dumpPathFor("ast.yaml", 0, 1); got != "ast.yaml" {
		t.Fatalf("got %v", got)
	}
	if got := dumpPathFor("out/ast.yaml", 1, 3); got != "out/ast.2.yaml" {
		t.Fatalf("got %v", got)
	}
	if got := dumpPathFor("", 1, 3); got != "" {
		t.Fatalf("got %v", got)
	}
}

func TestTapGlobals(t *testing.T) {
	stdout := new(bytes.Buffer)
	newTestScope(t, stdout, new(bytes.Buffer)).Call(func(
		newSession NewSession,
	) {
		session := newSession()
		for _, line := range []string{"{x : real}", "x := 2 +/- 0.1"} {
			if _, err := session.ProcessLine(line); err != nil {
				t.Fatal(err)
			}
		}
		globals := tapGlobals("repl", session.Evaluator())
		if _, ok := globals["x"]; !ok {
			t.Fatalf("got %v", globals)
		}
		if globals["source"] != "repl" {
			t.Fatalf("got %v", globals["source"])
		}
		vars := globals["vars"].(map[string]any)
		if len(vars) != 1 || vars["x"] != numbers.WithError(2, 0.1) {
			t.Fatalf("got %v", vars)
		}
		// every global converts for the tap
		starlarkGlobals := debugs.Globals(globals)
		if len(starlarkGlobals) != len(globals) {
			t.Fatalf("got %v", starlarkGlobals)
		}
		show := globals["show"].(func(string) string)
		if got := show("x"); got != "2 +/- 0.1" {
			t.Fatalf("got %q", got)
		}
		if got := show("nope"); got != "" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestDumpSkippedOnParseError(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.sig", "1 +\n")
	dump := filepath.Join(dir, "ast.yaml")

	stderr := new(bytes.Buffer)
	newTestScope(t, new(bytes.Buffer), stderr).Call(func(
		processFile ProcessFile,
	) {
		code, err := processFile(context.Background(), FileRun{
			Location: bad,
			Stdout:   new(bytes.Buffer),
			Stderr:   stderr,
			DumpPath: dump,
		})
		if err == nil {
			t.Fatal("should error")
		}
		if code != 1 {
			t.Fatalf("got %v", code)
		}
		if _, err := os.Stat(dump); !os.IsNotExist(err) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestDumpWrittenWithDiagnostics(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "a.sig", "y := 5\n")
	dump := filepath.Join(dir, "ast.yaml")

	newTestScope(t, new(bytes.Buffer), new(bytes.Buffer)).Call(func(
		processFile ProcessFile,
	) {
		code, err := processFile(context.Background(), FileRun{
			Location: src,
			Stdout:   new(bytes.Buffer),
			Stderr:   new(bytes.Buffer),
			DumpPath: dump,
		})
		if err != nil {
			t.Fatal(err)
		}
		if code != 1 {
			t.Fatalf("got %v", code)
		}
		content, err := os.ReadFile(dump)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "kind: assignment") {
			t.Fatalf("got %s", content)
		}
	})
}
