package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/significance/sigconfigs"
	"github.com/reusee/significance/siglang"
)

const continuationPrompt = "... "

func runREPL(
	session *siglang.Session,
	prompt sigconfigs.Prompt,
	historyFile sigconfigs.HistoryFile,
	stderr io.Writer,
) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      string(prompt),
		HistoryFile: string(historyFile),
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer rl.Close()

	var pending []string
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		line = stripComment(line)
		if len(pending) == 0 && line == "exit()" {
			break
		}

		pending = append(pending, line)
		input := strings.Join(pending, " ")
		if siglang.IsIncompleteLine(input) {
			rl.SetPrompt(continuationPrompt)
			continue
		}
		pending = pending[:0]
		rl.SetPrompt(string(prompt))

		if code, stop := processLine(session, input, stderr); stop {
			return code
		}
	}

	return 0
}

// processLine reports whether the loop must stop, with the exit code to use.
func processLine(session *siglang.Session, input string, stderr io.Writer) (int, bool) {
	messages, err := session.ProcessLine(input)
	if err != nil {
		var fatal *siglang.FatalError
		if errors.As(err, &fatal) {
			fmt.Fprintln(stderr, fatal.Error())
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1, true
	}
	for _, message := range messages {
		fmt.Fprintln(stderr, message)
	}
	return 0, false
}

func evalLines(session *siglang.Session, lines []string, stderr io.Writer) (code int) {
	for _, line := range lines {
		// no continuation lines outside the REPL
		if siglang.IsIncompleteLine(line) {
			fmt.Fprintf(stderr, "Incomplete statement: %s\n", strings.TrimSpace(line))
			code = 1
			continue
		}
		messages, err := session.ProcessLine(line)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		for _, message := range messages {
			fmt.Fprintln(stderr, message)
		}
		if len(messages) > 0 {
			code = 1
		}
	}
	return
}

// stripComment drops a trailing comment so continuation lines can be joined.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
