package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage lists commands sorted by name. Aliases are shown next to their
// command and negated switches are left out.
func (p *Executor) WriteUsage(w io.Writer) {
	var names []string
	for name, command := range p.commands {
		if slices.Contains(command.Aliases, name) {
			continue
		}
		if strings.HasPrefix(name, "!") {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		command := p.commands[name]
		line := name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
	}
}
