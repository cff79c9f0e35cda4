package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/significance/cmds"
	"github.com/reusee/significance/configs"
	"github.com/reusee/significance/logs"
	"github.com/reusee/significance/modes"
	"github.com/reusee/significance/runner"
	"github.com/reusee/significance/sigconfigs"
)

var (
	ce = e5.Check.With(e5.WrapStacktrace)

	runFlag    = cmds.Collect[string]("run", "run a file or URL")
	evalFlag   = cmds.Collect[string]("eval", "evaluate a line")
	configFlag = cmds.Collect[string]("-config", "apply a CUE config file over all other settings")
)

func init() {
	cmds.Define("version", cmds.Func(func() {
		os.Stdout.WriteString("significance " + version + "\n")
		os.Exit(0)
	}).Desc("print version"))
}

const version = "0.1.0"

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	// explicitly named config files override everything else
	if len(*configFlag) > 0 {
		var err error
		scope, err = configs.Fork(scope, sigconfigs.NewLoader(*configFlag))
		ce(err)
	}

	var code int
	scope.Call(func(
		logger logs.Logger,
		runFiles runner.RunFiles,
		newSession runner.NewSession,
		prompt sigconfigs.Prompt,
		historyFile sigconfigs.HistoryFile,
		stderr runner.Stderr,
	) {
		ctx := context.Background()

		if len(*runFlag) == 0 && len(*evalFlag) == 0 {
			code = runREPL(newSession(), prompt, historyFile, stderr)
			return
		}

		if len(*runFlag) > 0 {
			n, err := runFiles(ctx, *runFlag)
			ce(err)
			code = max(code, n)
		}

		if len(*evalFlag) > 0 {
			code = max(code, evalLines(newSession(), *evalFlag, stderr))
		}

		logger.Info("done", "exit", code)
	})

	os.Exit(code)
}
