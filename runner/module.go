package runner

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/significance/cmds"
	"github.com/reusee/significance/debugs"
	"github.com/reusee/significance/logs"
	"github.com/reusee/significance/sigconfigs"
	"github.com/reusee/significance/sources"
)

type Module struct {
	dscope.Module
	Configs sigconfigs.Module
	Sources sources.Module
	Debugs  debugs.Module
	Logs    logs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

type Stderr io.Writer

func (Module) Stderr() Stderr {
	return os.Stderr
}

var tapFlag = cmds.Switch("-tap", "open a starlark console over the variables after each file")

// TapEnabled opens a starlark REPL over the variables after each file run.
type TapEnabled bool

func (Module) TapEnabled() TapEnabled {
	return TapEnabled(*tapFlag)
}
