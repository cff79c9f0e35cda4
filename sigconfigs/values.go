package sigconfigs

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/reusee/significance/cmds"
	"github.com/reusee/significance/configs"
	"github.com/reusee/significance/vars"
)

var (
	promptFlag      = cmds.Var[string]("-prompt", "REPL prompt")
	historyFileFlag = cmds.Var[string]("-history", "REPL history file")
	astDumpFlag     = cmds.Var[string]("-dump-ast", "write the YAML syntax tree to a path")
	parallelFlag    = cmds.Var[int]("-parallel", "number of files run at once")
	forceFlag       = cmds.Switch("-force", "evaluate even after checker errors")
)

type Prompt string

var _ configs.Configurable = Prompt("")

func (Prompt) ConfigExpr() string {
	return "prompt"
}

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return vars.FirstNonZero(
		Prompt(*promptFlag),
		configs.First[Prompt](loader, "prompt"),
		"> ",
	)
}

type HistoryFile string

var _ configs.Configurable = HistoryFile("")

func (HistoryFile) ConfigExpr() string {
	return "history_file"
}

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	var defaultPath HistoryFile
	if home, err := os.UserHomeDir(); err == nil {
		defaultPath = HistoryFile(filepath.Join(home, ".significance_history"))
	}
	return vars.FirstNonZero(
		HistoryFile(*historyFileFlag),
		configs.First[HistoryFile](loader, "history_file"),
		defaultPath,
	)
}

// ASTDumpPath is where file runs write the YAML tree. Empty disables the dump.
type ASTDumpPath string

var _ configs.Configurable = ASTDumpPath("")

func (ASTDumpPath) ConfigExpr() string {
	return "ast_dump"
}

func (Module) ASTDumpPath(
	loader configs.Loader,
) ASTDumpPath {
	return vars.FirstNonZero(
		ASTDumpPath(*astDumpFlag),
		configs.First[ASTDumpPath](loader, "ast_dump"),
	)
}

type Parallelism int

var _ configs.Configurable = Parallelism(0)

func (Parallelism) ConfigExpr() string {
	return "parallelism"
}

func (Module) Parallelism(
	loader configs.Loader,
) Parallelism {
	n := vars.FirstNonZero(
		Parallelism(*parallelFlag),
		configs.First[Parallelism](loader, "parallelism"),
		Parallelism(runtime.NumCPU()),
	)
	return max(n, 1)
}

// Force runs evaluation even when checking reported problems.
type Force bool

var _ configs.Configurable = Force(false)

func (Force) ConfigExpr() string {
	return "force"
}

func (Module) Force(
	loader configs.Loader,
) Force {
	return Force(*forceFlag) || configs.First[Force](loader, "force")
}
