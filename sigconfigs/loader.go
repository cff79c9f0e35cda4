package sigconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/significance/configs"
	"github.com/reusee/significance/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"significance.cue",
	".significance.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := configPaths()
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

// configPaths lists existing config files, most specific first.
func configPaths() (paths []string) {
	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

// NewLoader loads the named files against the embedded schema.
func NewLoader(paths []string) configs.Loader {
	return configs.NewLoader(paths, schema)
}
