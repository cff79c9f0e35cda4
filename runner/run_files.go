package runner

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/reusee/significance/logs"
	"github.com/reusee/significance/sigconfigs"
	"github.com/reusee/significance/syncs"
)

// RunFiles processes the locations concurrently and writes their outputs in
// argument order. The result is the largest exit code.
type RunFiles func(ctx context.Context, locations []string) (int, error)

func (Module) RunFiles(
	processFile ProcessFile,
	parallelism sigconfigs.Parallelism,
	dumpPath sigconfigs.ASTDumpPath,
	tapEnabled TapEnabled,
	stdout Stdout,
	stderr Stderr,
	logger logs.Logger,
) RunFiles {
	return func(ctx context.Context, locations []string) (int, error) {
		n := int(parallelism)
		if tapEnabled {
			// the tap reads the terminal
			n = 1
		}
		sem := syncs.NewSemaphore(n)

		type fileResult struct {
			stdout bytes.Buffer
			stderr bytes.Buffer
			code   int
			err    error
		}
		results := make([]*fileResult, len(locations))

		var wg sync.WaitGroup
		for i, location := range locations {
			res := new(fileResult)
			results[i] = res
			sem.Acquire()
			wg.Go(func() {
				defer sem.Release()
				res.code, res.err = processFile(ctx, FileRun{
					Location: location,
					Stdout:   &res.stdout,
					Stderr:   &res.stderr,
					DumpPath: dumpPathFor(string(dumpPath), i, len(locations)),
				})
			})
		}
		wg.Wait()

		code := 0
		for i, res := range results {
			if _, err := stdout.Write(res.stdout.Bytes()); err != nil {
				return 1, wrap(err)
			}
			if _, err := stderr.Write(res.stderr.Bytes()); err != nil {
				return 1, wrap(err)
			}
			if res.err != nil {
				logger.ErrorContext(ctx, "file failed",
					"location", locations[i],
					"error", res.err,
				)
				if _, err := fmt.Fprintf(stderr, "%s: %s\n", locations[i], firstLine(res.err.Error())); err != nil {
					return 1, wrap(err)
				}
			}
			code = max(code, res.code)
		}

		return code, nil
	}
}

// dumpPathFor numbers the dump files when several programs run together.
func dumpPathFor(path string, index int, total int) string {
	if path == "" || total <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + strconv.Itoa(index+1) + ext
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
