package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/significance/logs"
	"github.com/reusee/significance/nets"
	"github.com/reusee/significance/siglang"
)

// ReadSource loads program text from a local path or an http(s) URL.
type ReadSource func(ctx context.Context, location string) (*siglang.Source, error)

func (Module) ReadSource(
	client nets.HTTPClient,
	logger logs.Logger,
) ReadSource {
	return func(ctx context.Context, location string) (*siglang.Source, error) {
		if !IsRemote(location) {
			content, err := os.ReadFile(location)
			if err != nil {
				return nil, wrap(err)
			}
			return siglang.NewSource(location, string(content)), nil
		}

		logger.InfoContext(ctx, "fetch source", "url", location)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return nil, wrap(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, wrap(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, wrap(fmt.Errorf("fetch %s: %s", location, resp.Status))
		}
		content, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, wrap(err)
		}
		return siglang.NewSource(location, string(content)), nil
	}
}

func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") ||
		strings.HasPrefix(location, "https://")
}
