package nets

import (
	"net/http"
	"time"

	"github.com/reusee/significance/configs"
	"github.com/reusee/significance/logs"
)

// FetchTimeout bounds a whole remote source request.
// Configured as a duration string like "10s".
type FetchTimeout time.Duration

const defaultFetchTimeout = FetchTimeout(30 * time.Second)

func (Module) FetchTimeout(
	loader configs.Loader,
	logger logs.Logger,
) FetchTimeout {
	text := configs.First[string](loader, "fetch_timeout")
	if text == "" {
		return defaultFetchTimeout
	}
	d, err := time.ParseDuration(text)
	if err != nil || d <= 0 {
		logger.Warn("bad fetch timeout", "value", text)
		return defaultFetchTimeout
	}
	return FetchTimeout(d)
}

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	timeout FetchTimeout,
) HTTPClient {
	return &http.Client{
		Timeout: time.Duration(timeout),
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
		},
	}
}
