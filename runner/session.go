package runner

import (
	"github.com/reusee/significance/logs"
	"github.com/reusee/significance/siglang"
)

type NewSession func() *siglang.Session

func (Module) NewSession(
	stdout Stdout,
	logger logs.Logger,
) NewSession {
	return func() *siglang.Session {
		session := siglang.NewSession(
			siglang.WithOutput(stdout),
			siglang.WithLogger(logger),
		)
		logger.Info("new session", "session", session.ID())
		return session
	}
}
