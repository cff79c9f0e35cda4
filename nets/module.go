package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/significance/configs"
	"github.com/reusee/significance/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
