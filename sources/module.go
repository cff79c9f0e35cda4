package sources

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/significance/nets"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
