package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/significance/runner"
)

type Module struct {
	dscope.Module
	Runner runner.Module
}
