package configs

import "reflect"

// Configurable values can be overridden from configuration files.
// ConfigExpr names the CUE path holding the value.
type Configurable interface {
	ConfigExpr() string
}

var configurableType = reflect.TypeFor[Configurable]()
