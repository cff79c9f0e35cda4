package configs

import (
	"errors"
	"reflect"

	"github.com/reusee/dscope"
)

// Fork overrides every Configurable type defined in scope with the first
// value found at its ConfigExpr path.
func Fork(scope dscope.Scope, loader Loader) (ret dscope.Scope, err error) {
	var defs []any
	for t := range scope.AllTypes() {
		if !t.Implements(configurableType) {
			continue
		}
		ptr := reflect.New(t)
		path := ptr.Elem().Interface().(Configurable).ConfigExpr()
		if err := loader.AssignFirst(path, ptr.Interface()); err != nil {
			if errors.Is(err, ErrValueNotFound) {
				continue
			}
			return scope, err
		}
		defs = append(defs, ptr.Elem().Interface())
	}
	if len(defs) == 0 {
		return scope, nil
	}
	return scope.Fork(defs...), nil
}
