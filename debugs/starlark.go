package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/significance/numbers"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case numbers.Real:
		// (magnitude, uncertainty)
		return starlark.Tuple{
			starlark.Float(v.Magnitude()),
			starlark.Float(v.Uncertainty()),
		}

	case string:
		return starlark.String(v)

	case float64:
		return starlark.Float(v)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	if reflect.TypeOf(v).Kind() == reflect.Func {
		return starlarkutil.MakeFunc("", v)
	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
