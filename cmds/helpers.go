package cmds

import "strings"

// Var defines a command that sets the returned value from its argument.
func Var[T any](name string, desc ...string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(strings.Join(desc, " ")))
	return &value
}

// Switch defines name to turn the returned value on and !name to turn it off.
func Switch(name string, desc ...string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines a repeatable command appending each argument.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(strings.Join(desc, " ")))
	return &value
}
