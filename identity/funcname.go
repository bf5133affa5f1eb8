package identity

import (
	"reflect"
	"runtime"
)

// runtimeFuncName returns a best-effort human-readable name for a function
// value, used only for diagnostics (String(), panic messages) and never
// for equality.
func runtimeFuncName(v reflect.Value) string {
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
		return fn.Name()
	}
	return v.Type().String()
}
