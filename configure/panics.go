package configure

import "fmt"

// verbPanic formats a panic message prefixed with the rejecting verb's
// name, mirroring the teacher's builderErrorf "<Method>: <message>"
// convention (builder/errors.go) but for panic rather than a returned
// error, since spec.md §7 treats every rejection here as a structural
// programmer error with no recovery path.
func verbPanic(verb, format string, args ...any) {
	panic(fmt.Sprintf("configure: %s: %s", verb, fmt.Sprintf(format, args...)))
}
