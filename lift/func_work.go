package lift

import (
	"context"
	"reflect"
	"runtime"
)

// funcWork adapts a bare function into node.Work so it can be wrapped
// identically to a hand-rolled work-unit type.
type funcWork struct {
	fn   func(context.Context) error
	name string
	send bool
}

func (f funcWork) Name() string                  { return f.name }
func (f funcWork) Send() bool                     { return f.send }
func (f funcWork) Run(ctx context.Context) error { return f.fn(ctx) }

// FuncOption configures a Func lift. Options follow the teacher's
// functional-options convention: later options override earlier ones,
// and option constructors never panic (the one exception, nil-function,
// is checked by Func itself, since it is a precondition of the call, not
// an option value).
type FuncOption func(*funcWork)

// NotSend marks the lifted function as unsafe to hand to another
// goroutine. Bare functions default to Send() == true; use this to model
// a work unit that closes over non-thread-safe state.
func NotSend() FuncOption {
	return func(w *funcWork) { w.send = false }
}

// WithName overrides the diagnostic name otherwise derived from the
// function's own runtime symbol.
func WithName(name string) FuncOption {
	return func(w *funcWork) { w.name = name }
}

func funcName(fn func(context.Context) error) string {
	ptr := reflect.ValueOf(fn).Pointer()
	if rf := runtime.FuncForPC(ptr); rf != nil {
		return rf.Name()
	}
	return "func"
}
