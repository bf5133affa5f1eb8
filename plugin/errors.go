package plugin

import (
	"errors"
	"fmt"
)

// ErrNilPlugin indicates that IntoPlugin received a nil plugin value or a
// callable that returned one.
// Usage: if errors.Is(err, ErrNilPlugin) { /* reject the registration */ }.
var ErrNilPlugin = errors.New("plugin: nil plugin")

// ErrDuplicatePlugin indicates that App.Add rejected a registration because
// a unique plugin (IsUnique() == true) with the same Name() was already
// registered.
// Usage: if errors.Is(err, ErrDuplicatePlugin) { /* plugin already present */ }.
var ErrDuplicatePlugin = errors.New("plugin: duplicate plugin")

// ErrAlreadyBuilt indicates App.Add was called after App.Build, when the
// host no longer accepts new registrations.
// Usage: if errors.Is(err, ErrAlreadyBuilt) { /* register before Build */ }.
var ErrAlreadyBuilt = errors.New("plugin: app already built")

// pluginErrorf wraps sentinel err with the given method context, mirroring
// the teacher's builderErrorf "<Method>: <message>" convention
// (builder/errors.go). %w keeps the result errors.Is-able against err.
func pluginErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
