package plugin

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/goschedule/sysgraph/node"
)

// AppOption customizes an App before its first registration, following
// the teacher's functional-options convention (builder.BuilderOption):
// option constructors validate and panic on meaningless input; the
// resulting function mutates the App directly since, unlike builderConfig,
// App is already the long-lived value being configured.
type AppOption func(*App)

// WithLogger overrides the *slog.Logger an App logs lifecycle events
// through. Panics on a nil handler, mirroring builder.WithIDScheme's
// fail-fast-on-nil convention.
func WithLogger(h slog.Handler) AppOption {
	if h == nil {
		panic("plugin: WithLogger(nil)")
	}
	return func(a *App) { a.logger = slog.New(h) }
}

// App is the host a Plugin's Build/Setup methods configure (spec.md
// §4.6). It owns the registry of built schedule nodes handed off to a
// downstream executor (see package schedview) and enforces the
// duplicate-name rejection spec.md §7 calls a host-level, not structural,
// error.
type App struct {
	mu         sync.Mutex
	logger     *slog.Logger
	instanceID uuid.UUID

	names   map[string]bool
	plugins []Plugin
	nodes   []*node.Node

	built bool
}

// New constructs an App with a freshly minted diagnostic instance ID
// (SPEC_FULL.md §2: "not used for anonymous-set identity", reserved for
// host/run diagnostics) and, unless overridden via WithLogger, slog.Default.
func New(opts ...AppOption) *App {
	a := &App{
		logger:     slog.Default(),
		instanceID: uuid.New(),
		names:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger.Info("app created", "instance_id", a.instanceID)
	return a
}

// InstanceID returns this App's diagnostic instance identifier.
func (a *App) InstanceID() uuid.UUID { return a.instanceID }

// Add registers into, lifting it to a Plugin and running its Build
// method immediately (spec.md §4.6: "build(app) — mandatory; registers
// work units and configuration"). Returns ErrNilPlugin if into lifts to
// nil, ErrDuplicatePlugin if a unique plugin sharing its Name() is
// already registered, or ErrAlreadyBuilt if called after Build.
func (a *App) Add(into IntoPlugin) error {
	p, err := into.intoPlugin(a)
	if err != nil {
		return pluginErrorf("Add", err)
	}

	name := pluginName(p)

	a.mu.Lock()
	if a.built {
		a.mu.Unlock()
		return pluginErrorf("Add", ErrAlreadyBuilt)
	}
	if p.IsUnique() && a.names[name] {
		a.mu.Unlock()
		return pluginErrorf("Add", fmt.Errorf("%w: %q", ErrDuplicatePlugin, name))
	}
	a.names[name] = true
	a.plugins = append(a.plugins, p)
	a.mu.Unlock()

	a.logger.Info("plugin build", "name", name, "instance_id", a.instanceID)
	p.Build(a)
	return nil
}

// Register adds a fully configured schedule node to this App's registry,
// the point at which a Plugin's Build method hands its lifted, verb-
// enriched node off for eventual scheduling (spec.md §3: "consumed once
// by the plugin entry point when registered into a schedule").
func (a *App) Register(n *node.Node) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nodes = append(a.nodes, n)
}

// Nodes returns the schedule nodes registered so far, in registration
// order.
func (a *App) Nodes() []*node.Node {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*node.Node(nil), a.nodes...)
}

// Build runs Setup on every registered plugin that implements Setupable,
// in registration order, then marks the App built — no further Add calls
// are accepted (spec.md §4.6: "runs after all builds, before execution
// begins"). Calling Build more than once is a no-op.
func (a *App) Build() {
	a.mu.Lock()
	if a.built {
		a.mu.Unlock()
		return
	}
	a.built = true
	plugins := append([]Plugin(nil), a.plugins...)
	a.mu.Unlock()

	for _, p := range plugins {
		if s, ok := p.(Setupable); ok {
			a.logger.Info("plugin setup", "name", pluginName(p), "instance_id", a.instanceID)
			s.Setup(a)
		}
	}
}

// pluginName returns p.Name(), falling back to its concrete Go type name
// when Name() returns empty — the canonical-type-name default spec.md
// §4.6 describes ("defaulted to the type's canonical name"), given to
// plugins embedding BasePlugin without overriding Name themselves.
func pluginName(p Plugin) string {
	if name := p.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%T", p)
}
