package plugin

// Plugin configures an App (spec.md §4.6). When an App registers a
// plugin, the plugin's Build method runs immediately; Setup runs later,
// after every registered plugin has built, and before the host hands its
// schedule off to an executor.
type Plugin interface {
	// Build configures app: lifting work units, running them through
	// package configure's verbs, and registering the resulting nodes.
	Build(app *App)

	// Name identifies this plugin for duplicate detection and
	// diagnostics. A plugin embedding BasePlugin and not overriding
	// this returns "", in which case App falls back to the plugin's
	// own Go type name (spec.md §4.6: "defaulted to the type's
	// canonical name").
	Name() string

	// IsUnique reports whether the host should reject a second
	// registration sharing this plugin's Name(). Plugins meant to be
	// added more than once (e.g. parameterized by constructor
	// arguments) should return false.
	IsUnique() bool
}

// Setupable is implemented by plugins that need a post-build hook
// (spec.md §4.6: "setup(app) — optional; runs after all builds, before
// execution begins"). Plugins with nothing to do after Build need not
// implement it — App.Build only calls Setup on plugins that do.
type Setupable interface {
	Setup(app *App)
}

// BasePlugin gives a plugin type the spec's defaults — Name() returns "",
// which App replaces with the embedding type's Go type name, and
// IsUnique() returns true — so an author only has to implement Build, the same way
// bevy_app::Plugin supplies default name()/is_unique() bodies. Embed it
// and override Name or IsUnique explicitly when the defaults do not fit.
type BasePlugin struct{}

// Name returns ""; App.Add then falls back to the plugin's concrete type
// name (see pluginName), so a plugin embedding BasePlugin without further
// customization is registered under its concrete type's name.
func (BasePlugin) Name() string { return "" }

// IsUnique defaults to true, per spec.md §4.6.
func (BasePlugin) IsUnique() bool { return true }
