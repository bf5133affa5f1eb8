package configure

import (
	"github.com/goschedule/sysgraph/lift"
	"github.com/goschedule/sysgraph/node"
)

// Config is a chainable wrapper around *node.Node that promotes every
// builder verb in this package as a method, so callers can write the
// fluent chain spec.md's examples read as:
//
//	configure.From(lift.Func(moveSystem)).
//		InSet(lift.Label("physics")).
//		Before(lift.Func(renderSystem)).
//		Build()
//
// Every method mutates the wrapped node in place and returns the Config
// unchanged, except IntoSet, which wraps the replacement node its
// underlying verb returns. Config embeds *node.Node,
// so every read-only accessor on node.Node (Kind, Conditions, Members,
// Info, ...) is also available directly on a Config value.
type Config struct {
	*node.Node
}

// From lifts into and wraps the result as a Config, the entry point into
// the fluent chain.
func From(into lift.Into) Config {
	return Config{Node: lift.Node(into)}
}

// Build returns the underlying *node.Node, ready for plugin registration.
func (c Config) Build() *node.Node { return c.Node }

func (c Config) Before(other lift.Into) Config { return Config{Node: Before(c.Node, other)} }
func (c Config) After(other lift.Into) Config  { return Config{Node: After(c.Node, other)} }

func (c Config) InSet(parent lift.Into) Config     { return Config{Node: InSet(c.Node, parent)} }
func (c Config) InBaseSet(parent lift.Into) Config { return Config{Node: InBaseSet(c.Node, parent)} }

func (c Config) InDefaultBaseSet() Config { return Config{Node: InDefaultBaseSet(c.Node)} }
func (c Config) NoDefaultBaseSet() Config { return Config{Node: NoDefaultBaseSet(c.Node)} }

func (c Config) RunIf(cond node.Condition) Config { return Config{Node: RunIf(c.Node, cond)} }
func (c Config) DistributiveRunIf(cond node.CloneableCondition) Config {
	return Config{Node: DistributiveRunIf(c.Node, cond)}
}

func (c Config) AmbiguousWith(set lift.Into) Config { return Config{Node: AmbiguousWith(c.Node, set)} }
func (c Config) AmbiguousWithAll() Config           { return Config{Node: AmbiguousWithAll(c.Node)} }

func (c Config) Chain() Config   { return Config{Node: Chain(c.Node)} }
func (c Config) IntoSet() Config { return Config{Node: IntoSet(c.Node)} }
