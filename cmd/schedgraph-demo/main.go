// Command schedgraph-demo assembles a small example schedule through the
// DSL, registers it into a plugin.App the way a host binary drives
// bevy_app's App, and prints the execution plan the illustrative executor
// (package schedview) computes from it.
//
// It exists to give the plugin entry point (spec.md §4.6) a real outer
// surface to be driven from — the DSL itself has no wire protocol, file
// format, or CLI surface (spec.md §6).
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goschedule/sysgraph/configure"
	"github.com/goschedule/sysgraph/lift"
	"github.com/goschedule/sysgraph/plugin"
	"github.com/goschedule/sysgraph/schedview"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "schedgraph-demo",
		Short: "Build and print an example schedule execution plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), verbose)
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log plugin lifecycle events to stderr")
	return root
}

func runDemo(out io.Writer, verbose bool) error {
	var opts []plugin.AppOption
	if !verbose {
		opts = append(opts, plugin.WithLogger(slog.NewTextHandler(io.Discard, nil)))
	}
	app := plugin.New(opts...)

	if err := app.Add(plugin.Value(movementPlugin{})); err != nil {
		return fmt.Errorf("schedgraph-demo: %w", err)
	}
	if err := app.Add(plugin.Value(renderPlugin{})); err != nil {
		return fmt.Errorf("schedgraph-demo: %w", err)
	}
	app.Build()

	plan, err := schedview.Compute(app.Nodes()...)
	if err != nil {
		return fmt.Errorf("schedgraph-demo: %w", err)
	}

	for i, step := range plan.Steps {
		fmt.Fprintf(out, "%2d. %s\n", i+1, step.Node.Work().Name())
	}
	return nil
}

func move(ctx context.Context) error   { return nil }
func physics(ctx context.Context) error { return nil }
func render(ctx context.Context) error { return nil }

// movementPlugin registers a chained pair of movement systems under a
// named "physics" set, the way a game's physics plugin would group its
// own systems before anything downstream depends on the set as a whole.
type movementPlugin struct{ plugin.BasePlugin }

func (movementPlugin) Build(app *plugin.App) {
	n := configure.From(lift.Many(
		lift.Func(physics, lift.WithName("ApplyForces")),
		lift.Func(move, lift.WithName("Integrate")),
	)).Chain().InSet(lift.Label("physics")).Build()
	app.Register(n)
}

// renderPlugin registers a system that must run after every system in the
// "physics" set, demonstrating a Set-targeted After dependency resolved by
// package schedview at plan-computation time.
type renderPlugin struct{ plugin.BasePlugin }

func (renderPlugin) Build(app *plugin.App) {
	n := configure.From(lift.Func(render, lift.WithName("Render"))).
		After(lift.Label("physics")).
		Build()
	app.Register(n)
}
