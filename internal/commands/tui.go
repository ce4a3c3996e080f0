package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"todo/internal/exitcode"
	"todo/internal/ui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd runs the full-screen task browser.
type TuiCmd struct{}

func (c *TuiCmd) Name() string      { return "tui" }
func (c *TuiCmd) Aliases() []string { return []string{"browse"} }
func (c *TuiCmd) Synopsis() string  { return "Browse tasks in a full-screen view" }
func (c *TuiCmd) Usage() string     { return "todo tui" }
func (c *TuiCmd) NeedsStore() bool  { return true }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TuiCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	err := ui.Run(ctx, env.Service, env.In, env.Out)
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, context.Canceled):
		return exitcode.Interrupted
	case errors.Is(err, ui.ErrNotTTY):
		fmt.Fprintf(env.ErrOut, "error: %s (try: todo menu)\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(env.ErrOut, "error: %s\n", err)
		return exitcode.UserError
	}
}
