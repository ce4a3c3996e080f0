package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"todo/internal/exitcode"
	"todo/internal/menu"
	"todo/internal/output"
)

func init() {
	Register(&MenuCmd{})
}

// MenuCmd runs the numbered text menu on the command's standard streams.
type MenuCmd struct {
	noConfirm bool
}

func (c *MenuCmd) Name() string      { return "menu" }
func (c *MenuCmd) Aliases() []string { return nil }
func (c *MenuCmd) Synopsis() string  { return "Manage tasks from a numbered menu" }
func (c *MenuCmd) Usage() string     { return "todo menu [--no-confirm]" }
func (c *MenuCmd) NeedsStore() bool  { return true }

func (c *MenuCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.noConfirm, "no-confirm", false, "")
	fs.BoolVar(&c.noConfirm, "y", false, "")
}

func (c *MenuCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	format, err := output.ParseFormat(env.Config.OutputFormat)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %s\n", err)
		return exitcode.UserError
	}

	sess := menu.New(env.Service, env.In, env.Out, menu.Options{
		Format:        format,
		ConfirmDelete: env.Config.ConfirmDelete && !c.noConfirm,
		Logger:        env.Logger,
	})
	if err := sess.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(env.Out)
			return exitcode.Interrupted
		}
		fmt.Fprintf(env.ErrOut, "error: %s\n", err)
		return exitcode.UserError
	}
	env.Logger.Debug("menu closed", "tasks", env.Service.Len())
	return exitcode.Success
}
