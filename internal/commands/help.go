package commands

import (
	"context"
	"flag"
	"fmt"

	"todo/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	fmt.Fprint(env.Out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                   Start the task menu
  todo menu [common flags] [--no-confirm]
  todo tui [common flags]                Browse tasks full-screen (alias: browse)
  todo help
  todo version

Common flags:
  --config <dir>           Override config directory
  --quiet                  Only log errors
  --debug                  Print debug logs to stderr
  --format <text|json|yaml>
                           How View Tasks prints the list

Environment:
  TODO_OUTPUT_FORMAT, TODO_CONFIRM_DELETE, TODO_LOG_LEVEL,
  TODO_LOG_FORMAT, TODO_LOG_TIMESTAMPS override config.toml.
`
