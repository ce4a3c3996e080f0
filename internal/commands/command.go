// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/config"
	"todo/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on tasks.
	// Env.Service is nil for commands that return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with the positional arguments left after
	// flag parsing and returns the exit code.
	Run(ctx context.Context, env *Env, args []string) int
}

// Env is what a command runs against.
type Env struct {
	Config  *config.Config
	Service service.Service
	Logger  *log.Logger

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}
