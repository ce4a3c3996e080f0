// Package cli parses the command line and dispatches to registered commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/store"
)

// ServiceFactory creates the task service a command runs against.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// MemoryStore is the ServiceFactory used by the binary: every run starts
// with an empty in-memory store.
func MemoryStore(ctx context.Context, cfg *config.Config) (service.Service, error) {
	return store.New(), nil
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and
// service factory. A nil factory means MemoryStore.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	if factory == nil {
		factory = MemoryStore
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	name := commands.DefaultCommand
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	// Flags require a command.
	if strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, in, out, errOut)
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
	format    string
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var common commonFlags
	fs.StringVar(&common.configDir, "config", "", "")
	fs.BoolVar(&common.quiet, "quiet", false, "")
	fs.BoolVar(&common.debug, "debug", false, "")
	fs.StringVar(&common.format, "format", "", "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// A dash-prefixed positional means the flag came after "--".
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	if common.format != "" {
		if _, err := output.ParseFormat(common.format); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
	}

	cfg, err := config.Load(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: config: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug
	if common.format != "" {
		cfg.OutputFormat = common.format
	}

	logger, err := logging.New(errOut, logOptions(cfg))
	if err != nil {
		fmt.Fprintf(errOut, "error: config: %s\n", err)
		return exitcode.ConfigError
	}
	logger, _ = logging.WithSession(logger)
	logger.Debug("dispatch", "command", cmd.Name(), "config_dir", cfg.Dir)

	env := &commands.Env{
		Config: cfg,
		Logger: logger,
		In:     in,
		Out:    out,
		ErrOut: errOut,
	}
	if cmd.NeedsStore() {
		svc, err := d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
		env.Service = svc
	}

	return cmd.Run(ctx, env, positional)
}

// logOptions maps config and the --quiet/--debug flags onto logger options.
// --debug wins over --quiet.
func logOptions(cfg *config.Config) logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	opts.Format = cfg.LogFormat
	opts.Timestamps = cfg.LogTimestamps
	switch {
	case cfg.Debug:
		opts.Level = "debug"
	case cfg.Quiet:
		opts.Level = "error"
	}
	return opts
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "flag needs an argument:"):
		return "flag needs an argument: " + strings.TrimSpace(strings.TrimPrefix(msg, "flag needs an argument:"))
	case strings.HasPrefix(msg, "flag provided but not defined:"):
		return "unknown flag: " + strings.TrimSpace(strings.TrimPrefix(msg, "flag provided but not defined:"))
	default:
		return msg
	}
}
