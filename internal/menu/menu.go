// Package menu implements the numbered text menu for managing tasks.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/service"
)

const (
	// Welcome is printed once when the menu starts.
	Welcome = "Welcome to the Todo CLI Application!"

	// Goodbye is printed when the user chooses Exit.
	Goodbye = "Thank you for using the Todo CLI Application. Goodbye!"

	menuTitle  = "--- Todo Application ---"
	menuFooter = "------------------------"
)

// errExit is returned by the exit action to end the loop.
var errExit = errors.New("exit")

// Options configures a menu session.
type Options struct {
	// Format selects how View Tasks prints the list.
	Format output.Format

	// ConfirmDelete asks for y/N confirmation before deleting.
	ConfirmDelete bool

	// Logger receives debug records for each action. Nil discards them.
	Logger *log.Logger
}

// Session is one run of the menu against a task service.
type Session struct {
	svc    service.Service
	in     io.Reader
	out    io.Writer
	opts   Options
	logger *log.Logger
	p      *prompter
}

// New creates a session reading user input from in and writing to out.
func New(svc service.Service, in io.Reader, out io.Writer, opts Options) *Session {
	if opts.Format == "" {
		opts.Format = output.FormatText
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		svc:    svc,
		in:     in,
		out:    out,
		opts:   opts,
		logger: logger,
	}
}

// Run shows the menu until the user exits or input ends. It returns nil
// in both cases, and the context error if ctx is cancelled first.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.p = newPrompter(ctx, s.in, s.out)

	fmt.Fprintln(s.out, Welcome)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.displayMenu()
		choice, err := s.p.ask(ctx, fmt.Sprintf("Enter your choice (1-%d): ", len(actions)))
		if err != nil {
			return s.finish(err)
		}

		act, ok := findAction(strings.TrimSpace(choice))
		if !ok {
			fmt.Fprintf(s.out, "Invalid choice. Please enter a number between 1 and %d.\n", len(actions))
			continue
		}

		s.logger.Debug("menu action", "action", act.name)
		if err := act.run(ctx, s); err != nil {
			return s.finish(err)
		}
	}
}

// finish maps loop-ending errors to Run's result.
func (s *Session) finish(err error) error {
	switch {
	case errors.Is(err, errExit):
		fmt.Fprintln(s.out, Goodbye)
		return nil
	case errors.Is(err, io.EOF):
		fmt.Fprintln(s.out)
		s.logger.Debug("input closed")
		return nil
	default:
		return err
	}
}

func (s *Session) displayMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, menuTitle)
	for _, a := range actions {
		fmt.Fprintf(s.out, "%s. %s\n", a.key, a.label)
	}
	fmt.Fprintln(s.out, menuFooter)
}

// ask prompts for one line, trimmed.
func (s *Session) ask(ctx context.Context, label string) (string, error) {
	line, err := s.p.ask(ctx, label)
	return strings.TrimSpace(line), err
}

// askID prompts for a task id. ok is false when the input was rejected
// and a message has already been printed.
func (s *Session) askID(ctx context.Context, label string) (id int, ok bool, err error) {
	input, err := s.ask(ctx, label)
	if err != nil {
		return 0, false, err
	}
	id, perr := ParseID(input)
	if perr != nil {
		s.printError(perr)
		return 0, false, nil
	}
	return id, true, nil
}

// printError reports a user-facing error as "Error: <message>." with the
// message capitalized.
func (s *Session) printError(err error) {
	msg := err.Error()
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	fmt.Fprintf(s.out, "Error: %s\n", msg)
}
