package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

type lineResult struct {
	text string
	err  error
}

// prompter writes a label and waits for one line of input. Lines are
// read on a separate goroutine so a cancelled context ends a pending
// prompt without waiting for the user.
type prompter struct {
	out   io.Writer
	lines <-chan lineResult
}

func newPrompter(ctx context.Context, in io.Reader, out io.Writer) *prompter {
	lines := make(chan lineResult)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- lineResult{text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case lines <- lineResult{err: err}:
		case <-ctx.Done():
		}
	}()
	return &prompter{out: out, lines: lines}
}

// ask prints label and returns the next raw input line.
func (p *prompter) ask(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.out, label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return r.text, r.err
	}
}
