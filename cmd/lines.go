package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/session"
	"golang.org/x/term"
)

// scanLines feeds r into a channel until EOF or ctx is done.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// feedLines submits each line and settles the terminal before taking the
// next one, so a contract prompt reading from lines gets the following line.
func feedLines(ctx context.Context, t *application.Terminal, queue *session.Queue, milliPerCycle int, lines <-chan string, prompt func()) error {
	for {
		if prompt != nil {
			prompt()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			t.Submit(line)
			if err := queue.Settle(ctx, t, milliPerCycle); err != nil {
				return err
			}
		}
	}
}

func promptLine(out io.Writer, t *application.Terminal) func() {
	return func() {
		server := t.Player().CurrentServer()
		_, _ = fmt.Fprintf(out, "[%s %s]> ", server.Hostname, t.Cwd().Absolute())
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
