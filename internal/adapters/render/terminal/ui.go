// Package terminal is the interactive bubbletea front end. The bubbletea
// update loop owns the Terminal.
package terminal

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Cycle  time.Duration
	Input  io.Reader
	Output io.Writer
}

// UI schedules continuations and prompts for contract answers through the
// running bubbletea program.
type UI struct {
	model   *model
	program *tea.Program
}

var (
	_ ports.Scheduler        = (*UI)(nil)
	_ ports.ContractPrompter = (*UI)(nil)
)

func New(opts Options) *UI {
	if opts.Cycle <= 0 {
		opts.Cycle = time.Duration(domain.MilliPerCycle) * time.Millisecond
	}
	m := newModel(opts.Cycle)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	return &UI{
		model:   m,
		program: tea.NewProgram(m, programOpts...),
	}
}

func (u *UI) Schedule(fn func()) {
	u.program.Send(jobMsg(fn))
}

func (u *UI) Prompt(ctx context.Context, contract domain.Contract) domain.ContractResult {
	req := &promptRequest{contract: contract, reply: make(chan domain.ContractResult, 1)}
	u.program.Send(promptMsg{request: req})

	select {
	case result := <-req.reply:
		return result
	case <-ctx.Done():
		return domain.ContractCancelled
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (u *UI) Run(ctx context.Context, term *application.Terminal) error {
	term.SetContext(ctx)
	u.model.term = term

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			u.program.Quit()
		case <-finished:
		}
	}()

	if _, err := u.program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
