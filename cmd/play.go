package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/bnema/netrun/internal/adapters/render/plain"
	"github.com/bnema/netrun/internal/adapters/render/terminal"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
	"github.com/bnema/netrun/internal/session"
	"github.com/spf13/cobra"
)

func newPlayCmd(app *app) *cobra.Command {
	var lineMode bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the interactive terminal",
		Long:  "play opens the interactive terminal. Command history and the current directory are restored from the save file and written back on exit. When stdin is not a terminal, play reads one command per line instead.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			rt, err := app.openRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close(context.Background()) }()

			state, err := app.repo.Load(ctx)
			if err != nil {
				return fmt.Errorf("load save: %w", err)
			}

			var game *session.Game
			if lineMode || !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
				game, err = playLines(ctx, app, rt, cmd, state)
			} else {
				game, err = playInteractive(ctx, app, rt, state)
			}
			if err != nil {
				return err
			}

			if err := app.repo.Save(context.Background(), game.Terminal.Snapshot()); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			return rt.Close(context.Background())
		},
	}

	cmd.Flags().BoolVar(&lineMode, "line", false, "Read one command per line instead of opening the full-screen terminal")
	return cmd
}

func playInteractive(ctx context.Context, app *app, rt *runtime, state domain.TerminalState) (*session.Game, error) {
	ui := terminal.New(terminal.Options{Cycle: app.settings.cycle()})
	game, err := app.newGame(rt, session.Options{Prompter: ui, Scheduler: ui})
	if err != nil {
		return nil, err
	}
	game.Terminal.Restore(state)

	if err := ui.Run(ctx, game.Terminal); err != nil {
		return nil, err
	}
	return game, nil
}

func playLines(ctx context.Context, app *app, rt *runtime, cmd *cobra.Command, state domain.TerminalState) (*session.Game, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := cmd.OutOrStdout()
	sink := plain.NewSink(out, isTerminal(out))
	lines := scanLines(ctx, cmd.InOrStdin())
	queue := session.NewQueue()
	queue.Pace = app.settings.cycle()

	game, err := app.newGame(rt, session.Options{
		Prompter:  plain.NewPrompter(lines, out),
		Scheduler: queue,
		Sinks:     []ports.OutputSink{sink},
	})
	if err != nil {
		return nil, err
	}
	term := game.Terminal
	term.SetContext(ctx)
	term.Restore(state)
	sink.WriteAll(term.Records())

	if err := feedLines(ctx, term, queue, app.settings.MilliPerCycle, lines, promptLine(out, term)); err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintln(out)
	return game, nil
}
