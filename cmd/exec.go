package cmd

import (
	"context"
	"strings"

	"github.com/bnema/netrun/internal/adapters/render/plain"
	"github.com/bnema/netrun/internal/ports"
	"github.com/bnema/netrun/internal/session"
	"github.com/spf13/cobra"
)

func newExecCmd(app *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "exec [command]...",
		Short: "Run terminal commands without the interactive UI",
		Long: strings.Join([]string{
			"exec runs each argument as one terminal line in a fresh game, or reads lines from stdin when no argument is given.",
			"Actions are fast-forwarded to completion before the next line runs. Contract prompts read their answer from the next stdin line.",
		}, "\n"),
		Example: `  netrun exec "connect n00dles" "run NUKE.exe" hack
  printf 'scan-analyze 2\n' | netrun exec`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			rt, err := app.openRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close(context.Background()) }()

			out := cmd.OutOrStdout()
			var lines <-chan string
			var prompter ports.ContractPrompter
			if len(args) == 0 {
				lines = scanLines(ctx, cmd.InOrStdin())
				prompter = plain.NewPrompter(lines, out)
			} else {
				lines = argLines(args)
			}

			queue := session.NewQueue()
			sink := plain.NewSink(out, isTerminal(out))
			game, err := app.newGame(rt, session.Options{
				Prompter:  prompter,
				Scheduler: queue,
				Sinks:     []ports.OutputSink{sink},
			})
			if err != nil {
				return err
			}
			term := game.Terminal
			term.SetContext(ctx)
			if !quiet {
				sink.WriteAll(term.Records())
			}

			if err := feedLines(ctx, term, queue, app.settings.MilliPerCycle, lines, nil); err != nil {
				return err
			}
			return rt.Close(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the version banner")
	return cmd
}

func argLines(args []string) <-chan string {
	lines := make(chan string, len(args))
	for _, arg := range args {
		lines <- arg
	}
	close(lines)
	return lines
}
