package cmd

import (
	"fmt"

	"github.com/bnema/netrun/internal/adapters/render/plain"
	"github.com/bnema/netrun/internal/adapters/transcript"
	"github.com/spf13/cobra"
)

func newTranscriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Read archived terminal output",
	}
	cmd.AddCommand(newTranscriptShowCmd())
	return cmd
}

func newTranscriptShowCmd() *cobra.Command {
	var withTime bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a transcript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := transcript.ReadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sink := plain.NewSink(out, isTerminal(out))
			for _, line := range lines {
				if withTime {
					if _, err := fmt.Fprintf(out, "%s ", line.At.Local().Format("15:04:05")); err != nil {
						return err
					}
				}
				sink.Write(line.Domain())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTime, "time", false, "Prefix each line with the time it was written")
	return cmd
}
