package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "netrun",
		Short:         "netrun: a hacking-game terminal",
		Long:          "netrun simulates a hacking-game terminal: connect across a network of servers, hack, grow and weaken them, and solve coding contracts.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newExecCmd(app),
		newServeCmd(app),
		newJournalCmd(app),
		newWorldCmd(),
		newTranscriptCmd(),
	)

	return rootCmd
}
