package cmd

import (
	"fmt"

	worldyaml "github.com/bnema/netrun/internal/adapters/world/yaml"
	"github.com/spf13/cobra"
)

func newWorldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "Inspect world definitions",
	}
	cmd.AddCommand(newWorldValidateCmd())
	return cmd
}

func newWorldValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a world file against the world schema",
		Long:  "validate loads a world file, or the built-in world when no file is given, and reports schema or topology errors.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			world, err := worldyaml.Load(path)
			if err != nil {
				return err
			}

			name := path
			if name == "" {
				name = "built-in world"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d servers, player starts on %s\n",
				name, len(world.Servers.All()), startHost(world))
			return err
		},
	}
}

func startHost(world *worldyaml.World) string {
	if world.Player.Hostname == "" {
		return "home"
	}
	return world.Player.Hostname
}
