package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/protonrun/internal/app"
)

func (c *CLI) newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the environment of the game's Proton prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Env(cmd.Context(), c.options(cmd), format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("format", "f", app.FormatShell, "Output format: shell or yaml")
	return cmd
}
