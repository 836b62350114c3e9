package commands

import "github.com/spf13/cobra"

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print everything found about the game's library, prefix and Proton install",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Resolve(cmd.Context(), c.options(cmd), cmd.OutOrStdout())
		},
	}
}
