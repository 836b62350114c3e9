package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/protonrun/internal/app"
	"go.trai.ch/protonrun/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [--dir DIR] -- <command> [args...]",
		Short: "Run a command inside the game's Proton prefix",
		Example: "  protonrun run -- winecfg\n" +
			"  protonrun run --dir ~/bots -- RLBot.exe 23234",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrNoCommand
			}
			dir, _ := cmd.Flags().GetString("dir")

			code, err := c.app.Run(cmd.Context(), c.options(cmd), app.RunRequest{
				Args: args,
				Dir:  dir,
			})
			if err != nil {
				return err
			}
			c.exitCode = code
			return nil
		},
	}
	// Flags after the command belong to the command.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringP("dir", "d", "", "Working directory of the command")
	return cmd
}
