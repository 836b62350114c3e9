// Package commands implements the CLI commands for protonrun.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/protonrun/internal/app"
	"go.trai.ch/protonrun/internal/build"
)

// CLI represents the command line interface for protonrun.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	PrintCommand(ctx context.Context, opts app.Options, w io.Writer) error
	Env(ctx context.Context, opts app.Options, format string, w io.Writer) error
	Resolve(ctx context.Context, opts app.Options, w io.Writer) error
	Run(ctx context.Context, opts app.Options, req app.RunRequest) (int, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "protonrun",
		Short: "Run commands inside the Proton prefix of a Steam game",
		Long: "protonrun finds the Steam library holding a game, the Proton version its prefix\n" +
			"was created with and the matching Proton install. Without a subcommand it prints\n" +
			"the command line that starts the configured executable inside that prefix.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.PrintCommand(cmd.Context(), c.options(cmd), cmd.OutOrStdout())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to the config file (default $XDG_CONFIG_HOME/protonrun/config.yaml)")
	flags.String("app-id", "", "Steam app id of the game (default 252950)")
	flags.BoolP("verbose", "v", false, "Log every resolution step")
	flags.String("log-format", "", "Log format: auto, pretty, or json")

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newEnvCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// options reads the persistent flags shared by every command.
func (c *CLI) options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	appID, _ := cmd.Flags().GetString("app-id")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFormat, _ := cmd.Flags().GetString("log-format")

	return app.Options{
		ConfigPath: configPath,
		AppID:      appID,
		LogFormat:  logFormat,
		Verbose:    verbose,
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the status the process should exit with after a
// successful Execute. It is the child's status after run, 0 otherwise.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
