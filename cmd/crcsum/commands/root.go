// Package commands implements the CLI commands for crcsum.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/crcsum/internal/app"
	"go.trai.ch/crcsum/internal/build"
)

// CLI represents the command line interface for crcsum.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, inputs []string, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "crcsum [dir | files...]",
		Short: "Verify and repair CRC32 checksums embedded in file names",
		Long: "crcsum checks files whose names carry a CRC32 token such as\n" +
			"\"episode [1A2B3C4D].mkv\" against their content. With no argument the\n" +
			"current directory is checked.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolP("update", "u", false, "Replace checksum tokens that do not match the content")
	rootCmd.Flags().BoolP("add", "a", false, "Insert a checksum token into names that have none")
	rootCmd.Flags().IntP("jobs", "j", 0, "Number of files processed concurrently (default derived from CPU count)")
	rootCmd.Flags().StringP("config", "c", "", "Config file (default ./.crcsum.yaml)")
	rootCmd.Flags().Bool("json-log", false, "Emit log messages as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	opts := app.RunOptions{}
	if flags.Changed("update") {
		update, _ := flags.GetBool("update")
		opts.Update = &update
	}
	if flags.Changed("add") {
		add, _ := flags.GetBool("add")
		opts.Add = &add
	}
	opts.Jobs, _ = flags.GetInt("jobs")
	opts.ConfigPath, _ = flags.GetString("config")
	opts.JSONLog, _ = flags.GetBool("json-log")

	return c.app.Run(cmd.Context(), args, opts)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
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
