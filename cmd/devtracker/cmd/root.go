// Package cmd provides the CLI commands for devtracker.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	dterrors "github.com/dbmrq/devtracker/internal/errors"
	"github.com/dbmrq/devtracker/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

// newRootCmd builds the full command tree around a fresh app.
// Cobra commands keep flag state between runs, so tests build their own.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "devtracker",
		Short: "Dev build tracker - sprint board, playtest feedback and release checklist",
		Long: `devtracker keeps the state of a game's next dev build in one place:
a sprint board of tasks, notes from playtesters, the project header and
the release checklist.

Run it without a subcommand to open the interactive board. Every board
operation is also available as a subcommand for scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// When devtracker is called with no subcommand, open the board
		// (same as "devtracker board").
		RunE: a.runBoard,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.configPath, "config", "", "Path to config file (default .devtracker/config.yaml)")
	flags.StringVar(&a.flags.dataDir, "data-dir", "", "Directory for stored data and logs")
	flags.StringVar(&a.flags.backend, "backend", "", "Storage backend: file, sqlite or memory")
	flags.BoolVar(&a.flags.ephemeral, "ephemeral", false, "Keep everything in memory for this run")
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newBoardCmd(a),
		newInitCmd(a),
		newTaskCmd(a),
		newFeedbackCmd(a),
		newCheckCmd(a),
		newMetaCmd(a),
		newVersionCmd(),
	)

	return root
}

// setVersion reads the build info into the --version flag. It runs from
// Execute, after main.go has set the version variables.
func setVersion(root *cobra.Command) {
	root.Version = version.Current().String()
	root.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	setVersion(rootCmd)
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// printError renders err for the terminal. Tracker errors carry details and
// a suggestion.
func printError(w io.Writer, err error) {
	var te *dterrors.TrackerError
	if errors.As(err, &te) {
		fmt.Fprint(w, te.Format())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
