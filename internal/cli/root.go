// Package cli implements the cobra-based command-line surface for caro.
//
// caro has a single operation, so the root command runs it directly
// instead of dispatching to subcommands. This file defines the root
// command and the error-to-exit-code translation; shift.go holds the
// interactive prompting and the pipeline run itself.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/caro/internal/model"
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The tool deliberately takes no flags and no arguments: the offset and
// threshold are read interactively from stdin, which keeps the invocation
// identical for every run ("cd into the directory, run caro, answer two
// questions").
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "caro",
		Short: "Batch-rename NUMBER.EXTENSION files by shifting the number",
		Long: `caro renames files in the current directory whose names look like
NUMBER.EXTENSION (e.g. 5.txt, 33.jpg) by adding an offset to the numeric
part. For example, with offset 2, 5.txt becomes 7.txt.

Renames are applied in an order that guarantees no rename ever overwrites
a file still waiting its turn: highest number first for a non-negative
offset, lowest first for a negative one.

You will be prompted for two integers:
  a — the offset added to each file's number
  b — the minimum original number a file must have to be renamed`,

		// The two inputs are interactive by design; positional arguments
		// would be a different tool.
		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats errors and picks the exit code.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(os.Stdin, os.Stdout, os.Stderr)
		},
	}

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message to stderr in the
// "Error: <message>" format.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}
