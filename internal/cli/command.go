// Package cli provides the command-line interface for colordu.
package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
	run     func(args []string) (int, error)
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version, run: run}
}

// Execute runs colordu with the process arguments and returns the exit code
// to terminate with.
func (c CLI) Execute() int {
	code := 0

	root := c.newRootCmd(&code)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errLabel("colordu:"), err)

		if code == 0 {
			code = 1
		}
	}

	return code
}

// newRootCmd builds the root command. Flag parsing is disabled so that the
// entire argument list, flags included, reaches du verbatim: colordu is a
// drop-in replacement and defines no flags of its own.
func (c CLI) newRootCmd(code *int) *cobra.Command {
	return &cobra.Command{
		Use:     "colordu [du arguments...]",
		Short:   "Colorful version of du",
		Version: c.version,
		Long: heredoc.Doc(`
			colordu wraps the du command and colors the size column in
			proportion to magnitude, so large space consumers stand out.

			All arguments are forwarded to du unmodified and du's exit code
			is propagated. Configuration is environment-only:

			  COLORDU_SCHEME      NONE, DISCRETE_RAINBOW, SMOOTH_RAINBOW,
			                      SUNSET (default), YLORBR, PARTIAL_SUNSET
			  COLORDU_MAX         size that maps to the hottest color (default 512GiB)
			  COLORDU_BLOCK_SIZE  bytes per block for plain du output (default 1024)
			  COLORDU_DU          binary to wrap (default "du")
			  NO_COLOR            disable coloring when set

			Coloring is skipped automatically when stdout is not a terminal.
		`),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(_ *cobra.Command, args []string) error {
			exit, err := c.run(args)
			*code = exit

			return err
		},
	}
}
