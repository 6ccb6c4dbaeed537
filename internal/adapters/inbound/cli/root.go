package cli

import (
	"os"

	"github.com/abdidvp/bundleverify/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bundleverify",
		Short:         "Verify localization bundles against a main locale file",
		Long:          "bundleverify checks .properties locale files for keys that are missing, empty, or left untranslated compared to the main locale file.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and prints the terminating error, if any, to stderr.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		tui.RenderFatal(os.Stderr, err)
	}
	return err
}
