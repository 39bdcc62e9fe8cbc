// Package cmd implements the skillcheck CLI commands.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root skillcheck command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "skillcheck",
		Short:         "skillcheck - analyze, diff, and validate skill packages",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewAnalyzeCmd(newDefaultAnalyzer()))
	root.AddCommand(NewDiffCmd(newDefaultComparer()))
	root.AddCommand(NewValidateCmd(newDefaultValidator()))
	return root
}

func rootRunE(_ *cobra.Command, _ []string) error {
	return nil
}

// ExitError carries a specific process exit code up to main. The
// analyze command needs it to distinguish a low quality score (exit
// 2) from an input failure (exit 1).
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// banner is the separator line used by the human-readable reports.
var banner = strings.Repeat("=", 60)
