package cmd

import (
	"io"

	"github.com/dzjyyds666/inifix/parse/ini"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check that parameter files can be read",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if code := validateFiles(args, cmd.OutOrStdout(), cmd.ErrOrStderr()); code != 0 {
			return exitCode(code)
		}
		return nil
	},
}

// validateFiles loads every path and returns 1 if any of them fails.
func validateFiles(paths []string, stdout, stderr io.Writer) int {
	code := 0
	for _, path := range paths {
		if _, err := ini.LoadFile(path); err != nil {
			printStatus(stderr, statusError, "Failed to validate %s:\n  %v", path, err)
			code = 1
			continue
		}
		printStatus(stdout, statusOK, "Validated %s", path)
	}
	return code
}
