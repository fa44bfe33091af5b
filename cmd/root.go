package cmd

import (
	"fmt"
	"os"

	"github.com/biruktesfaye/gitlet/core"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gitlet",
	Short: "Gitlet is a miniature, content-addressed version-control engine",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return core.NewUserError("Please enter a command.")
		}
		return core.NewUserError("No command with that name exists.")
	},
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// Execute runs the command tree and applies spec §7's exit-code policy:
// a UserError prints its exact message and exits 0; anything else is an
// internal fault, printed to stderr, and exits non-zero.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if ue, ok := core.AsUserError(err); ok {
		fmt.Println(ue.Message)
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
