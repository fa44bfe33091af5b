package cmd

import (
	"github.com/biruktesfaye/gitlet/core"
	"github.com/spf13/cobra"
)

// checkoutArgs accepts gitlet's three checkout shapes: `-- <file>`,
// `<commit> -- <file>`, and `<branch>` (spec §6).
func checkoutArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 2:
		if args[0] == "--" {
			return nil
		}
	case 3:
		if args[1] == "--" {
			return nil
		}
	}
	return core.NewUserError("Incorrect operands.")
}

func init() {
	rootCmd.AddCommand(NewVariadicRepoCommand(
		"checkout",
		"Restore a file from the head commit, a given commit, or switch branches",
		checkoutArgs,
		func(repo *core.Repository, args []string) error {
			switch len(args) {
			case 2:
				return repo.CheckoutFile(args[1])
			case 3:
				return repo.CheckoutFileAt(args[0], args[2])
			default:
				return repo.CheckoutBranch(args[0])
			}
		},
	))
}
