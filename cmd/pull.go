package cmd

import (
	"github.com/biruktesfaye/gitlet/core"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"pull <remote> <branch>",
		"Fetch a remote's branch and merge it into the current branch",
		2,
		func(repo *core.Repository, args []string) error {
			outcome, err := repo.Pull(args[0], args[1])
			if err != nil {
				return err
			}
			printConflicts(outcome)
			return nil
		},
	))
}
