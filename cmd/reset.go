package cmd

import "github.com/biruktesfaye/gitlet/core"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"reset <commit>",
		"Move the current branch's head to the given commit",
		1,
		func(repo *core.Repository, args []string) error {
			return repo.Reset(args[0])
		},
	))
}
