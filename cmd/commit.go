package cmd

import "github.com/biruktesfaye/gitlet/core"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"commit <msg>",
		"Record a new commit from the staging area",
		1,
		func(repo *core.Repository, args []string) error {
			_, err := repo.Commit(args[0])
			return err
		},
	))
}
