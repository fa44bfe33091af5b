package cmd

import "github.com/biruktesfaye/gitlet/core"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"fetch <remote> <branch>",
		"Copy commits missing locally from the remote's branch into a mirror branch",
		2,
		func(repo *core.Repository, args []string) error {
			_, err := repo.Fetch(args[0], args[1])
			return err
		},
	))
}
