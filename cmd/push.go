package cmd

import "github.com/biruktesfaye/gitlet/core"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"push <remote> <branch>",
		"Copy local commits missing from the remote's branch onto it",
		2,
		func(repo *core.Repository, args []string) error {
			return repo.Push(args[0], args[1])
		},
	))
}
