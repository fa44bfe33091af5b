package cmd

import "github.com/biruktesfaye/gitlet/core"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"add <file>",
		"Stage a file for the next commit",
		1,
		func(repo *core.Repository, args []string) error {
			return repo.Add(args[0])
		},
	))
}
