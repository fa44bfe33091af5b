package cmd

import "github.com/biruktesfaye/gitlet/core"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"rm <file>",
		"Unstage a file, or stage a tracked file for removal",
		1,
		func(repo *core.Repository, args []string) error {
			return repo.Rm(args[0])
		},
	))
}
