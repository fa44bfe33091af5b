package cmd

import "github.com/biruktesfaye/gitlet/core"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"branch <name>",
		"Create a new branch pointing at the current head commit",
		1,
		func(repo *core.Repository, args []string) error {
			return repo.Branch(args[0])
		},
	))

	rootCmd.AddCommand(NewRepoCommand(
		"rm-branch <name>",
		"Delete a branch without touching its commits",
		1,
		func(repo *core.Repository, args []string) error {
			return repo.RmBranch(args[0])
		},
	))
}
