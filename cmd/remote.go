package cmd

import "github.com/biruktesfaye/gitlet/core"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"add-remote <name> <path>",
		"Record a filesystem-path remote",
		2,
		func(repo *core.Repository, args []string) error {
			return repo.AddRemote(args[0], args[1])
		},
	))

	rootCmd.AddCommand(NewRepoCommand(
		"rm-remote <name>",
		"Forget a configured remote",
		1,
		func(repo *core.Repository, args []string) error {
			return repo.RemoveRemote(args[0])
		},
	))
}
