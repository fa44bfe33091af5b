package cmd

import "github.com/biruktesfaye/gitlet/core"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"config user.name|user.email <value>",
		"Set the committer identity shown in verbose log output",
		2,
		func(repo *core.Repository, args []string) error {
			key, value := args[0], args[1]
			switch key {
			case "user.name":
				return repo.Config.SetUser(value, "")
			case "user.email":
				return repo.Config.SetUser("", value)
			default:
				return core.NewUserError("Incorrect operands.")
			}
		},
	))
}
