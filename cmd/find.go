package cmd

import (
	"fmt"

	"github.com/biruktesfaye/gitlet/core"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"find <msg>",
		"Print the ids of every commit with the given message",
		1,
		func(repo *core.Repository, args []string) error {
			matches, err := repo.Find(args[0])
			if err != nil {
				return err
			}
			for _, id := range matches {
				fmt.Println(id)
			}
			return nil
		},
	))
}
