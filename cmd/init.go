package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/biruktesfaye/gitlet/core"
)

func init() {
	rootCmd.AddCommand(NewInitCommand(
		"init",
		"Create a new, empty Gitlet repository in the current directory",
		func(args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			repo, err := core.InitRepository(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Initialized empty Gitlet repository in %s\n", filepath.Join(repo.Root, ".gitlet"))
			return nil
		},
	))
}
