package cmd

import (
	"fmt"

	"github.com/biruktesfaye/gitlet/core"
	"github.com/fatih/color"
)

var (
	staged  = color.New(color.FgGreen)
	removed = color.New(color.FgRed)
)

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"status",
		"Print the status of the working directory and staging area",
		0,
		func(repo *core.Repository, args []string) error {
			status, err := repo.Status()
			if err != nil {
				return err
			}

			fmt.Println("=== Branches ===")
			for _, b := range status.Branches {
				fmt.Println(b)
			}
			fmt.Println()

			fmt.Println("=== Staged Files ===")
			for _, f := range status.Staged {
				staged.Println(f)
			}
			fmt.Println()

			fmt.Println("=== Removed Files ===")
			for _, f := range status.Removed {
				removed.Println(f)
			}
			fmt.Println()

			fmt.Println("=== Modifications Not Staged For Commit ===")
			for _, f := range status.Modifications {
				fmt.Println(f)
			}
			fmt.Println()

			fmt.Println("=== Untracked Files ===")
			for _, f := range status.Untracked {
				fmt.Println(f)
			}
			fmt.Println()

			return nil
		},
	))
}
