package cmd

import (
	"fmt"

	"github.com/biruktesfaye/gitlet/core"
	"github.com/biruktesfaye/gitlet/internal/merge"
)

// printConflicts prints the spec-literal notice, followed by a per-file
// diff between each conflicted file's two sides (a supplemented detail
// beyond spec.md's literal output).
func printConflicts(outcome *merge.Outcome) {
	if outcome == nil || !outcome.Conflicted {
		return
	}
	fmt.Println("Encountered a merge conflict.")
	for _, c := range outcome.Conflicts {
		fmt.Print(merge.ConflictReport(c.Name, c.CurBytes, c.OthBytes))
	}
}

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"merge <branch>",
		"Merge a branch into the current branch",
		1,
		func(repo *core.Repository, args []string) error {
			outcome, err := repo.Merge(args[0])
			if err != nil {
				return err
			}
			printConflicts(outcome)
			return nil
		},
	))
}
