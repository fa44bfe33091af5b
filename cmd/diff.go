package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/biruktesfaye/gitlet/core"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diff is a supplemented command (beyond spec.md's literal CLI surface):
// it prints a human-readable diff between a file's working-tree copy and
// the version recorded in the current commit's tree. Purely additive; it
// changes no staging, status, or merge semantics.
func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"diff <file>",
		"Show changes between the working tree and the current commit",
		1,
		func(repo *core.Repository, args []string) error {
			filename := args[0]

			head, err := repo.Index.HeadOf(repo.Index.CurrentBranch())
			if err != nil {
				return err
			}
			c, err := repo.Store.GetCommit(head)
			if err != nil {
				return err
			}

			var committed []byte
			if hash, ok := objects.TreeMap(c.Tree)[filename]; ok {
				committed, err = repo.Store.GetBlob(hash)
				if err != nil {
					return err
				}
			}

			working, err := os.ReadFile(filepath.Join(repo.Root, filename))
			if err != nil && !os.IsNotExist(err) {
				return err
			}

			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(committed), string(working), false)
			diffs = dmp.DiffCleanupSemantic(diffs)
			fmt.Print(dmp.DiffPrettyText(diffs))
			return nil
		},
	))
}
