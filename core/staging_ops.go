package core

import (
	"os"
	"path/filepath"

	"github.com/biruktesfaye/gitlet/internal/engine"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/worktree"
)

// Add stages filename for the next commit (spec §4.3 stage_add).
func (r *Repository) Add(filename string) error {
	content, err := os.ReadFile(filepath.Join(r.Root, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return NewUserError("File does not exist.")
		}
		return err
	}

	tree, err := r.headTree()
	if err != nil {
		return err
	}
	headHash := tree[filename] // "" if untracked by the current head

	return r.Stage.StageAdd(filename, content, objects.Fingerprint(content), headHash)
}

// Rm unstages or schedules filename for removal (spec §4.3 stage_remove).
func (r *Repository) Rm(filename string) error {
	wasStagedAddition := r.Stage.HasAddition(filename)
	if !wasStagedAddition {
		tree, err := r.headTree()
		if err != nil {
			return err
		}
		if _, tracked := tree[filename]; !tracked {
			return NewUserError("No reason to remove the file.")
		}
	}

	if err := r.Stage.StageRemove(filename); err != nil {
		return err
	}
	if wasStagedAddition {
		return nil
	}
	return worktree.DeleteFile(r.Root, filename)
}

// Commit builds a new commit from the staging area (spec §4.4).
func (r *Repository) Commit(message string) (string, error) {
	fp, err := engine.Commit(r.Store, r.Index, r.Stage, message)
	switch err {
	case engine.ErrNoChanges, engine.ErrNoMessage:
		return "", NewUserError(err.Error())
	default:
		return fp, err
	}
}
