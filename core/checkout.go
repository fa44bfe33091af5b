package core

import (
	"errors"

	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/worktree"
)

// CheckoutFile overwrites filename in the working directory with its
// version from the current branch's head commit (spec §4.8 checkout_file).
func (r *Repository) CheckoutFile(filename string) error {
	head, err := r.Index.HeadOf(r.Index.CurrentBranch())
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(head, filename)
}

// CheckoutFileAt overwrites filename with its version from the given
// commit (spec §4.8 checkout_file with a commit id).
func (r *Repository) CheckoutFileAt(commitID, filename string) error {
	fp, ok := r.Index.ResolveShort(commitID)
	if !ok {
		return NewUserError("No commit with that id exists.")
	}
	return r.checkoutFileFrom(fp, filename)
}

func (r *Repository) checkoutFileFrom(commitID, filename string) error {
	c, err := r.Store.GetCommit(commitID)
	if err != nil {
		if errors.Is(err, objects.ErrNoSuchCommit) {
			return NewUserError("No commit with that id exists.")
		}
		return err
	}
	hash, ok := objects.TreeMap(c.Tree)[filename]
	if !ok {
		return NewUserError("File does not exist in that commit.")
	}
	content, err := r.Store.GetBlob(hash)
	if err != nil {
		return err
	}
	return worktree.WriteFile(r.Root, filename, content)
}

// CheckoutBranch switches the current branch and replaces the working
// directory with its head commit's tree (spec §4.8 checkout_branch).
func (r *Repository) CheckoutBranch(branch string) error {
	target, err := r.Index.HeadOf(branch)
	if err != nil {
		return NewUserError("No such branch exists.")
	}

	current := r.Index.CurrentBranch()
	if branch == current {
		return NewUserError("No need to checkout the current branch")
	}

	if err := r.guardUntracked(); err != nil {
		return err
	}

	c, err := r.Store.GetCommit(target)
	if err != nil {
		return err
	}
	if err := worktree.ReplaceWith(r.Root, r.Store, c.Tree); err != nil {
		return err
	}
	if err := r.Index.SetCurrent(branch); err != nil {
		return err
	}
	return r.Stage.Clear()
}

// Reset moves the current branch's head to commitID, replaces the working
// directory with its tree, and clears the staging area (spec §4.8 reset).
func (r *Repository) Reset(commitID string) error {
	fp, ok := r.Index.ResolveShort(commitID)
	if !ok {
		return NewUserError("No commit with that id exists.")
	}
	c, err := r.Store.GetCommit(fp)
	if err != nil {
		if errors.Is(err, objects.ErrNoSuchCommit) {
			return NewUserError("No commit with that id exists.")
		}
		return err
	}

	if err := r.guardUntracked(); err != nil {
		return err
	}

	if err := worktree.ReplaceWith(r.Root, r.Store, c.Tree); err != nil {
		return err
	}
	if err := r.Index.SetHead(r.Index.CurrentBranch(), fp); err != nil {
		return err
	}
	return r.Stage.Clear()
}

// guardUntracked refuses the operation if an untracked file would be
// silently clobbered by replacing the working tree (spec §4.8).
func (r *Repository) guardUntracked() error {
	status, err := r.Status()
	if err != nil {
		return err
	}
	if len(status.Untracked) > 0 {
		return NewUserError("There is an untracked file in the way; delete it, or add and commit it first.")
	}
	return nil
}
