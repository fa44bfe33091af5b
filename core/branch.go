package core

import "github.com/biruktesfaye/gitlet/internal/refs"

// Branch creates a new branch pointing at the current head commit (spec
// §4.8 branch).
func (r *Repository) Branch(name string) error {
	head, err := r.Index.HeadOf(r.Index.CurrentBranch())
	if err != nil {
		return err
	}
	err = r.Index.CreateBranch(name, head)
	if err == refs.ErrBranchExists {
		return NewUserError("A branch with that name already exists.")
	}
	return err
}

// RmBranch deletes a branch without touching its commits (spec §4.8
// rm-branch).
func (r *Repository) RmBranch(name string) error {
	err := r.Index.DeleteBranch(name)
	switch err {
	case refs.ErrCannotRemoveCurrent:
		return NewUserError("Cannot remove the current branch.")
	case refs.ErrBranchMissing:
		return NewUserError("A branch with that name does not exist.")
	default:
		return err
	}
}
