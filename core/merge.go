package core

import "github.com/biruktesfaye/gitlet/internal/merge"

// Merge merges branch into the current branch (spec §4.6/§4.7). Every
// sentinel the merge engine returns already carries the exact user-facing
// message; a nil, nil result means a same-commit no-op.
func (r *Repository) Merge(branch string) (*merge.Outcome, error) {
	outcome, err := merge.Merge(r.Root, r.Store, r.Index, r.Stage, branch)
	switch err {
	case nil:
		return outcome, nil
	case merge.ErrFastForwarded,
		merge.ErrUncommittedChanges,
		merge.ErrUntrackedInTheWay,
		merge.ErrBranchMissing,
		merge.ErrMergeSelf,
		merge.ErrGivenIsAncestor:
		return outcome, NewUserError(err.Error())
	default:
		return nil, err
	}
}
