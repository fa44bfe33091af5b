package merge

import "errors"

// Sentinel errors for merge preconditions and short-circuit conditions
// (spec §4.6, §4.7). Each carries the exact literal message a caller prints
// before exiting successfully (spec §7: these are user errors).
var (
	ErrUncommittedChanges = errors.New("You have uncommitted changes.")
	ErrUntrackedInTheWay  = errors.New("There is an untracked file in the way; delete it, or add and commit it first.")
	ErrBranchMissing      = errors.New("A branch with that name does not exist.")
	ErrMergeSelf          = errors.New("Cannot merge a branch with itself.")
	ErrGivenIsAncestor    = errors.New("Given branch is an ancestor of the current branch.")
)
