package remote

import "errors"

var (
	ErrRemoteDirNotFound   = errors.New("Remote directory not found.")
	ErrPullFirst           = errors.New("Please pull down remote changes before pushing.")
	ErrUpToDate            = errors.New("Remote is already up-to-date. No need to push.")
	ErrRemoteBranchMissing = errors.New("That remote does not have that branch.")
)
