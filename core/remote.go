package core

import (
	"github.com/biruktesfaye/gitlet/internal/config"
	"github.com/biruktesfaye/gitlet/internal/merge"
	"github.com/biruktesfaye/gitlet/internal/remote"
)

// AddRemote records a filesystem-path remote (spec §4.9 add_remote).
func (r *Repository) AddRemote(name, path string) error {
	err := r.Config.AddRemote(name, path)
	if err == config.ErrRemoteExists {
		return NewUserError(err.Error())
	}
	return err
}

// RemoveRemote forgets a configured remote (spec §4.9 remove_remote).
func (r *Repository) RemoveRemote(name string) error {
	err := r.Config.RemoveRemote(name)
	if err == config.ErrRemoteMissing {
		return NewUserError(err.Error())
	}
	return err
}

// Push copies every local commit missing from the remote's branch onto it
// (spec §4.9 push). The local staging area must be clean, the same
// precondition merge enforces before it touches the working tree.
func (r *Repository) Push(remoteName, branch string) error {
	empty, err := r.Stage.IsEmpty()
	if err != nil {
		return err
	}
	if !empty {
		return NewUserError("You have uncommitted changes.")
	}

	err = remote.Push(r.Store, r.Index, r.Config, remoteName, branch)
	switch err {
	case remote.ErrRemoteDirNotFound, remote.ErrPullFirst, remote.ErrUpToDate:
		return NewUserError(err.Error())
	default:
		return err
	}
}

// Fetch copies every commit missing locally from the remote's branch into
// a local mirror branch named "<remote>/<branch>" (spec §4.9 fetch).
func (r *Repository) Fetch(remoteName, branch string) (string, error) {
	mirror, err := remote.Fetch(r.Store, r.Index, r.Config, remoteName, branch)
	if err == remote.ErrRemoteDirNotFound || err == remote.ErrRemoteBranchMissing {
		return "", NewUserError(err.Error())
	}
	return mirror, err
}

// Pull fetches and then merges the resulting mirror branch into the
// current branch (spec §4.9 pull).
func (r *Repository) Pull(remoteName, branch string) (*merge.Outcome, error) {
	outcome, err := remote.Pull(r.Root, r.Store, r.Index, r.Stage, r.Config, remoteName, branch)
	switch err {
	case nil:
		return outcome, nil
	case remote.ErrRemoteDirNotFound, remote.ErrRemoteBranchMissing,
		merge.ErrFastForwarded, merge.ErrUncommittedChanges,
		merge.ErrUntrackedInTheWay, merge.ErrBranchMissing,
		merge.ErrMergeSelf, merge.ErrGivenIsAncestor:
		return outcome, NewUserError(err.Error())
	default:
		return nil, err
	}
}
