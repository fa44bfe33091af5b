package remote

import (
	"github.com/biruktesfaye/gitlet/internal/config"
	"github.com/biruktesfaye/gitlet/internal/dag"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/refs"
	"github.com/biruktesfaye/gitlet/internal/worktree"
)

// Push sends branch's commits and blobs to the remote configured under
// remoteName and advances the remote branch to the local head (spec §4.9).
// Callers are responsible for the "local staging clean" precondition.
func Push(localStore *objects.Store, localIndex *refs.Index, cfg *config.Config, remoteName, branch string) error {
	remoteStore, remoteIndex, remoteRoot, err := peer(cfg, remoteName)
	if err != nil {
		return err
	}

	localHead, err := localIndex.HeadOf(branch)
	if err != nil {
		return err
	}

	remoteHead, hasRemoteBranch := "", false
	if h, err := remoteIndex.HeadOf(branch); err == nil {
		remoteHead = h
		hasRemoteBranch = true
	}

	if hasRemoteBranch {
		if remoteHead == localHead {
			return ErrUpToDate
		}
		isAncestor, err := dag.IsAncestor(localStore.GetCommit, remoteHead, localHead)
		if err != nil {
			return err
		}
		if !isAncestor {
			return ErrPullFirst
		}
	}

	release, err := acquireLock(remoteRoot)
	if err == nil {
		defer release()
	}

	toSend, err := dag.CollectUntil(localStore.GetCommit, localHead, remoteStore.CommitExists)
	if err != nil {
		return err
	}
	for _, id := range toSend {
		c, err := localStore.GetCommit(id)
		if err != nil {
			return err
		}
		if err := copyBlobsOf(localStore, remoteStore, c); err != nil {
			return err
		}
		if err := copyCommit(localStore, remoteStore, id); err != nil {
			return err
		}
		if err := remoteIndex.RecordCommit(id); err != nil {
			return err
		}
	}

	if hasRemoteBranch {
		if err := remoteIndex.SetHead(branch, localHead); err != nil {
			return err
		}
	} else {
		if err := remoteIndex.CreateBranch(branch, localHead); err != nil {
			return err
		}
	}

	headCommit, err := localStore.GetCommit(localHead)
	if err != nil {
		return err
	}
	return worktree.ReplaceWith(remoteRoot, remoteStore, headCommit.Tree)
}
