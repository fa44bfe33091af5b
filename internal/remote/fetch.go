package remote

import (
	"github.com/biruktesfaye/gitlet/internal/config"
	"github.com/biruktesfaye/gitlet/internal/dag"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/refs"
)

// Fetch copies branch's missing commits and blobs from the remote
// configured under remoteName into the local store, then creates or
// updates the local mirror branch "<remoteName>/<branch>" to point at the
// fetched head (spec §4.9). It returns the mirror branch's name.
func Fetch(localStore *objects.Store, localIndex *refs.Index, cfg *config.Config, remoteName, branch string) (string, error) {
	remoteStore, remoteIndex, _, err := peer(cfg, remoteName)
	if err != nil {
		return "", err
	}

	remoteHead, err := remoteIndex.HeadOf(branch)
	if err != nil {
		return "", ErrRemoteBranchMissing
	}

	toFetch, err := dag.CollectUntil(remoteStore.GetCommit, remoteHead, localStore.CommitExists)
	if err != nil {
		return "", err
	}
	for _, id := range toFetch {
		c, err := remoteStore.GetCommit(id)
		if err != nil {
			return "", err
		}
		if err := copyBlobsOf(remoteStore, localStore, c); err != nil {
			return "", err
		}
		if err := copyCommit(remoteStore, localStore, id); err != nil {
			return "", err
		}
		if err := localIndex.RecordCommit(id); err != nil {
			return "", err
		}
	}

	mirror := MirrorBranchName(remoteName, branch)
	if _, err := localIndex.HeadOf(mirror); err == nil {
		if err := localIndex.SetHead(mirror, remoteHead); err != nil {
			return "", err
		}
	} else {
		if err := localIndex.CreateBranch(mirror, remoteHead); err != nil {
			return "", err
		}
	}
	return mirror, nil
}
