// Package remote implements the remote synchronizer (spec §4.9): push,
// fetch, and pull between the local repository and another repository
// reachable by filesystem path and sharing the same directory layout.
package remote

import (
	"path/filepath"

	"github.com/biruktesfaye/gitlet/internal/config"
	"github.com/biruktesfaye/gitlet/internal/fsutil"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/refs"
)

// MirrorBranchName is the local branch name fetch creates for a remote
// branch (spec §4.9, glossary "Mirror branch"): "<remote>/<branch>".
func MirrorBranchName(remoteName, branch string) string {
	return remoteName + "/" + branch
}

// peer opens the object store and ref index of the repository configured
// under remoteName, failing with ErrRemoteDirNotFound if its .gitlet
// directory is absent.
func peer(cfg *config.Config, remoteName string) (store *objects.Store, index *refs.Index, root string, err error) {
	r, ok := cfg.Remote(remoteName)
	if !ok {
		return nil, nil, "", config.ErrRemoteMissing
	}
	gitletDir := filepath.Join(r.Path, fsutil.GitletDirName)
	if !fsutil.FileExists(gitletDir) {
		return nil, nil, "", ErrRemoteDirNotFound
	}
	idx, err := refs.Load(gitletDir)
	if err != nil {
		return nil, nil, "", err
	}
	return objects.NewStore(gitletDir), idx, r.Path, nil
}

// copyCommit copies one commit record (and nothing else) from src to dst,
// preserving its fingerprint (the encoding is canonical, so re-encoding
// reproduces the same id).
func copyCommit(src, dst *objects.Store, fingerprint string) error {
	c, err := src.GetCommit(fingerprint)
	if err != nil {
		return err
	}
	cp := *c
	_, err = dst.PutCommit(&cp)
	return err
}

// copyBlobsOf copies every blob referenced by c's tree that dst doesn't
// already have (spec §4.9: "copy every blob not already present").
func copyBlobsOf(src, dst *objects.Store, c *objects.Commit) error {
	for _, entry := range c.Tree {
		if dst.BlobExists(entry.Hash) {
			continue
		}
		content, err := src.GetBlob(entry.Hash)
		if err != nil {
			return err
		}
		if _, err := dst.PutBlob(content); err != nil {
			return err
		}
	}
	return nil
}
