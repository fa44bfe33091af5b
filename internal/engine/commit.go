// Package engine builds commits from the ref index and staging area: the
// initial commit, ordinary commits, and merge commits (spec §4.4).
package engine

import (
	"time"

	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/refs"
	"github.com/biruktesfaye/gitlet/internal/staging"
)

// Now is swappable in tests; production code always calls time.Now.
var Now = time.Now

const initialCommitMessage = "initial commit"

// Init creates the initial commit (epoch timestamp, empty tree, no parents),
// creates branch master pointing at it, and makes master current.
func Init(store *objects.Store, index *refs.Index) (string, error) {
	c := &objects.Commit{
		Tree:      objects.NewTree(nil),
		Message:   initialCommitMessage,
		Timestamp: objects.EpochCommitTime,
	}
	fingerprint, err := store.PutCommit(c)
	if err != nil {
		return "", err
	}
	if err := index.RecordCommit(fingerprint); err != nil {
		return "", err
	}
	if err := index.CreateBranch(refs.InitBranchName, fingerprint); err != nil {
		return "", err
	}
	if err := index.SetCurrent(refs.InitBranchName); err != nil {
		return "", err
	}
	return fingerprint, nil
}

// Commit builds a new commit from the current branch's head plus the
// staging area's pending additions and removals, per spec §4.4 steps 1-5.
func Commit(store *objects.Store, index *refs.Index, stage *staging.Area, message string) (string, error) {
	return commit(store, index, stage, message, "")
}

// MergeCommit is Commit with an explicit second parent, used to record the
// result of a merge (spec §4.7's final step).
func MergeCommit(store *objects.Store, index *refs.Index, stage *staging.Area, message, otherHeadFingerprint string) (string, error) {
	return commit(store, index, stage, message, otherHeadFingerprint)
}

func commit(store *objects.Store, index *refs.Index, stage *staging.Area, message, secondParent string) (string, error) {
	empty, err := stage.IsEmpty()
	if err != nil {
		return "", err
	}
	if empty {
		return "", errNoChanges
	}
	if message == "" {
		return "", errNoMessage
	}

	branch := index.CurrentBranch()
	headFingerprint, err := index.HeadOf(branch)
	if err != nil {
		return "", err
	}
	headCommit, err := store.GetCommit(headFingerprint)
	if err != nil {
		return "", err
	}

	tree, err := buildTree(store, headCommit, stage)
	if err != nil {
		return "", err
	}

	c := &objects.Commit{
		Tree:         tree,
		Parent:       headFingerprint,
		SecondParent: secondParent,
		Message:      message,
		Timestamp:    Now(),
	}
	fingerprint, err := store.PutCommit(c)
	if err != nil {
		return "", err
	}
	if err := index.RecordCommit(fingerprint); err != nil {
		return "", err
	}
	if err := index.SetHead(branch, fingerprint); err != nil {
		return "", err
	}
	if err := stage.Clear(); err != nil {
		return "", err
	}
	return fingerprint, nil
}

// buildTree copies head's tree, applies pending removals, then pending
// additions (storing each addition's bytes as a blob along the way).
func buildTree(store *objects.Store, head *objects.Commit, stage *staging.Area) ([]objects.TreeEntry, error) {
	files := objects.TreeMap(head.Tree)

	removals, err := stage.IterRemovals()
	if err != nil {
		return nil, err
	}
	for _, name := range removals {
		delete(files, name)
	}

	additions, err := stage.IterAdditions()
	if err != nil {
		return nil, err
	}
	for _, name := range additions {
		content, err := stage.GetAddition(name)
		if err != nil {
			return nil, err
		}
		hash, err := store.PutBlob(content)
		if err != nil {
			return nil, err
		}
		files[name] = hash
	}

	return objects.NewTree(files), nil
}
