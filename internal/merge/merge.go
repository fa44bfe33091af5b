// Package merge implements the three-way merge algorithm of spec §4.7: the
// per-file classification table against the split point, conflict-marker
// writing, and the final merge commit.
package merge

import (
	"bytes"

	"github.com/biruktesfaye/gitlet/internal/dag"
	"github.com/biruktesfaye/gitlet/internal/engine"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/refs"
	"github.com/biruktesfaye/gitlet/internal/staging"
	"github.com/biruktesfaye/gitlet/internal/worktree"
)

// ErrFastForwarded signals a completed fast-forward merge (spec §4.6 step
// 3). The working tree and branch head have already been updated by the
// time this is returned; it is reported the way a user error is, by
// printing its message, but it is not a failure.
var ErrFastForwarded error = fastForwardSignal{}

type fastForwardSignal struct{}

func (fastForwardSignal) Error() string { return "Current branch fast-forwarded." }

// Outcome reports what a completed (non-fast-forward, non-aborted) merge did.
type Outcome struct {
	Conflicted  bool
	Fingerprint string
	Conflicts   []Conflict
}

// Conflict is one file left with conflict markers, carrying both sides'
// content so a caller can print a richer report than the bare filename
// (see ConflictReport).
type Conflict struct {
	Name     string
	CurBytes []byte
	OthBytes []byte
}

// Merge merges branchName into the current branch, following spec §4.6's
// split-point selection and §4.7's classification table. On success it
// returns an Outcome; on a fast-forward it returns (nil, ErrFastForwarded)
// after already applying the fast-forward; on a no-op (branches identical)
// it returns (nil, nil). A returned precondition sentinel or
// ErrGivenIsAncestor leaves all state untouched; any other error is an
// internal failure and may come after some files were already written and
// staged.
func Merge(root string, store *objects.Store, index *refs.Index, stage *staging.Area, branchName string) (*Outcome, error) {
	currentBranch := index.CurrentBranch()

	empty, err := stage.IsEmpty()
	if err != nil {
		return nil, err
	}
	if !empty {
		return nil, ErrUncommittedChanges
	}

	curHead, err := index.HeadOf(currentBranch)
	if err != nil {
		return nil, err
	}
	curCommit, err := store.GetCommit(curHead)
	if err != nil {
		return nil, err
	}

	status, err := worktree.Scan(root, index, stage, curCommit.Tree)
	if err != nil {
		return nil, err
	}
	if len(status.Untracked) > 0 {
		return nil, ErrUntrackedInTheWay
	}

	othHead, err := index.HeadOf(branchName)
	if err != nil {
		return nil, ErrBranchMissing
	}
	if branchName == currentBranch {
		return nil, ErrMergeSelf
	}

	lookup := store.GetCommit
	split, err := dag.SplitPoint(lookup, curHead, othHead)
	if err != nil {
		return nil, err
	}
	if split.SameCommit {
		return nil, nil
	}
	if split.OtherIsAncestor {
		return nil, ErrGivenIsAncestor
	}
	if split.FastForward {
		othCommit, err := store.GetCommit(othHead)
		if err != nil {
			return nil, err
		}
		if err := worktree.ReplaceWith(root, store, othCommit.Tree); err != nil {
			return nil, err
		}
		if err := index.SetHead(currentBranch, othHead); err != nil {
			return nil, err
		}
		return nil, ErrFastForwarded
	}

	splitCommit, err := store.GetCommit(split.SplitPoint)
	if err != nil {
		return nil, err
	}
	othCommit, err := store.GetCommit(othHead)
	if err != nil {
		return nil, err
	}

	spl := objects.TreeMap(splitCommit.Tree)
	cur := objects.TreeMap(curCommit.Tree)
	oth := objects.TreeMap(othCommit.Tree)

	names := make(map[string]bool)
	for name := range spl {
		names[name] = true
	}
	for name := range cur {
		names[name] = true
	}
	for name := range oth {
		names[name] = true
	}

	var conflicts []Conflict
	for name := range names {
		action, conflict, err := classify(store, spl, cur, oth, name)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			conflicts = append(conflicts, *conflict)
		}
		if err := applyAction(root, stage, name, action); err != nil {
			return nil, err
		}
	}

	message := "Merged " + branchName + " into " + currentBranch + "."
	fingerprint, err := engine.MergeCommit(store, index, stage, message, othHead)
	if err != nil {
		return nil, err
	}

	return &Outcome{Conflicted: len(conflicts) > 0, Fingerprint: fingerprint, Conflicts: conflicts}, nil
}

// fileAction is the result of classifying one filename against the
// split/current/other trees (spec §4.7's table).
type fileAction struct {
	kind    actionKind
	content []byte // for writeAndStage / conflict
}

type actionKind int

const (
	noAction actionKind = iota
	writeAndStage
	deleteAndStageRemoval
	writeConflictAndStage
)

func classify(store *objects.Store, spl, cur, oth map[string]string, name string) (fileAction, *Conflict, error) {
	splHash, splOk := spl[name]
	curHash, curOk := cur[name]
	othHash, othOk := oth[name]

	if splOk {
		curUnchanged := curOk && curHash == splHash
		curDeleted := !curOk
		curChanged := curOk && curHash != splHash

		othUnchanged := othOk && othHash == splHash
		othDeleted := !othOk
		othChanged := othOk && othHash != splHash

		switch {
		case curUnchanged && othChanged:
			content, err := store.GetBlob(othHash)
			if err != nil {
				return fileAction{}, nil, err
			}
			return fileAction{kind: writeAndStage, content: content}, nil, nil
		case curChanged && othUnchanged:
			return fileAction{kind: noAction}, nil, nil
		case curDeleted && othUnchanged:
			return fileAction{kind: noAction}, nil, nil
		case curUnchanged && othDeleted:
			return fileAction{kind: deleteAndStageRemoval}, nil, nil
		case curChanged && othChanged && curHash == othHash:
			return fileAction{kind: noAction}, nil, nil
		case curUnchanged && othUnchanged:
			return fileAction{kind: noAction}, nil, nil
		case curDeleted && othDeleted:
			return fileAction{kind: noAction}, nil, nil
		default:
			content, conflict, err := conflictContent(store, name, curHash, curOk, othHash, othOk)
			if err != nil {
				return fileAction{}, nil, err
			}
			return fileAction{kind: writeConflictAndStage, content: content}, conflict, nil
		}
	}

	// Absent at the split point: newly introduced on one or both sides.
	switch {
	case curOk && !othOk:
		return fileAction{kind: noAction}, nil, nil
	case !curOk && othOk:
		content, err := store.GetBlob(othHash)
		if err != nil {
			return fileAction{}, nil, err
		}
		return fileAction{kind: writeAndStage, content: content}, nil, nil
	case curOk && othOk && curHash == othHash:
		return fileAction{kind: noAction}, nil, nil
	case curOk && othOk && curHash != othHash:
		content, conflict, err := conflictContent(store, name, curHash, curOk, othHash, othOk)
		if err != nil {
			return fileAction{}, nil, err
		}
		return fileAction{kind: writeConflictAndStage, content: content}, conflict, nil
	default:
		return fileAction{kind: noAction}, nil, nil
	}
}

// conflictContent builds the literal conflict-marker byte sequence of
// spec §4.7: CUR's bytes (empty if absent), then OTH's bytes (empty if
// absent), bracketed by the markers with no base section. It also returns
// the Conflict record a caller can feed to ConflictReport.
func conflictContent(store *objects.Store, name, curHash string, curOk bool, othHash string, othOk bool) ([]byte, *Conflict, error) {
	var curBytes, othBytes []byte
	var err error
	if curOk {
		curBytes, err = store.GetBlob(curHash)
		if err != nil {
			return nil, nil, err
		}
	}
	if othOk {
		othBytes, err = store.GetBlob(othHash)
		if err != nil {
			return nil, nil, err
		}
	}

	var buf bytes.Buffer
	buf.WriteString("<<<<<<< HEAD\n")
	buf.Write(curBytes)
	buf.WriteString("=======\n")
	buf.Write(othBytes)
	buf.WriteString(">>>>>>>\n")
	return buf.Bytes(), &Conflict{Name: name, CurBytes: curBytes, OthBytes: othBytes}, nil
}

func applyAction(root string, stage *staging.Area, name string, action fileAction) error {
	switch action.kind {
	case noAction:
		return nil
	case writeAndStage, writeConflictAndStage:
		if err := worktree.WriteFile(root, name, action.content); err != nil {
			return err
		}
		return stage.StageAdd(name, action.content, "", "")
	case deleteAndStageRemoval:
		if err := worktree.DeleteFile(root, name); err != nil {
			return err
		}
		return stage.StageRemove(name)
	}
	return nil
}
