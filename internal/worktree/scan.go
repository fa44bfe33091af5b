// Package worktree compares the working directory, staging area, and
// current commit to produce the status classifications of spec §4.5.
package worktree

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/biruktesfaye/gitlet/internal/fsutil"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/refs"
	"github.com/biruktesfaye/gitlet/internal/staging"
)

// Status holds the five enumerated lists spec §4.5 requires, already sorted.
type Status struct {
	Branches      []string // current branch prefixed with "*"
	Staged        []string
	Removed       []string
	Modifications []string // "name (modified)" or "name (deleted)"
	Untracked     []string
}

// Scan builds a Status for the repository rooted at root, given its ref
// index, staging area, and the tree of the current head commit (nil/empty
// for a repository with only the initial commit).
func Scan(root string, index *refs.Index, stage *staging.Area, headTree []objects.TreeEntry) (*Status, error) {
	s := &Status{}

	current := index.CurrentBranch()
	for _, name := range index.ListBranches() {
		if name == current {
			s.Branches = append(s.Branches, "*"+name)
		} else {
			s.Branches = append(s.Branches, name)
		}
	}

	additions, err := stage.IterAdditions()
	if err != nil {
		return nil, err
	}
	removals, err := stage.IterRemovals()
	if err != nil {
		return nil, err
	}
	s.Staged = additions
	s.Removed = removals

	removalSet := make(map[string]bool, len(removals))
	for _, name := range removals {
		removalSet[name] = true
	}
	additionSet := make(map[string]bool, len(additions))
	for _, name := range additions {
		additionSet[name] = true
	}

	tracked := objects.TreeMap(headTree)

	workingFiles, err := fsutil.WorkingTreeFiles(root)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(workingFiles))
	for _, name := range workingFiles {
		present[name] = true
	}

	modSet := make(map[string]string) // name -> "modified"/"deleted"

	for _, name := range additions {
		staged, err := stage.GetAddition(name)
		if err != nil {
			return nil, err
		}
		if !present[name] {
			modSet[name] = "deleted"
			continue
		}
		working, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		if err != nil {
			return nil, err
		}
		if objects.Fingerprint(working) != objects.Fingerprint(staged) {
			modSet[name] = "modified"
		}
	}

	for name, hash := range tracked {
		if additionSet[name] {
			continue
		}
		if !present[name] {
			if !removalSet[name] {
				modSet[name] = "deleted"
			}
			continue
		}
		working, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		if err != nil {
			return nil, err
		}
		if objects.Fingerprint(working) != hash {
			modSet[name] = "modified"
		}
	}

	for name, kind := range modSet {
		s.Modifications = append(s.Modifications, name+" ("+kind+")")
	}
	sort.Strings(s.Modifications)

	for _, name := range workingFiles {
		_, trackedFile := tracked[name]
		if trackedFile || additionSet[name] {
			continue
		}
		s.Untracked = append(s.Untracked, name)
	}
	sort.Strings(s.Untracked)

	return s, nil
}
