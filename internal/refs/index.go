// Package refs implements the ref index: the branch -> commit map, the
// current-branch pointer, and the short-id lookup table (spec §4.2).
package refs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrBranchExists is returned by CreateBranch for a name already in use.
	ErrBranchExists = errors.New("a branch with that name already exists")
	// ErrBranchMissing is returned when a branch name has no head commit.
	ErrBranchMissing = errors.New("a branch with that name does not exist")
	// ErrCannotRemoveCurrent is returned by DeleteBranch on the current branch.
	ErrCannotRemoveCurrent = errors.New("cannot remove the current branch")
)

const (
	headMapFile         = "headMap"
	shortIDMapFile      = "shortCommitIdMap"
	currentBranchFile   = "currentBranch"
	defaultInitialBranch = "master"
)

// branchTable is the on-disk shape of headMap: a flat TOML table.
type branchTable struct {
	Branches map[string]string `toml:"branches"`
}

type shortIDTable struct {
	Ids map[string]string `toml:"ids"`
}

// Index holds the in-memory ref state for one repository. It is a field of
// the repository handle, never process-global (design note §9).
type Index struct {
	gitletDir string

	branches map[string]string // name -> 40-hex commit fingerprint
	current  string
	shortIDs map[string]string // 8-hex -> 40-hex
}

// Load reads the ref index from gitletDir, tolerating a brand-new repository
// where none of the three files exist yet.
func Load(gitletDir string) (*Index, error) {
	idx := &Index{
		gitletDir: gitletDir,
		branches:  make(map[string]string),
		shortIDs:  make(map[string]string),
	}

	var bt branchTable
	if _, err := toml.DecodeFile(filepath.Join(gitletDir, headMapFile), &bt); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading headMap: %w", err)
	}
	if bt.Branches != nil {
		idx.branches = bt.Branches
	}

	var st shortIDTable
	if _, err := toml.DecodeFile(filepath.Join(gitletDir, shortIDMapFile), &st); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading shortCommitIdMap: %w", err)
	}
	if st.Ids != nil {
		idx.shortIDs = st.Ids
	}

	current, err := os.ReadFile(filepath.Join(gitletDir, currentBranchFile))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading currentBranch: %w", err)
		}
	} else {
		idx.current = strings.TrimSpace(string(current))
	}

	return idx, nil
}

// HeadOf returns the commit fingerprint a branch points at.
func (idx *Index) HeadOf(branch string) (string, error) {
	fp, ok := idx.branches[branch]
	if !ok {
		return "", ErrBranchMissing
	}
	return fp, nil
}

// SetHead moves branch's head to fingerprint and persists the change.
func (idx *Index) SetHead(branch, fingerprint string) error {
	idx.branches[branch] = fingerprint
	return idx.writeBranches()
}

// CurrentBranch returns the name of the current branch.
func (idx *Index) CurrentBranch() string {
	return idx.current
}

// SetCurrent changes the current branch pointer and persists it. It does not
// validate that branch exists; callers that need that check call HeadOf
// first (CheckoutBranch does; Init creates the branch just before).
func (idx *Index) SetCurrent(branch string) error {
	idx.current = branch
	return os.WriteFile(filepath.Join(idx.gitletDir, currentBranchFile), []byte(branch), 0644)
}

// CreateBranch registers a new branch pointing at fingerprint.
func (idx *Index) CreateBranch(name, fingerprint string) error {
	if _, exists := idx.branches[name]; exists {
		return ErrBranchExists
	}
	idx.branches[name] = fingerprint
	return idx.writeBranches()
}

// DeleteBranch removes a branch, refusing to remove the current one.
func (idx *Index) DeleteBranch(name string) error {
	if name == idx.current {
		return ErrCannotRemoveCurrent
	}
	if _, exists := idx.branches[name]; !exists {
		return ErrBranchMissing
	}
	delete(idx.branches, name)
	return idx.writeBranches()
}

// ListBranches returns every branch name in lexicographic order.
func (idx *Index) ListBranches() []string {
	names := make([]string, 0, len(idx.branches))
	for name := range idx.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecordCommit registers a commit's abbreviated id in the short-id table.
// Called once per newly created commit (spec §4.4 step 5).
func (idx *Index) RecordCommit(fingerprint string) error {
	if len(fingerprint) < 8 {
		return fmt.Errorf("fingerprint too short to abbreviate: %q", fingerprint)
	}
	idx.shortIDs[fingerprint[:8]] = fingerprint
	return idx.writeShortIDs()
}

// ResolveShort expands an 8-hex prefix to its full fingerprint, or returns
// ok=false if unknown. A full 40-hex fingerprint is passed through unchanged.
func (idx *Index) ResolveShort(id string) (fingerprint string, ok bool) {
	if len(id) >= 40 {
		return id, true
	}
	if len(id) == 8 {
		fp, found := idx.shortIDs[id]
		return fp, found
	}
	// Tolerate any prefix length by scanning; the spec only requires exact
	// 8-hex lookups, but a shorter/longer id is a user typo, not a crash.
	for short, full := range idx.shortIDs {
		if strings.HasPrefix(short, id) || strings.HasPrefix(full, id) {
			return full, true
		}
	}
	return "", false
}

// InitBranchName is the branch created by Init (spec §4.4): "master".
const InitBranchName = defaultInitialBranch

func (idx *Index) writeBranches() error {
	return atomicWriteTOML(filepath.Join(idx.gitletDir, headMapFile), branchTable{Branches: idx.branches})
}

func (idx *Index) writeShortIDs() error {
	return atomicWriteTOML(filepath.Join(idx.gitletDir, shortIDMapFile), shortIDTable{Ids: idx.shortIDs})
}

func atomicWriteTOML(path string, v interface{}) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(f)
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
