// Package core bundles the object store, ref index, staging area, and
// configuration into a single repository handle and exposes every
// user-facing operation the CLI surface names (spec §6), translating the
// lower packages' sentinel errors into UserError where spec §7 requires it.
package core

import (
	"os"
	"path/filepath"

	"github.com/biruktesfaye/gitlet/internal/config"
	"github.com/biruktesfaye/gitlet/internal/engine"
	"github.com/biruktesfaye/gitlet/internal/fsutil"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/refs"
	"github.com/biruktesfaye/gitlet/internal/staging"
)

// Repository is the handle threaded through every operation (design note
// §9: "a portable design makes [the ref index and caches] fields of a
// Repository handle" rather than process-global state).
type Repository struct {
	Root      string
	GitletDir string
	Store     *objects.Store
	Index     *refs.Index
	Stage     *staging.Area
	Config    *config.Config
}

// FindRepository walks up from the working directory looking for a
// .gitlet directory and opens the repository rooted there.
func FindRepository() (*Repository, error) {
	dir, ok, err := fsutil.FindGitletRoot()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewUserError("Not in an initialized Gitlet directory.")
	}
	return open(dir)
}

// InitRepository creates a new repository rooted at dir: the .gitlet
// directory layout (spec §6) and the initial commit (spec §4.4).
func InitRepository(dir string) (*Repository, error) {
	gitletDir := filepath.Join(dir, fsutil.GitletDirName)
	if fsutil.FileExists(gitletDir) {
		return nil, NewUserError("A Gitlet version-control system already exists in the current directory.")
	}
	if err := os.MkdirAll(gitletDir, 0755); err != nil {
		return nil, err
	}

	repo, err := open(dir)
	if err != nil {
		return nil, err
	}
	if _, err := engine.Init(repo.Store, repo.Index); err != nil {
		return nil, err
	}
	return repo, nil
}

func open(dir string) (*Repository, error) {
	gitletDir := filepath.Join(dir, fsutil.GitletDirName)
	index, err := refs.Load(gitletDir)
	if err != nil {
		return nil, err
	}
	stage, err := staging.Open(gitletDir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(gitletDir)
	if err != nil {
		return nil, err
	}
	return &Repository{
		Root:      dir,
		GitletDir: gitletDir,
		Store:     objects.NewStore(gitletDir),
		Index:     index,
		Stage:     stage,
		Config:    cfg,
	}, nil
}

// headTree returns the tree of the current branch's head commit as a
// filename -> fingerprint map.
func (r *Repository) headTree() (map[string]string, error) {
	head, err := r.Index.HeadOf(r.Index.CurrentBranch())
	if err != nil {
		return nil, err
	}
	c, err := r.Store.GetCommit(head)
	if err != nil {
		return nil, err
	}
	return objects.TreeMap(c.Tree), nil
}
