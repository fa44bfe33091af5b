package remote

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biruktesfaye/gitlet/internal/config"
	"github.com/biruktesfaye/gitlet/internal/engine"
	"github.com/biruktesfaye/gitlet/internal/fsutil"
	"github.com/biruktesfaye/gitlet/internal/merge"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/refs"
	"github.com/biruktesfaye/gitlet/internal/staging"
)

type testRepo struct {
	root      string
	gitletDir string
	store     *objects.Store
	index     *refs.Index
	stage     *staging.Area
	cfg       *config.Config
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	root := t.TempDir()
	gitletDir := filepath.Join(root, fsutil.GitletDirName)
	if err := os.MkdirAll(gitletDir, 0755); err != nil {
		t.Fatal(err)
	}
	store := objects.NewStore(gitletDir)
	index, err := refs.Load(gitletDir)
	if err != nil {
		t.Fatal(err)
	}
	stage, err := staging.Open(gitletDir)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(gitletDir)
	if err != nil {
		t.Fatal(err)
	}
	engine.Init(store, index)
	return &testRepo{root: root, gitletDir: gitletDir, store: store, index: index, stage: stage, cfg: cfg}
}

func (r *testRepo) commit(t *testing.T, name, content, message string) string {
	t.Helper()
	os.WriteFile(filepath.Join(r.root, name), []byte(content), 0644)
	if err := r.stage.StageAdd(name, []byte(content), "", ""); err != nil {
		t.Fatal(err)
	}
	fp, err := engine.Commit(r.store, r.index, r.stage, message)
	if err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestPushCopiesCommitAndBlob(t *testing.T) {
	local := newTestRepo(t)
	peerRepo := newTestRepo(t)
	local.cfg.AddRemote("origin", peerRepo.root)

	fp := local.commit(t, "A.txt", "hello\n", "add A")

	if err := Push(local.store, local.index, local.cfg, "origin", refs.InitBranchName); err != nil {
		t.Fatal(err)
	}

	remoteIndex, err := refs.Load(peerRepo.gitletDir)
	if err != nil {
		t.Fatal(err)
	}
	remoteHead, err := remoteIndex.HeadOf(refs.InitBranchName)
	if err != nil || remoteHead != fp {
		t.Fatalf("remote head = %q, %v; want %q", remoteHead, err, fp)
	}
	if !peerRepo.store.CommitExists(fp) {
		t.Fatalf("expected commit %s copied to remote", fp)
	}
	if _, err := os.ReadFile(filepath.Join(peerRepo.root, "A.txt")); err != nil {
		t.Fatalf("expected working tree file copied to remote: %v", err)
	}
}

func TestPushUpToDateAfterPush(t *testing.T) {
	local := newTestRepo(t)
	peerRepo := newTestRepo(t)
	local.cfg.AddRemote("origin", peerRepo.root)
	local.commit(t, "A.txt", "hello\n", "add A")

	if err := Push(local.store, local.index, local.cfg, "origin", refs.InitBranchName); err != nil {
		t.Fatal(err)
	}
	if err := Push(local.store, local.index, local.cfg, "origin", refs.InitBranchName); err != ErrUpToDate {
		t.Fatalf("expected ErrUpToDate, got %v", err)
	}
}

func TestPushRequiresPullFirstWhenDiverged(t *testing.T) {
	local := newTestRepo(t)
	peerRepo := newTestRepo(t)
	local.cfg.AddRemote("origin", peerRepo.root)

	local.commit(t, "A.txt", "hello\n", "add A")
	Push(local.store, local.index, local.cfg, "origin", refs.InitBranchName)

	peerRepo.commit(t, "B.txt", "other\n", "add B on remote")

	local.commit(t, "C.txt", "mine\n", "add C locally")
	if err := Push(local.store, local.index, local.cfg, "origin", refs.InitBranchName); err != ErrPullFirst {
		t.Fatalf("expected ErrPullFirst, got %v", err)
	}
}

func TestFetchCreatesMirrorBranch(t *testing.T) {
	local := newTestRepo(t)
	peerRepo := newTestRepo(t)
	local.cfg.AddRemote("origin", peerRepo.root)

	fp := peerRepo.commit(t, "A.txt", "hello\n", "add A")

	mirror, err := Fetch(local.store, local.index, local.cfg, "origin", refs.InitBranchName)
	if err != nil {
		t.Fatal(err)
	}
	if mirror != "origin/master" {
		t.Fatalf("mirror branch = %q", mirror)
	}
	head, err := local.index.HeadOf(mirror)
	if err != nil || head != fp {
		t.Fatalf("mirror head = %q, %v; want %q", head, err, fp)
	}
	if !local.store.CommitExists(fp) {
		t.Fatalf("expected commit copied locally")
	}
}

func TestFetchUnknownBranchFails(t *testing.T) {
	local := newTestRepo(t)
	peerRepo := newTestRepo(t)
	local.cfg.AddRemote("origin", peerRepo.root)

	if _, err := Fetch(local.store, local.index, local.cfg, "origin", "nope"); err != ErrRemoteBranchMissing {
		t.Fatalf("expected ErrRemoteBranchMissing, got %v", err)
	}
}

func TestPullMergesMirrorBranch(t *testing.T) {
	local := newTestRepo(t)
	peerRepo := newTestRepo(t)
	local.cfg.AddRemote("origin", peerRepo.root)

	peerRepo.commit(t, "A.txt", "hello\n", "add A")

	// A.txt was only added by the peer after both sides shared the same
	// initial commit, so this pull resolves as a fast-forward: Merge
	// reports it via the sentinel ErrFastForwarded rather than failing.
	if _, err := Pull(local.root, local.store, local.index, local.stage, local.cfg, "origin", refs.InitBranchName); err != merge.ErrFastForwarded {
		t.Fatal(err)
	}

	if _, err := os.ReadFile(filepath.Join(local.root, "A.txt")); err != nil {
		t.Fatalf("expected A.txt merged into working tree: %v", err)
	}
}
