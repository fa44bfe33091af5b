package refs

import (
	"os"
	"testing"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return idx
}

func TestCreateAndResolveBranch(t *testing.T) {
	idx := newTestIndex(t)
	if err := idx.CreateBranch("master", "abc123"); err != nil {
		t.Fatal(err)
	}
	if err := idx.CreateBranch("master", "def456"); err != ErrBranchExists {
		t.Fatalf("expected ErrBranchExists, got %v", err)
	}
	head, err := idx.HeadOf("master")
	if err != nil || head != "abc123" {
		t.Fatalf("HeadOf master = %q, %v", head, err)
	}
}

func TestCannotRemoveCurrentBranch(t *testing.T) {
	idx := newTestIndex(t)
	idx.CreateBranch("master", "abc123")
	idx.SetCurrent("master")
	if err := idx.DeleteBranch("master"); err != ErrCannotRemoveCurrent {
		t.Fatalf("expected ErrCannotRemoveCurrent, got %v", err)
	}
}

func TestShortIDRoundTrip(t *testing.T) {
	idx := newTestIndex(t)
	full := "0123456789abcdef0123456789abcdef01234567"
	if err := idx.RecordCommit(full); err != nil {
		t.Fatal(err)
	}
	got, ok := idx.ResolveShort("01234567")
	if !ok || got != full {
		t.Fatalf("ResolveShort = %q, %v", got, ok)
	}
}

func TestIndexPersistsAcrossLoad(t *testing.T) {
	dir := t.TempDir()
	idx, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	idx.CreateBranch("master", "abc123")
	idx.SetCurrent("master")
	idx.RecordCommit("0123456789abcdef0123456789abcdef01234567")

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.CurrentBranch() != "master" {
		t.Fatalf("current branch not persisted: %q", reloaded.CurrentBranch())
	}
	if head, _ := reloaded.HeadOf("master"); head != "abc123" {
		t.Fatalf("branch head not persisted: %q", head)
	}
	if _, ok := reloaded.ResolveShort("01234567"); !ok {
		t.Fatal("short id not persisted")
	}
}
