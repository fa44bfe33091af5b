package staging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStageAddThenMatchCancels(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := a.StageAdd("A.txt", []byte("hello\n"), "sameHash", "differentHash"); err != nil {
		t.Fatal(err)
	}
	if !a.HasAddition("A.txt") {
		t.Fatal("expected pending addition")
	}

	// Re-adding with a fingerprint matching HEAD cancels the pending add.
	if err := a.StageAdd("A.txt", []byte("hello\n"), "sameHash", "sameHash"); err != nil {
		t.Fatal(err)
	}
	if a.HasAddition("A.txt") {
		t.Fatal("expected addition to be cancelled")
	}
}

func TestStageAddIdempotent(t *testing.T) {
	dir := t.TempDir()
	a, _ := Open(dir)

	a.StageAdd("A.txt", []byte("v1"), "h1", "headHash")
	a.StageAdd("A.txt", []byte("v1"), "h1", "headHash")

	names, err := a.IterAdditions()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "A.txt" {
		t.Fatalf("expected single addition, got %v", names)
	}
}

func TestStageRemoveFromAdditionsDropsIt(t *testing.T) {
	dir := t.TempDir()
	a, _ := Open(dir)
	a.StageAdd("A.txt", []byte("v1"), "h1", "headHash")

	if err := a.StageRemove("A.txt"); err != nil {
		t.Fatal(err)
	}
	if a.HasAddition("A.txt") || a.HasRemoval("A.txt") {
		t.Fatal("expected no pending entry after removing a staged addition")
	}
}

func TestStageRemoveTrackedFileMarksRemoval(t *testing.T) {
	dir := t.TempDir()
	a, _ := Open(dir)

	if err := a.StageRemove("tracked.txt"); err != nil {
		t.Fatal(err)
	}
	if !a.HasRemoval("tracked.txt") {
		t.Fatal("expected removal marker")
	}

	removals, err := a.IterRemovals()
	if err != nil {
		t.Fatal(err)
	}
	if len(removals) != 1 || removals[0] != "tracked.txt" {
		t.Fatalf("unexpected removals: %v", removals)
	}
}

func TestClearEmptiesBothSets(t *testing.T) {
	dir := t.TempDir()
	a, _ := Open(dir)
	a.StageAdd("A.txt", []byte("v1"), "h1", "headHash")
	a.StageRemove("B.txt")

	if err := a.Clear(); err != nil {
		t.Fatal(err)
	}
	empty, err := a.IsEmpty()
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Fatal("expected empty stage after Clear")
	}
}

func TestAdditionsAndRemovalsDisjoint(t *testing.T) {
	dir := t.TempDir()
	a, _ := Open(dir)

	a.StageRemove("F.txt") // mark removed (as if tracked)
	a.StageAdd("F.txt", []byte("new"), "h2", "headHash")

	if a.HasRemoval("F.txt") {
		t.Fatal("removal marker should have been cleared by stage add")
	}
	if !a.HasAddition("F.txt") {
		t.Fatal("expected addition after staging the file again")
	}
}

func TestRemovalMarkerFileNaming(t *testing.T) {
	dir := t.TempDir()
	a, _ := Open(dir)
	a.StageRemove("name.txt")

	entries, err := os.ReadDir(filepath.Join(dir, "stage"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "[[del[[name.txt" {
		t.Fatalf("unexpected stage contents: %v", entries)
	}
}
