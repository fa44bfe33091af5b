package core

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dir := t.TempDir()
	repo, err := InitRepository(dir)
	if err != nil {
		t.Fatal(err)
	}
	return repo
}

func (r *Repository) write(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(r.Root, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestAddRequiresFileToExist(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Add("missing.txt")
	ue, ok := AsUserError(err)
	if !ok || ue.Message != "File does not exist." {
		t.Fatalf("expected 'File does not exist.' user error, got %v", err)
	}
}

func TestAddCommitRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	repo.write(t, "A.txt", "hello\n")
	if err := repo.Add("A.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Commit("add A"); err != nil {
		t.Fatal(err)
	}

	entries, err := repo.Log()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries (init + add), got %d", len(entries))
	}
	if entries[0].Message != "add A" {
		t.Fatalf("head message = %q", entries[0].Message)
	}
}

func TestCommitWithNoChangesFails(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Commit("nothing to commit")
	ue, ok := AsUserError(err)
	if !ok || ue.Message == "" {
		t.Fatalf("expected user error for empty commit, got %v", err)
	}
}

func TestRmUntrackedFileFails(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Rm("nope.txt")
	ue, ok := AsUserError(err)
	if !ok || ue.Message != "No reason to remove the file." {
		t.Fatalf("expected 'No reason to remove the file.' error, got %v", err)
	}
}

func TestRmTrackedFileDeletesWorkingCopy(t *testing.T) {
	repo := newTestRepo(t)
	repo.write(t, "A.txt", "hello\n")
	repo.Add("A.txt")
	repo.Commit("add A")

	if err := repo.Rm("A.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(repo.Root, "A.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected A.txt removed from working tree")
	}
}

func TestStatusReportsUntrackedFile(t *testing.T) {
	repo := newTestRepo(t)
	repo.write(t, "U.txt", "surprise\n")

	status, err := repo.Status()
	if err != nil {
		t.Fatal(err)
	}
	if len(status.Untracked) != 1 || status.Untracked[0] != "U.txt" {
		t.Fatalf("untracked = %v", status.Untracked)
	}
}

func TestBranchAndCheckout(t *testing.T) {
	repo := newTestRepo(t)
	repo.write(t, "A.txt", "v1\n")
	repo.Add("A.txt")
	repo.Commit("v1")

	if err := repo.Branch("feature"); err != nil {
		t.Fatal(err)
	}

	repo.write(t, "A.txt", "v2\n")
	repo.Add("A.txt")
	repo.Commit("v2")

	if err := repo.CheckoutBranch("feature"); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(repo.Root, "A.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v1\n" {
		t.Fatalf("A.txt = %q, want v1 content after checkout", got)
	}
}

func TestCheckoutCurrentBranchRejected(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.CheckoutBranch("master")
	ue, ok := AsUserError(err)
	if !ok || ue.Message != "No need to checkout the current branch" {
		t.Fatalf("expected no-need message, got %v", err)
	}
}

func TestCheckoutUnknownBranchFails(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.CheckoutBranch("nope")
	ue, ok := AsUserError(err)
	if !ok || ue.Message != "No such branch exists." {
		t.Fatalf("expected 'No such branch exists.' error, got %v", err)
	}
}

func TestFindReturnsMatchingCommits(t *testing.T) {
	repo := newTestRepo(t)
	repo.write(t, "A.txt", "v1\n")
	repo.Add("A.txt")
	fp, err := repo.Commit("distinctive message")
	if err != nil {
		t.Fatal(err)
	}

	matches, err := repo.Find("distinctive message")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0] != fp {
		t.Fatalf("matches = %v, want [%s]", matches, fp)
	}
}

func TestFindNoMatchFails(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Find("never committed")
	ue, ok := AsUserError(err)
	if !ok || ue.Message != "Found no commit with that message." {
		t.Fatalf("expected 'Found no commit with that message.' error, got %v", err)
	}
}
