package dag

import (
	"testing"

	"github.com/biruktesfaye/gitlet/internal/objects"
)

// fakeGraph lets tests build a commit DAG without touching disk.
type fakeGraph map[string]*objects.Commit

func (g fakeGraph) lookup(id string) (*objects.Commit, error) {
	c, ok := g[id]
	if !ok {
		return nil, objects.ErrNoSuchCommit
	}
	return c, nil
}

func (g fakeGraph) add(id, parent, secondParent string) {
	g[id] = &objects.Commit{CommitID: id, Parent: parent, SecondParent: secondParent}
}

func TestAncestorsLinearHistory(t *testing.T) {
	g := fakeGraph{}
	g.add("c1", "", "")
	g.add("c2", "c1", "")
	g.add("c3", "c2", "")

	got, err := Ancestors(g.lookup, "c3")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"c1", "c2", "c3"} {
		if !got[id] {
			t.Fatalf("expected %s in ancestor set, got %v", id, got)
		}
	}
}

func TestIsAncestorSelf(t *testing.T) {
	g := fakeGraph{}
	g.add("c1", "", "")
	ok, err := IsAncestor(g.lookup, "c1", "c1")
	if err != nil || !ok {
		t.Fatalf("expected commit to be its own ancestor, got %v %v", ok, err)
	}
}

func TestSplitPointSameCommitIsNoOp(t *testing.T) {
	g := fakeGraph{}
	g.add("c1", "", "")
	res, err := SplitPoint(g.lookup, "c1", "c1")
	if err != nil {
		t.Fatal(err)
	}
	if !res.SameCommit {
		t.Fatalf("expected SameCommit, got %+v", res)
	}
}

func TestSplitPointOtherIsAncestor(t *testing.T) {
	// a: c1 -> c2 -> c3 (current). b: c2 (an ancestor of current).
	g := fakeGraph{}
	g.add("c1", "", "")
	g.add("c2", "c1", "")
	g.add("c3", "c2", "")

	res, err := SplitPoint(g.lookup, "c3", "c2")
	if err != nil {
		t.Fatal(err)
	}
	if !res.OtherIsAncestor {
		t.Fatalf("expected OtherIsAncestor, got %+v", res)
	}
}

func TestSplitPointFastForward(t *testing.T) {
	// a: c1 -> c2 (current). b: c1 -> c2 -> c3 (ahead of current).
	g := fakeGraph{}
	g.add("c1", "", "")
	g.add("c2", "c1", "")
	g.add("c3", "c2", "")

	res, err := SplitPoint(g.lookup, "c2", "c3")
	if err != nil {
		t.Fatal(err)
	}
	if !res.FastForward {
		t.Fatalf("expected FastForward, got %+v", res)
	}
}

func TestSplitPointDiverged(t *testing.T) {
	// split -> a1 (current head "a")
	//       -> b1 -> b2 (given head "b")
	g := fakeGraph{}
	g.add("split", "", "")
	g.add("a1", "split", "")
	g.add("b1", "split", "")
	g.add("b2", "b1", "")

	res, err := SplitPoint(g.lookup, "a1", "b2")
	if err != nil {
		t.Fatal(err)
	}
	if res.SameCommit || res.OtherIsAncestor || res.FastForward {
		t.Fatalf("expected a genuine split point, got %+v", res)
	}
	if res.SplitPoint != "split" {
		t.Fatalf("expected split point 'split', got %q", res.SplitPoint)
	}
}

func TestSplitPointPicksMostRecentCommonAncestor(t *testing.T) {
	// root -> mid -> a (current)
	// root -> mid -> b1 -> b (given)
	//
	// Both branches share "mid" (closer) and "root" (further back); the
	// split point must be "mid", the one with the greater (less negative) tag.
	g := fakeGraph{}
	g.add("root", "", "")
	g.add("mid", "root", "")
	g.add("a", "mid", "")
	g.add("b1", "mid", "")
	g.add("b", "b1", "")

	res, err := SplitPoint(g.lookup, "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	if res.SplitPoint != "mid" {
		t.Fatalf("expected split point 'mid', got %q", res.SplitPoint)
	}
}

func TestSplitPointAcrossMergeCommit(t *testing.T) {
	// root -> x -> y (current), where y is a merge of x and z
	// root -> z -> w (given)
	g := fakeGraph{}
	g.add("root", "", "")
	g.add("x", "root", "")
	g.add("z", "root", "")
	g.add("y", "x", "z") // merge commit: first parent x, second parent z
	g.add("w", "z", "")

	res, err := SplitPoint(g.lookup, "y", "w")
	if err != nil {
		t.Fatal(err)
	}
	if res.SplitPoint != "z" {
		t.Fatalf("expected split point 'z', got %q", res.SplitPoint)
	}
}
