// Package dag walks the commit graph — ancestry checks and split-point
// selection for merge (spec §4.6).
package dag

import (
	"fmt"

	"github.com/biruktesfaye/gitlet/internal/objects"
)

// Lookup resolves a commit fingerprint to its record. The navigator never
// touches the filesystem directly; it is handed whatever Store.GetCommit is.
type Lookup func(fingerprint string) (*objects.Commit, error)

// Ancestors returns the set of fingerprints reachable from start by
// following parent and second-parent links (start included). It uses an
// explicit stack rather than recursion, since commit histories can run
// deeper than a comfortable native call stack (design note §9).
func Ancestors(lookup Lookup, start string) (map[string]bool, error) {
	visited := make(map[string]bool)
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == "" || visited[id] {
			continue
		}
		visited[id] = true
		c, err := lookup(id)
		if err != nil {
			return nil, fmt.Errorf("walking ancestry of %s: %w", start, err)
		}
		if c.SecondParent != "" {
			stack = append(stack, c.SecondParent)
		}
		if c.Parent != "" {
			stack = append(stack, c.Parent)
		}
	}
	return visited, nil
}

// CollectUntil walks from start over parent and second-parent links,
// returning every visited commit for which stop reports false. Walking does
// not continue past a commit where stop reports true. Used by the remote
// synchronizer to find commits missing on one side of a push/fetch (spec
// §4.9: "copy every commit...not already present").
func CollectUntil(lookup Lookup, start string, stop func(id string) bool) ([]string, error) {
	var collected []string
	visited := make(map[string]bool)
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == "" || visited[id] {
			continue
		}
		visited[id] = true
		if stop(id) {
			continue
		}
		collected = append(collected, id)

		c, err := lookup(id)
		if err != nil {
			return nil, fmt.Errorf("collecting from %s: %w", start, err)
		}
		if c.SecondParent != "" {
			stack = append(stack, c.SecondParent)
		}
		if c.Parent != "" {
			stack = append(stack, c.Parent)
		}
	}
	return collected, nil
}

// IsAncestor reports whether candidate is reachable from of (candidate ==
// of counts as true, matching normal ancestry semantics).
func IsAncestor(lookup Lookup, candidate, of string) (bool, error) {
	ancestors, err := Ancestors(lookup, of)
	if err != nil {
		return false, err
	}
	return ancestors[candidate], nil
}

// SplitResult is the outcome of SplitPoint: at most one of the three
// short-circuit flags below is set (spec §4.6's short-circuit conditions);
// when none is set, SplitPoint holds the chosen common ancestor.
type SplitResult struct {
	SameCommit      bool   // a == b: merge is a no-op
	OtherIsAncestor bool   // b is an ancestor of a: "Given branch is an ancestor of the current branch."
	FastForward     bool   // a is an ancestor of b: fast-forward a to b
	SplitPoint      string // valid only when none of the above hold
}

// SplitPoint implements the depth-tagged split-point rule of spec §4.6.
//
// Step 1 walks from a over both parent links, tagging each visited commit
// with a depth (0 at a, decrementing on each descent); revisiting a commit
// overwrites its tag (last-writer-wins). Step 2 walks from b; any visited
// commit already tagged becomes a candidate and is not descended through.
// The split point is the candidate with the greatest (least negative) tag;
// candidates are compared in map iteration order, so which of several
// equally tagged candidates wins is not defined.
func SplitPoint(lookup Lookup, a, b string) (SplitResult, error) {
	if a == b {
		return SplitResult{SameCommit: true}, nil
	}

	tags, err := tagAncestry(lookup, a)
	if err != nil {
		return SplitResult{}, err
	}
	if _, ok := tags[b]; ok {
		return SplitResult{OtherIsAncestor: true}, nil
	}

	candidates, aEncountered, err := candidatesFrom(lookup, b, a, tags)
	if err != nil {
		return SplitResult{}, err
	}
	if aEncountered {
		return SplitResult{FastForward: true}, nil
	}

	best := ""
	bestTag := 0
	first := true
	for id := range candidates {
		tag := tags[id]
		if first || tag > bestTag {
			best, bestTag, first = id, tag, false
		}
	}
	if best == "" {
		return SplitResult{}, fmt.Errorf("no common ancestor found between %s and %s", a, b)
	}
	return SplitResult{SplitPoint: best}, nil
}

// tagAncestry performs step 1: a depth-first walk from start assigning a
// depth tag to every visited commit, later visits overwriting earlier ones.
func tagAncestry(lookup Lookup, start string) (map[string]int, error) {
	tags := make(map[string]int)

	type frame struct {
		id  string
		tag int
	}
	stack := []frame{{start, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.id == "" {
			continue
		}
		tags[f.id] = f.tag // last-writer-wins, even on revisit

		c, err := lookup(f.id)
		if err != nil {
			return nil, fmt.Errorf("tagging ancestry of %s: %w", start, err)
		}
		// Push second parent before parent so the parent subtree is fully
		// explored first when popped, matching the recursive order implied
		// by "first and second parent" traversal.
		if c.SecondParent != "" {
			stack = append(stack, frame{c.SecondParent, f.tag - 1})
		}
		if c.Parent != "" {
			stack = append(stack, frame{c.Parent, f.tag - 1})
		}
	}
	return tags, nil
}

// candidatesFrom performs step 2: a depth-first walk from start, collecting
// every commit already present in tagged as a candidate and refusing to
// descend past it. It also reports whether target (a, the current head) was
// encountered anywhere in the walk, which signals a fast-forward.
func candidatesFrom(lookup Lookup, start, target string, tagged map[string]int) (map[string]bool, bool, error) {
	candidates := make(map[string]bool)
	visited := make(map[string]bool)
	encounteredTarget := false

	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == "" || visited[id] {
			continue
		}
		visited[id] = true
		if id == target {
			encounteredTarget = true
		}

		if _, ok := tagged[id]; ok {
			candidates[id] = true
			continue // don't descend through a candidate's ancestors
		}

		c, err := lookup(id)
		if err != nil {
			return nil, false, fmt.Errorf("walking ancestry of %s: %w", start, err)
		}
		if c.SecondParent != "" {
			stack = append(stack, c.SecondParent)
		}
		if c.Parent != "" {
			stack = append(stack, c.Parent)
		}
	}
	return candidates, encounteredTarget, nil
}
