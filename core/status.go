package core

import "github.com/biruktesfaye/gitlet/internal/worktree"

// Status reports the five working-tree classifications of spec §4.5.
func (r *Repository) Status() (*worktree.Status, error) {
	head, err := r.Index.HeadOf(r.Index.CurrentBranch())
	if err != nil {
		return nil, err
	}
	c, err := r.Store.GetCommit(head)
	if err != nil {
		return nil, err
	}
	return worktree.Scan(r.Root, r.Index, r.Stage, c.Tree)
}
