package worktree

import (
	"os"
	"path/filepath"

	"github.com/biruktesfaye/gitlet/internal/fsutil"
	"github.com/biruktesfaye/gitlet/internal/objects"
)

// WriteFile writes content to name under root, creating parent directories
// as needed (the working tree is flat per commit, but a name may still
// contain path separators carried over from the original file layout).
func WriteFile(root, name string, content []byte) error {
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}

// DeleteFile removes name from root, tolerating it already being absent.
func DeleteFile(root, name string) error {
	err := os.Remove(filepath.Join(root, filepath.FromSlash(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ReplaceWith deletes every working-tree file outside .gitlet, tracked or
// not (best effort), and then
// writes every file recorded in tree, reading blob content from store. This
// is the working-tree replacement shared by checkout_branch and reset
// (spec §4.8).
func ReplaceWith(root string, store *objects.Store, tree []objects.TreeEntry) error {
	existing, err := fsutil.WorkingTreeFiles(root)
	if err != nil {
		return err
	}
	for _, name := range existing {
		DeleteFile(root, name)
	}
	for _, entry := range tree {
		content, err := store.GetBlob(entry.Hash)
		if err != nil {
			return err
		}
		if err := WriteFile(root, entry.Name, content); err != nil {
			return err
		}
	}
	return nil
}
