// Package staging implements the transient staging area: pending additions
// and removals used to build the next commit (spec §4.3).
package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// removalPrefix marks a file in stage/ as a pending removal rather than a
// pending addition (spec §6, §9 "removal-marker encoding").
const removalPrefix = "[[del[["

// Area is the staging area for one repository, backed by gitletDir/stage.
type Area struct {
	dir string // <gitletDir>/stage
}

// Open returns the staging area rooted at gitletDir, creating the stage
// directory if this is a fresh repository.
func Open(gitletDir string) (*Area, error) {
	dir := filepath.Join(gitletDir, "stage")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating stage directory: %w", err)
	}
	return &Area{dir: dir}, nil
}

// StageAdd records filename for addition with the given content. If
// currentFingerprint (the working copy's) equals headHash (the fingerprint
// the current commit has recorded for filename; "" when untracked), any
// pending addition/removal is dropped instead (spec §4.3: the
// add becomes a no-op when the working copy already matches HEAD).
func (a *Area) StageAdd(filename string, content []byte, currentFingerprint, headHash string) error {
	if currentFingerprint == headHash && headHash != "" {
		return a.clearEntry(filename)
	}
	if err := a.clearRemoval(filename); err != nil {
		return err
	}
	return os.WriteFile(a.additionPath(filename), content, 0644)
}

// StageRemove drops filename from additions if it was only staged there, or
// else marks it for removal (and the caller is responsible for deleting the
// working-tree file, per spec §4.3).
func (a *Area) StageRemove(filename string) error {
	if a.HasAddition(filename) {
		return os.Remove(a.additionPath(filename))
	}
	return os.WriteFile(a.removalMarkerPath(filename), nil, 0644)
}

// HasAddition reports whether filename has pending staged content.
func (a *Area) HasAddition(filename string) bool {
	_, err := os.Stat(a.additionPath(filename))
	return err == nil
}

// HasRemoval reports whether filename is marked for removal.
func (a *Area) HasRemoval(filename string) bool {
	_, err := os.Stat(a.removalMarkerPath(filename))
	return err == nil
}

// GetAddition returns the staged bytes for filename.
func (a *Area) GetAddition(filename string) ([]byte, error) {
	return os.ReadFile(a.additionPath(filename))
}

// IterAdditions returns staged-addition filenames, sorted.
func (a *Area) IterAdditions() ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("reading stage directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), removalPrefix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// IterRemovals returns staged-removal filenames, sorted.
func (a *Area) IterRemovals() ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("reading stage directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), removalPrefix) {
			continue
		}
		names = append(names, strings.TrimPrefix(e.Name(), removalPrefix))
	}
	sort.Strings(names)
	return names, nil
}

// IsEmpty reports whether both sets are empty.
func (a *Area) IsEmpty() (bool, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return false, fmt.Errorf("reading stage directory: %w", err)
	}
	return len(entries) == 0, nil
}

// Clear empties both additions and removals.
func (a *Area) Clear() error {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return fmt.Errorf("reading stage directory: %w", err)
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(a.dir, e.Name())); err != nil {
			return fmt.Errorf("clearing stage entry %s: %w", e.Name(), err)
		}
	}
	return nil
}

func (a *Area) clearEntry(filename string) error {
	if err := os.Remove(a.additionPath(filename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return a.clearRemoval(filename)
}

func (a *Area) clearRemoval(filename string) error {
	if err := os.Remove(a.removalMarkerPath(filename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (a *Area) additionPath(filename string) string {
	return filepath.Join(a.dir, filename)
}

func (a *Area) removalMarkerPath(filename string) string {
	return filepath.Join(a.dir, removalPrefix+filename)
}
