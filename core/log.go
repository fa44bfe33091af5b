package core

import (
	"time"

	"github.com/biruktesfaye/gitlet/internal/objects"
)

// LogEntry is one printable record of the commit log (spec §6 log format).
type LogEntry struct {
	Fingerprint  string
	Parent       string
	SecondParent string
	Timestamp    time.Time
	Message      string
}

func entryFor(store *objects.Store, fingerprint string) (LogEntry, error) {
	c, err := store.GetCommit(fingerprint)
	if err != nil {
		return LogEntry{}, err
	}
	return LogEntry{
		Fingerprint:  fingerprint,
		Parent:       c.Parent,
		SecondParent: c.SecondParent,
		Timestamp:    c.Timestamp,
		Message:      c.Message,
	}, nil
}

// Log walks the current branch's first-parent history, from head to the
// initial commit (spec §4.4/§6 log).
func (r *Repository) Log() ([]LogEntry, error) {
	head, err := r.Index.HeadOf(r.Index.CurrentBranch())
	if err != nil {
		return nil, err
	}

	var entries []LogEntry
	for id := head; id != ""; {
		entry, err := entryFor(r.Store, id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)

		c, err := r.Store.GetCommit(id)
		if err != nil {
			return nil, err
		}
		id = c.Parent
	}
	return entries, nil
}

// GlobalLog returns every commit in the object store, in no particular
// order (spec §6 global-log).
func (r *Repository) GlobalLog() ([]LogEntry, error) {
	ids, err := r.Store.ListCommits()
	if err != nil {
		return nil, err
	}
	entries := make([]LogEntry, 0, len(ids))
	for _, id := range ids {
		entry, err := entryFor(r.Store, id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Find returns the ids of every commit whose message equals message exactly
// (spec §6 find).
func (r *Repository) Find(message string) ([]string, error) {
	ids, err := r.Store.ListCommits()
	if err != nil {
		return nil, err
	}
	var matches []string
	for _, id := range ids {
		c, err := r.Store.GetCommit(id)
		if err != nil {
			return nil, err
		}
		if c.Message == message {
			matches = append(matches, id)
		}
	}
	if len(matches) == 0 {
		return nil, NewUserError("Found no commit with that message.")
	}
	return matches, nil
}
