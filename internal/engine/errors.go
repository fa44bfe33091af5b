package engine

import "errors"

var (
	errNoChanges = errors.New("No changes added to the commit.")
	errNoMessage = errors.New("Please enter a commit message.")
)

// ErrNoChanges is returned by Commit when the staging area is empty.
var ErrNoChanges = errNoChanges

// ErrNoMessage is returned by Commit when message is empty.
var ErrNoMessage = errNoMessage
