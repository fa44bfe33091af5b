package config

import "errors"

var (
	errRemoteExists  = errors.New("A remote with that name already exists.")
	errRemoteMissing = errors.New("A remote with that name does not exist.")
)

// ErrRemoteExists is returned by AddRemote for a name already in use.
var ErrRemoteExists = errRemoteExists

// ErrRemoteMissing is returned by RemoveRemote/lookups for an unknown name.
var ErrRemoteMissing = errRemoteMissing
