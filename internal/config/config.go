// Package config persists repository-local settings: the remote descriptor
// map (spec §6 remoteMap) and a small set of cosmetic settings (committer
// identity used only for display, never hashed into a commit).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	remoteMapFile = "remoteMap"
	settingsFile  = "config"
)

// Remote is the {name, path} descriptor of spec §3.
type Remote struct {
	Path string `toml:"path"`
}

type remoteTable struct {
	Remotes map[string]Remote `toml:"remotes"`
}

// Settings holds cosmetic values that never affect a commit's fingerprint
// (spec's Commit record carries no author field).
type Settings struct {
	UserName  string `toml:"user_name"`
	UserEmail string `toml:"user_email"`
}

// Config is the repository-local configuration for one gitlet repository.
type Config struct {
	gitletDir string

	remotes  map[string]Remote
	settings Settings
}

// Load reads remoteMap and config from gitletDir, tolerating either being
// absent on a freshly initialized repository.
func Load(gitletDir string) (*Config, error) {
	c := &Config{gitletDir: gitletDir, remotes: make(map[string]Remote)}

	var rt remoteTable
	if _, err := toml.DecodeFile(filepath.Join(gitletDir, remoteMapFile), &rt); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading remoteMap: %w", err)
	}
	if rt.Remotes != nil {
		c.remotes = rt.Remotes
	}

	if _, err := toml.DecodeFile(filepath.Join(gitletDir, settingsFile), &c.settings); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return c, nil
}

// Remote returns the descriptor for name, or ok=false if unconfigured.
func (c *Config) Remote(name string) (Remote, bool) {
	r, ok := c.remotes[name]
	return r, ok
}

// HasRemote reports whether a remote named name is configured.
func (c *Config) HasRemote(name string) bool {
	_, ok := c.remotes[name]
	return ok
}

// AddRemote records a new remote, failing if the name is already in use.
func (c *Config) AddRemote(name, path string) error {
	if _, exists := c.remotes[name]; exists {
		return errRemoteExists
	}
	c.remotes[name] = Remote{Path: path}
	return c.writeRemotes()
}

// RemoveRemote deletes a configured remote, failing if it doesn't exist.
func (c *Config) RemoveRemote(name string) error {
	if _, exists := c.remotes[name]; !exists {
		return errRemoteMissing
	}
	delete(c.remotes, name)
	return c.writeRemotes()
}

// Settings returns the current cosmetic settings.
func (c *Config) Settings() Settings {
	return c.settings
}

// SetUser records the committer identity shown in verbose log output.
func (c *Config) SetUser(name, email string) error {
	if name != "" {
		c.settings.UserName = name
	}
	if email != "" {
		c.settings.UserEmail = email
	}
	return c.writeSettings()
}

func (c *Config) writeRemotes() error {
	return atomicWriteTOML(filepath.Join(c.gitletDir, remoteMapFile), remoteTable{Remotes: c.remotes})
}

func (c *Config) writeSettings() error {
	return atomicWriteTOML(filepath.Join(c.gitletDir, settingsFile), c.settings)
}

func atomicWriteTOML(path string, v interface{}) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(f)
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
