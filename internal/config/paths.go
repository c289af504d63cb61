// Package config manages multiroot configuration and filesystem paths.
//
// Configuration includes the locations of multiroot data directories,
// which can be customized via environment variables. The default root is
// ~/.multiroot/ containing the untitled workspaces home, the
// recently-opened history file, and the tool config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by multiroot.
type Paths struct {
	// Root is the base directory for all multiroot data (default: ~/.multiroot)
	Root string

	// UntitledWorkspaces is the home directory for untitled workspace
	// configuration files
	UntitledWorkspaces string

	// Recents is the path to the recently-opened history file
	Recents string

	// Config is the path to the tool config file
	Config string
}

// DefaultPaths returns the default paths for multiroot.
// Paths can be overridden with environment variables:
// - MULTIROOT_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("MULTIROOT_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".multiroot")
	}

	return &Paths{
		Root:               root,
		UntitledWorkspaces: filepath.Join(root, "untitled"),
		Recents:            filepath.Join(root, "recents.json"),
		Config:             filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.UntitledWorkspaces,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
