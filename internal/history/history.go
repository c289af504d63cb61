// Package history maintains the persisted recently-opened list: loading
// it through the schema-migrating restore, and updating it with
// deduplication and a configurable length cap. Every mutation persists
// the full list atomically.
package history

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/multiroot-dev/multiroot/internal/fsops"
	"github.com/multiroot-dev/multiroot/internal/platform"
	"github.com/multiroot-dev/multiroot/internal/recents"
	"github.com/multiroot-dev/multiroot/internal/uri"
)

// Service manages the recently-opened history file.
type Service struct {
	fs         fsops.FS
	path       string
	os         platform.OS
	ops        *uri.Ops
	log        *slog.Logger
	maxEntries int
}

// NewService creates a history service persisting to path. maxEntries
// caps each of the workspace and file lists.
func NewService(fs fsops.FS, path string, osConv platform.OS, ops *uri.Ops, log *slog.Logger, maxEntries int) *Service {
	return &Service{
		fs:         fs,
		path:       path,
		os:         osConv,
		ops:        ops,
		log:        log,
		maxEntries: maxEntries,
	}
}

// Load reads and restores the history. A missing file yields an empty
// history; malformed entries inside an existing file are dropped by the
// restore, never failing the load.
func (s *Service) Load() (recents.RecentlyOpened, error) {
	data, err := s.fs.ReadFile(s.path)
	if os.IsNotExist(err) {
		return recents.Empty(), nil
	}
	if err != nil {
		return recents.RecentlyOpened{}, fmt.Errorf("failed to read history: %w", err)
	}
	return recents.Restore(data, s.os, s.log), nil
}

// Add prepends entries to the history, dropping older duplicates and
// trimming each list to the configured cap, then persists.
func (s *Service) Add(workspaces []recents.Entry, files []recents.RecentFile) error {
	current, err := s.Load()
	if err != nil {
		return err
	}

	merged := recents.Empty()
	seen := make(map[string]bool)
	for _, e := range append(workspaces, current.Workspaces...) {
		key := s.entryKey(e)
		if seen[key] || len(merged.Workspaces) >= s.maxEntries {
			continue
		}
		seen[key] = true
		merged.Workspaces = append(merged.Workspaces, e)
	}
	seenFiles := make(map[string]bool)
	for _, f := range append(files, current.Files...) {
		key := s.ops.ComparisonKey(f.FileURI)
		if seenFiles[key] || len(merged.Files) >= s.maxEntries {
			continue
		}
		seenFiles[key] = true
		merged.Files = append(merged.Files, f)
	}

	return s.save(merged)
}

// Remove deletes every entry identified by one of the given locations: a
// workspace's config path, a folder's location, or a file's location.
func (s *Service) Remove(locations ...uri.URI) error {
	current, err := s.Load()
	if err != nil {
		return err
	}

	doomed := make(map[string]bool, len(locations))
	for _, l := range locations {
		doomed[s.ops.ComparisonKey(l)] = true
	}

	kept := recents.Empty()
	for _, e := range current.Workspaces {
		var location uri.URI
		switch v := e.(type) {
		case recents.RecentWorkspace:
			location = v.Workspace.ConfigPath
		case recents.RecentFolder:
			location = v.FolderURI
		}
		if !doomed[s.ops.ComparisonKey(location)] {
			kept.Workspaces = append(kept.Workspaces, e)
		}
	}
	for _, f := range current.Files {
		if !doomed[s.ops.ComparisonKey(f.FileURI)] {
			kept.Files = append(kept.Files, f)
		}
	}

	return s.save(kept)
}

// Clear empties the history.
func (s *Service) Clear() error {
	return s.save(recents.Empty())
}

// Migrate rewrites the history file in the current schema: loading runs
// the legacy-format restore, saving always emits the current shape.
func (s *Service) Migrate() error {
	current, err := s.Load()
	if err != nil {
		return err
	}
	return s.save(current)
}

// entryKey is the deduplication key of a workspace-list entry: workspaces
// dedupe by workspace ID, folders by location comparison key.
func (s *Service) entryKey(e recents.Entry) string {
	switch v := e.(type) {
	case recents.RecentWorkspace:
		return "workspace:" + v.Workspace.ID
	case recents.RecentFolder:
		return "folder:" + s.ops.ComparisonKey(v.FolderURI)
	default:
		return ""
	}
}

func (s *Service) save(ro recents.RecentlyOpened) error {
	data, err := recents.ToStoreData(ro)
	if err != nil {
		return err
	}
	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
