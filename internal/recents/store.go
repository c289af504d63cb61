package recents

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/multiroot-dev/multiroot/internal/platform"
	"github.com/multiroot-dev/multiroot/internal/uri"
	"github.com/multiroot-dev/multiroot/internal/workspace"
)

// storedWorkspaceIdentifier is the persisted identifier of a workspace
// entry in the current schema.
type storedWorkspaceIdentifier struct {
	ID         string `json:"id"`
	ConfigPath string `json:"configPath"`
}

// storedEntry is one element of the current schema's entries array. The
// kind of entry is decided by which key is present, in the fixed order
// workspace, folderUri, fileUri: an entry carrying an earlier key is
// never reinterpreted by a later one.
type storedEntry struct {
	Workspace       *storedWorkspaceIdentifier `json:"workspace,omitempty"`
	FolderURI       *string                    `json:"folderUri,omitempty"`
	FileURI         *string                    `json:"fileUri,omitempty"`
	Label           string                     `json:"label,omitempty"`
	RemoteAuthority string                     `json:"remoteAuthority,omitempty"`
}

// storedData is the persisted history document across all accepted
// generations: entries (current), workspaces3/files2 with parallel label
// arrays, and the oldest workspaces2/files.
type storedData struct {
	Entries []json.RawMessage `json:"entries,omitempty"`

	Workspaces3     []json.RawMessage `json:"workspaces3,omitempty"`
	WorkspaceLabels []*string         `json:"workspaceLabels,omitempty"`
	Files2          []string          `json:"files2,omitempty"`
	FileLabels      []*string         `json:"fileLabels,omitempty"`

	Workspaces2 []string `json:"workspaces2,omitempty"`
	Files       []string `json:"files,omitempty"`
}

// legacyWorkspaceEntry is the object form of a workspaces3 element.
type legacyWorkspaceEntry struct {
	ID            string `json:"id"`
	ConfigURIPath string `json:"configURIPath"`
}

// Restore interprets persisted history data. Nil or empty input restores
// an empty history. Each entry is interpreted on its own: a malformed
// entry is logged and dropped while the remaining entries still restore.
func Restore(data []byte, os platform.OS, log *slog.Logger) RecentlyOpened {
	restored := Empty()
	if len(data) == 0 {
		return restored
	}

	var stored storedData
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Warn("discarding unreadable recently-opened history", "error", err)
		return restored
	}

	if stored.Entries != nil {
		for _, raw := range stored.Entries {
			entry, file, err := restoreEntry(raw)
			switch {
			case err != nil:
				log.Warn("skipping malformed recent entry", "error", err)
			case entry != nil:
				restored.Workspaces = append(restored.Workspaces, entry)
			default:
				restored.Files = append(restored.Files, *file)
			}
		}
		return restored
	}

	for i, raw := range stored.Workspaces3 {
		entry, err := restoreLegacyWorkspace(raw, labelAt(stored.WorkspaceLabels, i))
		if err != nil {
			log.Warn("skipping malformed legacy workspace entry", "error", err)
			continue
		}
		restored.Workspaces = append(restored.Workspaces, entry)
	}
	for _, s := range stored.Workspaces2 {
		folderURI, err := uri.Parse(s)
		if err != nil {
			log.Warn("skipping malformed legacy folder entry", "uri", s, "error", err)
			continue
		}
		restored.Workspaces = append(restored.Workspaces, RecentFolder{FolderURI: folderURI})
	}
	for i, s := range stored.Files2 {
		fileURI, err := uri.Parse(s)
		if err != nil {
			log.Warn("skipping malformed legacy file entry", "uri", s, "error", err)
			continue
		}
		restored.Files = append(restored.Files, RecentFile{FileURI: fileURI, Label: labelAt(stored.FileLabels, i)})
	}
	for _, p := range stored.Files {
		restored.Files = append(restored.Files, RecentFile{FileURI: uri.FromFilePath(p, os)})
	}
	return restored
}

// restoreEntry interprets one current-schema entry, returning either a
// workspace/folder entry or a file entry.
func restoreEntry(raw json.RawMessage) (Entry, *RecentFile, error) {
	var stored storedEntry
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, nil, err
	}
	switch {
	case stored.Workspace != nil:
		configPath, err := uri.Parse(stored.Workspace.ConfigPath)
		if err != nil {
			return nil, nil, fmt.Errorf("workspace entry: %w", err)
		}
		return RecentWorkspace{
			Workspace:       workspace.ConfigIdentifier{ID: stored.Workspace.ID, ConfigPath: configPath},
			Label:           stored.Label,
			RemoteAuthority: stored.RemoteAuthority,
		}, nil, nil
	case stored.FolderURI != nil:
		folderURI, err := uri.Parse(*stored.FolderURI)
		if err != nil {
			return nil, nil, fmt.Errorf("folder entry: %w", err)
		}
		return RecentFolder{
			FolderURI:       folderURI,
			Label:           stored.Label,
			RemoteAuthority: stored.RemoteAuthority,
		}, nil, nil
	case stored.FileURI != nil:
		fileURI, err := uri.Parse(*stored.FileURI)
		if err != nil {
			return nil, nil, fmt.Errorf("file entry: %w", err)
		}
		return nil, &RecentFile{
			FileURI:         fileURI,
			Label:           stored.Label,
			RemoteAuthority: stored.RemoteAuthority,
		}, nil
	default:
		return nil, nil, fmt.Errorf("entry has none of workspace, folderUri, fileUri")
	}
}

// restoreLegacyWorkspace interprets a workspaces3 element: either an
// {id, configURIPath} object or a raw folder location string.
func restoreLegacyWorkspace(raw json.RawMessage, label string) (Entry, error) {
	var location string
	if err := json.Unmarshal(raw, &location); err == nil {
		folderURI, err := uri.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("legacy folder location: %w", err)
		}
		return RecentFolder{FolderURI: folderURI, Label: label}, nil
	}

	var entry legacyWorkspaceEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("legacy workspace entry: %w", err)
	}
	if entry.ID == "" || entry.ConfigURIPath == "" {
		return nil, fmt.Errorf("legacy workspace entry missing id or configURIPath")
	}
	configPath, err := uri.Parse(entry.ConfigURIPath)
	if err != nil {
		return nil, fmt.Errorf("legacy workspace entry: %w", err)
	}
	return RecentWorkspace{
		Workspace: workspace.ConfigIdentifier{ID: entry.ID, ConfigPath: configPath},
		Label:     label,
	}, nil
}

// labelAt returns the label at index i of a parallel label array, or ""
// when the index is out of range or the slot is null.
func labelAt(labels []*string, i int) string {
	if i < 0 || i >= len(labels) || labels[i] == nil {
		return ""
	}
	return *labels[i]
}

// ToStoreData serializes the history in the current schema. Folder
// entries are told apart from workspace entries by which field the
// in-memory value carries; legacy fields are never written.
func ToStoreData(ro RecentlyOpened) ([]byte, error) {
	entries := make([]storedEntry, 0, len(ro.Workspaces)+len(ro.Files))
	for _, e := range ro.Workspaces {
		switch v := e.(type) {
		case RecentWorkspace:
			entries = append(entries, storedEntry{
				Workspace: &storedWorkspaceIdentifier{
					ID:         v.Workspace.ID,
					ConfigPath: v.Workspace.ConfigPath.String(),
				},
				Label:           v.Label,
				RemoteAuthority: v.RemoteAuthority,
			})
		case RecentFolder:
			folderURI := v.FolderURI.String()
			entries = append(entries, storedEntry{
				FolderURI:       &folderURI,
				Label:           v.Label,
				RemoteAuthority: v.RemoteAuthority,
			})
		}
	}
	for _, f := range ro.Files {
		fileURI := f.FileURI.String()
		entries = append(entries, storedEntry{
			FileURI:         &fileURI,
			Label:           f.Label,
			RemoteAuthority: f.RemoteAuthority,
		})
	}

	data, err := json.MarshalIndent(struct {
		Entries []storedEntry `json:"entries"`
	}{Entries: entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding recently-opened history: %w", err)
	}
	return data, nil
}
