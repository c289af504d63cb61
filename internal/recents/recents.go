// Package recents converts the recently-opened history between its
// in-memory form and the persisted schema, including two retired schema
// generations that are still accepted on input. Every persisted entry is
// interpreted independently: one malformed entry is dropped with a
// warning and never takes the rest of the history with it.
package recents

import (
	"github.com/multiroot-dev/multiroot/internal/uri"
	"github.com/multiroot-dev/multiroot/internal/workspace"
)

// RecentWorkspace is a remembered workspace backed by a config file.
type RecentWorkspace struct {
	Workspace       workspace.ConfigIdentifier
	Label           string
	RemoteAuthority string
}

// RecentFolder is a remembered single opened folder.
type RecentFolder struct {
	FolderURI       uri.URI
	Label           string
	RemoteAuthority string
}

// RecentFile is a remembered single opened file.
type RecentFile struct {
	FileURI         uri.URI
	Label           string
	RemoteAuthority string
}

// Entry is a workspace-or-folder element of the recently opened list.
type Entry interface {
	isEntry()
}

func (RecentWorkspace) isEntry() {}
func (RecentFolder) isEntry()    {}

// RecentlyOpened is the in-memory recently-opened history. Workspaces
// holds RecentWorkspace and RecentFolder values in recency order; Files
// holds the recently opened single files.
type RecentlyOpened struct {
	Workspaces []Entry
	Files      []RecentFile
}

// Empty returns a RecentlyOpened with initialized, empty lists.
func Empty() RecentlyOpened {
	return RecentlyOpened{Workspaces: []Entry{}, Files: []RecentFile{}}
}
