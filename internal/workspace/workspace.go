// Package workspace models a multi-root workspace: an ordered,
// deduplicated set of folder roots, optionally backed by a configuration
// file, with containment lookup from a resource to the folder that holds
// it.
package workspace

import (
	"strings"

	"github.com/multiroot-dev/multiroot/internal/uri"
)

// Folder is one root directory participating in a workspace. Index is the
// zero-based position assigned when the folder set was resolved. A Folder
// belongs to exactly one Workspace; only its display name may change after
// construction.
type Folder struct {
	URI   uri.URI
	Name  string
	Index int
}

// ToResource joins a workspace-relative path onto the folder location.
// It is a pure path join; the result is not checked for existence.
func (f *Folder) ToResource(relative string) uri.URI {
	return uri.JoinPath(f.URI, relative)
}

// Workspace is the in-memory folder set. The folder list and the derived
// containment index always change together through SetFolders; callers
// that mutate from multiple goroutines must serialize those calls.
type Workspace struct {
	id               string
	folders          []*Folder
	transient        bool
	configuration    *uri.URI
	ignorePathCasing func(uri.URI) bool

	// index maps folder comparison keys to folders for ancestor lookup.
	index map[string]*Folder
	ops   *uri.Ops
}

// New creates a workspace. configuration is nil for folder or empty
// workspaces. ignorePathCasing is the casing policy used to build the
// containment index; nil means case-sensitive.
func New(id string, folders []*Folder, transient bool, configuration *uri.URI, ignorePathCasing func(uri.URI) bool) *Workspace {
	w := &Workspace{
		id:               id,
		transient:        transient,
		configuration:    configuration,
		ignorePathCasing: ignorePathCasing,
		ops:              uri.NewOps(ignorePathCasing),
	}
	w.SetFolders(folders)
	return w
}

// ID returns the stable workspace identifier.
func (w *Workspace) ID() string { return w.id }

// Folders returns the ordered folder list.
func (w *Workspace) Folders() []*Folder { return w.folders }

// Transient reports whether the workspace must not survive a reload.
func (w *Workspace) Transient() bool { return w.transient }

// Configuration returns the location of the backing configuration file,
// or nil for a folder or empty workspace.
func (w *Workspace) Configuration() *uri.URI { return w.configuration }

// SetFolders replaces the folder list and rebuilds the containment index.
// The index is fully built before either field is swapped in, so a lookup
// never observes folders and index out of sync.
func (w *Workspace) SetFolders(folders []*Folder) {
	index := make(map[string]*Folder, len(folders))
	for _, f := range folders {
		index[w.ops.ComparisonKey(f.URI)] = f
	}
	w.folders = folders
	w.index = index
}

// GetFolder returns the folder whose location is the longest ancestor of
// resource, or nil when resource is nil or no folder contains it.
func (w *Workspace) GetFolder(resource *uri.URI) *Folder {
	if resource == nil {
		return nil
	}
	key := w.ops.ComparisonKey(*resource)

	sep := strings.Index(key, "://")
	if sep < 0 {
		return nil
	}
	rootSlash := strings.IndexByte(key[sep+3:], '/')
	if rootSlash < 0 {
		return nil
	}
	rootSlash += sep + 3

	// Walk from the resource up through its ancestors, most specific
	// first. The root directory keeps its trailing slash in key form.
	for cur := key; ; {
		if f, ok := w.index[cur]; ok {
			return f
		}
		j := strings.LastIndexByte(cur, '/')
		if j < rootSlash || len(cur) == rootSlash+1 {
			return nil
		}
		if j == rootSlash {
			cur = cur[:j+1]
		} else {
			cur = cur[:j]
		}
	}
}

// Update replaces this workspace's identity and contents with other's,
// preserving the receiver so observers holding the pointer keep working.
func (w *Workspace) Update(other *Workspace) {
	w.id = other.id
	w.transient = other.transient
	w.configuration = other.configuration
	w.ignorePathCasing = other.ignorePathCasing
	w.ops = uri.NewOps(other.ignorePathCasing)
	w.SetFolders(other.folders)
}
