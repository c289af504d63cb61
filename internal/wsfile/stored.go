// Package wsfile reads, resolves, and rewrites workspace configuration
// files: JSON-with-comments documents whose folders array lists the roots
// of a multi-root workspace as relative paths, absolute paths, or full
// location strings.
package wsfile

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/multiroot-dev/multiroot/internal/jsonedit"
)

// Extension is the file extension of workspace configuration files.
const Extension = ".workspace"

// ErrInvalidWorkspace indicates a structurally invalid workspace
// configuration: unparseable text or a missing/non-array folders field.
var ErrInvalidWorkspace = errors.New("invalid workspace configuration")

// FolderKind discriminates the two stored folder shapes. The kind is
// decided once when the entry is decoded; downstream code never
// re-inspects raw keys.
type FolderKind int

const (
	// FolderInvalid marks an entry carrying neither path nor uri.
	FolderInvalid FolderKind = iota

	// FolderPath is a folder stored as a relative or absolute
	// filesystem-style path.
	FolderPath

	// FolderURI is a folder stored as a full location string.
	FolderURI
)

// StoredFolder is the on-disk representation of one workspace folder.
// Exactly one of Path and URI is meaningful, selected by Kind.
type StoredFolder struct {
	Kind FolderKind
	Path string
	URI  string
	Name string

	// raw holds the original document bytes of a FolderInvalid entry so
	// a rewrite can re-emit it unchanged instead of failing on it.
	raw string
}

// storedFolderJSON mirrors the wire shape for both directions.
type storedFolderJSON struct {
	Path *string `json:"path,omitempty"`
	URI  *string `json:"uri,omitempty"`
	Name string  `json:"name,omitempty"`
}

// UnmarshalJSON decodes a stored folder, discriminating on key presence
// with path taking priority over uri. An entry with neither key decodes
// to FolderInvalid rather than failing, so one bad entry cannot abort
// decoding of the surrounding array.
func (f *StoredFolder) UnmarshalJSON(data []byte) error {
	var wire storedFolderJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*f = StoredFolder{Name: wire.Name}
	switch {
	case wire.Path != nil:
		f.Kind = FolderPath
		f.Path = *wire.Path
	case wire.URI != nil:
		f.Kind = FolderURI
		f.URI = *wire.URI
	default:
		f.Kind = FolderInvalid
		f.raw = string(data)
	}
	return nil
}

// MarshalJSON encodes the stored folder with only the field its kind
// selects. A FolderInvalid entry carried over from a decode re-emits its
// original bytes.
func (f StoredFolder) MarshalJSON() ([]byte, error) {
	wire := storedFolderJSON{Name: f.Name}
	switch f.Kind {
	case FolderPath:
		wire.Path = &f.Path
	case FolderURI:
		wire.URI = &f.URI
	default:
		if f.raw != "" {
			return []byte(f.raw), nil
		}
		return nil, fmt.Errorf("cannot encode invalid stored folder")
	}
	return json.Marshal(wire)
}

// StoredWorkspace is the transient decoded form of a workspace
// configuration file. It exists only between a parse and the conversion
// to resolved folders or a rewrite.
type StoredWorkspace struct {
	Folders         []StoredFolder
	RemoteAuthority string
	Transient       bool
}

// Parse decodes a workspace configuration document, tolerating comments
// and trailing commas. It fails with ErrInvalidWorkspace when the text is
// not parseable or lacks an array-valued folders field.
func Parse(raw []byte) (*StoredWorkspace, error) {
	var wire struct {
		Folders         *[]StoredFolder `json:"folders"`
		RemoteAuthority string          `json:"remoteAuthority"`
		Transient       bool            `json:"transient"`
	}
	if err := jsonedit.Parse(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkspace, err)
	}
	if wire.Folders == nil {
		return nil, fmt.Errorf("%w: missing folders array", ErrInvalidWorkspace)
	}
	return &StoredWorkspace{
		Folders:         *wire.Folders,
		RemoteAuthority: wire.RemoteAuthority,
		Transient:       wire.Transient,
	}, nil
}
