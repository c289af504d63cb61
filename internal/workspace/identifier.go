package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/multiroot-dev/multiroot/internal/platform"
	"github.com/multiroot-dev/multiroot/internal/uri"
)

// Identifier identifies an opened workspace in one of its three forms:
// a workspace backed by a config file, a single opened folder, or an
// empty window. The set of forms is closed.
type Identifier interface {
	// WorkspaceID returns the stable identifier string.
	WorkspaceID() string

	isIdentifier()
}

// ConfigIdentifier identifies a workspace backed by a configuration file.
type ConfigIdentifier struct {
	ID         string
	ConfigPath uri.URI
}

// FolderIdentifier identifies a single opened folder.
type FolderIdentifier struct {
	ID        string
	FolderURI uri.URI
}

// EmptyIdentifier identifies a workspace with no folders.
type EmptyIdentifier struct {
	ID string
}

func (i ConfigIdentifier) WorkspaceID() string { return i.ID }
func (i ConfigIdentifier) isIdentifier()       {}

func (i FolderIdentifier) WorkspaceID() string { return i.ID }
func (i FolderIdentifier) isIdentifier()       {}

func (i EmptyIdentifier) WorkspaceID() string { return i.ID }
func (i EmptyIdentifier) isIdentifier()       {}

// NewConfigIdentifier derives the identifier for a workspace backed by
// the given configuration file.
func NewConfigIdentifier(configPath uri.URI, os platform.OS) ConfigIdentifier {
	return ConfigIdentifier{ID: locationID(configPath, os), ConfigPath: configPath}
}

// NewFolderIdentifier derives the identifier for a single opened folder.
func NewFolderIdentifier(folderURI uri.URI, os platform.OS) FolderIdentifier {
	return FolderIdentifier{ID: locationID(folderURI, os), FolderURI: folderURI}
}

// locationID computes a stable ID from a location: the hex SHA-256 of its
// string form, lower-cased first for file locations on platforms with
// case-insensitive paths so that casing drift does not split identity.
func locationID(location uri.URI, os platform.OS) string {
	s := location.String()
	if location.Scheme == "file" && os.CaseInsensitivePaths() {
		s = strings.ToLower(s)
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// storedIdentifier is the serialized form of an Identifier. Which
// optional field is present decides the variant; configPath wins over
// uri when both occur.
type storedIdentifier struct {
	ID         string  `json:"id"`
	ConfigPath *string `json:"configPath,omitempty"`
	URI        *string `json:"uri,omitempty"`
}

// ReviveIdentifier turns a serialized identifier back into a live one.
func ReviveIdentifier(data []byte) (Identifier, error) {
	var stored storedIdentifier
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decoding workspace identifier: %w", err)
	}
	if stored.ID == "" {
		return nil, fmt.Errorf("workspace identifier has no id")
	}
	switch {
	case stored.ConfigPath != nil:
		configPath, err := uri.Parse(*stored.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("workspace identifier %s: %w", stored.ID, err)
		}
		return ConfigIdentifier{ID: stored.ID, ConfigPath: configPath}, nil
	case stored.URI != nil:
		folderURI, err := uri.Parse(*stored.URI)
		if err != nil {
			return nil, fmt.Errorf("workspace identifier %s: %w", stored.ID, err)
		}
		return FolderIdentifier{ID: stored.ID, FolderURI: folderURI}, nil
	default:
		return EmptyIdentifier{ID: stored.ID}, nil
	}
}
