package workspace

import (
	"github.com/google/uuid"

	"github.com/multiroot-dev/multiroot/internal/uri"
)

// UntitledConfigName is the file name used for untitled workspace
// configuration files, which live in per-workspace directories under the
// untitled workspaces home.
const UntitledConfigName = "workspace.json"

// NewUntitledConfigPath returns a fresh configuration location for an
// untitled workspace under the given home directory.
func NewUntitledConfigPath(untitledHome uri.URI) uri.URI {
	return uri.JoinPath(untitledHome, uuid.NewString(), UntitledConfigName)
}

// IsUntitled reports whether configPath identifies an untitled workspace,
// i.e. one whose configuration file lives under the untitled workspaces
// home.
func IsUntitled(configPath, untitledHome uri.URI, ops *uri.Ops) bool {
	return ops.IsEqualOrParent(untitledHome, configPath)
}
