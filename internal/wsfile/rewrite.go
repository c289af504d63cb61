package wsfile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/multiroot-dev/multiroot/internal/jsonedit"
	"github.com/multiroot-dev/multiroot/internal/platform"
	"github.com/multiroot-dev/multiroot/internal/uri"
)

// RewriteForNewLocation rewrites the folder list of a workspace
// configuration so it stays valid when the file is saved at
// targetLocation instead of currentLocation. Only the folders property
// (and a now-redundant remoteAuthority) are touched; all other content,
// comments, and formatting survive byte for byte.
//
// Each folder's absolute location is recomputed from the current config
// directory, then re-encoded against the target directory. A workspace
// saved out of the untitled state prefers relative paths for every
// folder; otherwise each entry keeps the form it already had
// (path-relative, path-absolute, or location string). When the stored
// remoteAuthority equals the authority implied by the target location it
// is removed as redundant.
//
// A parse failure aborts the whole rewrite before any edit is computed.
func RewriteForNewLocation(raw []byte, currentLocation uri.URI, isFromUntitled bool, targetLocation uri.URI, ops *uri.Ops, os platform.OS, format jsonedit.FormattingOptions, log *slog.Logger) ([]byte, error) {
	sw, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	sourceDir := ops.Dirname(currentLocation)
	targetDir := ops.Dirname(targetLocation)
	useSlashes := useSlashesForStoredPaths(sw.Folders, os)

	rewritten := make([]StoredFolder, 0, len(sw.Folders))
	for _, sf := range sw.Folders {
		var folderURI uri.URI
		switch sf.Kind {
		case FolderPath:
			folderURI = ops.ResolvePath(sourceDir, sf.Path)
		case FolderURI:
			parsed, parseErr := uri.Parse(sf.URI)
			if parseErr != nil {
				// The location cannot be recomputed; carry the entry
				// through unchanged rather than dropping it from the
				// user's file.
				log.Warn("keeping workspace folder with invalid location as-is", "uri", sf.URI, "error", parseErr)
				rewritten = append(rewritten, sf)
				continue
			}
			if !strings.HasPrefix(parsed.Path, "/") {
				parsed.Path = "/" + parsed.Path
			}
			folderURI = parsed
		default:
			log.Warn("keeping workspace folder with neither path nor uri as-is")
			rewritten = append(rewritten, sf)
			continue
		}

		var absolute bool
		switch {
		case isFromUntitled:
			absolute = false
		case sf.Kind == FolderPath:
			absolute = isAbsoluteStoredPath(sf.Path)
		default:
			absolute = true
		}
		rewritten = append(rewritten, StoredFolderFor(folderURI, absolute, sf.Name, targetDir, useSlashes, ops, os))
	}

	text := string(raw)
	edits, err := jsonedit.SetProperty(text, "folders", rewritten, format)
	if err != nil {
		return nil, fmt.Errorf("rewriting folders: %w", err)
	}
	text, err = jsonedit.ApplyEdits(text, edits)
	if err != nil {
		return nil, fmt.Errorf("rewriting folders: %w", err)
	}

	if sw.RemoteAuthority != "" && sw.RemoteAuthority == impliedRemoteAuthority(targetLocation) {
		edits, err = jsonedit.RemoveProperty(text, "remoteAuthority")
		if err != nil {
			return nil, fmt.Errorf("removing remote authority: %w", err)
		}
		text, err = jsonedit.ApplyEdits(text, edits)
		if err != nil {
			return nil, fmt.Errorf("removing remote authority: %w", err)
		}
	}

	return []byte(text), nil
}

// useSlashesForStoredPaths decides the slash convention for rewritten
// paths: always forward slashes except on Windows, where backslashes are
// kept unless some existing stored path already uses forward slashes.
func useSlashesForStoredPaths(stored []StoredFolder, os platform.OS) bool {
	if os != platform.Windows {
		return true
	}
	for _, sf := range stored {
		if sf.Kind == FolderPath && strings.Contains(sf.Path, "/") {
			return true
		}
	}
	return false
}

// isAbsoluteStoredPath reports whether a stored path entry is absolute in
// either slash convention, including drive-letter paths.
func isAbsoluteStoredPath(p string) bool {
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`) {
		return true
	}
	return len(p) >= 2 && p[1] == ':' &&
		(('a' <= p[0] && p[0] <= 'z') || ('A' <= p[0] && p[0] <= 'Z'))
}

// impliedRemoteAuthority returns the remote authority a config location
// implies: its authority for any non-file scheme, none for local files.
func impliedRemoteAuthority(configLocation uri.URI) string {
	if strings.EqualFold(configLocation.Scheme, "file") {
		return ""
	}
	return configLocation.Authority
}
