package wsfile

import (
	"log/slog"
	"strings"

	"github.com/multiroot-dev/multiroot/internal/platform"
	"github.com/multiroot-dev/multiroot/internal/uri"
	"github.com/multiroot-dev/multiroot/internal/workspace"
)

// StoredFolderFor converts an absolute folder location into the form to
// persist in a workspace file whose directory is targetDir.
//
// A folder on a different scheme than the target can only be stored as an
// absolute location string. Otherwise a relative path is preferred unless
// forceAbsolute is set; the empty relative path (folder == target
// directory) is stored as ".". When no relative form exists either, file
// folders are stored as native absolute paths (drive letter normalized
// and slashes per useSlashes under the Windows convention) and non-file
// folders as their raw path, provided their authority matches the
// target's; on an authority mismatch the absolute location string is the
// fallback. The stored path is never the empty string.
func StoredFolderFor(folderURI uri.URI, forceAbsolute bool, name string, targetDir uri.URI, useSlashes bool, ops *uri.Ops, os platform.OS) StoredFolder {
	if !strings.EqualFold(folderURI.Scheme, targetDir.Scheme) {
		return StoredFolder{Kind: FolderURI, URI: folderURI.String(), Name: name}
	}

	if !forceAbsolute {
		if rel, ok := ops.RelativePath(targetDir, folderURI); ok {
			if rel == "" {
				rel = "."
			}
			if os == platform.Windows && !useSlashes {
				rel = strings.ReplaceAll(rel, "/", `\`)
			}
			return StoredFolder{Kind: FolderPath, Path: rel, Name: name}
		}
	}

	if strings.EqualFold(folderURI.Scheme, "file") {
		fsPath := folderURI.FilePath(os)
		if os == platform.Windows {
			fsPath = uri.NormalizeDriveLetter(fsPath)
			if useSlashes {
				fsPath = uri.ToSlashes(fsPath)
			}
		}
		return StoredFolder{Kind: FolderPath, Path: fsPath, Name: name}
	}

	if !uri.IsEqualAuthority(folderURI.Authority, targetDir.Authority) {
		return StoredFolder{Kind: FolderURI, URI: folderURI.String(), Name: name}
	}
	return StoredFolder{Kind: FolderPath, Path: folderURI.Path, Name: name}
}

// ToFolders resolves stored folder entries against the directory of the
// configuration file at configLocation into the live folder list.
//
// Path entries resolve relative to the config file's directory; location
// entries parse directly and are forced onto an absolute path. An entry
// with an unparseable location, or with neither path nor uri, is dropped
// with a warning; the remaining entries still resolve. Duplicate
// locations (by comparison key) keep the first occurrence, and indices
// are assigned contiguously after deduplication. A missing display name
// defaults to the location's basename or authority.
func ToFolders(stored []StoredFolder, configLocation uri.URI, ops *uri.Ops, log *slog.Logger) []*workspace.Folder {
	dir := ops.Dirname(configLocation)
	seen := make(map[string]bool, len(stored))
	folders := []*workspace.Folder{}
	for _, sf := range stored {
		var location uri.URI
		switch sf.Kind {
		case FolderPath:
			location = ops.ResolvePath(dir, sf.Path)
		case FolderURI:
			parsed, err := uri.Parse(sf.URI)
			if err != nil {
				log.Warn("skipping workspace folder with invalid location", "uri", sf.URI, "error", err)
				continue
			}
			if !strings.HasPrefix(parsed.Path, "/") {
				parsed.Path = "/" + parsed.Path
			}
			location = parsed
		default:
			log.Warn("skipping workspace folder with neither path nor uri")
			continue
		}

		key := ops.ComparisonKey(location)
		if seen[key] {
			continue
		}
		seen[key] = true

		name := sf.Name
		if name == "" {
			name = ops.BasenameOrAuthority(location)
		}
		folders = append(folders, &workspace.Folder{
			URI:   location,
			Name:  name,
			Index: len(folders),
		})
	}
	return folders
}
