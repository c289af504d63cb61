// Package uri provides the location value type used throughout multiroot
// and the extended operations on it: directory math, relative path
// computation, and normalized comparison keys honoring per-platform
// filename casing rules.
//
// A URI is a plain value of scheme, authority, and absolute path. Folder
// locations, workspace config locations, and recent entries are all URIs;
// native filesystem paths only appear at the conversion boundary
// (FromFilePath / FilePath).
package uri

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/multiroot-dev/multiroot/internal/platform"
)

// URI is a parsed resource location. Path is always slash-separated, even
// for Windows file locations (where it carries a leading slash before the
// drive letter, e.g. "/C:/projects").
type URI struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// Parse parses a location string. The string must carry a scheme;
// authority and path may be empty.
func Parse(raw string) (URI, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return URI{}, fmt.Errorf("invalid uri %q: %w", raw, err)
	}
	if u.Scheme == "" {
		return URI{}, fmt.Errorf("invalid uri %q: missing scheme", raw)
	}
	return URI{
		Scheme:    u.Scheme,
		Authority: u.Host,
		Path:      u.Path,
		Query:     u.RawQuery,
		Fragment:  u.Fragment,
	}, nil
}

// FromFilePath converts a native filesystem path into a file-scheme URI.
// Backslash separators are converted under the Windows convention, a
// drive-letter path gains its leading slash, and a UNC path's host
// becomes the authority.
func FromFilePath(fsPath string, os platform.OS) URI {
	p := fsPath
	if os.BackslashPaths() {
		p = strings.ReplaceAll(p, `\`, "/")
		if strings.HasPrefix(p, "//") {
			rest := p[2:]
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				return URI{Scheme: "file", Authority: rest[:i], Path: rest[i:]}
			}
			return URI{Scheme: "file", Authority: rest, Path: "/"}
		}
	}
	if hasDriveLetter(p, 0) {
		p = "/" + p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return URI{Scheme: "file", Path: p}
}

// String renders the URI without percent-encoding, the form persisted
// inside workspace files and recent-history entries.
func (u URI) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(u.Authority)
	if u.Path != "" && !strings.HasPrefix(u.Path, "/") {
		b.WriteString("/")
	}
	b.WriteString(u.Path)
	if u.Query != "" {
		b.WriteString("?")
		b.WriteString(u.Query)
	}
	if u.Fragment != "" {
		b.WriteString("#")
		b.WriteString(u.Fragment)
	}
	return b.String()
}

// IsZero reports whether the URI is the zero value.
func (u URI) IsZero() bool {
	return u.Scheme == "" && u.Authority == "" && u.Path == ""
}

// WithPath returns a copy of the URI with the given path and without
// query or fragment.
func (u URI) WithPath(p string) URI {
	return URI{Scheme: u.Scheme, Authority: u.Authority, Path: p}
}

// FilePath converts a file-scheme URI into a native filesystem path for
// the given OS convention. A non-empty authority renders as a UNC host,
// the leading slash before a drive letter is dropped, and separators are
// flipped under the Windows convention.
func (u URI) FilePath(os platform.OS) string {
	p := u.Path
	switch {
	case u.Authority != "":
		p = "//" + u.Authority + p
	case len(p) >= 3 && p[0] == '/' && hasDriveLetter(p, 1):
		p = p[1:]
	}
	if os.BackslashPaths() {
		p = strings.ReplaceAll(p, "/", `\`)
	}
	return p
}

// hasDriveLetter reports whether p carries a Windows drive designator
// ("X:") at offset i.
func hasDriveLetter(p string, i int) bool {
	if len(p) < i+2 || p[i+1] != ':' {
		return false
	}
	c := p[i]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// NormalizeDriveLetter upper-cases the drive designator of a native
// Windows path, leaving every other character untouched.
func NormalizeDriveLetter(fsPath string) string {
	if hasDriveLetter(fsPath, 0) && 'a' <= fsPath[0] && fsPath[0] <= 'z' {
		return strings.ToUpper(fsPath[:1]) + fsPath[1:]
	}
	return fsPath
}

// ToSlashes converts backslash separators to forward slashes.
func ToSlashes(fsPath string) string {
	return strings.ReplaceAll(fsPath, `\`, "/")
}
