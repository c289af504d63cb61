package uri

import (
	"path"
	"strings"

	"github.com/multiroot-dev/multiroot/internal/platform"
)

// Ops bundles the URI operations that depend on a filename casing policy.
// The policy is injected per URI so that, for example, file locations can
// compare case-insensitively on Windows while remote locations stay
// case-sensitive.
type Ops struct {
	// IgnorePathCasing decides whether the path component of the given
	// URI compares case-insensitively.
	IgnorePathCasing func(URI) bool
}

// NewOps creates an Ops with the given casing policy. A nil policy means
// every path compares case-sensitively.
func NewOps(ignorePathCasing func(URI) bool) *Ops {
	if ignorePathCasing == nil {
		ignorePathCasing = func(URI) bool { return false }
	}
	return &Ops{IgnorePathCasing: ignorePathCasing}
}

// DefaultOps returns the standard policy for the given OS convention:
// file-scheme paths ignore casing on Windows and macOS, everything else
// is case-sensitive.
func DefaultOps(os platform.OS) *Ops {
	return NewOps(func(u URI) bool {
		return u.Scheme == "file" && os.CaseInsensitivePaths()
	})
}

// ComparisonKey returns the normalized string form of a URI used for
// equality checks and as a prefix-lookup key. Scheme and authority are
// lower-cased, the path is lower-cased when the casing policy says so,
// trailing slashes are trimmed, and the fragment is dropped.
func (o *Ops) ComparisonKey(u URI) string {
	p := u.Path
	if o.IgnorePathCasing(u) {
		p = strings.ToLower(p)
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	key := strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Authority) + p
	if u.Query != "" {
		key += "?" + u.Query
	}
	return key
}

// IsEqual reports whether two URIs identify the same resource under the
// casing policy.
func (o *Ops) IsEqual(a, b URI) bool {
	return o.ComparisonKey(a) == o.ComparisonKey(b)
}

// IsEqualOrParent reports whether parent equals child or is an ancestor
// directory of it.
func (o *Ops) IsEqualOrParent(parent, child URI) bool {
	pk := o.ComparisonKey(parent)
	ck := o.ComparisonKey(child)
	if pk == ck {
		return true
	}
	if !strings.HasSuffix(pk, "/") {
		pk += "/"
	}
	return strings.HasPrefix(ck, pk)
}

// IsEqualAuthority compares two authority components, which are always
// case-insensitive.
func IsEqualAuthority(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Dirname returns the parent directory of the URI, keeping scheme and
// authority and dropping query and fragment.
func (o *Ops) Dirname(u URI) URI {
	if u.Path == "" {
		return u.WithPath("")
	}
	return u.WithPath(path.Dir(u.Path))
}

// Basename returns the last path segment of the URI, or "" for a root or
// empty path.
func (o *Ops) Basename(u URI) string {
	b := path.Base(u.Path)
	if b == "/" || b == "." {
		return ""
	}
	return b
}

// BasenameOrAuthority returns the last path segment, falling back to the
// authority when the path has no segments (e.g. a remote root).
func (o *Ops) BasenameOrAuthority(u URI) string {
	if b := o.Basename(u); b != "" {
		return b
	}
	return u.Authority
}

// RelativePath computes the relative path from the directory base to
// target. It returns ok=false when no relative form exists: differing
// schemes or authorities, or Windows locations rooted on different
// drives. An empty path with ok=true means base and target are the same
// directory.
func (o *Ops) RelativePath(base, target URI) (string, bool) {
	if !strings.EqualFold(base.Scheme, target.Scheme) {
		return "", false
	}
	if !IsEqualAuthority(base.Authority, target.Authority) {
		return "", false
	}

	ignoreCase := o.IgnorePathCasing(base) || o.IgnorePathCasing(target)
	from := splitPath(base.Path)
	to := splitPath(target.Path)

	// Locations rooted on different drives have no relative form.
	if len(from) > 0 && len(to) > 0 &&
		hasDriveLetter(from[0], 0) && hasDriveLetter(to[0], 0) &&
		!strings.EqualFold(from[0], to[0]) {
		return "", false
	}

	common := 0
	for common < len(from) && common < len(to) {
		if !segmentsEqual(from[common], to[common], ignoreCase) {
			break
		}
		common++
	}

	var parts []string
	for i := common; i < len(from); i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, to[common:]...)
	return strings.Join(parts, "/"), true
}

// ResolvePath resolves a stored path against the directory base. Relative
// paths join onto base's path; absolute paths (leading slash or drive
// letter, either slash direction) replace it. Scheme and authority come
// from base.
func (o *Ops) ResolvePath(base URI, stored string) URI {
	p := ToSlashes(stored)
	switch {
	case hasDriveLetter(p, 0):
		p = "/" + p
	case strings.HasPrefix(p, "/"):
		// already absolute
	default:
		p = path.Join(base.Path, p)
	}
	return base.WithPath(path.Clean(p))
}

// JoinPath appends path fragments to the URI's path.
func JoinPath(u URI, fragments ...string) URI {
	parts := append([]string{u.Path}, fragments...)
	return u.WithPath(path.Join(parts...))
}

func splitPath(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func segmentsEqual(a, b string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}
