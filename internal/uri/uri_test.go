package uri

import (
	"testing"

	"github.com/multiroot-dev/multiroot/internal/platform"
)

func mustParse(t *testing.T, raw string) URI {
	t.Helper()
	u, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", raw, err)
	}
	return u
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      URI
		wantError bool
	}{
		{
			name: "file uri",
			raw:  "file:///home/user/project",
			want: URI{Scheme: "file", Path: "/home/user/project"},
		},
		{
			name: "remote uri with authority",
			raw:  "vscode-remote://wsl/home/user",
			want: URI{Scheme: "vscode-remote", Authority: "wsl", Path: "/home/user"},
		},
		{
			name: "uri with query",
			raw:  "custom://host/path?key=value",
			want: URI{Scheme: "custom", Authority: "host", Path: "/path", Query: "key=value"},
		},
		{
			name:      "missing scheme",
			raw:       "/home/user/project",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if (err != nil) != tt.wantError {
				t.Fatalf("Parse(%q) error = %v, wantError %v", tt.raw, err, tt.wantError)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFromFilePath(t *testing.T) {
	tests := []struct {
		name     string
		fsPath   string
		os       platform.OS
		wantPath string
	}{
		{
			name:     "posix path",
			fsPath:   "/home/user/project",
			os:       platform.Linux,
			wantPath: "/home/user/project",
		},
		{
			name:     "windows backslash path",
			fsPath:   `C:\projects\app`,
			os:       platform.Windows,
			wantPath: "/C:/projects/app",
		},
		{
			name:     "windows forward slash path",
			fsPath:   "C:/projects/app",
			os:       platform.Windows,
			wantPath: "/C:/projects/app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFilePath(tt.fsPath, tt.os)
			if got.Scheme != "file" {
				t.Errorf("expected file scheme, got %q", got.Scheme)
			}
			if got.Path != tt.wantPath {
				t.Errorf("FromFilePath(%q) path = %q, want %q", tt.fsPath, got.Path, tt.wantPath)
			}
		})
	}

	t.Run("windows unc path host becomes the authority", func(t *testing.T) {
		got := FromFilePath(`\\server\share\dir`, platform.Windows)
		want := URI{Scheme: "file", Authority: "server", Path: "/share/dir"}
		if got != want {
			t.Errorf("FromFilePath = %+v, want %+v", got, want)
		}
	})

	t.Run("windows unc host without a share", func(t *testing.T) {
		got := FromFilePath(`\\server`, platform.Windows)
		want := URI{Scheme: "file", Authority: "server", Path: "/"}
		if got != want {
			t.Errorf("FromFilePath = %+v, want %+v", got, want)
		}
	})
}

func TestURI_FilePath(t *testing.T) {
	tests := []struct {
		name string
		uri  URI
		os   platform.OS
		want string
	}{
		{
			name: "posix path",
			uri:  URI{Scheme: "file", Path: "/home/user/project"},
			os:   platform.Linux,
			want: "/home/user/project",
		},
		{
			name: "windows drive path",
			uri:  URI{Scheme: "file", Path: "/C:/projects/app"},
			os:   platform.Windows,
			want: `C:\projects\app`,
		},
		{
			name: "windows drive path rendered for posix",
			uri:  URI{Scheme: "file", Path: "/C:/projects/app"},
			os:   platform.Linux,
			want: "C:/projects/app",
		},
		{
			name: "unc authority renders as host prefix",
			uri:  URI{Scheme: "file", Authority: "server", Path: "/share/dir"},
			os:   platform.Windows,
			want: `\\server\share\dir`,
		},
		{
			name: "unc authority on posix keeps forward slashes",
			uri:  URI{Scheme: "file", Authority: "server", Path: "/share/dir"},
			os:   platform.Linux,
			want: "//server/share/dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.uri.FilePath(tt.os)
			if got != tt.want {
				t.Errorf("FilePath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURI_String(t *testing.T) {
	tests := []struct {
		name string
		uri  URI
		want string
	}{
		{
			name: "file uri",
			uri:  URI{Scheme: "file", Path: "/home/user"},
			want: "file:///home/user",
		},
		{
			name: "remote uri",
			uri:  URI{Scheme: "vscode-remote", Authority: "ssh-host", Path: "/srv/app"},
			want: "vscode-remote://ssh-host/srv/app",
		},
		{
			name: "query and fragment",
			uri:  URI{Scheme: "custom", Authority: "h", Path: "/p", Query: "a=1", Fragment: "frag"},
			want: "custom://h/p?a=1#frag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.uri.String(); got != tt.want {
				t.Errorf("String = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeDriveLetter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`c:\projects`, `C:\projects`},
		{`C:\projects`, `C:\projects`},
		{"c:/projects", "C:/projects"},
		{"/home/user", "/home/user"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDriveLetter(tt.in); got != tt.want {
			t.Errorf("NormalizeDriveLetter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
