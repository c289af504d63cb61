package wsfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/multiroot-dev/multiroot/internal/jsonedit"
	"github.com/multiroot-dev/multiroot/internal/platform"
	"github.com/multiroot-dev/multiroot/internal/uri"
)

var testFormat = jsonedit.FormattingOptions{InsertSpaces: true, TabSize: 2, EOL: "\n"}

func rewriteOn(t *testing.T, raw, current, target string, fromUntitled bool, os platform.OS) []byte {
	t.Helper()
	ops := uri.DefaultOps(os)
	cur, err := uri.Parse(current)
	if err != nil {
		t.Fatalf("bad current location: %v", err)
	}
	tgt, err := uri.Parse(target)
	if err != nil {
		t.Fatalf("bad target location: %v", err)
	}
	out, err := RewriteForNewLocation([]byte(raw), cur, fromUntitled, tgt, ops, os, testFormat, discardLogger())
	if err != nil {
		t.Fatalf("RewriteForNewLocation failed: %v", err)
	}
	return out
}

func parsedFolders(t *testing.T, out []byte) []StoredFolder {
	t.Helper()
	sw, err := Parse(out)
	if err != nil {
		t.Fatalf("rewritten document does not parse: %v\n%s", err, out)
	}
	return sw.Folders
}

func TestRewriteForNewLocation(t *testing.T) {
	t.Run("relative paths are recomputed for the new directory", func(t *testing.T) {
		raw := `{
  "folders": [
    { "path": "src" },
    { "path": ".." }
  ]
}`
		out := rewriteOn(t, raw, "file:///ws/app.workspace", "file:///ws/sub/app.workspace", false, platform.Linux)
		folders := parsedFolders(t, out)
		if len(folders) != 2 {
			t.Fatalf("expected 2 folders, got %d", len(folders))
		}
		if folders[0].Path != "../src" {
			t.Errorf("folder 0 path = %q, want %q", folders[0].Path, "../src")
		}
		if folders[1].Path != "../.." {
			t.Errorf("folder 1 path = %q, want %q", folders[1].Path, "../..")
		}
	})

	t.Run("absolute entries stay absolute", func(t *testing.T) {
		raw := `{"folders": [{ "path": "/opt/data" }]}`
		out := rewriteOn(t, raw, "file:///ws/app.workspace", "file:///opt/app.workspace", false, platform.Linux)
		folders := parsedFolders(t, out)
		if folders[0].Path != "/opt/data" {
			t.Errorf("path = %q, want %q", folders[0].Path, "/opt/data")
		}
	})

	t.Run("saving out of untitled prefers relative paths", func(t *testing.T) {
		raw := `{"folders": [{ "path": "/home/user/projects/app" }]}`
		out := rewriteOn(t, raw,
			"file:///home/user/.multiroot/untitled/abc/workspace.json",
			"file:///home/user/projects/app.workspace",
			true, platform.Linux)
		folders := parsedFolders(t, out)
		if folders[0].Path != "app" {
			t.Errorf("path = %q, want %q", folders[0].Path, "app")
		}
	})

	t.Run("folder matching the target directory becomes a dot", func(t *testing.T) {
		raw := `{"folders": [{ "path": "." }]}`
		out := rewriteOn(t, raw, "file:///ws/app.workspace", "file:///ws/app2.workspace", false, platform.Linux)
		folders := parsedFolders(t, out)
		if folders[0].Path != "." {
			t.Errorf("path = %q, want %q", folders[0].Path, ".")
		}
	})

	t.Run("comments and unrelated properties survive", func(t *testing.T) {
		raw := `{
  // workspace roots
  "folders": [
    { "path": "src" } /* main */
  ],
  "settings": { "editor.tabSize": 2 }
}`
		out := rewriteOn(t, raw, "file:///ws/app.workspace", "file:///ws/sub/app.workspace", false, platform.Linux)
		text := string(out)
		if !strings.Contains(text, "// workspace roots") {
			t.Error("line comment was lost")
		}
		if !strings.Contains(text, `"settings": { "editor.tabSize": 2 }`) {
			t.Error("unrelated property was reformatted")
		}
	})

	t.Run("names are preserved", func(t *testing.T) {
		raw := `{"folders": [{ "path": "src", "name": "Source" }]}`
		out := rewriteOn(t, raw, "file:///ws/app.workspace", "file:///ws/sub/app.workspace", false, platform.Linux)
		folders := parsedFolders(t, out)
		if folders[0].Name != "Source" {
			t.Errorf("name = %q, want %q", folders[0].Name, "Source")
		}
	})

	t.Run("invalid location entries are carried through unchanged", func(t *testing.T) {
		raw := `{"folders": [{ "uri": "::bad::" }, { "path": "src" }]}`
		out := rewriteOn(t, raw, "file:///ws/app.workspace", "file:///ws/sub/app.workspace", false, platform.Linux)
		folders := parsedFolders(t, out)
		if len(folders) != 2 {
			t.Fatalf("expected 2 folders, got %d", len(folders))
		}
		if folders[0].Kind != FolderURI || folders[0].URI != "::bad::" {
			t.Errorf("invalid entry not carried through: %+v", folders[0])
		}
		if folders[1].Path != "../src" {
			t.Errorf("valid entry not rewritten: %+v", folders[1])
		}
	})

	t.Run("entries with neither path nor uri are carried through unchanged", func(t *testing.T) {
		raw := `{"folders": [{ "name": "x" }, { "path": "src" }]}`
		out := rewriteOn(t, raw, "file:///ws/app.workspace", "file:///ws/sub/app.workspace", false, platform.Linux)
		folders := parsedFolders(t, out)
		if len(folders) != 2 {
			t.Fatalf("expected 2 folders, got %d", len(folders))
		}
		if folders[0].Kind != FolderInvalid || folders[0].Name != "x" {
			t.Errorf("entry without path or uri not carried through: %+v", folders[0])
		}
		if folders[1].Path != "../src" {
			t.Errorf("valid entry not rewritten: %+v", folders[1])
		}
	})

	t.Run("windows keeps backslash convention", func(t *testing.T) {
		raw := `{"folders": [{ "path": "src\\lib" }]}`
		out := rewriteOn(t, raw, "file:///C:/ws/app.workspace", "file:///C:/ws/sub/app.workspace", false, platform.Windows)
		folders := parsedFolders(t, out)
		if folders[0].Path != `..\src\lib` {
			t.Errorf("path = %q, want %q", folders[0].Path, `..\src\lib`)
		}
	})

	t.Run("windows switches to slashes when any stored path uses them", func(t *testing.T) {
		raw := `{"folders": [{ "path": "src/lib" }, { "path": "docs\\api" }]}`
		out := rewriteOn(t, raw, "file:///C:/ws/app.workspace", "file:///C:/ws/sub/app.workspace", false, platform.Windows)
		folders := parsedFolders(t, out)
		if folders[0].Path != "../src/lib" {
			t.Errorf("folder 0 path = %q, want %q", folders[0].Path, "../src/lib")
		}
		if folders[1].Path != "../docs/api" {
			t.Errorf("folder 1 path = %q, want %q", folders[1].Path, "../docs/api")
		}
	})

	t.Run("redundant remoteAuthority is removed", func(t *testing.T) {
		raw := `{
  "folders": [{ "uri": "vscode-remote://ssh-host/srv/app" }],
  "remoteAuthority": "ssh-host"
}`
		out := rewriteOn(t, raw,
			"vscode-remote://ssh-host/srv/app.workspace",
			"vscode-remote://ssh-host/srv/sub/app.workspace",
			false, platform.Linux)
		if strings.Contains(string(out), "remoteAuthority") {
			t.Errorf("redundant remoteAuthority not removed:\n%s", out)
		}
	})

	t.Run("remoteAuthority stays for a local target", func(t *testing.T) {
		raw := `{
  "folders": [{ "uri": "vscode-remote://ssh-host/srv/app" }],
  "remoteAuthority": "ssh-host"
}`
		out := rewriteOn(t, raw,
			"vscode-remote://ssh-host/srv/app.workspace",
			"file:///ws/app.workspace",
			false, platform.Linux)
		if !strings.Contains(string(out), `"remoteAuthority": "ssh-host"`) {
			t.Errorf("remoteAuthority should be kept:\n%s", out)
		}
	})

	t.Run("parse failure aborts the rewrite", func(t *testing.T) {
		ops := uri.DefaultOps(platform.Linux)
		cur, _ := uri.Parse("file:///ws/app.workspace")
		tgt, _ := uri.Parse("file:///ws/sub/app.workspace")
		_, err := RewriteForNewLocation([]byte(`{"folders": [`), cur, false, tgt, ops, platform.Linux, testFormat, discardLogger())
		if !errors.Is(err, ErrInvalidWorkspace) {
			t.Errorf("expected ErrInvalidWorkspace, got %v", err)
		}
	})
}
