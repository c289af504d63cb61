package wsfile

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("decodes folders with comments", func(t *testing.T) {
		raw := []byte(`{
  // roots
  "folders": [
    { "path": "src", "name": "Source" },
    { "uri": "vscode-remote://wsl/home/user" },
  ],
  "remoteAuthority": "wsl",
  "transient": true
}`)
		sw, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(sw.Folders) != 2 {
			t.Fatalf("expected 2 folders, got %d", len(sw.Folders))
		}
		if sw.Folders[0].Kind != FolderPath || sw.Folders[0].Path != "src" || sw.Folders[0].Name != "Source" {
			t.Errorf("unexpected first folder: %+v", sw.Folders[0])
		}
		if sw.Folders[1].Kind != FolderURI || sw.Folders[1].URI != "vscode-remote://wsl/home/user" {
			t.Errorf("unexpected second folder: %+v", sw.Folders[1])
		}
		if sw.RemoteAuthority != "wsl" {
			t.Errorf("RemoteAuthority = %q, want %q", sw.RemoteAuthority, "wsl")
		}
		if !sw.Transient {
			t.Error("Transient should be true")
		}
	})

	t.Run("empty folders array is valid", func(t *testing.T) {
		sw, err := Parse([]byte(`{"folders": []}`))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(sw.Folders) != 0 {
			t.Errorf("expected no folders, got %d", len(sw.Folders))
		}
	})

	t.Run("missing folders field", func(t *testing.T) {
		_, err := Parse([]byte(`{"settings": {}}`))
		if !errors.Is(err, ErrInvalidWorkspace) {
			t.Errorf("expected ErrInvalidWorkspace, got %v", err)
		}
	})

	t.Run("non-array folders field", func(t *testing.T) {
		_, err := Parse([]byte(`{"folders": "nope"}`))
		if !errors.Is(err, ErrInvalidWorkspace) {
			t.Errorf("expected ErrInvalidWorkspace, got %v", err)
		}
	})

	t.Run("unparseable text", func(t *testing.T) {
		_, err := Parse([]byte(`{"folders": [`))
		if !errors.Is(err, ErrInvalidWorkspace) {
			t.Errorf("expected ErrInvalidWorkspace, got %v", err)
		}
	})
}

func TestStoredFolder_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want StoredFolder
	}{
		{
			name: "path entry",
			data: `{"path": "src"}`,
			want: StoredFolder{Kind: FolderPath, Path: "src"},
		},
		{
			name: "uri entry",
			data: `{"uri": "file:///ws/src"}`,
			want: StoredFolder{Kind: FolderURI, URI: "file:///ws/src"},
		},
		{
			name: "path wins over uri",
			data: `{"path": "src", "uri": "file:///elsewhere"}`,
			want: StoredFolder{Kind: FolderPath, Path: "src"},
		},
		{
			name: "empty path is still a path entry",
			data: `{"path": ""}`,
			want: StoredFolder{Kind: FolderPath, Path: ""},
		},
		{
			name: "neither key decodes as invalid keeping its bytes",
			data: `{"name": "orphan"}`,
			want: StoredFolder{Kind: FolderInvalid, Name: "orphan", raw: `{"name": "orphan"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StoredFolder
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("invalid entry does not abort the array", func(t *testing.T) {
		var folders []StoredFolder
		data := `[{"path": "a"}, {"name": "bad"}, {"uri": "file:///b"}]`
		if err := json.Unmarshal([]byte(data), &folders); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if len(folders) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(folders))
		}
		if folders[1].Kind != FolderInvalid {
			t.Errorf("middle entry should be invalid, got %+v", folders[1])
		}
	})
}

func TestStoredFolder_MarshalJSON(t *testing.T) {
	t.Run("path entry omits uri", func(t *testing.T) {
		data, err := json.Marshal(StoredFolder{Kind: FolderPath, Path: "src", Name: "Source"})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		want := `{"path":"src","name":"Source"}`
		if string(data) != want {
			t.Errorf("got %s, want %s", data, want)
		}
	})

	t.Run("uri entry omits path", func(t *testing.T) {
		data, err := json.Marshal(StoredFolder{Kind: FolderURI, URI: "file:///ws"})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		want := `{"uri":"file:///ws"}`
		if string(data) != want {
			t.Errorf("got %s, want %s", data, want)
		}
	})

	t.Run("decoded invalid entry re-emits its original bytes", func(t *testing.T) {
		var f StoredFolder
		if err := json.Unmarshal([]byte(`{"name":"orphan"}`), &f); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		data, err := json.Marshal(f)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(data) != `{"name":"orphan"}` {
			t.Errorf("got %s, want original bytes", data)
		}
	})

	t.Run("constructed invalid entry cannot encode", func(t *testing.T) {
		if _, err := json.Marshal(StoredFolder{Kind: FolderInvalid}); err == nil {
			t.Error("expected error encoding invalid folder")
		}
	})
}
