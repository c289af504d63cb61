package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		// Clear MULTIROOT_ROOT env var
		oldRoot := os.Getenv("MULTIROOT_ROOT")
		defer os.Setenv("MULTIROOT_ROOT", oldRoot)
		os.Unsetenv("MULTIROOT_ROOT")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root == "" {
			t.Error("Root should not be empty")
		}

		// Verify paths are constructed correctly
		if paths.UntitledWorkspaces != filepath.Join(paths.Root, "untitled") {
			t.Errorf("UntitledWorkspaces path incorrect: got %s", paths.UntitledWorkspaces)
		}
		if paths.Recents != filepath.Join(paths.Root, "recents.json") {
			t.Errorf("Recents path incorrect: got %s", paths.Recents)
		}
		if paths.Config != filepath.Join(paths.Root, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}

		// Verify root ends with .multiroot
		if filepath.Base(paths.Root) != ".multiroot" {
			t.Errorf("Root should end with .multiroot, got: %s", paths.Root)
		}
	})

	t.Run("respects MULTIROOT_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/multiroot/path"

		oldRoot := os.Getenv("MULTIROOT_ROOT")
		defer os.Setenv("MULTIROOT_ROOT", oldRoot)

		os.Setenv("MULTIROOT_ROOT", customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}

		// Verify other paths use the custom root
		if paths.UntitledWorkspaces != filepath.Join(customRoot, "untitled") {
			t.Errorf("UntitledWorkspaces should be under custom root, got: %s", paths.UntitledWorkspaces)
		}
		if paths.Recents != filepath.Join(customRoot, "recents.json") {
			t.Errorf("Recents should be under custom root, got: %s", paths.Recents)
		}
	})
}

func TestPaths_EnsureDirectories(t *testing.T) {
	t.Run("creates all necessary directories", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "config-test-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(tmpDir)

		paths := &Paths{
			Root:               filepath.Join(tmpDir, "multiroot"),
			UntitledWorkspaces: filepath.Join(tmpDir, "multiroot", "untitled"),
			Recents:            filepath.Join(tmpDir, "multiroot", "recents.json"),
			Config:             filepath.Join(tmpDir, "multiroot", "config.yaml"),
		}

		err = paths.EnsureDirectories()
		if err != nil {
			t.Fatalf("EnsureDirectories failed: %v", err)
		}

		// Verify directories exist
		dirs := []string{paths.Root, paths.UntitledWorkspaces}
		for _, dir := range dirs {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				t.Errorf("Directory %s was not created", dir)
			}
		}
	})

	t.Run("succeeds if directories already exist", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "config-test-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(tmpDir)

		paths := &Paths{
			Root:               filepath.Join(tmpDir, "multiroot"),
			UntitledWorkspaces: filepath.Join(tmpDir, "multiroot", "untitled"),
			Recents:            filepath.Join(tmpDir, "multiroot", "recents.json"),
			Config:             filepath.Join(tmpDir, "multiroot", "config.yaml"),
		}

		// Create directories first
		if err := os.MkdirAll(paths.UntitledWorkspaces, 0755); err != nil {
			t.Fatalf("failed to pre-create directories: %v", err)
		}

		// Should not fail
		err = paths.EnsureDirectories()
		if err != nil {
			t.Errorf("EnsureDirectories should succeed with existing dirs: %v", err)
		}
	})

	t.Run("creates nested directories", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "config-test-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(tmpDir)

		// Use deeply nested paths
		deepRoot := filepath.Join(tmpDir, "a", "b", "c", "multiroot")
		paths := &Paths{
			Root:               deepRoot,
			UntitledWorkspaces: filepath.Join(deepRoot, "untitled"),
			Recents:            filepath.Join(deepRoot, "recents.json"),
			Config:             filepath.Join(deepRoot, "config.yaml"),
		}

		err = paths.EnsureDirectories()
		if err != nil {
			t.Fatalf("EnsureDirectories failed for nested path: %v", err)
		}

		// Verify nested directories exist
		if _, err := os.Stat(deepRoot); os.IsNotExist(err) {
			t.Error("Nested root directory was not created")
		}
	})
}
