package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/multiroot-dev/multiroot/internal/config"
	"github.com/multiroot-dev/multiroot/internal/fsops"
	"github.com/multiroot-dev/multiroot/internal/history"
	"github.com/multiroot-dev/multiroot/internal/jsonedit"
	"github.com/multiroot-dev/multiroot/internal/platform"
	"github.com/multiroot-dev/multiroot/internal/uri"
	"github.com/multiroot-dev/multiroot/internal/workspace"
	"github.com/multiroot-dev/multiroot/internal/wsfile"
)

// env bundles the real implementations of every dependency the commands
// hand to the core packages.
type env struct {
	paths *config.Paths
	cfg   *config.Config
	fs    fsops.FS
	os    platform.OS
	ops   *uri.Ops
	log   *slog.Logger
}

// newEnv creates the environment with real implementations of all
// dependencies.
func newEnv() (*env, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, err
	}

	osConv := platform.Current()
	return &env{
		paths: paths,
		cfg:   cfg,
		fs:    fsops.NewRealFS(),
		os:    osConv,
		ops:   uri.DefaultOps(osConv),
		log:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}, nil
}

// history creates the recently-opened history service over the
// environment's recents file.
func (e *env) history() *history.Service {
	return history.NewService(e.fs, e.paths.Recents, e.os, e.ops, e.log, e.cfg.MaxRecentEntries)
}

// formatting returns the formatting options for rewritten workspace
// files from the tool configuration.
func (e *env) formatting() jsonedit.FormattingOptions {
	return jsonedit.FormattingOptions{
		InsertSpaces: e.cfg.InsertSpaces,
		TabSize:      e.cfg.TabSize,
		EOL:          e.cfg.EOL,
	}
}

// location converts a command argument into a URI: location strings pass
// through, everything else is treated as a filesystem path and made
// absolute.
func (e *env) location(arg string) (uri.URI, error) {
	if strings.Contains(arg, "://") {
		return uri.Parse(arg)
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return uri.URI{}, fmt.Errorf("failed to resolve path %q: %w", arg, err)
	}
	return uri.FromFilePath(abs, e.os), nil
}

// isWorkspaceFile reports whether the argument names a workspace
// configuration file rather than a folder.
func isWorkspaceFile(arg string) bool {
	return strings.HasSuffix(arg, wsfile.Extension) ||
		filepath.Base(arg) == workspace.UntitledConfigName
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatError formats an error for display.
func formatError(err error) string {
	initColors()
	return errorColor.Sprintf("Error: %v", err)
}
