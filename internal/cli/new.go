package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multiroot-dev/multiroot/internal/recents"
	"github.com/multiroot-dev/multiroot/internal/uri"
	"github.com/multiroot-dev/multiroot/internal/workspace"
	"github.com/multiroot-dev/multiroot/internal/wsfile"
)

// newCmd creates an untitled workspace file from a set of folders.
var newCmd = &cobra.Command{
	Use:   "new [folder...]",
	Short: "Create an untitled workspace from the given folders",
	Long: `Create a workspace configuration file in the untitled workspaces home
containing the given folders, and record it in the recently-opened
history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.paths.EnsureDirectories(); err != nil {
			return err
		}

		configPath := workspace.NewUntitledConfigPath(uri.FromFilePath(e.paths.UntitledWorkspaces, e.os))
		targetDir := e.ops.Dirname(configPath)
		useSlashes := !e.os.BackslashPaths()

		stored := make([]wsfile.StoredFolder, 0, len(args))
		for _, arg := range args {
			location, err := e.location(arg)
			if err != nil {
				return err
			}
			stored = append(stored, wsfile.StoredFolderFor(location, true, "", targetDir, useSlashes, e.ops, e.os))
		}

		content, err := json.MarshalIndent(struct {
			Folders []wsfile.StoredFolder `json:"folders"`
		}{Folders: stored}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode workspace: %w", err)
		}
		content = append(content, '\n')

		configFile := configPath.FilePath(e.os)
		if err := e.fs.AtomicWrite(configFile, content, 0644); err != nil {
			return err
		}

		id := workspace.NewConfigIdentifier(configPath, e.os)
		if err := e.history().Add([]recents.Entry{recents.RecentWorkspace{Workspace: id}}, nil); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(idResult{ID: id.ID, Kind: "workspace", Location: configPath.String()})
		}
		PrintSuccess(fmt.Sprintf("workspace created at %s", configFile))
		PrintLabelValue("ID", id.ID)
		return nil
	},
}
