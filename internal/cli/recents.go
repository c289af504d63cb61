package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multiroot-dev/multiroot/internal/recents"
	"github.com/multiroot-dev/multiroot/internal/uri"
	"github.com/multiroot-dev/multiroot/internal/workspace"
)

// recentInfo is the JSON-facing form of one history entry.
type recentInfo struct {
	Kind            string `json:"kind"`
	ID              string `json:"id,omitempty"`
	Location        string `json:"location"`
	Label           string `json:"label,omitempty"`
	RemoteAuthority string `json:"remoteAuthority,omitempty"`
}

// recentsCmd is the parent command for recently-opened history
// operations.
var recentsCmd = &cobra.Command{
	Use:   "recents",
	Short: "Manage the recently-opened history",
	Long: `Inspect and maintain the recently-opened workspaces, folders, and files.
The history file is migrated from older schema generations on read.`,
}

var recentsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List recently opened workspaces, folders, and files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		ro, err := e.history().Load()
		if err != nil {
			return err
		}

		infos := make([]recentInfo, 0, len(ro.Workspaces)+len(ro.Files))
		for _, entry := range ro.Workspaces {
			switch v := entry.(type) {
			case recents.RecentWorkspace:
				infos = append(infos, recentInfo{
					Kind:            "workspace",
					ID:              v.Workspace.ID,
					Location:        v.Workspace.ConfigPath.String(),
					Label:           v.Label,
					RemoteAuthority: v.RemoteAuthority,
				})
			case recents.RecentFolder:
				infos = append(infos, recentInfo{
					Kind:            "folder",
					Location:        v.FolderURI.String(),
					Label:           v.Label,
					RemoteAuthority: v.RemoteAuthority,
				})
			}
		}
		for _, f := range ro.Files {
			infos = append(infos, recentInfo{
				Kind:            "file",
				Location:        f.FileURI.String(),
				Label:           f.Label,
				RemoteAuthority: f.RemoteAuthority,
			})
		}

		if jsonOutput {
			return outputJSON(infos)
		}

		if len(infos) == 0 {
			PrintSection("Recently Opened")
			PrintEmptyState("No recent entries")
			return nil
		}

		PrintSection("Recently Opened")
		rows := make([][]string, 0, len(infos))
		for _, info := range infos {
			rows = append(rows, []string{info.Kind, info.Label, info.Location})
		}
		PrintTable([]string{"Kind", "Label", "Location"}, rows)
		return nil
	},
}

var (
	recentsAddLabel  string
	recentsAddAsFile bool
)

var recentsAddCmd = &cobra.Command{
	Use:   "add <path-or-uri>...",
	Short: "Add entries to the recently-opened history",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		var workspaces []recents.Entry
		var files []recents.RecentFile
		for _, arg := range args {
			location, err := e.location(arg)
			if err != nil {
				return err
			}
			switch {
			case recentsAddAsFile:
				files = append(files, recents.RecentFile{FileURI: location, Label: recentsAddLabel})
			case isWorkspaceFile(arg):
				workspaces = append(workspaces, recents.RecentWorkspace{
					Workspace: workspace.NewConfigIdentifier(location, e.os),
					Label:     recentsAddLabel,
				})
			default:
				workspaces = append(workspaces, recents.RecentFolder{FolderURI: location, Label: recentsAddLabel})
			}
		}

		if err := e.history().Add(workspaces, files); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("added %d entries", len(args)))
		return nil
	},
}

var recentsRmCmd = &cobra.Command{
	Use:   "rm <path-or-uri>...",
	Short: "Remove entries from the recently-opened history",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		locations := make([]uri.URI, 0, len(args))
		for _, arg := range args {
			location, err := e.location(arg)
			if err != nil {
				return err
			}
			locations = append(locations, location)
		}

		if err := e.history().Remove(locations...); err != nil {
			return err
		}
		PrintSuccess("entries removed")
		return nil
	},
}

var recentsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recently-opened history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.history().Clear(); err != nil {
			return err
		}
		PrintSuccess("history cleared")
		return nil
	},
}

var recentsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rewrite the history file in the current schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.history().Migrate(); err != nil {
			return err
		}
		PrintSuccess("history migrated to current schema")
		return nil
	},
}

func init() {
	recentsAddCmd.Flags().StringVar(&recentsAddLabel, "label", "", "Display label for the added entries")
	recentsAddCmd.Flags().BoolVar(&recentsAddAsFile, "file", false, "Add the entries as recent files")

	recentsCmd.AddCommand(recentsLsCmd)
	recentsCmd.AddCommand(recentsAddCmd)
	recentsCmd.AddCommand(recentsRmCmd)
	recentsCmd.AddCommand(recentsClearCmd)
	recentsCmd.AddCommand(recentsMigrateCmd)
}
