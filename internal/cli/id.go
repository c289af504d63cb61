package cli

import (
	"github.com/spf13/cobra"

	"github.com/multiroot-dev/multiroot/internal/workspace"
)

// idResult is the JSON-facing form of a computed identifier.
type idResult struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Location string `json:"location"`
}

// idCmd computes the stable identifier for a workspace file or folder.
var idCmd = &cobra.Command{
	Use:   "id <workspace-file-or-folder>",
	Short: "Compute the stable identifier of a workspace or folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		location, err := e.location(args[0])
		if err != nil {
			return err
		}

		var result idResult
		if isWorkspaceFile(args[0]) {
			id := workspace.NewConfigIdentifier(location, e.os)
			result = idResult{ID: id.ID, Kind: "workspace", Location: id.ConfigPath.String()}
		} else {
			id := workspace.NewFolderIdentifier(location, e.os)
			result = idResult{ID: id.ID, Kind: "folder", Location: id.FolderURI.String()}
		}

		if jsonOutput {
			return outputJSON(result)
		}
		PrintLabelValue("ID", result.ID)
		PrintLabelValue("Kind", result.Kind)
		PrintLabelValue("Location", result.Location)
		return nil
	},
}
