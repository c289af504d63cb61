package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multiroot-dev/multiroot/internal/wsfile"
)

// folderInfo is the JSON-facing summary of one resolved folder.
type folderInfo struct {
	URI   string `json:"uri"`
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// validateResult summarizes a validated workspace file.
type validateResult struct {
	Location        string       `json:"location"`
	Folders         []folderInfo `json:"folders"`
	RemoteAuthority string       `json:"remoteAuthority,omitempty"`
	Transient       bool         `json:"transient,omitempty"`
}

// validateCmd validates a workspace configuration file and reports its
// resolved folders.
var validateCmd = &cobra.Command{
	Use:   "validate <workspace-file>",
	Short: "Validate a workspace configuration file",
	Long:  `Parse a workspace configuration file and report its resolved folder roots.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		raw, err := e.fs.ReadFile(args[0])
		if err != nil {
			return err
		}
		stored, err := wsfile.Parse(raw)
		if err != nil {
			return err
		}

		location, err := e.location(args[0])
		if err != nil {
			return err
		}
		folders := wsfile.ToFolders(stored.Folders, location, e.ops, e.log)

		result := validateResult{
			Location:        location.String(),
			Folders:         make([]folderInfo, 0, len(folders)),
			RemoteAuthority: stored.RemoteAuthority,
			Transient:       stored.Transient,
		}
		for _, f := range folders {
			result.Folders = append(result.Folders, folderInfo{URI: f.URI.String(), Name: f.Name, Index: f.Index})
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess("workspace file is valid")
		PrintLabelValue("Location", result.Location)
		PrintLabelValue("Folders", fmt.Sprintf("%d", len(result.Folders)))
		if result.RemoteAuthority != "" {
			PrintLabelValue("Remote Authority", result.RemoteAuthority)
		}
		if result.Transient {
			PrintLabelValue("Transient", "true")
		}
		return nil
	},
}
