package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multiroot-dev/multiroot/internal/wsfile"
)

// foldersCmd lists the resolved folder roots of a workspace file.
var foldersCmd = &cobra.Command{
	Use:   "folders <workspace-file>",
	Short: "List the resolved folder roots of a workspace file",
	Long: `Resolve every folder entry of a workspace configuration file to its
absolute location and display the deduplicated, ordered folder list.`,
	Args: cobra.ExactArgs(1),
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

		if jsonOutput {
			infos := make([]folderInfo, 0, len(folders))
			for _, f := range folders {
				infos = append(infos, folderInfo{URI: f.URI.String(), Name: f.Name, Index: f.Index})
			}
			return outputJSON(infos)
		}

		if len(folders) == 0 {
			PrintSection("Folders")
			PrintEmptyState("No folders in workspace")
			return nil
		}

		PrintSection("Folders")
		rows := make([][]string, 0, len(folders))
		for _, f := range folders {
			rows = append(rows, []string{
				fmt.Sprintf("%d", f.Index),
				f.Name,
				f.URI.String(),
			})
		}
		PrintTable([]string{"Index", "Name", "Location"}, rows)
		return nil
	},
}
