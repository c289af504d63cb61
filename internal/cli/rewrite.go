package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multiroot-dev/multiroot/internal/wsfile"
)

var (
	rewriteTo           string
	rewriteFromUntitled bool
	rewriteWrite        bool
)

// rewriteCmd rewrites a workspace file's folder list for a new save
// location.
var rewriteCmd = &cobra.Command{
	Use:   "rewrite <workspace-file>",
	Short: "Rewrite a workspace file for a new save location",
	Long: `Recompute the folder entries of a workspace configuration file so they
stay valid when the file is saved at a new location. Comments, formatting,
and unrelated properties are preserved.

By default the rewritten content is printed; --write saves it to the
target location instead.`,
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
		current, err := e.location(args[0])
		if err != nil {
			return err
		}
		target, err := e.location(rewriteTo)
		if err != nil {
			return err
		}

		out, err := wsfile.RewriteForNewLocation(raw, current, rewriteFromUntitled, target, e.ops, e.os, e.formatting(), e.log)
		if err != nil {
			return err
		}

		if !rewriteWrite {
			fmt.Print(string(out))
			return nil
		}

		if target.Scheme != "file" {
			return fmt.Errorf("--write requires a local target, got %s", target.String())
		}
		targetPath := target.FilePath(e.os)
		if err := e.fs.AtomicWrite(targetPath, out, 0644); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("workspace written to %s", targetPath))
		return nil
	},
}

func init() {
	rewriteCmd.Flags().StringVar(&rewriteTo, "to", "", "Target location for the workspace file (required)")
	rewriteCmd.Flags().BoolVar(&rewriteFromUntitled, "from-untitled", false, "Treat the source as an untitled workspace (prefer relative folder paths)")
	rewriteCmd.Flags().BoolVar(&rewriteWrite, "write", false, "Write the rewritten file to the target location")
	_ = rewriteCmd.MarkFlagRequired("to")
}
