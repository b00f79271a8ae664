package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/app"
)

// NewExportCommand creates the export command with one subcommand per
// document type.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON export document",
		Long: `Write a JSON export document into the export directory.

Three document types are supported:
  backup        full dataset, restorable with "carryvault import"
  inventory     firearms only, without internal bookkeeping fields
  theft-report  law-enforcement template with fill-in owner fields`,
	}

	cmd.AddCommand(exportCommand(rootOpts, "backup", "Export a full backup",
		(*app.Session).ExportBackup))
	cmd.AddCommand(exportCommand(rootOpts, "inventory", "Export the inventory report",
		(*app.Session).ExportInventory))
	cmd.AddCommand(exportCommand(rootOpts, "theft-report", "Export the theft-report template",
		(*app.Session).ExportTheftReport))

	return cmd
}

// exportCommand builds an export subcommand around a facade export method.
// The document lands in --out, the config's export directory by default.
func exportCommand(rootOpts *RootOptions, use, short string, run func(*app.Session, string) (string, error)) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			sess, cfg, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			dir := outDir
			if dir == "" {
				dir = cfg.ExportDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return WrapExitError(ExitCommandError, "failed to create export directory", err)
			}

			path, err := run(sess, dir)
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(map[string]string{"path": path})
			}
			fmt.Fprintf(formatter.Writer, "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (defaults to the config's export_dir)")
	return cmd
}
