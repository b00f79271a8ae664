package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <backup-file>",
		Short: "Restore the dataset from a backup file",
		Long: `Replace the entire dataset with the contents of a backup document
produced by "carryvault export backup". Record ids are preserved, so
maintenance and training references stay intact. The audit log is not
replaced.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			sess, _, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.ImportBackup(cmdContext(cmd), args[0]); err != nil {
				return domainError(formatter, err)
			}

			dash := sess.Dashboard()
			if formatter.Format == "json" {
				return formatter.JSON(dash)
			}
			fmt.Fprintf(formatter.Writer, "Imported %s: %d firearms, %d maintenance, %d training\n",
				args[0], dash.Firearms, dash.Maintenance, dash.Training)
			return nil
		},
	}
}
