package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "dashboard",
		Short:         "Show record counts and the expiring-permit count",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			sess, _, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			dash := sess.Dashboard()
			if formatter.Format == "json" {
				return formatter.JSON(dash)
			}

			fmt.Fprintf(formatter.Writer, "Firearms:     %d\n", dash.Firearms)
			fmt.Fprintf(formatter.Writer, "Maintenance:  %d\n", dash.Maintenance)
			fmt.Fprintf(formatter.Writer, "Training:     %d\n", dash.Training)
			fmt.Fprintf(formatter.Writer, "Alerts:       %d\n", dash.Alerts)
			if sess.Degraded() {
				fmt.Fprintln(formatter.Writer, "\nWarning: storage unavailable, changes will not persist.")
			}
			return nil
		},
	}
}
