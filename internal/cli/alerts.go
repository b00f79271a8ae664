package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/alerts"
)

// NewAlertsCommand creates the alerts command.
func NewAlertsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show permit expiry alerts",
		Long: `Show alerts for permits that are expired, expiring within 30 days
(high priority), or expiring within 90 days (medium priority).

The permit-alerts notification toggle silences this list; see
"carryvault settings set".`,
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

			list := sess.Alerts()
			if formatter.Format == "json" {
				return formatter.JSON(list)
			}

			if len(list) == 0 {
				fmt.Fprintln(formatter.Writer, "No permit alerts.")
				return nil
			}
			for _, a := range list {
				marker := "!"
				if a.Priority == alerts.PriorityHigh {
					marker = "!!"
				}
				fmt.Fprintf(formatter.Writer, "%-2s %s (permit %d)\n", marker, a.Message, a.PermitID)
			}
			return nil
		},
	}
}
