package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSettingsCommand creates the settings command with show and set
// subcommands.
func NewSettingsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
	}

	cmd.AddCommand(newSettingsShowCommand(rootOpts))
	cmd.AddCommand(newSettingsSetCommand(rootOpts))

	return cmd
}

func newSettingsShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Show current settings",
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

			settings := sess.Settings()
			if formatter.Format == "json" {
				return formatter.JSON(settings)
			}

			state := settings.UserState
			if state == "" {
				state = "(not set)"
			}
			fmt.Fprintf(formatter.Writer, "State:              %s\n", state)
			fmt.Fprintf(formatter.Writer, "Permit alerts:      %t\n", settings.Notifications.PermitAlerts)
			fmt.Fprintf(formatter.Writer, "Maintenance alerts: %t\n", settings.Notifications.MaintenanceAlerts)
			fmt.Fprintf(formatter.Writer, "Training alerts:    %t\n", settings.Notifications.TrainingAlerts)
			return nil
		},
	}
}

func newSettingsSetCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		state             string
		permitAlerts      bool
		maintenanceAlerts bool
		trainingAlerts    bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long: `Change user settings. Only flags that are explicitly passed change;
everything else keeps its current value.

Example:
  carryvault settings set --state TX --permit-alerts=false`,
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

			settings := sess.Settings()
			flags := cmd.Flags()
			if flags.Changed("state") {
				settings.UserState = state
			}
			if flags.Changed("permit-alerts") {
				settings.Notifications.PermitAlerts = permitAlerts
			}
			if flags.Changed("maintenance-alerts") {
				settings.Notifications.MaintenanceAlerts = maintenanceAlerts
			}
			if flags.Changed("training-alerts") {
				settings.Notifications.TrainingAlerts = trainingAlerts
			}

			if err := sess.SaveSettings(cmdContext(cmd), settings); err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(sess.Settings())
			}
			fmt.Fprintln(formatter.Writer, "Settings updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "state or jurisdiction of residence")
	cmd.Flags().BoolVar(&permitAlerts, "permit-alerts", true, "enable permit expiry alerts")
	cmd.Flags().BoolVar(&maintenanceAlerts, "maintenance-alerts", true, "enable maintenance reminders")
	cmd.Flags().BoolVar(&trainingAlerts, "training-alerts", true, "enable training reminders")

	return cmd
}
