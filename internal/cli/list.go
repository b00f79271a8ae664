package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/app"
)

// NewListCommand creates the list command and its per-collection
// subcommands.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records in a collection",
	}

	cmd.AddCommand(newListFirearmsCommand(rootOpts))
	cmd.AddCommand(newListMaintenanceCommand(rootOpts))
	cmd.AddCommand(newListTrainingCommand(rootOpts))
	cmd.AddCommand(newListPermitsCommand(rootOpts))
	cmd.AddCommand(newListAuditCommand(rootOpts))

	return cmd
}

// listCommand builds a list subcommand around a render callback. All list
// subcommands share the open-session / format-switch shape.
func listCommand(rootOpts *RootOptions, use, short string, render func(*OutputFormatter, *cobra.Command, *app.Session) error) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
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

			return render(formatter, cmd, sess)
		},
	}
}

func newListFirearmsCommand(rootOpts *RootOptions) *cobra.Command {
	return listCommand(rootOpts, "firearms", "List all firearms",
		func(formatter *OutputFormatter, cmd *cobra.Command, sess *app.Session) error {
			firearms := sess.Snapshot().Firearms
			if formatter.Format == "json" {
				return formatter.JSON(firearms)
			}

			if len(firearms) == 0 {
				fmt.Fprintln(formatter.Writer, "No firearms recorded.")
				return nil
			}
			w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tMAKE/MODEL\tSERIAL\tCALIBER\tTYPE")
			for _, f := range firearms {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", f.ID, f.MakeModel, f.Serial, f.Caliber, f.Type)
			}
			return w.Flush()
		})
}

func newListMaintenanceCommand(rootOpts *RootOptions) *cobra.Command {
	return listCommand(rootOpts, "maintenance", "List all maintenance events",
		func(formatter *OutputFormatter, cmd *cobra.Command, sess *app.Session) error {
			events := sess.Snapshot().Maintenance
			if formatter.Format == "json" {
				return formatter.JSON(events)
			}

			if len(events) == 0 {
				fmt.Fprintln(formatter.Writer, "No maintenance events recorded.")
				return nil
			}
			w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tDATE\tFIREARM")
			for _, m := range events {
				// Display source of truth is the denormalized make/model;
				// the id reference may dangle after a firearm delete.
				firearm := m.FirearmMakeModel
				if firearm == "" {
					firearm = "(general)"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.Type, m.Date, firearm)
			}
			return w.Flush()
		})
}

func newListTrainingCommand(rootOpts *RootOptions) *cobra.Command {
	return listCommand(rootOpts, "training", "List all training sessions",
		func(formatter *OutputFormatter, cmd *cobra.Command, sess *app.Session) error {
			events := sess.Snapshot().Training
			if formatter.Format == "json" {
				return formatter.JSON(events)
			}

			if len(events) == 0 {
				fmt.Fprintln(formatter.Writer, "No training sessions recorded.")
				return nil
			}
			w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tDATE\tHOURS\tSCORE")
			for _, t := range events {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%s\n", t.ID, t.Type, t.Date, t.Duration, t.Score)
			}
			return w.Flush()
		})
}

func newListPermitsCommand(rootOpts *RootOptions) *cobra.Command {
	return listCommand(rootOpts, "permits", "List all permits",
		func(formatter *OutputFormatter, cmd *cobra.Command, sess *app.Session) error {
			permits := sess.Snapshot().Permits
			if formatter.Format == "json" {
				return formatter.JSON(permits)
			}

			if len(permits) == 0 {
				fmt.Fprintln(formatter.Writer, "No permits recorded.")
				return nil
			}
			w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tSTATE\tNUMBER\tEXPIRES")
			for _, p := range permits {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Type, p.State, p.PermitNumber, p.ExpirationDate)
			}
			return w.Flush()
		})
}

func newListAuditCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := listCommand(rootOpts, "audit", "List the audit log, most recent first",
		func(formatter *OutputFormatter, cmd *cobra.Command, sess *app.Session) error {
			entries, err := sess.AuditLog(cmdContext(cmd), limit)
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(formatter.Writer, "Audit log is empty.")
				return nil
			}
			w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "AT\tENTITY\tACTION\tRECORD")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", e.At, e.Entity, e.Action, e.RecordID)
			}
			return w.Flush()
		})

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show (0 for all)")
	return cmd
}
