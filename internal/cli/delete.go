package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/app"
)

// NewDeleteCommand creates the delete command and its per-collection
// subcommands.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a record by id",
	}

	cmd.AddCommand(deleteCommand(rootOpts, "firearm", "Delete a firearm",
		func(ctx context.Context, sess *app.Session, id int64) error {
			return sess.DeleteFirearm(ctx, id)
		}))
	cmd.AddCommand(deleteCommand(rootOpts, "maintenance", "Delete a maintenance event",
		func(ctx context.Context, sess *app.Session, id int64) error {
			return sess.DeleteMaintenanceEvent(ctx, id)
		}))
	cmd.AddCommand(deleteCommand(rootOpts, "training", "Delete a training session",
		func(ctx context.Context, sess *app.Session, id int64) error {
			return sess.DeleteTrainingEvent(ctx, id)
		}))
	cmd.AddCommand(deleteCommand(rootOpts, "permit", "Delete a permit",
		func(ctx context.Context, sess *app.Session, id int64) error {
			return sess.DeletePermit(ctx, id)
		}))

	return cmd
}

// deleteCommand builds a delete subcommand around a facade call. Deleting
// a firearm leaves maintenance and training references to it in place.
func deleteCommand(rootOpts *RootOptions, entity, short string, del func(context.Context, *app.Session, int64) error) *cobra.Command {
	return &cobra.Command{
		Use:           entity + " <id>",
		Short:         short,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			sess, _, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := del(cmdContext(cmd), sess, id); err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(map[string]any{"deleted": entity, "id": id})
			}
			fmt.Fprintf(formatter.Writer, "Deleted %s %d\n", entity, id)
			return nil
		},
	}
}
