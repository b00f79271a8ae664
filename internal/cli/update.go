package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
	"github.com/Clawdbot7-epcnum/CarryVault/internal/store"
)

// NewUpdateCommand creates the update command and its per-collection
// subcommands. Only flags that are explicitly set are changed; other
// fields keep their stored values.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update fields of an existing record",
	}

	cmd.AddCommand(newUpdateFirearmCommand(rootOpts))
	cmd.AddCommand(newUpdateMaintenanceCommand(rootOpts))
	cmd.AddCommand(newUpdateTrainingCommand(rootOpts))
	cmd.AddCommand(newUpdatePermitCommand(rootOpts))

	return cmd
}

// parseRecordID parses a positional id argument.
func parseRecordID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, fmt.Sprintf("invalid record id %q", arg), err)
	}
	return id, nil
}

func newUpdateFirearmCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &firearmFlags{}

	cmd := &cobra.Command{
		Use:           "firearm <id>",
		Short:         "Update a firearm",
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

			current, found := findFirearm(sess.Snapshot().Firearms, id)
			if !found {
				return domainError(formatter, fmt.Errorf("firearm %d: %w", id, store.ErrNotFound))
			}
			opts.applyChanged(cmd, &current)

			updated, err := sess.UpdateFirearm(cmdContext(cmd), id, current)
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(updated)
			}
			fmt.Fprintf(formatter.Writer, "Updated firearm %d: %s\n", updated.ID, updated.MakeModel)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func newUpdateMaintenanceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &maintenanceFlags{}

	cmd := &cobra.Command{
		Use:           "maintenance <id>",
		Short:         "Update a maintenance event",
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

			current, found := findMaintenance(sess.Snapshot().Maintenance, id)
			if !found {
				return domainError(formatter, fmt.Errorf("maintenance event %d: %w", id, store.ErrNotFound))
			}
			opts.applyChanged(cmd, &current)

			updated, err := sess.UpdateMaintenanceEvent(cmdContext(cmd), id, current)
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(updated)
			}
			fmt.Fprintf(formatter.Writer, "Updated maintenance event %d: %s\n", updated.ID, updated.Type)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func newUpdateTrainingCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &trainingFlags{}

	cmd := &cobra.Command{
		Use:           "training <id>",
		Short:         "Update a training session",
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

			current, found := findTraining(sess.Snapshot().Training, id)
			if !found {
				return domainError(formatter, fmt.Errorf("training event %d: %w", id, store.ErrNotFound))
			}
			opts.applyChanged(cmd, &current)

			updated, err := sess.UpdateTrainingEvent(cmdContext(cmd), id, current)
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(updated)
			}
			fmt.Fprintf(formatter.Writer, "Updated training event %d: %s\n", updated.ID, updated.Type)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func newUpdatePermitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &permitFlags{}

	cmd := &cobra.Command{
		Use:           "permit <id>",
		Short:         "Update a permit",
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

			current, found := findPermit(sess.Snapshot().Permits, id)
			if !found {
				return domainError(formatter, fmt.Errorf("permit %d: %w", id, store.ErrNotFound))
			}
			opts.applyChanged(cmd, &current)

			updated, err := sess.UpdatePermit(cmdContext(cmd), id, current)
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(updated)
			}
			fmt.Fprintf(formatter.Writer, "Updated permit %d: %s\n", updated.ID, updated.Type)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func findFirearm(list []model.Firearm, id int64) (model.Firearm, bool) {
	for _, f := range list {
		if f.ID == id {
			return f, true
		}
	}
	return model.Firearm{}, false
}

func findMaintenance(list []model.MaintenanceEvent, id int64) (model.MaintenanceEvent, bool) {
	for _, m := range list {
		if m.ID == id {
			return m, true
		}
	}
	return model.MaintenanceEvent{}, false
}

func findTraining(list []model.TrainingEvent, id int64) (model.TrainingEvent, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return model.TrainingEvent{}, false
}

func findPermit(list []model.Permit, id int64) (model.Permit, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return model.Permit{}, false
}
