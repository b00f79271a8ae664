package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

// firearmFlags holds the per-field flags shared by add and update.
type firearmFlags struct {
	MakeModel    string
	Serial       string
	Caliber      string
	Type         string
	PurchaseDate string
	Price        float64
	Notes        string
}

func (o *firearmFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.MakeModel, "make-model", "", "manufacturer and model (required)")
	cmd.Flags().StringVar(&o.Serial, "serial", "", "serial number")
	cmd.Flags().StringVar(&o.Caliber, "caliber", "", "caliber or gauge")
	cmd.Flags().StringVar(&o.Type, "type", "", "firearm type (pistol, rifle, shotgun, ...)")
	cmd.Flags().StringVar(&o.PurchaseDate, "purchase-date", "", "purchase date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&o.Price, "price", 0, "purchase price")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "free-form notes")
}

func (o *firearmFlags) record() model.Firearm {
	return model.Firearm{
		MakeModel:    o.MakeModel,
		Serial:       o.Serial,
		Caliber:      o.Caliber,
		Type:         o.Type,
		PurchaseDate: o.PurchaseDate,
		Price:        o.Price,
		Notes:        o.Notes,
	}
}

// applyChanged copies only the flags the user actually set, so update does
// not clobber fields that were not mentioned.
func (o *firearmFlags) applyChanged(cmd *cobra.Command, f *model.Firearm) {
	flags := cmd.Flags()
	if flags.Changed("make-model") {
		f.MakeModel = o.MakeModel
	}
	if flags.Changed("serial") {
		f.Serial = o.Serial
	}
	if flags.Changed("caliber") {
		f.Caliber = o.Caliber
	}
	if flags.Changed("type") {
		f.Type = o.Type
	}
	if flags.Changed("purchase-date") {
		f.PurchaseDate = o.PurchaseDate
	}
	if flags.Changed("price") {
		f.Price = o.Price
	}
	if flags.Changed("notes") {
		f.Notes = o.Notes
	}
}

type maintenanceFlags struct {
	Type             string
	Date             string
	FirearmID        int64
	FirearmMakeModel string
	Notes            string
}

func (o *maintenanceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Type, "type", "", "maintenance type (required)")
	cmd.Flags().StringVar(&o.Date, "date", "", "date performed (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&o.FirearmID, "firearm-id", 0, "id of the firearm worked on")
	cmd.Flags().StringVar(&o.FirearmMakeModel, "firearm", "", "display name of the firearm worked on")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "free-form notes")
}

func (o *maintenanceFlags) record(cmd *cobra.Command) model.MaintenanceEvent {
	m := model.MaintenanceEvent{
		Type:             o.Type,
		Date:             o.Date,
		FirearmMakeModel: o.FirearmMakeModel,
		Notes:            o.Notes,
	}
	if cmd.Flags().Changed("firearm-id") {
		id := o.FirearmID
		m.FirearmID = &id
	}
	return m
}

func (o *maintenanceFlags) applyChanged(cmd *cobra.Command, m *model.MaintenanceEvent) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		m.Type = o.Type
	}
	if flags.Changed("date") {
		m.Date = o.Date
	}
	if flags.Changed("firearm-id") {
		id := o.FirearmID
		m.FirearmID = &id
	}
	if flags.Changed("firearm") {
		m.FirearmMakeModel = o.FirearmMakeModel
	}
	if flags.Changed("notes") {
		m.Notes = o.Notes
	}
}

type trainingFlags struct {
	Type      string
	Date      string
	Duration  float64
	FirearmID int64
	Score     string
	Notes     string
}

func (o *trainingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Type, "type", "", "training type (required)")
	cmd.Flags().StringVar(&o.Date, "date", "", "session date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&o.Duration, "duration", 0, "duration in hours (required, positive)")
	cmd.Flags().Int64Var(&o.FirearmID, "firearm-id", 0, "id of the firearm used")
	cmd.Flags().StringVar(&o.Score, "score", "", "score or result")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "free-form notes")
}

func (o *trainingFlags) record(cmd *cobra.Command) model.TrainingEvent {
	t := model.TrainingEvent{
		Type:     o.Type,
		Date:     o.Date,
		Duration: o.Duration,
		Score:    o.Score,
		Notes:    o.Notes,
	}
	if cmd.Flags().Changed("firearm-id") {
		id := o.FirearmID
		t.FirearmID = &id
	}
	return t
}

func (o *trainingFlags) applyChanged(cmd *cobra.Command, t *model.TrainingEvent) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		t.Type = o.Type
	}
	if flags.Changed("date") {
		t.Date = o.Date
	}
	if flags.Changed("duration") {
		t.Duration = o.Duration
	}
	if flags.Changed("firearm-id") {
		id := o.FirearmID
		t.FirearmID = &id
	}
	if flags.Changed("score") {
		t.Score = o.Score
	}
	if flags.Changed("notes") {
		t.Notes = o.Notes
	}
}

type permitFlags struct {
	Type           string
	State          string
	IssueDate      string
	ExpirationDate string
	PermitNumber   string
	Notes          string
}

func (o *permitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Type, "type", "", "permit type (required)")
	cmd.Flags().StringVar(&o.State, "state", "", "issuing state or jurisdiction")
	cmd.Flags().StringVar(&o.IssueDate, "issue-date", "", "issue date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&o.ExpirationDate, "expiration", "", "expiration date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&o.PermitNumber, "number", "", "permit number")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "free-form notes")
}

func (o *permitFlags) record() model.Permit {
	return model.Permit{
		Type:           o.Type,
		State:          o.State,
		IssueDate:      o.IssueDate,
		ExpirationDate: o.ExpirationDate,
		PermitNumber:   o.PermitNumber,
		Notes:          o.Notes,
	}
}

func (o *permitFlags) applyChanged(cmd *cobra.Command, p *model.Permit) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		p.Type = o.Type
	}
	if flags.Changed("state") {
		p.State = o.State
	}
	if flags.Changed("issue-date") {
		p.IssueDate = o.IssueDate
	}
	if flags.Changed("expiration") {
		p.ExpirationDate = o.ExpirationDate
	}
	if flags.Changed("number") {
		p.PermitNumber = o.PermitNumber
	}
	if flags.Changed("notes") {
		p.Notes = o.Notes
	}
}

// NewAddCommand creates the add command and its per-collection subcommands.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record to a collection",
	}

	cmd.AddCommand(newAddFirearmCommand(rootOpts))
	cmd.AddCommand(newAddMaintenanceCommand(rootOpts))
	cmd.AddCommand(newAddTrainingCommand(rootOpts))
	cmd.AddCommand(newAddPermitCommand(rootOpts))

	return cmd
}

func newAddFirearmCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &firearmFlags{}

	cmd := &cobra.Command{
		Use:   "firearm",
		Short: "Add a firearm",
		Long: `Add a firearm to the inventory.

Example:
  carryvault add firearm --make-model "Glock 19" --serial BKW1234 --caliber 9mm`,
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

			added, err := sess.AddFirearm(cmdContext(cmd), opts.record())
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(added)
			}
			fmt.Fprintf(formatter.Writer, "Added firearm %d: %s\n", added.ID, added.MakeModel)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func newAddMaintenanceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &maintenanceFlags{}

	cmd := &cobra.Command{
		Use:           "maintenance",
		Short:         "Add a maintenance event",
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

			added, err := sess.AddMaintenanceEvent(cmdContext(cmd), opts.record(cmd))
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(added)
			}
			fmt.Fprintf(formatter.Writer, "Added maintenance event %d: %s\n", added.ID, added.Type)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func newAddTrainingCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &trainingFlags{}

	cmd := &cobra.Command{
		Use:           "training",
		Short:         "Add a training session",
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

			added, err := sess.AddTrainingEvent(cmdContext(cmd), opts.record(cmd))
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(added)
			}
			fmt.Fprintf(formatter.Writer, "Added training event %d: %s (%.1fh)\n", added.ID, added.Type, added.Duration)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func newAddPermitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &permitFlags{}

	cmd := &cobra.Command{
		Use:   "permit",
		Short: "Add a permit",
		Long: `Add a carry permit or similar regulatory document.

Permits with an expiration date feed the alerts and dashboard commands.

Example:
  carryvault add permit --type "Concealed Carry" --state TX --expiration 2027-04-01`,
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

			added, err := sess.AddPermit(cmdContext(cmd), opts.record())
			if err != nil {
				return domainError(formatter, err)
			}
			if formatter.Format == "json" {
				return formatter.JSON(added)
			}
			fmt.Fprintf(formatter.Writer, "Added permit %d: %s\n", added.ID, added.Type)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
