package cli

import (
	"context"
	"fmt"

	"timeline-lab/domain/event"
	"timeline-lab/infrastructure/storage"
	"timeline-lab/infrastructure/wire"

	"github.com/mama165/sdk-go/database"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// JournalOptions holds flags for the journal command.
type JournalOptions struct {
	*RootOptions
	DB   string
	Page int
}

// NewJournalCommand replays the deltas of a day, oldest first, from the
// journal the master keeps in Badger.
func NewJournalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JournalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Replay every delta of a schedule",
		Long: `Replay every delta of a schedule from the Badger journal.

Example:
  timelinectl journal -s wedding-2026-06-20 --db ./data`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireSchedule(); err != nil {
				return err
			}
			if opts.Page <= 0 {
				return fmt.Errorf("--page must be positive, got %d", opts.Page)
			}
			db, err := openReadOnly(opts.DB)
			if err != nil {
				return fmt.Errorf("error while opening Badger: %w", err)
			}
			defer db.Close()

			journal := storage.NewJournalRepository(db, opts.Logger(), lo.ToPtr(opts.Page))
			var all []event.Envelope
			var cursor *string
			for {
				page, next, err := journal.Read(context.Background(), opts.ScheduleID, cursor)
				if err != nil {
					return err
				}
				all = append(all, page...)
				if len(page) < opts.Page {
					break
				}
				cursor = next
			}

			if opts.Format == "json" {
				for _, env := range all {
					if err := printProto(cmd.OutOrStdout(), wire.EnvelopeToPb(env)); err != nil {
						return err
					}
				}
				return nil
			}
			deltas := make([]event.DomainEvent, 0, len(all))
			for _, env := range all {
				d, err := event.FromEnvelope(env)
				if err != nil {
					return err
				}
				deltas = append(deltas, d)
			}
			renderDeltas(cmd.OutOrStdout(), deltas, painter{enabled: opts.Colours})
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", database.DefaultPath, "path to the Badger database")
	cmd.Flags().IntVar(&opts.Page, "page", 500, "deltas read per scan")

	return cmd
}
