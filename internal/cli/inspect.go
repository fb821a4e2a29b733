package cli

import (
	"fmt"
	"strings"

	"timeline-lab/domain/timeline"
	"timeline-lab/infrastructure/wire"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	DB     string
	Prefix string
}

// NewInspectCommand lists the stored schedules straight from Badger.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:          "inspect",
		Short:        "List the schedules stored in a Badger database",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openReadOnly(opts.DB)
			if err != nil {
				return fmt.Errorf("error while opening Badger: %w", err)
			}
			defer db.Close()

			table := newTable(cmd.OutOrStdout(), "Key", "Date", "Version", "Events", "Done", "Delayed", "Updated")
			err = db.View(func(txn *badger.Txn) error {
				it := txn.NewIterator(badger.DefaultIteratorOptions)
				defer it.Close()

				prefix := []byte(opts.Prefix)
				for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
					item := it.Item()
					err := item.Value(func(v []byte) error {
						var dayPb pb.ScheduleDay
						if err := proto.Unmarshal(v, &dayPb); err != nil {
							// Keep listing: one corrupted entry must not hide the others
							fmt.Fprintf(cmd.ErrOrStderr(), "Error unmarshaling key %s: %v\n", string(item.Key()), err)
							return nil
						}
						day := wire.ScheduleFromPb(&dayPb)
						table.Append([]string{
							string(item.Key()),
							day.Date.Format("2006-01-02"),
							fmt.Sprint(day.Version),
							fmt.Sprint(len(day.Events)),
							fmt.Sprint(lo.CountBy(day.Events, func(e timeline.TimelineEvent) bool { return e.Status == timeline.StatusCompleted })),
							fmt.Sprint(lo.CountBy(day.Events, func(e timeline.TimelineEvent) bool { return e.Status == timeline.StatusDelayed })),
							day.UpdatedAt.Format("15:04:05"),
						})
						return nil
					})
					if err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", database.DefaultPath, "path to the Badger database")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "schedule:", "prefix to scan")

	return cmd
}

func openReadOnly(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		// A crashed master leaves a log to truncate: open once in write mode.
		repair, repairErr := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
		if repairErr != nil {
			return nil, fmt.Errorf("repair failed: %w", repairErr)
		}
		_ = repair.Close()
		return badger.Open(opts)
	}
	return db, err
}
