package cli

import (
	"context"
	"fmt"
	"os"

	"timeline-lab/domain/timeline"
	"timeline-lab/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	DB string
}

// NewSeedCommand stores a planned schedule in the master database. The
// master must be stopped: Badger allows a single writer process.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed <schedule.yaml>",
		Short: "Store a planned schedule day",
		Long: `Store a planned schedule day, as produced by the planning side.

Example:
  timelinectl seed --db ./data wedding.yaml`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := LoadSchedule(args[0])
			if err != nil {
				return err
			}
			db, err := badger.Open(badger.DefaultOptions(opts.DB).WithLogger(nil))
			if err != nil {
				return fmt.Errorf("open database %s: %w", opts.DB, err)
			}
			defer db.Close()
			if err := storage.NewScheduleRepository(db, opts.Logger()).Save(context.Background(), day); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schedule %s stored with %d events\n", day.ScheduleID, len(day.Events))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", database.DefaultPath, "path to the Badger database of the master")

	return cmd
}

// LoadSchedule reads a planned schedule from YAML and validates it.
func LoadSchedule(path string) (timeline.ScheduleDay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return timeline.ScheduleDay{}, fmt.Errorf("read schedule %s: %w", path, err)
	}
	var planned timeline.ScheduleDay
	if err := yaml.Unmarshal(data, &planned); err != nil {
		return timeline.ScheduleDay{}, fmt.Errorf("decode schedule %s: %w", path, err)
	}
	return timeline.NewScheduleDay(planned.ScheduleID, planned.Date, planned.Events)
}
