package cli

import (
	"os"

	"timeline-lab/errors"
	"timeline-lab/infrastructure/calendar"
	"timeline-lab/infrastructure/wire"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/spf13/cobra"
)

// NewSnapshotCommand prints the authoritative state of a schedule.
func NewSnapshotCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "snapshot",
		Short:        "Print the current state of a schedule",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireSchedule(); err != nil {
				return err
			}
			ctx, client, closeConn, err := dial(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer closeConn()
			resp, err := client.Snapshot(ctx, &pb.SnapshotRequest{ScheduleId: opts.ScheduleID})
			if err != nil {
				return errors.FromGRPCError(err)
			}
			if opts.Format == "json" {
				return printProto(cmd.OutOrStdout(), resp.GetSchedule())
			}
			renderDay(cmd.OutOrStdout(), wire.ScheduleFromPb(resp.GetSchedule()), painter{enabled: opts.Colours})
			return nil
		},
	}
}

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Vendor string
	Output string
}

// NewExportCommand writes a schedule as an iCalendar feed.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a schedule as an iCalendar feed",
		Long: `Export a schedule as an iCalendar feed.

Example:
  timelinectl export -s wedding-2026-06-20 --vendor vendor-photo -o photo.ics`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireSchedule(); err != nil {
				return err
			}
			ctx, client, closeConn, err := dial(cmd.Context(), opts.RootOptions)
			if err != nil {
				return err
			}
			defer closeConn()
			resp, err := client.Snapshot(ctx, &pb.SnapshotRequest{ScheduleId: opts.ScheduleID})
			if err != nil {
				return errors.FromGRPCError(err)
			}

			var filters []calendar.Filter
			if opts.Vendor != "" {
				filters = append(filters, calendar.ForVendor(opts.Vendor))
			}
			out := cmd.OutOrStdout()
			if opts.Output != "" {
				f, err := os.Create(opts.Output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return calendar.Export(out, wire.ScheduleFromPb(resp.GetSchedule()), filters...)
		},
	}

	cmd.Flags().StringVar(&opts.Vendor, "vendor", "", "only the events of this vendor")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (stdout by default)")

	return cmd
}
