package cli

import (
	"fmt"
	"time"

	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/infrastructure/wire"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/spf13/cobra"
)

// NewIntentCommands returns one command per intent a client can submit.
func NewIntentCommands(opts *RootOptions) []*cobra.Command {
	return []*cobra.Command{
		newStartCommand(opts),
		newCompleteCommand(opts),
		newDelayCommand(opts),
		newCheckCommand(opts),
		newEditCommand(opts),
		newBroadcastCommand(opts),
	}
}

func intentCommand(opts *RootOptions, use, short string, args cobra.PositionalArgs,
	build func(args []string) (timeline.Intent, error)) *cobra.Command {
	return &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         args,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			intent, err := build(args)
			if err != nil {
				return err
			}
			return submit(cmd, opts, intent)
		},
	}
}

func submit(cmd *cobra.Command, opts *RootOptions, intent timeline.Intent) error {
	if err := opts.requireSchedule(); err != nil {
		return err
	}
	if err := timeline.ValidateIntent(intent); err != nil {
		return err
	}
	w, err := wire.IntentToPb(intent)
	if err != nil {
		return err
	}
	ctx, client, closeConn, err := dial(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer closeConn()
	resp, err := client.SubmitIntent(ctx, &pb.SubmitIntentRequest{ScheduleId: opts.ScheduleID, Intent: w})
	if err != nil {
		return errors.FromGRPCError(err)
	}
	if opts.Format == "json" {
		return printProto(cmd.OutOrStdout(), resp)
	}
	deltas := make([]event.DomainEvent, 0, len(resp.GetDeltas()))
	for _, env := range resp.GetDeltas() {
		d, err := wire.DeltaFromPb(env)
		if err != nil {
			return err
		}
		deltas = append(deltas, d)
	}
	renderDeltas(cmd.OutOrStdout(), deltas, painter{enabled: opts.Colours})
	return nil
}

func newStartCommand(opts *RootOptions) *cobra.Command {
	return intentCommand(opts, "start <event-id>", "Start an event", cobra.ExactArgs(1),
		func(args []string) (timeline.Intent, error) {
			return timeline.StartIntent{EventID: args[0]}, nil
		})
}

func newCompleteCommand(opts *RootOptions) *cobra.Command {
	return intentCommand(opts, "complete <event-id>", "Complete a running event", cobra.ExactArgs(1),
		func(args []string) (timeline.Intent, error) {
			return timeline.CompleteIntent{EventID: args[0]}, nil
		})
}

func newDelayCommand(opts *RootOptions) *cobra.Command {
	var (
		minutes int
		reason  string
		cascade bool
	)
	cmd := intentCommand(opts, "delay <event-id>", "Report a delay, optionally shifting every later event", cobra.ExactArgs(1),
		func(args []string) (timeline.Intent, error) {
			return timeline.ReportDelayIntent{EventID: args[0], Minutes: minutes, Reason: reason, Cascade: cascade}, nil
		})
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "delay in minutes")
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "reason of the delay")
	cmd.Flags().BoolVar(&cascade, "cascade", false, "shift every later event by the same delay")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newCheckCommand(opts *RootOptions) *cobra.Command {
	var undo bool
	cmd := intentCommand(opts, "check <event-id> <item-id>", "Tick a checklist item", cobra.ExactArgs(2),
		func(args []string) (timeline.Intent, error) {
			return timeline.ToggleChecklistIntent{EventID: args[0], ItemID: args[1], Completed: !undo}, nil
		})
	cmd.Flags().BoolVar(&undo, "undo", false, "untick the item instead")
	return cmd
}

func newEditCommand(opts *RootOptions) *cobra.Command {
	var (
		title, description, category, vendor string
		start, end                           string
	)
	cmd := intentCommand(opts, "edit <event-id>", "Edit the fields of an event (coordinators only)", cobra.ExactArgs(1),
		func(args []string) (timeline.Intent, error) {
			patch := timeline.EventPatch{}
			if title != "" {
				patch.Title = &title
			}
			if description != "" {
				patch.Description = &description
			}
			if category != "" {
				c := timeline.Category(category)
				patch.Category = &c
			}
			if vendor != "" {
				patch.AssignedVendorRef = &vendor
			}
			var err error
			if patch.StartTime, err = parseTime(start); err != nil {
				return nil, err
			}
			if patch.EndTime, err = parseTime(end); err != nil {
				return nil, err
			}
			return timeline.EditEventIntent{EventID: args[0], Patch: patch}, nil
		})
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&vendor, "vendor", "", "assigned vendor ref")
	cmd.Flags().StringVar(&start, "start", "", "new start time (RFC 3339)")
	cmd.Flags().StringVar(&end, "end", "", "new end time (RFC 3339)")
	return cmd
}

func newBroadcastCommand(opts *RootOptions) *cobra.Command {
	var priority string
	cmd := intentCommand(opts, "broadcast <text>", "Send a message to every follower (coordinators only)", cobra.ExactArgs(1),
		func(args []string) (timeline.Intent, error) {
			return timeline.BroadcastIntent{Text: args[0], Priority: timeline.Priority(priority)}, nil
		})
	cmd.Flags().StringVarP(&priority, "priority", "p", string(timeline.PriorityNormal), "low, normal, high or urgent")
	return cmd
}

func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return &t, nil
}
