package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"timeline-lab/domain/progress"
	"timeline-lab/infrastructure/grpc/client"
	"timeline-lab/projection"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// WatchOptions holds flags for the watch command.
type WatchOptions struct {
	*RootOptions
	Tick time.Duration
}

// NewWatchCommand follows a schedule live and redraws on every delta and
// every tick.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:          "watch",
		Short:        "Follow a schedule live",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireSchedule(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			_, timelineClient, closeConn, err := dial(ctx, opts.RootOptions)
			if err != nil {
				return err
			}
			defer closeConn()

			out := cmd.OutOrStdout()
			p := painter{enabled: opts.Colours}
			var reconciler *projection.Reconciler
			reconciler = projection.NewReconciler(opts.Logger(),
				projection.WithTick(opts.Tick),
				projection.WithObserver(func(view progress.View) {
					// Clear the screen, then redraw
					_, _ = out.Write([]byte("\033[H\033[2J"))
					renderView(out, view, reconciler.Messages(), p)
				}))
			follower := client.NewFollower(opts.Logger(), timelineClient, reconciler, opts.ScheduleID, opts.Token)

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error { return follower.Run(ctx) })
			g.Go(func() error { return reconciler.Run(ctx) })
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&opts.Tick, "tick", projection.DefaultTick, "how often progress is recomputed")

	return cmd
}
