// Package client follows a remote schedule: it keeps a local projection in
// sync with the server and submits intents on behalf of one actor.
package client

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"timeline-lab/auth"
	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/infrastructure/wire"
	"timeline-lab/projection"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/google/uuid"
)

const defaultRetryInterval = 2 * time.Second

// Follower subscribes to a schedule, seeds the reconciler with a snapshot
// and applies the deltas. Any gap or disconnect triggers a full resync.
type Follower struct {
	log           *slog.Logger
	client        pb.TimelineServiceClient
	reconciler    *projection.Reconciler
	scheduleID    string
	clientID      string
	token         string
	retryInterval time.Duration
	resyncs       atomic.Int32
}

func NewFollower(log *slog.Logger, client pb.TimelineServiceClient, reconciler *projection.Reconciler,
	scheduleID, token string) *Follower {
	return &Follower{
		log:           log.With("schedule_id", scheduleID),
		client:        client,
		reconciler:    reconciler,
		scheduleID:    scheduleID,
		clientID:      uuid.NewString(),
		token:         token,
		retryInterval: defaultRetryInterval,
	}
}

func (f *Follower) WithRetryInterval(d time.Duration) *Follower {
	f.retryInterval = d
	return f
}

func (f *Follower) ClientID() string {
	return f.clientID
}

// Run follows the schedule until ctx is cancelled, resyncing after every
// failure.
func (f *Follower) Run(ctx context.Context) error {
	for {
		err := f.follow(ctx)
		if ctx.Err() != nil {
			return nil
		}
		f.reconciler.Invalidate()
		n := f.resyncs.Add(1)
		f.log.Info("Resynchronizing", "reason", err, "resyncs", n)
		// A missed delta is recovered from a snapshot right away; anything
		// else waits before reconnecting.
		if errors.Is(err, errors.ErrSequenceGap) {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(f.retryInterval):
		}
	}
}

func (f *Follower) follow(ctx context.Context) error {
	ctx, cancel := context.WithCancel(auth.BearerContext(ctx, f.token))
	defer cancel()

	stream, err := f.client.Subscribe(ctx, &pb.SubscribeRequest{ScheduleId: f.scheduleID, ClientId: f.clientID})
	if err != nil {
		return errors.FromGRPCError(err)
	}
	// Wait until the server registered the subscription before taking the
	// snapshot, so nothing falls between the two.
	if _, err := stream.Header(); err != nil {
		return errors.FromGRPCError(err)
	}
	snapshot, err := f.client.Snapshot(ctx, &pb.SnapshotRequest{ScheduleId: f.scheduleID})
	if err != nil {
		return errors.FromGRPCError(err)
	}
	f.reconciler.Reset(wire.ScheduleFromPb(snapshot.GetSchedule()))

	for {
		envelope, err := stream.Recv()
		if err == io.EOF {
			return errors.New(errors.CodeDeliveryFailure, "stream closed by the server")
		}
		if err != nil {
			return errors.FromGRPCError(err)
		}
		delta, err := wire.DeltaFromPb(envelope)
		if err != nil {
			return err
		}
		if err := f.reconciler.Apply(delta); err != nil {
			return err
		}
		f.reconciler.Recompute(time.Now().UTC())
	}
}

// Submit sends an intent as the actor of the token.
func (f *Follower) Submit(ctx context.Context, intent timeline.Intent) ([]event.DomainEvent, error) {
	w, err := wire.IntentToPb(intent)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.SubmitIntent(auth.BearerContext(ctx, f.token),
		&pb.SubmitIntentRequest{ScheduleId: f.scheduleID, Intent: w})
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}
	deltas := make([]event.DomainEvent, 0, len(resp.GetDeltas()))
	for _, env := range resp.GetDeltas() {
		d, err := wire.DeltaFromPb(env)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, d)
	}
	return deltas, nil
}

func (f *Follower) Resyncs() int {
	return int(f.resyncs.Load())
}
