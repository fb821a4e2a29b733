package runtime_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"timeline-lab/contract"
	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/infrastructure/directory"
	"timeline-lab/internal/testkit"
	"timeline-lab/mocks"
	"timeline-lab/runtime"
	"timeline-lab/runtime/workers"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOrchestrator(t *testing.T, store contract.IScheduleRepository, permanent ...contract.EventSink) *runtime.Orchestrator {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	orchestrator := runtime.NewOrchestrator(log,
		workers.NewSupervisor(log).WithRestartInterval(10*time.Millisecond),
		runtime.NewRegistry(), store, directory.New(testkit.Actors()...),
		permanent, 16, 8, 100*time.Millisecond).
		WithClock(func() time.Time { return testkit.At(10, 0) })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = orchestrator.Start(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		orchestrator.Stop()
		cancel()
		<-done
	})
	return orchestrator
}

func Test_Orchestrator_dispatches_deltas_to_subscribers_and_sinks(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockEventSink(ctrl)
	orchestrator := newOrchestrator(t, testkit.NewScheduleStore(testkit.WeddingDay()), audit)

	// Given a tablet follows the schedule
	subscriber, err := orchestrator.Subscribe(ctx, testkit.ScheduleID, "tablet")
	req.NoError(err)
	audit.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// When the coordinator starts the ceremony
	deltas, err := orchestrator.SubmitIntent(ctx, testkit.ScheduleID, "alice", timeline.StartIntent{EventID: "ceremony"})
	req.NoError(err)

	// Then the submitter and the subscriber see the same delta
	req.Len(deltas, 1)
	received := <-subscriber.Events()
	req.Equal(deltas[0], received)
	started, ok := received.(event.EventStarted)
	req.True(ok, "delta should be EventStarted")
	req.Equal("alice", started.ActorRef())
	req.Equal(testkit.At(10, 0), *started.Event.ActualStartTime)
}

func Test_Orchestrator_rejects_unknown_actor(t *testing.T) {
	req := require.New(t)
	orchestrator := newOrchestrator(t, testkit.NewScheduleStore(testkit.WeddingDay()))

	_, err := orchestrator.SubmitIntent(context.Background(), testkit.ScheduleID, "mallory", timeline.StartIntent{EventID: "ceremony"})

	req.ErrorIs(err, errors.ErrUnauthorized)
}

func Test_Orchestrator_rejects_malformed_intent(t *testing.T) {
	req := require.New(t)
	orchestrator := newOrchestrator(t, testkit.NewScheduleStore(testkit.WeddingDay()))

	_, err := orchestrator.SubmitIntent(context.Background(), testkit.ScheduleID, "alice",
		timeline.ReportDelayIntent{EventID: "ceremony", Minutes: 0})

	req.ErrorIs(err, errors.ErrInvariantViolation)
}

func Test_Orchestrator_unknown_schedule(t *testing.T) {
	req := require.New(t)
	orchestrator := newOrchestrator(t, testkit.NewScheduleStore())

	_, err := orchestrator.Snapshot(context.Background(), "nope")
	req.ErrorIs(err, errors.ErrNotFound)
	_, err = orchestrator.Subscribe(context.Background(), "nope", "tablet")
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Orchestrator_schedules_are_independent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	rehearsal := testkit.WeddingDay()
	rehearsal.ScheduleID = "rehearsal"
	orchestrator := newOrchestrator(t, testkit.NewScheduleStore(testkit.WeddingDay(), rehearsal))

	wedding, err := orchestrator.Subscribe(ctx, testkit.ScheduleID, "tablet")
	req.NoError(err)

	// When the rehearsal moves
	_, err = orchestrator.SubmitIntent(ctx, "rehearsal", "alice", timeline.StartIntent{EventID: "ceremony"})
	req.NoError(err)

	// Then the wedding neither changes nor broadcasts
	snapshot, err := orchestrator.Snapshot(ctx, testkit.ScheduleID)
	req.NoError(err)
	req.Zero(snapshot.Version)
	req.Empty(wedding.Events())
}

func Test_Orchestrator_resubscribe_disconnects_previous(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	orchestrator := newOrchestrator(t, testkit.NewScheduleStore(testkit.WeddingDay()))

	first, err := orchestrator.Subscribe(ctx, testkit.ScheduleID, "tablet")
	req.NoError(err)
	second, err := orchestrator.Subscribe(ctx, testkit.ScheduleID, "tablet")
	req.NoError(err)

	<-first.Done()
	req.ErrorIs(first.Err(), errors.ErrDeliveryFailure)

	// Tearing down the stale subscription keeps the new one
	orchestrator.Disconnect(first)
	_, err = orchestrator.SubmitIntent(ctx, testkit.ScheduleID, "alice", timeline.StartIntent{EventID: "ceremony"})
	req.NoError(err)
	req.Len(second.Events(), 1)
}

func Test_Orchestrator_register_and_release(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := testkit.NewScheduleStore()
	orchestrator := newOrchestrator(t, store)

	// Given a schedule registered by the planning side
	req.NoError(orchestrator.Register(ctx, testkit.WeddingDay()))
	req.Equal(testkit.WeddingDay(), store.Get(testkit.ScheduleID))
	subscriber, err := orchestrator.Subscribe(ctx, testkit.ScheduleID, "tablet")
	req.NoError(err)
	_, err = orchestrator.SubmitIntent(ctx, testkit.ScheduleID, "alice", timeline.StartIntent{EventID: "ceremony"})
	req.NoError(err)

	// When the day is over
	released := orchestrator.ReleaseBefore(testkit.Date.Add(24 * time.Hour))

	// Then its owner is gone and subscribers must resync
	req.Equal([]string{testkit.ScheduleID}, released)
	<-subscriber.Done()

	// And the next request reloads the committed state
	snapshot, err := orchestrator.Snapshot(ctx, testkit.ScheduleID)
	req.NoError(err)
	req.Equal(uint64(1), snapshot.Version)
	req.Empty(orchestrator.ReleaseBefore(testkit.Date))
}

func Test_Orchestrator_schedules_by_date(t *testing.T) {
	req := require.New(t)
	orchestrator := newOrchestrator(t, testkit.NewScheduleStore(testkit.WeddingDay()))

	days, err := orchestrator.Schedules(context.Background(), testkit.Date, testkit.Date)
	req.NoError(err)
	req.Len(days, 1)

	days, err = orchestrator.Schedules(context.Background(), testkit.Date.Add(24*time.Hour), testkit.Date.Add(48*time.Hour))
	req.NoError(err)
	req.Empty(days)
}

func Test_Orchestrator_stats(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	orchestrator := newOrchestrator(t, testkit.NewScheduleStore(testkit.WeddingDay()))

	// Nothing is loaded before the first request
	req.Equal(workers.EngineStats{}, orchestrator.Stats())

	_, err := orchestrator.Subscribe(ctx, testkit.ScheduleID, "tablet")
	req.NoError(err)
	_, err = orchestrator.Subscribe(ctx, testkit.ScheduleID, "phone")
	req.NoError(err)

	stats := orchestrator.Stats()
	req.Equal(1, stats.ActiveSchedules)
	req.Equal(2, stats.Subscribers)
}
