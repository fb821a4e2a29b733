package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/internal/testkit"
	"timeline-lab/mocks"
	"timeline-lab/sink"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func startOwner(t *testing.T, store *testkit.ScheduleStore, registry *testRegistry) *ScheduleWorker {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	fanout := NewEventFanout(log, registry, nil, time.Second)
	owner := NewScheduleWorker(log, testkit.WeddingDay(), store, fanout, 8, func() time.Time { return testkit.At(10, 2) })
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = owner.Run(ctx) }()
	t.Cleanup(func() {
		owner.Stop()
		cancel()
	})
	return owner
}

func TestScheduleWorker_StartThenComplete(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := testkit.NewScheduleStore()
	owner := startOwner(t, store, newTestRegistry())

	// When the coordinator starts then completes the ceremony
	started, err := owner.Submit(ctx, testkit.Coordinator, timeline.StartIntent{EventID: "ceremony"})
	req.NoError(err)
	completed, err := owner.Submit(ctx, testkit.Coordinator, timeline.CompleteIntent{EventID: "ceremony"})
	req.NoError(err)

	// Then each intent yields one delta with consecutive sequences
	req.Len(started, 1)
	req.Equal(event.KindEventStarted, started[0].Kind())
	req.Equal(uint64(1), started[0].Seq())
	req.Len(completed, 1)
	req.Equal(event.KindEventCompleted, completed[0].Kind())
	req.Equal(uint64(2), completed[0].Seq())

	// And the committed snapshot was persisted
	snapshot, err := owner.Snapshot(ctx)
	req.NoError(err)
	req.Equal(uint64(2), snapshot.Version)
	ceremony, err := snapshot.Event("ceremony")
	req.NoError(err)
	req.Equal(timeline.StatusCompleted, ceremony.Status)
	req.Equal("alice", ceremony.UpdatedBy)
	req.Equal(snapshot, store.Get(testkit.ScheduleID))
	req.Equal(2, store.Saves)
}

func TestScheduleWorker_InvalidTransitionEmitsNothing(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry := newTestRegistry()
	store := testkit.NewScheduleStore()
	owner := startOwner(t, store, registry)
	subscriber := sink.NewSubscriber(logs.GetLoggerFromLevel(slog.LevelDebug), testkit.ScheduleID, "client-1", 4)
	registry.Subscribe("client-1", testkit.ScheduleID, subscriber)

	// When a not started event is completed
	deltas, err := owner.Submit(ctx, testkit.Coordinator, timeline.CompleteIntent{EventID: "photos"})

	// Then it fails without touching the schedule
	req.True(errors.IsCode(err, errors.CodeInvalidTransition))
	req.Empty(deltas)
	req.Empty(subscriber.Events())
	req.Zero(store.Saves)
	snapshot, err := owner.Snapshot(ctx)
	req.NoError(err)
	req.Equal(testkit.WeddingDay(), snapshot)
}

func TestScheduleWorker_Authorization(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	owner := startOwner(t, testkit.NewScheduleStore(), newTestRegistry())

	// A guest can do nothing
	_, err := owner.Submit(ctx, testkit.Guest, timeline.StartIntent{EventID: "ceremony"})
	req.ErrorIs(err, errors.ErrUnauthorized)

	// A vendor only on its own events
	_, err = owner.Submit(ctx, testkit.Photographer, timeline.StartIntent{EventID: "ceremony"})
	req.ErrorIs(err, errors.ErrUnauthorized)
	_, err = owner.Submit(ctx, testkit.Photographer, timeline.ToggleChecklistIntent{EventID: "photos", ItemID: "family", Completed: true})
	req.NoError(err)

	// And never edits or broadcasts
	_, err = owner.Submit(ctx, testkit.Photographer, timeline.EditEventIntent{EventID: "photos", Patch: timeline.EventPatch{Title: lo.ToPtr("Portraits")}})
	req.ErrorIs(err, errors.ErrUnauthorized)
	_, err = owner.Submit(ctx, testkit.Photographer, timeline.BroadcastIntent{Text: "Running late", Priority: timeline.PriorityHigh})
	req.ErrorIs(err, errors.ErrUnauthorized)

	// An unknown event is reported before any authorization
	_, err = owner.Submit(ctx, testkit.Guest, timeline.StartIntent{EventID: "fireworks"})
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestScheduleWorker_StoreFailureLeavesStateUnchanged(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIScheduleRepository(ctrl)
	registry := newTestRegistry()
	subscriber := sink.NewSubscriber(log, testkit.ScheduleID, "client-1", 4)
	registry.Subscribe("client-1", testkit.ScheduleID, subscriber)

	owner := NewScheduleWorker(log, testkit.WeddingDay(), repository,
		NewEventFanout(log, registry, nil, time.Second), 8, time.Now)
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() { _ = owner.Run(runCtx) }()

	// Given the store is down
	repository.EXPECT().Save(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded).Times(1)

	// When the ceremony is started
	deltas, err := owner.Submit(ctx, testkit.Coordinator, timeline.StartIntent{EventID: "ceremony"})

	// Then the failure is surfaced as StoreUnavailable and nothing moved
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	req.ErrorIs(err, context.DeadlineExceeded)
	req.Empty(deltas)
	req.Empty(subscriber.Events())
	snapshot, err := owner.Snapshot(ctx)
	req.NoError(err)
	req.Equal(uint64(0), snapshot.Version)
	ceremony, _ := snapshot.Event("ceremony")
	req.Equal(timeline.StatusNotStarted, ceremony.Status)
}

func TestScheduleWorker_CascadeDeltasInOrder(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := newTestRegistry()
	owner := startOwner(t, testkit.NewScheduleStore(), registry)
	subscriber := sink.NewSubscriber(log, testkit.ScheduleID, "client-1", 16)
	registry.Subscribe("client-1", testkit.ScheduleID, subscriber)

	// When the ceremony reports a 15 minutes cascading delay
	deltas, err := owner.Submit(ctx, testkit.Coordinator,
		timeline.ReportDelayIntent{EventID: "ceremony", Minutes: 15, Reason: "Bride is late", Cascade: true})
	req.NoError(err)

	// Then the delayed delta comes first, followed by one update per later event
	req.Len(deltas, 4)
	req.Equal(event.KindEventDelayed, deltas[0].Kind())
	for i, d := range deltas {
		req.Equal(uint64(i+1), d.Seq())
		if i > 0 {
			req.Equal(event.KindEventUpdated, d.Kind())
			req.True(d.(event.EventUpdated).Event.CascadedDelay)
		}
	}
	photos := deltas[1].(event.EventUpdated).Event
	req.Equal("photos", photos.ID)
	req.Equal(testkit.At(10, 45), photos.StartTime)
	req.Equal(testkit.At(11, 30), photos.EndTime)

	// And the subscriber received the same sequence
	for want := uint64(1); want <= 4; want++ {
		req.Equal(want, (<-subscriber.Events()).Seq())
	}
}

func TestScheduleWorker_BroadcastDoesNotAdvanceVersion(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := newTestRegistry()
	store := testkit.NewScheduleStore()
	owner := startOwner(t, store, registry)
	subscriber := sink.NewSubscriber(log, testkit.ScheduleID, "client-1", 4)
	registry.Subscribe("client-1", testkit.ScheduleID, subscriber)

	_, err := owner.Submit(ctx, testkit.Coordinator, timeline.StartIntent{EventID: "ceremony"})
	req.NoError(err)

	// When a coordinator broadcasts a message
	deltas, err := owner.Submit(ctx, testkit.CIO, timeline.BroadcastIntent{Text: "Guests to the garden", Priority: timeline.PriorityNormal})
	req.NoError(err)

	// Then the message repeats the last sequence and is not persisted
	req.Len(deltas, 1)
	req.Equal(event.KindCoordinatorMessage, deltas[0].Kind())
	req.Equal(uint64(1), deltas[0].Seq())
	req.Equal(1, store.Saves)
	<-subscriber.Events()
	msg := (<-subscriber.Events()).(event.CoordinatorMessage)
	req.Equal("carla", msg.Message.SenderRef)
}

func TestScheduleWorker_StoppedOwnerRejects(t *testing.T) {
	req := require.New(t)
	owner := startOwner(t, testkit.NewScheduleStore(), newTestRegistry())

	owner.Stop()

	_, err := owner.Submit(context.Background(), testkit.Coordinator, timeline.StartIntent{EventID: "ceremony"})
	req.ErrorIs(err, errors.ErrOwnerStopped)
}
