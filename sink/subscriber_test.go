package sink

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"timeline-lab/domain/event"
	"timeline-lab/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func checklistDelta(seq uint64) event.DomainEvent {
	return event.ChecklistUpdated{
		Header:  event.Header{Schedule: "wedding", Sequence: seq, Actor: "alice", At: time.Now()},
		EventID: "ceremony",
	}
}

func TestSubscriber_FullQueueIsADeliveryFailure(t *testing.T) {
	req := require.New(t)
	subscriber := NewSubscriber(logs.GetLoggerFromLevel(slog.LevelDebug), "wedding", "tablet", 2)

	req.NoError(subscriber.Consume(context.Background(), checklistDelta(1)))
	req.NoError(subscriber.Consume(context.Background(), checklistDelta(2)))

	// The third delta does not block, it fails
	err := subscriber.Consume(context.Background(), checklistDelta(3))
	req.ErrorIs(err, errors.ErrDeliveryFailure)

	var typed *errors.Error
	req.True(errors.As(err, &typed))
	req.Equal("tablet", typed.Metadata["client_id"])
}

func TestSubscriber_Disconnect(t *testing.T) {
	req := require.New(t)
	subscriber := NewSubscriber(logs.GetLoggerFromLevel(slog.LevelDebug), "wedding", "tablet", 2)
	reason := errors.New(errors.CodeDeliveryFailure, "too slow")

	subscriber.Disconnect(reason)
	subscriber.Disconnect(errors.New(errors.CodeNotFound, "ignored"))
	subscriber.Close()

	<-subscriber.Done()
	req.Equal(reason, subscriber.Err())
	req.ErrorIs(subscriber.Consume(context.Background(), checklistDelta(1)), errors.ErrDeliveryFailure)
}

func TestSubscriber_CleanClose(t *testing.T) {
	subscriber := NewSubscriber(logs.GetLoggerFromLevel(slog.LevelDebug), "wedding", "tablet", 2)

	subscriber.Close()

	<-subscriber.Done()
	require.NoError(t, subscriber.Err())
}

func TestAuditSink_NeverFails(t *testing.T) {
	audit := NewAuditSink(logs.GetLoggerFromLevel(slog.LevelDebug))

	require.NoError(t, audit.Consume(context.Background(), checklistDelta(1)))
	require.NoError(t, audit.Consume(context.Background(), event.CoordinatorMessage{}))
}
