package sink

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"timeline-lab/domain/event"
	"timeline-lab/errors"
	"timeline-lab/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJournalSink_ConsumeDoesNotTouchTheStore(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	// Given a journal nobody drains
	repository := mocks.NewMockIJournalRepository(ctrl)
	journal := NewJournalSink(logs.GetLoggerFromLevel(slog.LevelDebug), repository, 4)

	// When a delta is consumed
	err := journal.Consume(context.Background(), checklistDelta(1))

	// Then it is only queued, the repository is never called on the caller's goroutine
	req.NoError(err)
	req.Len(journal.queue, 1)
}

func TestJournalSink_RunAppendsInOrder(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIJournalRepository(ctrl)
	journal := NewJournalSink(logs.GetLoggerFromLevel(slog.LevelDebug), repository, 4)

	var mu sync.Mutex
	var sequences []uint64
	repository.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, env event.Envelope) error {
			mu.Lock()
			defer mu.Unlock()
			sequences = append(sequences, env.Sequence)
			return nil
		}).Times(3)

	// Given three queued deltas
	for seq := uint64(1); seq <= 3; seq++ {
		req.NoError(journal.Consume(context.Background(), checklistDelta(seq)))
	}

	// When the writer runs
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- journal.Run(ctx) }()

	// Then the flat shape of every delta is journaled in sequence order
	req.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(sequences) == 3
	}, time.Second, 5*time.Millisecond)
	cancel()
	req.NoError(<-done)
	req.Equal([]uint64{1, 2, 3}, sequences)
}

func TestJournalSink_FullQueueIsADeliveryFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIJournalRepository(ctrl)
	journal := NewJournalSink(logs.GetLoggerFromLevel(slog.LevelDebug), repository, 1)

	// Given a queue of one already holding a delta
	req.NoError(journal.Consume(context.Background(), checklistDelta(1)))

	// When another delta arrives
	err := journal.Consume(context.Background(), checklistDelta(2))

	// Then it fails without blocking the caller
	req.ErrorIs(err, errors.ErrDeliveryFailure)
}

func TestJournalSink_FlushesQueueOnShutdown(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIJournalRepository(ctrl)
	journal := NewJournalSink(logs.GetLoggerFromLevel(slog.LevelDebug), repository, 4)

	// Given two deltas queued before the writer starts
	req.NoError(journal.Consume(context.Background(), checklistDelta(1)))
	req.NoError(journal.Consume(context.Background(), checklistDelta(2)))

	var ctxErrs []error
	repository.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ event.Envelope) error {
			ctxErrs = append(ctxErrs, ctx.Err())
			return nil
		}).Times(2)

	// When the writer starts after shutdown was already requested
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.NoError(journal.Run(ctx))

	// Then both are still written, with a context that outlives the shutdown
	req.Empty(journal.queue)
	req.Equal([]error{nil, nil}, ctxErrs)
}

func TestJournalSink_StoreFailureDoesNotStopTheWriter(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIJournalRepository(ctrl)
	journal := NewJournalSink(logs.GetLoggerFromLevel(slog.LevelDebug), repository, 4)

	// Given a store that fails the first append only
	gomock.InOrder(
		repository.EXPECT().Append(gomock.Any(), gomock.Any()).
			Return(errors.New(errors.CodeStoreUnavailable, "disk full")),
		repository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil),
	)
	req.NoError(journal.Consume(context.Background(), checklistDelta(1)))
	req.NoError(journal.Consume(context.Background(), checklistDelta(2)))

	// When the writer drains and shuts down
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Then it keeps going past the failure and exits cleanly
	req.NoError(journal.Run(ctx))
	req.Empty(journal.queue)
}
