package sink

import (
	"context"
	"log/slog"
	"time"

	"timeline-lab/contract"
	"timeline-lab/domain/event"
	"timeline-lab/errors"
)

const journalFlushTimeout = 5 * time.Second

var (
	_ contract.EventSink = (*JournalSink)(nil)
	_ contract.Worker    = (*JournalSink)(nil)
)

// JournalSink appends every delta to the schedule journal so the day can be
// audited. Consume only queues the delta: the Badger write happens in Run,
// off the schedule owner's goroutine.
type JournalSink struct {
	log        *slog.Logger
	repository contract.IJournalRepository
	queue      chan event.Envelope
}

func NewJournalSink(log *slog.Logger, repository contract.IJournalRepository, bufferSize int) *JournalSink {
	return &JournalSink{
		log:        log,
		repository: repository,
		queue:      make(chan event.Envelope, bufferSize),
	}
}

// Consume never blocks. A full queue drops the delta from the journal and
// reports a delivery failure.
func (j *JournalSink) Consume(_ context.Context, e event.DomainEvent) error {
	select {
	case j.queue <- event.ToEnvelope(e):
		return nil
	default:
		return errors.New(errors.CodeDeliveryFailure, "journal queue full, delta %d of schedule %s dropped",
			e.Seq(), e.ScheduleID())
	}
}

// Run writes the queued deltas in order until ctx is cancelled, then
// flushes what is still queued.
func (j *JournalSink) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			j.flush(ctx)
			return nil
		case env := <-j.queue:
			if ctx.Err() != nil {
				j.flush(ctx, env)
				return nil
			}
			j.append(ctx, env)
		}
	}
}

func (j *JournalSink) flush(ctx context.Context, pending ...event.Envelope) {
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalFlushTimeout)
	defer cancel()
	for _, env := range pending {
		j.append(flushCtx, env)
	}
	for {
		select {
		case env := <-j.queue:
			j.append(flushCtx, env)
		default:
			return
		}
	}
}

func (j *JournalSink) append(ctx context.Context, env event.Envelope) {
	if err := j.repository.Append(ctx, env); err != nil {
		j.log.Error("Failed to journal delta",
			"schedule_id", env.Schedule,
			"sequence", env.Sequence,
			"kind", env.Kind,
			"error", err)
	}
}
