package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"timeline-lab/contract"
	"timeline-lab/domain/authority"
	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
)

// Ensure *ScheduleWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*ScheduleWorker)(nil)

// ScheduleWorker is the single writer of one schedule. Every intent and
// snapshot request for the schedule is serialized through its goroutine, so
// the schedule never sees two concurrent writers.
type ScheduleWorker struct {
	log        *slog.Logger
	day        timeline.ScheduleDay
	date       time.Time
	repository contract.IScheduleRepository
	fanout     *EventFanout
	requests   chan request
	quit       chan struct{}
	quitOnce   sync.Once
	clock      func() time.Time
}

type request interface {
	serve(w *ScheduleWorker)
}

type intentResult struct {
	deltas []event.DomainEvent
	err    error
}

type intentRequest struct {
	ctx    context.Context
	actor  authority.Actor
	intent timeline.Intent
	reply  chan intentResult
}

type snapshotRequest struct {
	reply chan timeline.ScheduleDay
}

func NewScheduleWorker(
	log *slog.Logger,
	day timeline.ScheduleDay,
	repository contract.IScheduleRepository,
	fanout *EventFanout,
	bufferSize int,
	clock func() time.Time) *ScheduleWorker {
	return &ScheduleWorker{
		log:        log.With("schedule_id", day.ScheduleID),
		day:        day,
		date:       day.Date,
		repository: repository,
		fanout:     fanout,
		requests:   make(chan request, bufferSize),
		quit:       make(chan struct{}),
		clock:      clock,
	}
}

func (w *ScheduleWorker) GetName() contract.WorkerName {
	return contract.WorkerName("schedule-owner:" + w.day.ScheduleID)
}

func (w *ScheduleWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping schedule owner")
			return ctx.Err()
		case <-w.quit:
			return nil
		case req := <-w.requests:
			req.serve(w)
		}
	}
}

// Date is the day of the schedule. It never changes once the owner runs.
func (w *ScheduleWorker) Date() time.Time {
	return w.date
}

// Pending is the number of requests waiting in the owner queue. Reading a
// channel length never blocks.
func (w *ScheduleWorker) Pending() int {
	return len(w.requests)
}

// Stop releases the owner. Pending and future requests fail.
func (w *ScheduleWorker) Stop() {
	w.quitOnce.Do(func() { close(w.quit) })
}

// Submit hands an intent to the owner and waits for its outcome.
// It blocks only on the owner queue and the reply, both bounded by ctx.
func (w *ScheduleWorker) Submit(ctx context.Context, actor authority.Actor, intent timeline.Intent) ([]event.DomainEvent, error) {
	reply := make(chan intentResult, 1)
	if err := w.enqueue(ctx, intentRequest{ctx: ctx, actor: actor, intent: intent, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case res := <-reply:
		return res.deltas, res.err
	case <-w.quit:
		return nil, errors.ErrOwnerStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Snapshot returns a deep copy of the authoritative schedule.
func (w *ScheduleWorker) Snapshot(ctx context.Context) (timeline.ScheduleDay, error) {
	reply := make(chan timeline.ScheduleDay, 1)
	if err := w.enqueue(ctx, snapshotRequest{reply: reply}); err != nil {
		return timeline.ScheduleDay{}, err
	}
	select {
	case day := <-reply:
		return day, nil
	case <-w.quit:
		return timeline.ScheduleDay{}, errors.ErrOwnerStopped
	case <-ctx.Done():
		return timeline.ScheduleDay{}, ctx.Err()
	}
}

func (w *ScheduleWorker) enqueue(ctx context.Context, req request) error {
	select {
	case <-w.quit:
		return errors.ErrOwnerStopped
	default:
	}
	select {
	case w.requests <- req:
		return nil
	case <-w.quit:
		return errors.ErrOwnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r snapshotRequest) serve(w *ScheduleWorker) {
	r.reply <- w.day.Clone()
}

func (r intentRequest) serve(w *ScheduleWorker) {
	// The caller gave up before its turn: nothing is applied.
	if err := r.ctx.Err(); err != nil {
		r.reply <- intentResult{err: err}
		return
	}
	deltas, err := w.apply(r.ctx, r.actor, r.intent)
	if err != nil {
		w.log.Debug("Intent rejected", "actor_ref", r.actor.Ref, "kind", r.intent.Kind(), "error", err)
	}
	r.reply <- intentResult{deltas: deltas, err: err}
}

// apply runs one intent to completion: authorize, transition on a clone,
// validate, persist, swap, broadcast. Any failure leaves the schedule as it
// was and broadcasts nothing.
func (w *ScheduleWorker) apply(ctx context.Context, actor authority.Actor, intent timeline.Intent) ([]event.DomainEvent, error) {
	now := w.clock()
	if msg, ok := intent.(timeline.BroadcastIntent); ok {
		return w.broadcast(ctx, actor, msg, now)
	}

	target, err := w.day.Event(intent.Target())
	if err != nil {
		return nil, err
	}
	if err := authority.AuthorizeIntent(actor, intent, target); err != nil {
		return nil, err
	}

	next := w.day.Clone()
	changes, err := next.Apply(actor.Ref, intent, now)
	if err != nil {
		return nil, err
	}
	next.Version = w.day.Version + uint64(len(changes))
	next.UpdatedAt = now
	if err := next.Validate(); err != nil {
		return nil, err
	}
	if err := w.repository.Save(ctx, next); err != nil {
		if !errors.IsCode(err, errors.CodeStoreUnavailable) {
			err = errors.Wrap(errors.CodeStoreUnavailable, err, "commit on schedule %s", next.ScheduleID)
		}
		return nil, err
	}

	deltas := event.FromChanges(next.ScheduleID, actor.Ref, now, w.day.Version, changes)
	w.day = next
	// Committed: the broadcast must not depend on the submitter staying around.
	if dropped := w.fanout.Fanout(context.WithoutCancel(ctx), next.ScheduleID, deltas); len(dropped) > 0 {
		w.log.Info("Slow subscribers dropped", "count", len(dropped), "version", next.Version)
	}
	return deltas, nil
}

// broadcast relays a coordinator message. It is fire-and-forget: nothing is
// persisted and the schedule sequence does not move.
func (w *ScheduleWorker) broadcast(ctx context.Context, actor authority.Actor, msg timeline.BroadcastIntent, now time.Time) ([]event.DomainEvent, error) {
	if err := authority.AuthorizeCoordinator(actor); err != nil {
		return nil, err
	}
	delta := event.CoordinatorMessage{
		Header: event.Header{Schedule: w.day.ScheduleID, Sequence: w.day.Version, Actor: actor.Ref, At: now},
		Message: timeline.CoordinatorMessage{
			Text:      msg.Text,
			Priority:  msg.Priority,
			SenderRef: actor.Ref,
			Timestamp: now,
		},
	}
	deltas := []event.DomainEvent{delta}
	w.fanout.Fanout(context.WithoutCancel(ctx), w.day.ScheduleID, deltas)
	return deltas, nil
}
