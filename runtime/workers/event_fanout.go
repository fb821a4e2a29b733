package workers

import (
	"context"
	"log/slog"
	"time"

	"timeline-lab/contract"
	"timeline-lab/domain/event"
	"timeline-lab/errors"
)

// EventFanout broadcasts the deltas of one committed intent to every sink
// following the schedule, plus the permanent sinks.
//
// Delivery is at-most-once and best-effort: deltas reach each subscriber in
// generation order, a subscriber whose queue overflows is disconnected and
// skips the rest of the batch. EventFanout never blocks the schedule owner.
//
// EventFanout is safe for concurrent use by multiple schedule owners.
type EventFanout struct {
	log            *slog.Logger
	registry       contract.IRegistry
	permanentSinks []contract.EventSink
	sinkTimeout    time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry, permanentSinks []contract.EventSink, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:            log,
		registry:       registry,
		permanentSinks: permanentSinks,
		sinkTimeout:    sinkTimeout,
	}
}

// Fanout delivers the batch and returns the clients that were disconnected.
func (f *EventFanout) Fanout(ctx context.Context, scheduleID string, deltas []event.DomainEvent) []string {
	if len(deltas) == 0 {
		return nil
	}
	var dropped []string
	for clientID, sink := range f.registry.GetSinksForSchedule(scheduleID) {
		for _, delta := range deltas {
			if err := sink.Consume(ctx, delta); err != nil {
				f.disconnect(clientID, scheduleID, sink, err)
				dropped = append(dropped, clientID)
				break
			}
		}
	}
	f.toPermanentSinks(ctx, deltas)
	return dropped
}

func (f *EventFanout) toPermanentSinks(ctx context.Context, deltas []event.DomainEvent) {
	if len(f.permanentSinks) == 0 {
		return
	}
	sinkCtx, cancel := context.WithTimeout(ctx, f.sinkTimeout)
	defer cancel()
	for _, sink := range f.permanentSinks {
		for _, delta := range deltas {
			if err := sink.Consume(sinkCtx, delta); err != nil {
				f.log.Warn("Permanent sink failed", "sink", sink, "kind", delta.Kind(), "error", err)
				break
			}
		}
	}
}

// disconnect removes a subscriber that could not keep up. The client has to
// resync from a snapshot when it reconnects.
func (f *EventFanout) disconnect(clientID, scheduleID string, sink contract.EventSink, cause error) {
	if !f.registry.UnsubscribeSink(clientID, scheduleID, sink) {
		return
	}
	if !errors.IsCode(cause, errors.CodeDeliveryFailure) {
		cause = errors.Wrap(errors.CodeDeliveryFailure, cause, "delivery to %s failed", clientID)
	}
	if d, ok := sink.(interface{ Disconnect(error) }); ok {
		d.Disconnect(cause)
	}
	f.log.Warn("Subscriber disconnected, resync required",
		"client_id", clientID,
		"schedule_id", scheduleID,
		"error", cause)
}

// Close disconnects every sink of a schedule, used when its owner is released.
func (f *EventFanout) Close(scheduleID string, cause error) {
	for _, sink := range f.registry.UnsubscribeAll(scheduleID) {
		if d, ok := sink.(interface{ Disconnect(error) }); ok {
			d.Disconnect(cause)
		}
	}
}
