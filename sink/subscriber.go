package sink

import (
	"context"
	"log/slog"
	"sync"

	"timeline-lab/contract"
	"timeline-lab/domain/event"
	"timeline-lab/errors"

	"github.com/google/uuid"
)

var _ contract.EventSink = (*Subscriber)(nil)

// Subscriber is the outbound queue of one connected client on one schedule.
// The queue is bounded: a client that cannot keep up is disconnected and
// has to resync from a snapshot.
type Subscriber struct {
	ID         string
	ClientID   string
	ScheduleID string
	log        *slog.Logger
	events     chan event.DomainEvent
	done       chan struct{}
	closeOnce  sync.Once
	mu         sync.Mutex
	reason     error
}

func NewSubscriber(log *slog.Logger, scheduleID, clientID string, bufferSize int) *Subscriber {
	return &Subscriber{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		ScheduleID: scheduleID,
		log:        log,
		events:     make(chan event.DomainEvent, bufferSize),
		done:       make(chan struct{}),
	}
}

// Consume is called by the fanout, from the schedule owner goroutine.
// It never blocks: a full queue is a delivery failure.
func (s *Subscriber) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case <-s.done:
		return errors.New(errors.CodeDeliveryFailure, "subscriber %s is closed", s.ID)
	default:
	}
	select {
	case s.events <- e:
		return nil
	case <-ctx.Done():
		return errors.Wrap(errors.CodeDeliveryFailure, ctx.Err(), "delivery to %s cancelled", s.ID)
	default:
		return errors.New(errors.CodeDeliveryFailure, "outbound queue of %s is full (%d)", s.ID, cap(s.events)).
			With("client_id", s.ClientID).
			With("schedule_id", s.ScheduleID)
	}
}

// Events is drained by the transport handler of the client.
func (s *Subscriber) Events() <-chan event.DomainEvent {
	return s.events
}

// Done is closed once the subscriber is disconnected, by either side.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

// Disconnect closes the subscriber and records why.
func (s *Subscriber) Disconnect(reason error) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.reason = reason
		s.mu.Unlock()
		close(s.done)
		s.log.Debug("Subscriber disconnected",
			"subscriber_id", s.ID,
			"client_id", s.ClientID,
			"schedule_id", s.ScheduleID,
			"reason", reason)
	})
}

func (s *Subscriber) Close() {
	s.Disconnect(nil)
}

// Err returns the reason of the disconnection, nil while connected or
// after a clean close.
func (s *Subscriber) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}
