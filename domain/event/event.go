// Package event defines the typed deltas broadcast to the subscribers of a
// schedule. A delta describes one committed state change, or an ephemeral
// coordinator message.
package event

import (
	"time"

	"timeline-lab/domain/timeline"
)

type Kind string

const (
	KindEventStarted       Kind = "event_started"
	KindEventCompleted     Kind = "event_completed"
	KindEventDelayed       Kind = "event_delayed"
	KindEventUpdated       Kind = "event_updated"
	KindChecklistUpdate    Kind = "checklist_update"
	KindCoordinatorMessage Kind = "coordinator_message"
)

type DomainEvent interface {
	ScheduleID() string
	// Seq is the per-schedule sequence of the delta. Coordinator messages
	// do not advance it and repeat the last state sequence.
	Seq() uint64
	ActorRef() string
	OccurredAt() time.Time
	Kind() Kind
}

// Header carries what every delta shares.
type Header struct {
	Schedule string
	Sequence uint64
	Actor    string
	At       time.Time
}

func (h Header) ScheduleID() string    { return h.Schedule }
func (h Header) Seq() uint64           { return h.Sequence }
func (h Header) ActorRef() string      { return h.Actor }
func (h Header) OccurredAt() time.Time { return h.At }

type EventStarted struct {
	Header
	Event timeline.TimelineEvent
}

func (EventStarted) Kind() Kind { return KindEventStarted }

type EventCompleted struct {
	Header
	Event timeline.TimelineEvent
}

func (EventCompleted) Kind() Kind { return KindEventCompleted }

type EventDelayed struct {
	Header
	Event   timeline.TimelineEvent
	Cascade bool
}

func (EventDelayed) Kind() Kind { return KindEventDelayed }

// EventUpdated is a generic patch: a cascaded shift or a coordinator edit.
type EventUpdated struct {
	Header
	Event timeline.TimelineEvent
}

func (EventUpdated) Kind() Kind { return KindEventUpdated }

type ChecklistUpdated struct {
	Header
	EventID string
	Item    timeline.ChecklistItem
}

func (ChecklistUpdated) Kind() Kind { return KindChecklistUpdate }

type CoordinatorMessage struct {
	Header
	Message timeline.CoordinatorMessage
}

func (CoordinatorMessage) Kind() Kind { return KindCoordinatorMessage }

// IsStateChange reports whether the delta mutates the schedule and therefore
// takes part in sequence gap detection.
func IsStateChange(e DomainEvent) bool {
	return e.Kind() != KindCoordinatorMessage
}

// FromChanges turns the changes of one committed intent into deltas, in
// generation order. Sequences start right after lastSeq.
func FromChanges(scheduleID, actorRef string, at time.Time, lastSeq uint64, changes []timeline.Change) []DomainEvent {
	res := make([]DomainEvent, 0, len(changes))
	for i, c := range changes {
		h := Header{Schedule: scheduleID, Sequence: lastSeq + uint64(i) + 1, Actor: actorRef, At: at}
		switch c.Kind {
		case timeline.ChangeStarted:
			res = append(res, EventStarted{Header: h, Event: c.Event})
		case timeline.ChangeCompleted:
			res = append(res, EventCompleted{Header: h, Event: c.Event})
		case timeline.ChangeDelayed:
			res = append(res, EventDelayed{Header: h, Event: c.Event, Cascade: c.Cascade})
		case timeline.ChangeChecklist:
			var item timeline.ChecklistItem
			if c.Item != nil {
				item = *c.Item
			}
			res = append(res, ChecklistUpdated{Header: h, EventID: c.Event.ID, Item: item})
		default:
			res = append(res, EventUpdated{Header: h, Event: c.Event})
		}
	}
	return res
}
