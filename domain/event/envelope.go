package event

import (
	"fmt"
	"time"

	"timeline-lab/domain/timeline"
)

// Envelope is the flat, serializable shape of a delta.
type Envelope struct {
	Kind     Kind                         `json:"kind"`
	Schedule string                       `json:"schedule_id"`
	Sequence uint64                       `json:"sequence"`
	Actor    string                       `json:"actor_ref"`
	At       time.Time                    `json:"at"`
	Event    *timeline.TimelineEvent      `json:"event,omitempty"`
	Cascade  bool                         `json:"cascade,omitempty"`
	EventID  string                       `json:"event_id,omitempty"`
	Item     *timeline.ChecklistItem      `json:"item,omitempty"`
	Message  *timeline.CoordinatorMessage `json:"message,omitempty"`
}

func ToEnvelope(e DomainEvent) Envelope {
	env := Envelope{Kind: e.Kind(), Schedule: e.ScheduleID(), Sequence: e.Seq(), Actor: e.ActorRef()}
	switch d := e.(type) {
	case EventStarted:
		env.At, env.Event = d.At, &d.Event
	case EventCompleted:
		env.At, env.Event = d.At, &d.Event
	case EventDelayed:
		env.At, env.Event, env.Cascade = d.At, &d.Event, d.Cascade
	case EventUpdated:
		env.At, env.Event = d.At, &d.Event
	case ChecklistUpdated:
		env.At, env.EventID, env.Item = d.At, d.EventID, &d.Item
	case CoordinatorMessage:
		env.At, env.Message = d.At, &d.Message
	}
	return env
}

func FromEnvelope(env Envelope) (DomainEvent, error) {
	h := Header{Schedule: env.Schedule, Sequence: env.Sequence, Actor: env.Actor, At: env.At}
	switch env.Kind {
	case KindChecklistUpdate:
		if env.Item == nil {
			return nil, fmt.Errorf("%s delta without item", env.Kind)
		}
		return ChecklistUpdated{Header: h, EventID: env.EventID, Item: *env.Item}, nil
	case KindCoordinatorMessage:
		if env.Message == nil {
			return nil, fmt.Errorf("%s delta without message", env.Kind)
		}
		return CoordinatorMessage{Header: h, Message: *env.Message}, nil
	}
	if env.Event == nil {
		return nil, fmt.Errorf("%s delta without event", env.Kind)
	}
	switch env.Kind {
	case KindEventStarted:
		return EventStarted{Header: h, Event: *env.Event}, nil
	case KindEventCompleted:
		return EventCompleted{Header: h, Event: *env.Event}, nil
	case KindEventDelayed:
		return EventDelayed{Header: h, Event: *env.Event, Cascade: env.Cascade}, nil
	case KindEventUpdated:
		return EventUpdated{Header: h, Event: *env.Event}, nil
	default:
		return nil, fmt.Errorf("unknown delta kind %q", env.Kind)
	}
}
