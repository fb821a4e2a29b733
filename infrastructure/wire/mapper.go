// Package wire maps the domain onto the timeline.v1 protobuf messages. The
// same messages travel over gRPC and are stored in Badger.
package wire

import (
	"time"

	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/samber/lo"
)

// toNanos keeps the zero time as 0 so that unset stays unset.
func toNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNanos(nanos int64) time.Time {
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos).UTC()
}

func toNanosPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	return lo.ToPtr(t.UnixNano())
}

func fromNanosPtr(nanos *int64) *time.Time {
	if nanos == nil {
		return nil
	}
	return lo.ToPtr(time.Unix(0, *nanos).UTC())
}

// dayToPb stores the calendar day only, as midnight UTC.
func dayToPb(date time.Time) int64 {
	if date.IsZero() {
		return 0
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).UnixNano()
}

func ChecklistItemToPb(item timeline.ChecklistItem) *pb.ChecklistItem {
	return &pb.ChecklistItem{Id: item.ID, Task: item.Task, Completed: item.Completed}
}

func ChecklistItemFromPb(item *pb.ChecklistItem) timeline.ChecklistItem {
	return timeline.ChecklistItem{ID: item.GetId(), Task: item.GetTask(), Completed: item.GetCompleted()}
}

func EventToPb(e timeline.TimelineEvent) *pb.TimelineEvent {
	return &pb.TimelineEvent{
		Id:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		Category:          string(e.Category),
		StartTime:         toNanos(e.StartTime),
		EndTime:           toNanos(e.EndTime),
		ActualStartTime:   toNanosPtr(e.ActualStartTime),
		ActualEndTime:     toNanosPtr(e.ActualEndTime),
		Status:            string(e.Status),
		DelayMinutes:      int32(e.DelayMinutes),
		DelayReason:       e.DelayReason,
		CascadedDelay:     e.CascadedDelay,
		AssignedVendorRef: e.AssignedVendorRef,
		CoordinatorRef:    e.CoordinatorRef,
		Checklist:         lo.Map(e.Checklist, func(item timeline.ChecklistItem, _ int) *pb.ChecklistItem { return ChecklistItemToPb(item) }),
		UpdatedBy:         e.UpdatedBy,
	}
}

func EventFromPb(e *pb.TimelineEvent) timeline.TimelineEvent {
	out := timeline.TimelineEvent{
		ID:                e.GetId(),
		Title:             e.GetTitle(),
		Description:       e.GetDescription(),
		Category:          timeline.Category(e.GetCategory()),
		StartTime:         fromNanos(e.GetStartTime()),
		EndTime:           fromNanos(e.GetEndTime()),
		ActualStartTime:   fromNanosPtr(e.ActualStartTime),
		ActualEndTime:     fromNanosPtr(e.ActualEndTime),
		Status:            timeline.Status(e.GetStatus()),
		DelayMinutes:      int(e.GetDelayMinutes()),
		DelayReason:       e.GetDelayReason(),
		CascadedDelay:     e.GetCascadedDelay(),
		AssignedVendorRef: e.GetAssignedVendorRef(),
		CoordinatorRef:    e.GetCoordinatorRef(),
		UpdatedBy:         e.GetUpdatedBy(),
	}
	if len(e.GetChecklist()) > 0 {
		out.Checklist = lo.Map(e.GetChecklist(), func(item *pb.ChecklistItem, _ int) timeline.ChecklistItem { return ChecklistItemFromPb(item) })
	}
	return out
}

func ScheduleToPb(day timeline.ScheduleDay) *pb.ScheduleDay {
	return &pb.ScheduleDay{
		ScheduleId: day.ScheduleID,
		Date:       dayToPb(day.Date),
		Events:     lo.Map(day.Events, func(e timeline.TimelineEvent, _ int) *pb.TimelineEvent { return EventToPb(e) }),
		Version:    day.Version,
		UpdatedAt:  toNanos(day.UpdatedAt),
	}
}

func ScheduleFromPb(day *pb.ScheduleDay) timeline.ScheduleDay {
	return timeline.ScheduleDay{
		ScheduleID: day.GetScheduleId(),
		Date:       fromNanos(day.GetDate()),
		Events:     lo.Map(day.GetEvents(), func(e *pb.TimelineEvent, _ int) timeline.TimelineEvent { return EventFromPb(e) }),
		Version:    day.GetVersion(),
		UpdatedAt:  fromNanos(day.GetUpdatedAt()),
	}
}

func MessageToPb(m timeline.CoordinatorMessage) *pb.CoordinatorMessage {
	return &pb.CoordinatorMessage{
		Text:      m.Text,
		Priority:  string(m.Priority),
		SenderRef: m.SenderRef,
		Timestamp: toNanos(m.Timestamp),
	}
}

func MessageFromPb(m *pb.CoordinatorMessage) timeline.CoordinatorMessage {
	return timeline.CoordinatorMessage{
		Text:      m.GetText(),
		Priority:  timeline.Priority(m.GetPriority()),
		SenderRef: m.GetSenderRef(),
		Timestamp: fromNanos(m.GetTimestamp()),
	}
}

func EnvelopeToPb(env event.Envelope) *pb.Envelope {
	out := &pb.Envelope{
		Kind:       string(env.Kind),
		ScheduleId: env.Schedule,
		Sequence:   env.Sequence,
		ActorRef:   env.Actor,
		At:         toNanos(env.At),
		Cascade:    env.Cascade,
		EventId:    env.EventID,
	}
	if env.Event != nil {
		out.Event = EventToPb(*env.Event)
	}
	if env.Item != nil {
		out.Item = ChecklistItemToPb(*env.Item)
	}
	if env.Message != nil {
		out.Message = MessageToPb(*env.Message)
	}
	return out
}

func EnvelopeFromPb(env *pb.Envelope) event.Envelope {
	out := event.Envelope{
		Kind:     event.Kind(env.GetKind()),
		Schedule: env.GetScheduleId(),
		Sequence: env.GetSequence(),
		Actor:    env.GetActorRef(),
		At:       fromNanos(env.GetAt()),
		Cascade:  env.GetCascade(),
		EventID:  env.GetEventId(),
	}
	if env.GetEvent() != nil {
		out.Event = lo.ToPtr(EventFromPb(env.GetEvent()))
	}
	if env.GetItem() != nil {
		out.Item = lo.ToPtr(ChecklistItemFromPb(env.GetItem()))
	}
	if env.GetMessage() != nil {
		out.Message = lo.ToPtr(MessageFromPb(env.GetMessage()))
	}
	return out
}

// DeltasToPb flattens the deltas of a command in their emission order.
func DeltasToPb(deltas []event.DomainEvent) []*pb.Envelope {
	return lo.Map(deltas, func(d event.DomainEvent, _ int) *pb.Envelope { return EnvelopeToPb(event.ToEnvelope(d)) })
}

// DeltaFromPb rebuilds a typed delta from its wire shape.
func DeltaFromPb(env *pb.Envelope) (event.DomainEvent, error) {
	return event.FromEnvelope(EnvelopeFromPb(env))
}
