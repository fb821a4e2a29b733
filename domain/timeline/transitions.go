package timeline

import (
	"time"

	"timeline-lab/errors"

	"github.com/samber/lo"
)

type ChangeKind string

const (
	ChangeStarted   ChangeKind = "started"
	ChangeCompleted ChangeKind = "completed"
	ChangeDelayed   ChangeKind = "delayed"
	ChangeShifted   ChangeKind = "shifted"
	ChangeEdited    ChangeKind = "edited"
	ChangeChecklist ChangeKind = "checklist"
)

// Change describes one event modified by a transition, in generation order.
// Event is the state after the change.
type Change struct {
	Kind    ChangeKind
	Event   TimelineEvent
	Item    *ChecklistItem
	Cascade bool
}

// Apply routes a state-changing intent to its transition.
// Every transition leaves the schedule untouched when it fails.
func (d *ScheduleDay) Apply(actorRef string, intent Intent, now time.Time) ([]Change, error) {
	switch i := intent.(type) {
	case StartIntent:
		return d.Start(i.EventID, actorRef, now)
	case CompleteIntent:
		return d.Complete(i.EventID, actorRef, now)
	case ReportDelayIntent:
		return d.ReportDelay(i.EventID, actorRef, i.Minutes, i.Reason, i.Cascade, now)
	case ToggleChecklistIntent:
		return d.UpdateChecklistItem(i.EventID, i.ItemID, i.Completed, actorRef)
	case EditEventIntent:
		return d.EditEvent(i.EventID, actorRef, i.Patch)
	default:
		return nil, errors.New(errors.CodeInvalidTransition, "intent %T does not change the schedule", intent)
	}
}

// Start moves an event to in_progress. A delayed event that never started
// may start too: it keeps its delayed flag while running.
func (d *ScheduleDay) Start(eventID, actorRef string, now time.Time) ([]Change, error) {
	e, err := d.event(eventID)
	if err != nil {
		return nil, err
	}
	switch {
	case e.Status == StatusNotStarted:
		e.Status = StatusInProgress
	case e.Status == StatusDelayed && !e.Started():
	default:
		return nil, invalidTransition(*e, "start")
	}
	e.ActualStartTime = lo.ToPtr(now)
	e.UpdatedBy = actorRef
	return []Change{{Kind: ChangeStarted, Event: e.Clone()}}, nil
}

// Complete ends a running event, delayed or not.
func (d *ScheduleDay) Complete(eventID, actorRef string, now time.Time) ([]Change, error) {
	e, err := d.event(eventID)
	if err != nil {
		return nil, err
	}
	running := e.Status == StatusInProgress || (e.Status == StatusDelayed && e.Started())
	if !running {
		return nil, invalidTransition(*e, "complete")
	}
	e.Status = StatusCompleted
	e.ActualEndTime = lo.ToPtr(now)
	e.UpdatedBy = actorRef
	return []Change{{Kind: ChangeCompleted, Event: e.Clone()}}, nil
}

// ReportDelay flags an event as delayed. With cascade, every later event is
// shifted by the same amount while the reporting event keeps its bounds.
// A second report on an already delayed event replaces minutes and reason.
func (d *ScheduleDay) ReportDelay(eventID, actorRef string, minutes int, reason string, cascade bool, _ time.Time) ([]Change, error) {
	idx := d.IndexOf(eventID)
	if idx < 0 {
		return nil, notFound(d.ScheduleID, eventID)
	}
	if minutes <= 0 {
		return nil, errors.New(errors.CodeInvariantViolation, "delay for event %s must be positive, got %d", eventID, minutes)
	}
	if d.Events[idx].Status == StatusCompleted {
		return nil, invalidTransition(d.Events[idx], "report a delay on")
	}

	events := d.Events
	if cascade {
		shifted, err := Cascade(d.Events, idx, minutes)
		if err != nil {
			return nil, err
		}
		events = shifted
	}

	e := &events[idx]
	e.Status = StatusDelayed
	e.DelayMinutes = minutes
	e.DelayReason = reason
	e.UpdatedBy = actorRef
	d.Events = events

	changes := []Change{{Kind: ChangeDelayed, Event: e.Clone(), Cascade: cascade}}
	if cascade {
		for _, next := range d.Events[idx+1:] {
			changes = append(changes, Change{Kind: ChangeShifted, Event: next.Clone()})
		}
	}
	return changes, nil
}

// UpdateChecklistItem toggles a checklist item whatever the event status.
func (d *ScheduleDay) UpdateChecklistItem(eventID, itemID string, completed bool, actorRef string) ([]Change, error) {
	e, err := d.event(eventID)
	if err != nil {
		return nil, err
	}
	pos := e.checklistIndex(itemID)
	if pos < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist item %s not found on event %s", itemID, eventID)
	}
	e.Checklist[pos].Completed = completed
	e.UpdatedBy = actorRef
	return []Change{{Kind: ChangeChecklist, Event: e.Clone(), Item: lo.ToPtr(e.Checklist[pos])}}, nil
}

// EditEvent applies a generic field patch. Bounds edits must keep
// end after start and must not reorder the day.
func (d *ScheduleDay) EditEvent(eventID, actorRef string, patch EventPatch) ([]Change, error) {
	idx := d.IndexOf(eventID)
	if idx < 0 {
		return nil, notFound(d.ScheduleID, eventID)
	}
	edited := d.Events[idx].Clone()
	if patch.Title != nil {
		edited.Title = *patch.Title
	}
	if patch.Description != nil {
		edited.Description = *patch.Description
	}
	if patch.Category != nil {
		edited.Category = *patch.Category
	}
	if patch.StartTime != nil {
		edited.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		edited.EndTime = *patch.EndTime
	}
	if patch.AssignedVendorRef != nil {
		edited.AssignedVendorRef = *patch.AssignedVendorRef
	}
	if !edited.EndTime.After(edited.StartTime) {
		return nil, errors.New(errors.CodeInvariantViolation, "event %s: end must be after start", eventID)
	}
	if idx > 0 && edited.StartTime.Before(d.Events[idx-1].StartTime) {
		return nil, errors.New(errors.CodeInvariantViolation, "event %s would start before %s", eventID, d.Events[idx-1].ID)
	}
	if idx < len(d.Events)-1 && edited.StartTime.After(d.Events[idx+1].StartTime) {
		return nil, errors.New(errors.CodeInvariantViolation, "event %s would start after %s", eventID, d.Events[idx+1].ID)
	}
	edited.UpdatedBy = actorRef
	d.Events[idx] = edited
	return []Change{{Kind: ChangeEdited, Event: edited.Clone()}}, nil
}

func (d *ScheduleDay) event(eventID string) (*TimelineEvent, error) {
	idx := d.IndexOf(eventID)
	if idx < 0 {
		return nil, notFound(d.ScheduleID, eventID)
	}
	return &d.Events[idx], nil
}

func notFound(scheduleID, eventID string) error {
	return errors.New(errors.CodeNotFound, "event %s not found in schedule %s", eventID, scheduleID)
}

func invalidTransition(e TimelineEvent, action string) error {
	return errors.New(errors.CodeInvalidTransition, "cannot %s event %s while %s", action, e.ID, e.Status).
		With("event_id", e.ID).
		With("status", string(e.Status))
}
