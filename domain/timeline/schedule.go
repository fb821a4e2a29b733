package timeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"timeline-lab/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

// ScheduleDay is the bounded set of events for one live occasion.
// The schedule id is supplied by the owning wedding entity and never invented here.
// Events are kept ordered by StartTime.
type ScheduleDay struct {
	ScheduleID string          `json:"schedule_id" yaml:"schedule_id" validate:"required"`
	Date       time.Time       `json:"date" yaml:"date"`
	Events     []TimelineEvent `json:"events" yaml:"events" validate:"dive"`
	// Version is the sequence number of the last state-changing delta.
	Version   uint64    `json:"version" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// NewScheduleDay builds a schedule from planned events created by the
// planning collaborator. Events are validated, default to not_started and
// get sorted by start time. Checklist items without id receive one.
func NewScheduleDay(scheduleID string, date time.Time, events []TimelineEvent) (ScheduleDay, error) {
	day := ScheduleDay{
		ScheduleID: scheduleID,
		Date:       truncateDay(date),
		Events:     lo.Map(events, func(e TimelineEvent, _ int) TimelineEvent { return prepare(e.Clone()) }),
	}
	if err := validate.Struct(day); err != nil {
		return ScheduleDay{}, errors.Wrap(errors.CodeInvariantViolation, err, "schedule %s is malformed", scheduleID)
	}
	slices.SortStableFunc(day.Events, func(a, b TimelineEvent) int {
		return a.StartTime.Compare(b.StartTime)
	})
	if err := day.Validate(); err != nil {
		return ScheduleDay{}, err
	}
	return day, nil
}

func prepare(e TimelineEvent) TimelineEvent {
	if e.Status == "" {
		e.Status = StatusNotStarted
	}
	if e.Category == "" {
		e.Category = CategoryOther
	}
	for i := range e.Checklist {
		if e.Checklist[i].ID == "" {
			e.Checklist[i].ID = uuid.NewString()
		}
	}
	return e
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Clone returns a deep copy of the schedule. Mutations are applied on a
// clone and swapped in only once they are validated and persisted.
func (d ScheduleDay) Clone() ScheduleDay {
	cp := d
	cp.Events = lo.Map(d.Events, func(e TimelineEvent, _ int) TimelineEvent { return e.Clone() })
	return cp
}

// IndexOf returns the start-time position of an event, or -1.
func (d ScheduleDay) IndexOf(eventID string) int {
	return slices.IndexFunc(d.Events, func(e TimelineEvent) bool { return e.ID == eventID })
}

// Event returns a copy of the event with the given id.
func (d ScheduleDay) Event(eventID string) (TimelineEvent, error) {
	idx := d.IndexOf(eventID)
	if idx < 0 {
		return TimelineEvent{}, errors.New(errors.CodeNotFound, "event %s not found in schedule %s", eventID, d.ScheduleID)
	}
	return d.Events[idx].Clone(), nil
}

// Validate checks every invariant of the authoritative copy.
func (d ScheduleDay) Validate() error {
	var violations []string
	seen := make(map[string]struct{}, len(d.Events))
	for i, e := range d.Events {
		if _, ok := seen[e.ID]; ok {
			violations = append(violations, fmt.Sprintf("event %s: duplicate id", e.ID))
		}
		seen[e.ID] = struct{}{}
		violations = append(violations, eventViolations(e)...)
		if i > 0 && e.StartTime.Before(d.Events[i-1].StartTime) {
			violations = append(violations, fmt.Sprintf("event %s: starts before %s", e.ID, d.Events[i-1].ID))
		}
	}
	if len(violations) > 0 {
		return errors.New(errors.CodeInvariantViolation, "%s", strings.Join(violations, "; "))
	}
	return nil
}

func eventViolations(e TimelineEvent) []string {
	var res []string
	if !e.EndTime.After(e.StartTime) {
		res = append(res, fmt.Sprintf("event %s: end must be after start", e.ID))
	}
	if e.DelayMinutes < 0 {
		res = append(res, fmt.Sprintf("event %s: negative delay", e.ID))
	}
	switch e.Status {
	case StatusNotStarted:
		if e.ActualStartTime != nil || e.ActualEndTime != nil {
			res = append(res, fmt.Sprintf("event %s: not started but has actual times", e.ID))
		}
	case StatusInProgress:
		if e.ActualStartTime == nil || e.ActualEndTime != nil {
			res = append(res, fmt.Sprintf("event %s: in progress needs an actual start and no actual end", e.ID))
		}
	case StatusDelayed:
		if e.ActualEndTime != nil {
			res = append(res, fmt.Sprintf("event %s: delayed but already ended", e.ID))
		}
	case StatusCompleted:
		if e.ActualEndTime == nil {
			res = append(res, fmt.Sprintf("event %s: completed without actual end", e.ID))
		}
	default:
		res = append(res, fmt.Sprintf("event %s: unknown status %q", e.ID, e.Status))
	}
	// A completed event keeps its delay history.
	if e.DelayMinutes > 0 && e.Status != StatusDelayed && e.Status != StatusCompleted {
		res = append(res, fmt.Sprintf("event %s: delay minutes without delayed status", e.ID))
	}
	return res
}
