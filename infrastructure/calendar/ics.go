// Package calendar exports a schedule day as an iCalendar feed, so vendors
// can follow their slots from any calendar application.
package calendar

import (
	"fmt"
	"io"
	"strings"

	"timeline-lab/domain/timeline"

	ical "github.com/arran4/golang-ical"
	"github.com/samber/lo"
)

const productID = "timeline-lab"

// Filter keeps the events an export should contain.
type Filter func(timeline.TimelineEvent) bool

// ForVendor keeps the events assigned to one vendor.
func ForVendor(vendorRef string) Filter {
	return func(e timeline.TimelineEvent) bool { return e.AssignedVendorRef == vendorRef }
}

// Export writes the day as a PUBLISH calendar. Delayed events carry their
// delay in the description; completed ones are CONFIRMED with their actual
// bounds.
func Export(w io.Writer, day timeline.ScheduleDay, filters ...Filter) error {
	cal := ical.NewCalendarFor(productID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetName(fmt.Sprintf("Schedule %s", day.ScheduleID))
	cal.SetXWRCalName(fmt.Sprintf("Schedule %s", day.ScheduleID))

	events := lo.Filter(day.Events, func(e timeline.TimelineEvent, _ int) bool {
		return lo.EveryBy(filters, func(f Filter) bool { return f(e) })
	})
	for _, e := range events {
		vevent := cal.AddEvent(fmt.Sprintf("%s.%s@%s", e.ID, day.ScheduleID, productID))
		vevent.SetDtStampTime(day.UpdatedAt)
		vevent.SetSequence(int(day.Version))
		vevent.SetSummary(e.Title)
		vevent.SetDescription(description(e))
		vevent.AddCategory(strings.ToUpper(string(e.Category)))
		start, end := e.StartTime, e.EndTime
		if e.Status == timeline.StatusCompleted && e.ActualStartTime != nil && e.ActualEndTime != nil {
			start, end = *e.ActualStartTime, *e.ActualEndTime
		}
		vevent.SetStartAt(start)
		vevent.SetEndAt(end)
		vevent.SetStatus(objectStatus(e))
	}
	return cal.SerializeTo(w)
}

func description(e timeline.TimelineEvent) string {
	var b strings.Builder
	b.WriteString(e.Description)
	if e.Status == timeline.StatusDelayed {
		fmt.Fprintf(&b, "\nDelayed by %d min", e.DelayMinutes)
		if e.DelayReason != "" {
			fmt.Fprintf(&b, ": %s", e.DelayReason)
		}
	}
	if e.CascadedDelay {
		b.WriteString("\nShifted by an earlier delay")
	}
	for _, item := range e.Checklist {
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "\n%s %s", mark, item.Task)
	}
	return strings.TrimSpace(b.String())
}

func objectStatus(e timeline.TimelineEvent) ical.ObjectStatus {
	switch e.Status {
	case timeline.StatusCompleted, timeline.StatusInProgress:
		return ical.ObjectStatusConfirmed
	default:
		return ical.ObjectStatusTentative
	}
}
