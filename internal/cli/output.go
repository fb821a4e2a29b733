package cli

import (
	"fmt"
	"io"
	"strings"

	"timeline-lab/domain/event"
	"timeline-lab/domain/progress"
	"timeline-lab/domain/timeline"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// printProto prints a message as it travels on the wire.
func printProto(w io.Writer, m proto.Message) error {
	marshaler := protojson.MarshalOptions{UseProtoNames: true, Multiline: true, Indent: "  ", EmitUnpopulated: true}
	_, err := fmt.Fprintln(w, marshaler.Format(m))
	return err
}

type painter struct {
	enabled bool
}

func (p painter) paint(style color.Style, s string) string {
	if !p.enabled {
		return s
	}
	return style.Render(s)
}

func (p painter) status(s timeline.Status) string {
	switch s {
	case timeline.StatusCompleted:
		return p.paint(color.New(color.FgGreen), string(s))
	case timeline.StatusInProgress:
		return p.paint(color.New(color.FgCyan, color.OpBold), string(s))
	case timeline.StatusDelayed:
		return p.paint(color.New(color.FgRed, color.OpBold), string(s))
	default:
		return string(s)
	}
}

func (p painter) priority(pr timeline.Priority) string {
	switch pr {
	case timeline.PriorityUrgent:
		return p.paint(color.New(color.BgRed, color.FgWhite), strings.ToUpper(string(pr)))
	case timeline.PriorityHigh:
		return p.paint(color.New(color.FgYellow, color.OpBold), strings.ToUpper(string(pr)))
	default:
		return strings.ToUpper(string(pr))
	}
}

func renderDeltas(w io.Writer, deltas []event.DomainEvent, p painter) {
	table := newTable(w, "Seq", "Kind", "Event", "Status", "Start", "End", "Detail")
	for _, d := range deltas {
		row := []string{fmt.Sprint(d.Seq()), string(d.Kind()), "", "", "", "", ""}
		switch e := d.(type) {
		case event.EventStarted:
			fillEvent(row, e.Event, p)
		case event.EventCompleted:
			fillEvent(row, e.Event, p)
		case event.EventDelayed:
			fillEvent(row, e.Event, p)
			row[6] = fmt.Sprintf("+%d min %s", e.Event.DelayMinutes, e.Event.DelayReason)
		case event.EventUpdated:
			fillEvent(row, e.Event, p)
			if e.Event.CascadedDelay {
				row[6] = "cascaded"
			}
		case event.ChecklistUpdated:
			row[2] = e.EventID
			row[6] = fmt.Sprintf("%s %s", checkbox(e.Item.Completed), e.Item.Task)
		case event.CoordinatorMessage:
			row[6] = fmt.Sprintf("[%s] %s", p.priority(e.Message.Priority), e.Message.Text)
		}
		table.Append(row)
	}
	table.Render()
}

func fillEvent(row []string, e timeline.TimelineEvent, p painter) {
	row[2] = e.ID
	row[3] = p.status(e.Status)
	row[4] = e.StartTime.Format("15:04")
	row[5] = e.EndTime.Format("15:04")
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func renderDay(w io.Writer, day timeline.ScheduleDay, p painter) {
	fmt.Fprintf(w, "%s  %s  v%d\n", day.ScheduleID, day.Date.Format("2006-01-02"), day.Version)
	table := newTable(w, "Event", "Title", "Status", "Start", "End", "Vendor", "Checklist")
	for _, e := range day.Events {
		done := 0
		for _, item := range e.Checklist {
			if item.Completed {
				done++
			}
		}
		table.Append([]string{
			e.ID, e.Title, p.status(e.Status),
			e.StartTime.Format("15:04"), e.EndTime.Format("15:04"),
			e.AssignedVendorRef, fmt.Sprintf("%d/%d", done, len(e.Checklist)),
		})
	}
	table.Render()
}

func renderView(w io.Writer, view progress.View, messages []timeline.CoordinatorMessage, p painter) {
	fmt.Fprintf(w, "%s\n", view.At.Local().Format("15:04:05"))
	if view.Current != nil {
		fmt.Fprintf(w, "%s %s (%.0f%%)\n", p.paint(color.New(color.FgCyan, color.OpBold), "NOW "), view.Current.Title, view.Current.Percent)
	}
	if view.Next != nil {
		fmt.Fprintf(w, "%s %s at %s\n", p.paint(color.New(color.FgMagenta), "NEXT"), view.Next.Title, view.Next.StartTime.Local().Format("15:04"))
	}
	table := newTable(w, "Event", "Status", "When", "Start", "End", "Progress")
	for _, e := range view.Events {
		start := e.StartTime.Local().Format("15:04")
		if e.CascadedDelay {
			start += "*"
		}
		table.Append([]string{
			e.Title, p.status(e.Status), string(e.Classification),
			start, e.EndTime.Local().Format("15:04"), progressBar(e.Percent),
		})
	}
	table.Render()
	for _, m := range messages {
		fmt.Fprintf(w, "[%s] %s: %s\n", p.priority(m.Priority), m.SenderRef, m.Text)
	}
}

func progressBar(percent float64) string {
	const width = 10
	filled := int(percent / 100 * width)
	return fmt.Sprintf("%s%s %3.0f%%", strings.Repeat("#", filled), strings.Repeat(".", width-filled), percent)
}
