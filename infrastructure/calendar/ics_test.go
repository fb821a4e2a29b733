package calendar

import (
	"bytes"
	"strings"
	"testing"

	"timeline-lab/internal/testkit"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/require"
)

func TestExport_WholeDay(t *testing.T) {
	req := require.New(t)
	day := testkit.WeddingDay()
	_, err := day.ReportDelay("ceremony", "alice", 15, "Bride is late", true, testkit.At(10, 0))
	req.NoError(err)
	day.Version = 4
	day.UpdatedAt = testkit.At(10, 0)

	var buf bytes.Buffer
	req.NoError(Export(&buf, day))

	// The feed parses back with one VEVENT per event
	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	req.NoError(err)
	events := cal.Events()
	req.Len(events, 4)
	req.Equal("ceremony.wedding-2026-06-20@timeline-lab", events[0].Id())
	req.Equal("Ceremony", events[0].GetProperty(ical.ComponentPropertySummary).Value)
	req.Contains(events[0].GetProperty(ical.ComponentPropertyDescription).Value, "Delayed by 15 min")
	req.Equal("4", events[0].GetProperty(ical.ComponentPropertySequence).Value)

	// Cascaded events carry their shifted bounds
	start, err := events[1].GetStartAt()
	req.NoError(err)
	req.True(testkit.At(10, 45).Equal(start))
	req.Equal("TENTATIVE", events[1].GetProperty(ical.ComponentPropertyStatus).Value)
}

func TestExport_ForVendor(t *testing.T) {
	req := require.New(t)
	day := testkit.WeddingDay()
	_, err := day.Start("photos", "vendor-photo", testkit.At(10, 31))
	req.NoError(err)
	_, err = day.Complete("photos", "vendor-photo", testkit.At(11, 20))
	req.NoError(err)

	var buf bytes.Buffer
	req.NoError(Export(&buf, day, ForVendor(testkit.Photographer.Ref)))

	cal, err := ical.ParseCalendar(&buf)
	req.NoError(err)
	req.Len(cal.Events(), 1)
	photos := cal.Events()[0]
	req.Equal("CONFIRMED", photos.GetProperty(ical.ComponentPropertyStatus).Value)
	end, err := photos.GetEndAt()
	req.NoError(err)
	req.True(testkit.At(11, 20).Equal(end))
}
