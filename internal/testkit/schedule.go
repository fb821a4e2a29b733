// Package testkit holds fixtures and in-memory fakes shared by tests.
package testkit

import (
	"context"
	"sync"
	"time"

	"timeline-lab/domain/authority"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"

	"github.com/samber/lo"
)

const ScheduleID = "wedding-2026-06-20"

var (
	Coordinator  = authority.Actor{Ref: "alice", Role: authority.RoleCoordinator, DisplayName: "Alice"}
	CIO          = authority.Actor{Ref: "carla", Role: authority.RoleCIO, DisplayName: "Carla"}
	Photographer = authority.Actor{Ref: "vendor-photo", Role: authority.RoleVendor, DisplayName: "Studio Lumen"}
	DJ           = authority.Actor{Ref: "vendor-dj", Role: authority.RoleVendor, DisplayName: "DJ Nova"}
	Observer     = authority.Actor{Ref: "olivia", Role: authority.RoleObserver, DisplayName: "Olivia"}
	Guest        = authority.Actor{Ref: "gus", Role: authority.RoleGuest, DisplayName: "Gus"}
)

func Actors() []authority.Actor {
	return []authority.Actor{Coordinator, CIO, Photographer, DJ, Observer, Guest}
}

// Date is the wedding day, at midnight UTC.
var Date = time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)

// At returns the wedding day at hh:mm UTC.
func At(hour, minute int) time.Time {
	return Date.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// WeddingDay is a four-event schedule:
//
//	ceremony     10:00-10:30  coordinator only
//	photos       10:30-11:15  vendor-photo
//	cocktail     11:15-12:00  coordinator only
//	first-dance  12:00-12:15  vendor-dj
func WeddingDay() timeline.ScheduleDay {
	day, err := timeline.NewScheduleDay(ScheduleID, Date, []timeline.TimelineEvent{
		{
			ID: "ceremony", Title: "Ceremony", Category: timeline.CategoryCeremony,
			StartTime: At(10, 0), EndTime: At(10, 30), CoordinatorRef: Coordinator.Ref,
			Checklist: []timeline.ChecklistItem{{ID: "rings", Task: "Bring the rings"}, {ID: "music", Task: "Cue the entrance music"}},
		},
		{
			ID: "photos", Title: "Group photos", Category: timeline.CategoryPhoto,
			StartTime: At(10, 30), EndTime: At(11, 15), AssignedVendorRef: Photographer.Ref,
			Checklist: []timeline.ChecklistItem{{ID: "family", Task: "Family shot"}},
		},
		{
			ID: "cocktail", Title: "Cocktail", Category: timeline.CategoryCatering,
			StartTime: At(11, 15), EndTime: At(12, 0),
		},
		{
			ID: "first-dance", Title: "First dance", Category: timeline.CategoryMusic,
			StartTime: At(12, 0), EndTime: At(12, 15), AssignedVendorRef: DJ.Ref,
		},
	})
	if err != nil {
		panic(err)
	}
	return day
}

// ScheduleStore is an in-memory IScheduleRepository fake.
type ScheduleStore struct {
	mu        sync.Mutex
	Schedules map[string]timeline.ScheduleDay
	Saves     int
	// Fail makes every Save return StoreUnavailable while set.
	Fail bool
}

func NewScheduleStore(days ...timeline.ScheduleDay) *ScheduleStore {
	s := &ScheduleStore{Schedules: make(map[string]timeline.ScheduleDay)}
	for _, d := range days {
		s.Schedules[d.ScheduleID] = d.Clone()
	}
	return s
}

func (s *ScheduleStore) Load(_ context.Context, scheduleID string) (timeline.ScheduleDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.Schedules[scheduleID]
	if !ok {
		return timeline.ScheduleDay{}, errors.New(errors.CodeNotFound, "schedule %s not found", scheduleID)
	}
	return day.Clone(), nil
}

func (s *ScheduleStore) Save(_ context.Context, day timeline.ScheduleDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return errors.New(errors.CodeStoreUnavailable, "store is down")
	}
	s.Saves++
	s.Schedules[day.ScheduleID] = day.Clone()
	return nil
}

func (s *ScheduleStore) ListByDateRange(_ context.Context, from, to time.Time) ([]timeline.ScheduleDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Filter(lo.Values(s.Schedules), func(d timeline.ScheduleDay, _ int) bool {
		return !d.Date.Before(from) && !d.Date.After(to)
	}), nil
}

func (s *ScheduleStore) SetFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fail = fail
}

func (s *ScheduleStore) Get(scheduleID string) timeline.ScheduleDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Schedules[scheduleID].Clone()
}
