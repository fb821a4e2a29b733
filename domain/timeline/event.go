// Package timeline contains the core concepts of a live schedule day.
// It owns the events, their state machine and the invariants that hold on
// the authoritative copy. No runtime, network, or UI logic should be added here.
package timeline

import (
	"time"

	"github.com/samber/lo"
)

type Category string

const (
	CategoryCeremony  Category = "ceremony"
	CategoryReception Category = "reception"
	CategoryPhoto     Category = "photo"
	CategoryMusic     Category = "music"
	CategoryCatering  Category = "catering"
	CategoryOther     Category = "other"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDelayed    Status = "delayed"
)

type ChecklistItem struct {
	ID        string `json:"id" yaml:"id"`
	Task      string `json:"task" yaml:"task" validate:"required"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// TimelineEvent is one scheduled activity of the day.
// StartTime and EndTime are the current bounds, shifted by cascades.
type TimelineEvent struct {
	ID                string          `json:"id" yaml:"id" validate:"required"`
	Title             string          `json:"title" yaml:"title" validate:"required"`
	Description       string          `json:"description,omitempty" yaml:"description"`
	Category          Category        `json:"category" yaml:"category" validate:"oneof=ceremony reception photo music catering other"`
	StartTime         time.Time       `json:"start_time" yaml:"start_time"`
	EndTime           time.Time       `json:"end_time" yaml:"end_time"`
	ActualStartTime   *time.Time      `json:"actual_start_time,omitempty" yaml:"-"`
	ActualEndTime     *time.Time      `json:"actual_end_time,omitempty" yaml:"-"`
	Status            Status          `json:"status" yaml:"-"`
	DelayMinutes      int             `json:"delay_minutes" yaml:"-" validate:"gte=0"`
	DelayReason       string          `json:"delay_reason,omitempty" yaml:"-"`
	CascadedDelay     bool            `json:"cascaded_delay" yaml:"-"`
	AssignedVendorRef string          `json:"assigned_vendor_ref,omitempty" yaml:"assigned_vendor_ref"`
	CoordinatorRef    string          `json:"coordinator_ref,omitempty" yaml:"coordinator_ref"`
	Checklist         []ChecklistItem `json:"checklist,omitempty" yaml:"checklist" validate:"dive"`
	UpdatedBy         string          `json:"updated_by,omitempty" yaml:"-"`
}

// Started reports whether the event has an actual start, whatever its delay flag.
func (e TimelineEvent) Started() bool {
	return e.ActualStartTime != nil
}

// Duration is the length of the planned window.
func (e TimelineEvent) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// Clone returns a deep copy: pointers and the checklist are not shared.
func (e TimelineEvent) Clone() TimelineEvent {
	cp := e
	if e.ActualStartTime != nil {
		cp.ActualStartTime = lo.ToPtr(*e.ActualStartTime)
	}
	if e.ActualEndTime != nil {
		cp.ActualEndTime = lo.ToPtr(*e.ActualEndTime)
	}
	if e.Checklist != nil {
		cp.Checklist = make([]ChecklistItem, len(e.Checklist))
		copy(cp.Checklist, e.Checklist)
	}
	return cp
}

func (e TimelineEvent) checklistIndex(itemID string) int {
	_, idx, ok := lo.FindIndexOf(e.Checklist, func(item ChecklistItem) bool {
		return item.ID == itemID
	})
	if !ok {
		return -1
	}
	return idx
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// CoordinatorMessage is an ephemeral broadcast. It is never part of the
// persisted schedule state.
type CoordinatorMessage struct {
	Text      string    `json:"text"`
	Priority  Priority  `json:"priority"`
	SenderRef string    `json:"sender_ref"`
	Timestamp time.Time `json:"timestamp"`
}
