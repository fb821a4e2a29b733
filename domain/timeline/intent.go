package timeline

import (
	"time"

	"timeline-lab/errors"
)

type IntentKind string

const (
	IntentStart           IntentKind = "start"
	IntentComplete        IntentKind = "complete"
	IntentReportDelay     IntentKind = "report_delay"
	IntentToggleChecklist IntentKind = "toggle_checklist"
	IntentEditEvent       IntentKind = "edit_event"
	IntentBroadcast       IntentKind = "broadcast"
)

// Intent is a client-submitted request to change the schedule.
// Target is the event the intent applies to, empty for broadcasts.
type Intent interface {
	Kind() IntentKind
	Target() string
}

type StartIntent struct {
	EventID string `json:"event_id" validate:"required"`
}

func (i StartIntent) Kind() IntentKind { return IntentStart }
func (i StartIntent) Target() string   { return i.EventID }

type CompleteIntent struct {
	EventID string `json:"event_id" validate:"required"`
}

func (i CompleteIntent) Kind() IntentKind { return IntentComplete }
func (i CompleteIntent) Target() string   { return i.EventID }

type ReportDelayIntent struct {
	EventID string `json:"event_id" validate:"required"`
	Minutes int    `json:"minutes" validate:"gt=0"`
	Reason  string `json:"reason" validate:"max=500"`
	Cascade bool   `json:"cascade"`
}

func (i ReportDelayIntent) Kind() IntentKind { return IntentReportDelay }
func (i ReportDelayIntent) Target() string   { return i.EventID }

type ToggleChecklistIntent struct {
	EventID   string `json:"event_id" validate:"required"`
	ItemID    string `json:"item_id" validate:"required"`
	Completed bool   `json:"completed"`
}

func (i ToggleChecklistIntent) Kind() IntentKind { return IntentToggleChecklist }
func (i ToggleChecklistIntent) Target() string   { return i.EventID }

// EventPatch is a generic field patch. Nil fields are left untouched.
// Status, delay and actual times are only changed through transitions.
type EventPatch struct {
	Title             *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Description       *string    `json:"description,omitempty"`
	Category          *Category  `json:"category,omitempty" validate:"omitempty,oneof=ceremony reception photo music catering other"`
	StartTime         *time.Time `json:"start_time,omitempty"`
	EndTime           *time.Time `json:"end_time,omitempty"`
	AssignedVendorRef *string    `json:"assigned_vendor_ref,omitempty"`
}

type EditEventIntent struct {
	EventID string     `json:"event_id" validate:"required"`
	Patch   EventPatch `json:"patch"`
}

func (i EditEventIntent) Kind() IntentKind { return IntentEditEvent }
func (i EditEventIntent) Target() string   { return i.EventID }

type BroadcastIntent struct {
	Text     string   `json:"text" validate:"required,max=1000"`
	Priority Priority `json:"priority" validate:"oneof=low normal high urgent"`
}

func (i BroadcastIntent) Kind() IntentKind { return IntentBroadcast }
func (i BroadcastIntent) Target() string   { return "" }

// ValidateIntent rejects malformed intents before they reach the schedule owner.
func ValidateIntent(intent Intent) error {
	if intent == nil {
		return errors.New(errors.CodeInvariantViolation, "missing intent")
	}
	if err := validate.Struct(intent); err != nil {
		return errors.Wrap(errors.CodeInvariantViolation, err, "malformed %s intent", intent.Kind())
	}
	return nil
}
