// Package authority decides whether an actor may mutate an event.
// It is a capability check, not a role hierarchy.
package authority

import (
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
)

type Role string

const (
	RoleCoordinator Role = "coordinator"
	// RoleCIO is the coordinator super-role.
	RoleCIO      Role = "cio"
	RoleVendor   Role = "vendor"
	RoleObserver Role = "observer"
	RoleGuest    Role = "guest"
)

// Actor is an identity resolved by the external actor directory.
type Actor struct {
	Ref         string `yaml:"ref" validate:"required"`
	Role        Role   `yaml:"role" validate:"oneof=coordinator cio vendor observer guest"`
	DisplayName string `yaml:"name"`
}

func (a Actor) IsCoordinator() bool {
	return a.Role == RoleCoordinator || a.Role == RoleCIO
}

// CanMutate holds when the actor coordinates the day or is the vendor
// assigned to the event.
func CanMutate(actor Actor, event timeline.TimelineEvent) bool {
	if actor.IsCoordinator() {
		return true
	}
	return actor.Role == RoleVendor && actor.Ref != "" && actor.Ref == event.AssignedVendorRef
}

// Authorize gates start, complete, delay and checklist intents.
func Authorize(actor Actor, event timeline.TimelineEvent) error {
	if CanMutate(actor, event) {
		return nil
	}
	return errors.New(errors.CodeUnauthorized, "%s %q may not mutate event %s", actor.Role, actor.Ref, event.ID).
		With("actor_ref", actor.Ref).
		With("event_id", event.ID)
}

// AuthorizeCoordinator gates intents reserved to coordinators: generic
// event edits and broadcast messages.
func AuthorizeCoordinator(actor Actor) error {
	if actor.IsCoordinator() {
		return nil
	}
	return errors.New(errors.CodeUnauthorized, "%s %q is not a coordinator", actor.Role, actor.Ref).
		With("actor_ref", actor.Ref)
}

// AuthorizeIntent applies the gate matching the intent kind.
func AuthorizeIntent(actor Actor, intent timeline.Intent, event timeline.TimelineEvent) error {
	switch intent.Kind() {
	case timeline.IntentEditEvent, timeline.IntentBroadcast:
		return AuthorizeCoordinator(actor)
	default:
		return Authorize(actor, event)
	}
}
