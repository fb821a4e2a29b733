package runtime

import (
	"sync"

	"timeline-lab/contract"

	"github.com/samber/lo"
)

var _ contract.IRegistry = (*Registry)(nil)

type Registry struct {
	mu      sync.RWMutex
	members map[string]map[string]contract.EventSink // map schedule -> client -> Sink
}

func NewRegistry() *Registry {
	return &Registry{
		members: make(map[string]map[string]contract.EventSink),
	}
}

// GetSinksForSchedule returns a copy of the active sinks of a schedule,
// keyed by client id. The caller may iterate it without holding the lock.
// Returns nil if nobody follows the schedule.
func (r *Registry) GetSinksForSchedule(scheduleID string) map[string]contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.members[scheduleID]
	if !ok {
		return nil
	}
	res := make(map[string]contract.EventSink, len(members))
	for clientID, sink := range members {
		res[clientID] = sink
	}
	return res
}

// Subscribe registers the sink of a client on a schedule.
// A client has at most one sink per schedule: a second subscription
// replaces the first one, which is returned so the caller can close it.
func (r *Registry) Subscribe(clientID, scheduleID string, sink contract.EventSink) contract.EventSink {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[scheduleID]; !ok {
		r.members[scheduleID] = make(map[string]contract.EventSink)
	}
	previous := r.members[scheduleID][clientID]
	r.members[scheduleID][clientID] = sink
	return previous
}

// Unsubscribe removes a client from a schedule and returns its sink.
// No empty schedule entry is left behind.
func (r *Registry) Unsubscribe(clientID, scheduleID string) contract.EventSink {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.members[scheduleID]
	if !ok {
		return nil
	}
	sink := members[clientID]
	delete(members, clientID)
	if len(members) == 0 {
		delete(r.members, scheduleID)
	}
	return sink
}

// UnsubscribeAll drops every client of a schedule.
func (r *Registry) UnsubscribeAll(scheduleID string) []contract.EventSink {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.members[scheduleID]
	delete(r.members, scheduleID)
	return lo.Values(members)
}

// UnsubscribeSink removes the client only while it still owns the given sink,
// so a stale disconnection cannot drop a newer subscription.
func (r *Registry) UnsubscribeSink(clientID, scheduleID string, sink contract.EventSink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.members[scheduleID]
	if !ok || members[clientID] != sink {
		return false
	}
	delete(members, clientID)
	if len(members) == 0 {
		delete(r.members, scheduleID)
	}
	return true
}
