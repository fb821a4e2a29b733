package workers

import (
	"sync"

	"timeline-lab/contract"
)

// testRegistry is a minimal IRegistry; runtime.Registry cannot be imported
// from here without a cycle.
type testRegistry struct {
	mu    sync.Mutex
	sinks map[string]map[string]contract.EventSink
}

func newTestRegistry() *testRegistry {
	return &testRegistry{sinks: make(map[string]map[string]contract.EventSink)}
}

func (r *testRegistry) GetSinksForSchedule(scheduleID string) map[string]contract.EventSink {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[string]contract.EventSink)
	for k, v := range r.sinks[scheduleID] {
		res[k] = v
	}
	return res
}

func (r *testRegistry) Subscribe(clientID, scheduleID string, sink contract.EventSink) contract.EventSink {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sinks[scheduleID] == nil {
		r.sinks[scheduleID] = make(map[string]contract.EventSink)
	}
	previous := r.sinks[scheduleID][clientID]
	r.sinks[scheduleID][clientID] = sink
	return previous
}

func (r *testRegistry) Unsubscribe(clientID, scheduleID string) contract.EventSink {
	r.mu.Lock()
	defer r.mu.Unlock()
	sink := r.sinks[scheduleID][clientID]
	delete(r.sinks[scheduleID], clientID)
	return sink
}

func (r *testRegistry) UnsubscribeSink(clientID, scheduleID string, sink contract.EventSink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sinks[scheduleID][clientID] != sink {
		return false
	}
	delete(r.sinks[scheduleID], clientID)
	return true
}

func (r *testRegistry) UnsubscribeAll(scheduleID string) []contract.EventSink {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []contract.EventSink
	for _, s := range r.sinks[scheduleID] {
		res = append(res, s)
	}
	delete(r.sinks, scheduleID)
	return res
}
