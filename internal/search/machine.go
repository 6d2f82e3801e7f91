package search

import (
	"strings"
	"sync"

	"homequery/internal/model"

	"github.com/google/uuid"
)

// Machine owns the lifecycle state of one search session. State moves
// idle -> loading -> success/error, and any non-loading state re-enters
// loading on a fresh Begin. All mutation goes through Begin, Complete and
// Fail; Complete/Fail must present the attempt number their Begin returned,
// and an attempt that has been superseded by a newer Begin is discarded
// without touching state. That last-writer-wins rule is keyed by initiation
// order, not completion order.
type Machine struct {
	mu          sync.Mutex
	state       model.SearchState
	subscribers map[chan model.SearchState]struct{}
}

// NewMachine creates a machine in the idle phase with an empty query.
func NewMachine() *Machine {
	return &Machine{
		state:       model.SearchState{Phase: model.PhaseIdle},
		subscribers: make(map[chan model.SearchState]struct{}),
	}
}

// Begin starts a new search attempt for query and transitions to loading,
// superseding any in-flight or terminal state. A query that trims to empty
// is rejected: no transition, no attempt number, ok=false.
func (m *Machine) Begin(query string) (attempt uint64, ok bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Attempt++
	m.state.SearchID = uuid.NewString()
	m.state.QueryText = trimmed
	m.state.Phase = model.PhaseLoading
	m.state.Result = nil
	m.state.ErrorReason = ""

	m.notifyLocked()
	return m.state.Attempt, true
}

// Complete finishes the given attempt with a successful result. Returns
// false, with no state change, if the attempt is stale or the machine is
// not loading that attempt.
func (m *Machine) Complete(attempt uint64, result *model.SearchResult) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.currentLocked(attempt) {
		return false
	}

	m.state.Phase = model.PhaseSuccess
	m.state.Result = result
	m.state.ErrorReason = ""

	m.notifyLocked()
	return true
}

// Fail finishes the given attempt with a human-readable failure reason.
// Returns false, with no state change, if the attempt is stale or the
// machine is not loading that attempt.
func (m *Machine) Fail(attempt uint64, reason string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.currentLocked(attempt) {
		return false
	}

	m.state.Phase = model.PhaseError
	m.state.Result = nil
	m.state.ErrorReason = reason

	m.notifyLocked()
	return true
}

// currentLocked reports whether attempt is the in-flight attempt.
func (m *Machine) currentLocked(attempt uint64) bool {
	return m.state.Phase == model.PhaseLoading && m.state.Attempt == attempt
}

// Snapshot returns a copy of the current state. The embedded result, once
// set, is never mutated, so sharing its pointer across snapshots is safe.
func (m *Machine) Snapshot() model.SearchState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers a channel that receives a state snapshot after every
// accepted transition. The channel is buffered; a subscriber that falls
// behind misses intermediate snapshots rather than blocking transitions.
func (m *Machine) Subscribe() chan model.SearchState {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan model.SearchState, 16)
	m.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes a channel returned by Subscribe.
func (m *Machine) Unsubscribe(ch chan model.SearchState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.subscribers[ch]; ok {
		delete(m.subscribers, ch)
		close(ch)
	}
}

func (m *Machine) notifyLocked() {
	for ch := range m.subscribers {
		select {
		case ch <- m.state:
		default:
		}
	}
}
