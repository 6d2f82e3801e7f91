package search

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"homequery/internal/model"
)

// User-visible failure reasons. These are the only two failure classes the
// orchestrator distinguishes: the service answered and said no, or the
// service could not be reached/understood at all.
const (
	ReasonRequestFailed   = "request failed"
	ReasonConnectionError = "connection error"
)

// DefaultTopK is the result-count hint used when the caller does not
// configure one.
const DefaultTopK = 5

// Querier is the remote call the executor depends on.
type Querier interface {
	Query(ctx context.Context, query string, topK int) (*model.QueryServiceResponse, error)
}

// Executor drives the state machine through one remote call per submission:
// begin, query, then complete or fail. A submission that has been superseded
// by a newer one resolves into nothing; the machine discards its outcome by
// attempt number.
type Executor struct {
	machine  *Machine
	client   Querier
	topK     int
	initOnce sync.Once
}

// NewExecutor creates an executor issuing queries with the given result
// limit (DefaultTopK when limit is not positive).
func NewExecutor(machine *Machine, client Querier, topK int) *Executor {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Executor{
		machine: machine,
		client:  client,
		topK:    topK,
	}
}

// Machine returns the state machine this executor drives.
func (e *Executor) Machine() *Machine {
	return e.machine
}

// Submit starts a search for query with the given result-count hint
// (the configured default when topK is not positive). It transitions the
// machine to loading synchronously and issues the remote call on its own
// goroutine, so the caller observes the loading phase before the call
// resolves. A query that trims to empty is ignored entirely: no transition,
// no remote call, and Submit returns false.
//
// ctx governs the remote call only. There is no explicit cancellation of a
// superseded call; it runs to completion and its outcome is dropped.
func (e *Executor) Submit(ctx context.Context, query string, topK int) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return false
	}
	if topK <= 0 {
		topK = e.topK
	}

	attempt, ok := e.machine.Begin(trimmed)
	if !ok {
		return false
	}

	go e.run(ctx, attempt, trimmed, topK)
	return true
}

// Initialize behaves like Submit but runs at most once per executor
// lifetime, supporting a pre-filled query on first load. Later calls are
// no-ops regardless of the query and return false.
func (e *Executor) Initialize(ctx context.Context, query string) bool {
	accepted := false
	e.initOnce.Do(func() {
		accepted = e.Submit(ctx, query, 0)
	})
	return accepted
}

func (e *Executor) run(ctx context.Context, attempt uint64, query string, topK int) {
	resp, err := e.client.Query(ctx, query, topK)
	if err != nil {
		reason := ReasonConnectionError
		if errors.Is(err, ErrServiceFailure) {
			reason = ReasonRequestFailed
			if resp != nil && resp.Error != "" {
				log.Printf("Query service error for %q: %s", query, resp.Error)
			}
		} else {
			log.Printf("Query transport error for %q: %v", query, err)
		}
		if !e.machine.Fail(attempt, reason) {
			log.Printf("Discarding stale failure for attempt %d", attempt)
		}
		return
	}

	if !e.machine.Complete(attempt, resp.Result()) {
		log.Printf("Discarding stale result for attempt %d", attempt)
	}
}
