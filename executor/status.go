package executor

import (
	"context"
	"sync"
	"time"
)

// Status is the client-observable lifecycle of one supertransaction.
// Transitions are linear with no branching back; terminal statuses
// return to idle after a cool-down.
type Status string

const (
	StatusIdle                 Status = "idle"
	StatusPreparing            Status = "preparing"
	StatusSigningAuthorization Status = "signing_authorization"
	StatusGettingQuote         Status = "getting_quote"
	StatusSigningExecution     Status = "signing_execution"
	StatusExecuting            Status = "executing"
	StatusConfirming           Status = "confirming"
	StatusSuccess              Status = "success"
	StatusFailed               Status = "failed"

	// StatusProcessing is the reporter-level outcome when the relay
	// produced no terminal receipt within the wait window.
	StatusProcessing Status = "processing"
)

func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

const (
	IDLE_COOLDOWN = 3 * time.Second
)

// StatusTracker publishes per-transaction status transitions to
// subscribers.
type StatusTracker struct {
	mu       sync.Mutex
	statuses map[string]Status
	subs     map[string]map[chan Status]struct{}

	cooldown time.Duration
}

func NewStatusTracker() *StatusTracker {
	return &StatusTracker{
		statuses: make(map[string]Status),
		subs:     make(map[string]map[chan Status]struct{}),
		cooldown: IDLE_COOLDOWN,
	}
}

func (t *StatusTracker) Status(id string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.statuses[id]
	if !ok {
		return StatusIdle
	}
	return s
}

// Subscribe streams transitions for id into statusChn until ctx is
// done. Slow subscribers miss intermediate transitions rather than
// blocking the pipeline.
func (t *StatusTracker) Subscribe(ctx context.Context, id string, statusChn chan Status) {
	t.mu.Lock()
	if t.subs[id] == nil {
		t.subs[id] = make(map[chan Status]struct{})
	}
	t.subs[id][statusChn] = struct{}{}
	t.mu.Unlock()

	go func() {
		<-ctx.Done()

		t.mu.Lock()
		delete(t.subs[id], statusChn)
		if len(t.subs[id]) == 0 {
			delete(t.subs, id)
		}
		t.mu.Unlock()
	}()
}

// Set records a transition and notifies subscribers. A terminal status
// schedules the automatic return to idle.
func (t *StatusTracker) Set(id string, s Status) {
	t.mu.Lock()
	t.statuses[id] = s
	for ch := range t.subs[id] {
		select {
		case ch <- s:
		default:
		}
	}
	t.mu.Unlock()

	if s.Terminal() {
		time.AfterFunc(t.cooldown, func() {
			t.reset(id, s)
		})
	}
}

func (t *StatusTracker) reset(id string, from Status) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// a newer flow may have reused the id
	if t.statuses[id] != from {
		return
	}

	delete(t.statuses, id)
	for ch := range t.subs[id] {
		select {
		case ch <- StatusIdle:
		default:
		}
	}
}
