// Package audit publishes a record of every mutation the dashboard attempts.
package audit

import (
	"context"
	"sync"
	"time"
)

type Outcome string

const (
	OutcomeApplied    Outcome = "applied"
	OutcomeRolledBack Outcome = "rolled_back"
	OutcomeCreated    Outcome = "created"
	OutcomeFailed     Outcome = "failed"
)

// Event describes one mutation attempt.
type Event struct {
	Resource string      `json:"resource"`
	RecordID string      `json:"recordId,omitempty"`
	Field    string      `json:"field,omitempty"`
	Value    interface{} `json:"value,omitempty"`
	Outcome  Outcome     `json:"outcome"`
	Actor    string      `json:"actor,omitempty"`
	Error    string      `json:"error,omitempty"`
	At       time.Time   `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Noop discards events; used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

// Recorder keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
