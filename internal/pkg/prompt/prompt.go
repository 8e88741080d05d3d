// Package prompt gates sensitive actions behind an explicit confirmation and
// keeps the notifications shown after they finish.
package prompt

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrPromptNotFound = errors.New("confirmation not found or already answered")

// Severity drives the visual treatment of a prompt.
type Severity string

const (
	SeverityNeutral Severity = "neutral"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeveritySuccess Severity = "success"
)

// Prompt is what the user sees before a gated action runs.
type Prompt struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	ConfirmLabel string   `json:"confirmLabel"`
	CancelLabel  string   `json:"cancelLabel"`
	Severity     Severity `json:"severity"`
}

// Action runs once the user confirms. Its notification is what the user sees
// next; err is the failure behind an error notification, if any.
type Action func(ctx context.Context) (n Notification, err error)

// Gate holds prompts awaiting an answer, in the order they were asked.
type Gate struct {
	mu      sync.Mutex
	pending []pendingAction
}

type pendingAction struct {
	prompt Prompt
	action Action
}

func NewGate() *Gate {
	return &Gate{}
}

// Ask registers action behind p and returns p with its id assigned. Nothing runs yet.
func (g *Gate) Ask(p Prompt, action Action) Prompt {
	p.ID = uuid.NewString()
	if p.ConfirmLabel == "" {
		p.ConfirmLabel = "Confirm"
	}
	if p.CancelLabel == "" {
		p.CancelLabel = "Cancel"
	}
	if p.Severity == "" {
		p.Severity = SeverityNeutral
	}

	g.mu.Lock()
	g.pending = append(g.pending, pendingAction{prompt: p, action: action})
	g.mu.Unlock()
	return p
}

// Confirm removes the prompt and runs its action, returning whatever the action
// returned. An unknown or already answered id yields ErrPromptNotFound.
func (g *Gate) Confirm(ctx context.Context, id string) (Notification, error) {
	pa, ok := g.take(id)
	if !ok {
		return Notification{}, ErrPromptNotFound
	}
	return pa.action(ctx)
}

// Cancel removes the prompt without running anything.
func (g *Gate) Cancel(id string) error {
	if _, ok := g.take(id); !ok {
		return ErrPromptNotFound
	}
	return nil
}

// Pending lists prompts still awaiting an answer, oldest first.
func (g *Gate) Pending() []Prompt {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Prompt, 0, len(g.pending))
	for _, pa := range g.pending {
		out = append(out, pa.prompt)
	}
	return out
}

func (g *Gate) take(id string) (pendingAction, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, pa := range g.pending {
		if pa.prompt.ID == id {
			g.pending = append(g.pending[:i], g.pending[i+1:]...)
			return pa, true
		}
	}
	return pendingAction{}, false
}
