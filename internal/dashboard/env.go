package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/middleware"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/audit"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/logger"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/optimistic"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/prompt"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

// Env is what every feature handler needs besides its own repository.
type Env struct {
	API          *apiclient.Client
	Registry     *Registry
	Store        session.Store
	Audit        audit.Publisher
	Log          *logger.Logger
	CookieSecure bool
}

// Begin returns the session and workspace of an authenticated request. When it
// returns false a response has already been written.
func (e *Env) Begin(c *gin.Context) (*session.Session, *Workspace, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		response.SessionExpired(c, "Please log in to continue")
		return nil, nil, false
	}
	return s, e.Registry.Workspace(s.ID), true
}

// EndSession destroys s and everything cached for it. It is the response to
// any 401 from the API, whatever the user was doing.
func (e *Env) EndSession(c *gin.Context, s *session.Session) {
	if err := e.Store.Delete(c.Request.Context(), s.ID); err != nil {
		e.Log.Warn("failed to delete session %s: %v", s.ID, err)
	}
	e.Registry.Drop(s.ID)
	middleware.ClearSessionCookie(c, e.CookieSecure)
	response.SessionExpired(c, "Your session has expired. Please log in again.")
}

// ListFailure answers a failed list fetch. Optional features that the API
// refuses or lacks come back as a capability to render degraded; for every
// other error a response is written and nil is returned.
func (e *Env) ListFailure(c *gin.Context, s *session.Session, feature string, err error) *apiclient.Capability {
	if errors.Is(err, apperrors.ErrAuthExpired) {
		e.EndSession(c, s)
		return nil
	}
	if capability, ok := apiclient.Negotiate(feature, err); ok {
		e.Log.Info("%s degraded for %s: %s", feature, s.Email, capability.Reason)
		return &capability
	}
	response.BadGateway(c, apiclient.MessageOf(err, "Failed to load "+feature), apiclient.KindOf(err).String())
	return nil
}

// Change is one confirmed optimistic edit.
type Change[T any] struct {
	Resource string
	Field    string
	Value    interface{}
	Mutation optimistic.Mutation[T]

	SuccessTitle   string
	SuccessMessage string
	FailureTitle   string
	// Fallback is shown when the API gave no message.
	Fallback string
	// Unsupported, when set, is shown if the API has no endpoint for the change.
	Unsupported string
}

// Apply runs ch against coll and reports the result as a notification. The
// error is the API's, returned so the caller can end an expired session.
func Apply[T any](ctx context.Context, e *Env, s *session.Session, coll *optimistic.Collection[T], ch Change[T]) (prompt.Notification, error) {
	_, err := optimistic.Run(ctx, coll, ch.Mutation)

	ev := audit.Event{
		Resource: ch.Resource,
		RecordID: ch.Mutation.ID,
		Field:    ch.Field,
		Value:    ch.Value,
		Outcome:  audit.OutcomeApplied,
		Actor:    s.Email,
		At:       time.Now(),
	}
	if err != nil {
		ev.Outcome = audit.OutcomeRolledBack
		ev.Error = err.Error()
	}
	e.publish(ctx, ev)

	if err != nil {
		e.Log.Warn("%s %s update rolled back: %v", ch.Resource, ch.Mutation.ID, err)
		message := apiclient.MessageOf(err, ch.Fallback)
		if ch.Unsupported != "" && apiclient.KindOf(err) == apiclient.KindNotFound {
			message = ch.Unsupported
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			message = "This record is no longer in the list. Refresh and try again."
		}
		return prompt.Failure(ch.FailureTitle, message), err
	}
	return prompt.Success(ch.SuccessTitle, ch.SuccessMessage), nil
}

// Record publishes an audit event for a change that has no snapshot, such as a creation.
func (e *Env) Record(ctx context.Context, ev audit.Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	e.publish(ctx, ev)
}

func (e *Env) publish(ctx context.Context, ev audit.Event) {
	if e.Audit == nil {
		return
	}
	if err := e.Audit.Publish(ctx, ev); err != nil {
		e.Log.Warn("audit publish failed for %s %s: %v", ev.Resource, ev.RecordID, err)
	}
}
