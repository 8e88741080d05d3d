package notifications

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/prompt"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

type Handler struct {
	env *dashboard.Env
}

func NewHandler(env *dashboard.Env) *Handler {
	return &Handler{env: env}
}

// ListNotifications godoc
// @Summary List notifications
// @Description Notifications of the current session, oldest first, plus confirmations still awaiting an answer
// @Tags notifications
// @Produce json
// @Success 200 {object} response.APIResponse{data=Inbox}
// @Failure 401 {object} response.APIResponse
// @Router /notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	_, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}

	response.Success(c, Inbox{
		Notifications: ws.Notifications.List(),
		Prompts:       ws.Gate.Pending(),
	})
}

// DismissNotification godoc
// @Summary Dismiss a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /notifications/{id} [delete]
func (h *Handler) DismissNotification(c *gin.Context) {
	_, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}

	if !ws.Notifications.Dismiss(c.Param("id")) {
		response.NotFound(c, "Notification not found", "NOTIFICATION_NOT_FOUND")
		return
	}
	response.Success(c, nil, "Notification dismissed")
}

// ConfirmPrompt godoc
// @Summary Confirm a pending action
// @Description Runs the gated change. On failure the cached list is restored and an error notification is returned; an expired token ends the session.
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} response.APIResponse{data=prompt.Notification}
// @Failure 401 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /prompts/{id}/confirm [post]
func (h *Handler) ConfirmPrompt(c *gin.Context) {
	s, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}

	n, err := ws.Gate.Confirm(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, prompt.ErrPromptNotFound):
		response.NotFound(c, "Confirmation not found or already answered", "PROMPT_NOT_FOUND")
		return
	case errors.Is(err, apperrors.ErrAuthExpired):
		h.env.EndSession(c, s)
		return
	}

	n = ws.Notifications.Push(n)
	response.Success(c, n, n.Message)
}

// CancelPrompt godoc
// @Summary Cancel a pending action
// @Description Drops the gated change. Nothing is changed and nothing is sent to the API.
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /prompts/{id}/cancel [post]
func (h *Handler) CancelPrompt(c *gin.Context) {
	_, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}

	if err := ws.Gate.Cancel(c.Param("id")); err != nil {
		response.NotFound(c, "Confirmation not found or already answered", "PROMPT_NOT_FOUND")
		return
	}
	response.Success(c, nil, "Cancelled")
}
