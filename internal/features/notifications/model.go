package notifications

import "github.com/xyz-asif/ecocheck-admin/internal/pkg/prompt"

// Inbox is everything waiting for the user's attention.
type Inbox struct {
	Notifications []prompt.Notification `json:"notifications"`
	Prompts       []prompt.Prompt       `json:"prompts"`
}
