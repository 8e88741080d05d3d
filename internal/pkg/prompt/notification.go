package prompt

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	TypeSuccess NotificationType = "success"
	TypeError   NotificationType = "error"
	TypeWarning NotificationType = "warning"
	TypeInfo    NotificationType = "info"
)

// Notification is a dismissable alert reporting the end of an action.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
}

func Success(title, message string) Notification {
	return Notification{Type: TypeSuccess, Title: title, Message: message}
}

func Failure(title, message string) Notification {
	return Notification{Type: TypeError, Title: title, Message: message}
}

const maxNotifications = 50

// Center keeps the notifications of one workspace, newest last.
type Center struct {
	mu    sync.Mutex
	items []Notification
}

func NewCenter() *Center {
	return &Center{}
}

// Push stamps n with an id and time and stores it.
func (c *Center) Push(n Notification) Notification {
	n.ID = uuid.NewString()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, n)
	if len(c.items) > maxNotifications {
		c.items = c.items[len(c.items)-maxNotifications:]
	}
	return n
}

func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Dismiss removes the notification with id and reports whether it existed.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
