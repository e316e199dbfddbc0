package models

import (
	"encoding/json"
	"time"
)

type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Subscription is the browser push subscription exactly as the
	// client handed it over. The server never looks inside it; only
	// the push sender decodes it.
	Subscription json.RawMessage `json:"subscription,omitempty"`
	Phone        string          `json:"phone,omitempty"` // E.164
	IsAdmin      bool            `json:"isAdmin"`
	JoinedAt     time.Time       `json:"joinedAt"`
}

// HasPush reports whether the member currently holds a push subscription.
func (m *Member) HasPush() bool {
	return len(m.Subscription) > 0
}
