package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactMessage is an inbound contact-form submission. It is write-only
// through the public API; IsRead exists for back-office tooling.
type ContactMessage struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"isRead"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Prepare trims the free-text fields and lowercases the email.
func (m *ContactMessage) Prepare() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Phone = strings.TrimSpace(m.Phone)
	m.Message = strings.TrimSpace(m.Message)
}
