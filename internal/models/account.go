package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountKind discriminates the two principal kinds that share the accounts table.
type AccountKind string

const (
	KindUser  AccountKind = "user"
	KindAgent AccountKind = "agent"
)

// Account is a registered principal. End-users and agents live in one
// aggregate; Kind decides which of the optional columns are populated.
// Users carry a username; agents carry name, location and role.
type Account struct {
	ID           uuid.UUID   `json:"id"`
	Kind         AccountKind `json:"-"`
	Username     string      `json:"username,omitempty"`
	Name         string      `json:"name,omitempty"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Location     string      `json:"location,omitempty"`
	Role         string      `json:"role,omitempty"`
	PasswordHash string      `json:"-"`
	CreatedAt    time.Time   `json:"date"`
}

// Prepare normalizes the fields that feed unique indexes.
func (a *Account) Prepare() {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Username = strings.TrimSpace(a.Username)
	a.Name = strings.TrimSpace(a.Name)
}
