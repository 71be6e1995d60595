package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"luxe-estates/internal/models"
)

// ErrMissingContactFields is returned when any of the required contact-form
// fields is absent.
var ErrMissingContactFields = errors.New("name, email, and message are required")

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// ValidationError aggregates field-level messages for a malformed submission.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// ContactStore persists inbound contact messages.
type ContactStore interface {
	Create(ctx context.Context, message *models.ContactMessage) error
}

// ContactInput is a contact-form submission. Phone is optional.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type ContactService struct {
	messages ContactStore
}

func NewContactService(messages ContactStore) *ContactService {
	return &ContactService{messages: messages}
}

// Submit validates and persists a contact message. The record is write-only:
// nothing in the public API reads it back.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*models.ContactMessage, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return nil, ErrMissingContactFields
	}

	var fieldErrors []string
	if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		fieldErrors = append(fieldErrors, "Please fill a valid email address")
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	message := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}
