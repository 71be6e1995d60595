package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxe-estates/internal/responses"
	"luxe-estates/internal/services"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.contactService.Submit(c.Request.Context(), services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrMissingContactFields):
			responses.Message(c, http.StatusBadRequest, "Name, email, and message are required.")
		case errors.As(err, &validationErr):
			responses.ValidationFailed(c, http.StatusBadRequest, validationErr.Errors)
		default:
			responses.Error(c, http.StatusInternalServerError, "Server error while saving message.", err)
		}
		return
	}

	responses.Message(c, http.StatusCreated, "Message received successfully. Thank you!")
}
