package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"luxe-estates/internal/models"
	"luxe-estates/internal/responses"
	"luxe-estates/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterUser handles POST /api/auth/register.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email"    binding:"required,email"`
		Phone    string `json:"phone"    binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Message(c, http.StatusBadRequest, "Please provide username, email, phone, and password")
		return
	}
	if len(req.Password) < 6 {
		responses.Message(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	account, err := h.authService.RegisterUser(c.Request.Context(), req.Username, req.Email, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			responses.Message(c, http.StatusBadRequest, "User with this email already exists")
		case errors.Is(err, services.ErrDuplicateUsername):
			responses.Message(c, http.StatusBadRequest, "Username already taken")
		default:
			responses.Error(c, http.StatusInternalServerError, "Server error during user registration", err)
		}
		return
	}

	c.JSON(http.StatusCreated, account)
}

// LoginUser handles POST /api/auth/login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Message(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	token, account, err := h.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			responses.Message(c, http.StatusBadRequest, "Invalid Credentials")
			return
		}
		responses.Error(c, http.StatusInternalServerError, "Server error during user login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  account,
	})
}

// RegisterAgent handles POST /api/auth/agent/register.
func (h *AuthHandler) RegisterAgent(c *gin.Context) {
	var req struct {
		Name     string `json:"name"     binding:"required"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Phone    string `json:"phone"    binding:"required"`
		Location string `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Message(c, http.StatusBadRequest, "Please enter all required agent fields")
		return
	}

	token, account, err := h.authService.RegisterAgent(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone, req.Location)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			responses.Message(c, http.StatusBadRequest, "Agent with this email already exists")
			return
		}
		responses.Error(c, http.StatusInternalServerError, "Server error during agent registration", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Agent registration successful",
		"token":   token,
		"agent":   account,
	})
}

// LoginAgent handles POST /api/auth/agent/login.
func (h *AuthHandler) LoginAgent(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Message(c, http.StatusBadRequest, "Please provide agent email and password")
		return
	}

	token, account, err := h.authService.LoginAgent(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			responses.Message(c, http.StatusBadRequest, "Invalid Credentials")
			return
		}
		responses.Error(c, http.StatusInternalServerError, "Server error during agent login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"agent":   account,
	})
}

// Me handles GET /api/auth/me for either principal kind.
func (h *AuthHandler) Me(c *gin.Context) {
	rawID, exists := c.Get("accountId")
	rawKind, kindExists := c.Get("accountKind")
	if !exists || !kindExists {
		responses.Message(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountID, ok := rawID.(uuid.UUID)
	if !ok {
		responses.Message(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	kind, ok := rawKind.(models.AccountKind)
	if !ok {
		responses.Message(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := h.authService.GetAccount(c.Request.Context(), kind, accountID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			responses.Message(c, http.StatusNotFound, "Account not found")
			return
		}
		responses.Error(c, http.StatusInternalServerError, "Server error while fetching account", err)
		return
	}

	c.JSON(http.StatusOK, account)
}
