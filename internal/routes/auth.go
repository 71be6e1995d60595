package routes

import (
	"github.com/gin-gonic/gin"

	"luxe-estates/internal/handlers"
	"luxe-estates/internal/middlewares"
)

type AuthRoutes struct {
	handler   *handlers.AuthHandler
	jwtSecret []byte
}

func NewAuthRoutes(handler *handlers.AuthHandler, jwtSecret []byte) *AuthRoutes {
	return &AuthRoutes{handler: handler, jwtSecret: jwtSecret}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		// Public routes
		auth.POST("/register", r.handler.RegisterUser)
		auth.POST("/login", r.handler.LoginUser)
		auth.POST("/agent/register", r.handler.RegisterAgent)
		auth.POST("/agent/login", r.handler.LoginAgent)

		// Protected routes
		protected := auth.Group("/")
		protected.Use(middlewares.Authenticate(r.jwtSecret))
		protected.GET("/me", r.handler.Me)
	}
}
