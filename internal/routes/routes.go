package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxe-estates/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	propertyHandler *handlers.PropertyHandler,
	contactHandler *handlers.ContactHandler,
	jwtSecret []byte,
) {
	api := router.Group("/api")

	authRoutes := NewAuthRoutes(authHandler, jwtSecret)
	authRoutes.RegisterRoutes(api)

	propertyRoutes := NewPropertyRoutes(propertyHandler)
	propertyRoutes.RegisterRoutes(api)

	contactRoutes := NewContactRoutes(contactHandler)
	contactRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
