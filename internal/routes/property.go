package routes

import (
	"github.com/gin-gonic/gin"

	"luxe-estates/internal/handlers"
)

type PropertyRoutes struct {
	handler *handlers.PropertyHandler
}

func NewPropertyRoutes(handler *handlers.PropertyHandler) *PropertyRoutes {
	return &PropertyRoutes{handler: handler}
}

func (r *PropertyRoutes) RegisterRoutes(router *gin.RouterGroup) {
	properties := router.Group("/properties")
	{
		properties.GET("", r.handler.List)
		properties.POST("/add", r.handler.Add)
	}
}
