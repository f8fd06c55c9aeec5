package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/register", h.Register)
	r.POST("/search", h.Search)

	items := r.Group("/inventory")
	{
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.UpdateFields)
		items.DELETE("/:id", h.Delete)
		items.GET("/:id/photo", h.Photo)
		items.PUT("/:id/photo", h.UpdatePhoto)
	}
}

// RegisterHelloRoute adds the POST /hello greeting.
func RegisterHelloRoute(r gin.IRouter, h *handler) {
	r.POST("/hello", h.Hello)
}
