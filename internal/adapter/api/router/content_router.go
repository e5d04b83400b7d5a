package router

import (
	"github.com/labstack/echo/v4"

	"centeradmin/internal/adapter/api/handler"
	"centeradmin/internal/adapter/api/middleware"
)

// SetupContentRouter wires the generic content routes. Every content type
// shares the same handlers; the :type segment selects the schema.
func SetupContentRouter(e *echo.Echo, contentHandler *handler.ContentHandler, authMiddleware *middleware.AuthMiddleware) {
	// Public routes only ever see active entries
	e.GET("/v1/content/:type", contentHandler.ListActive)
	e.GET("/v1/content/:type/:id", contentHandler.Get)

	admin := e.Group("/v1/admin/content")
	admin.Use(authMiddleware.Authenticate)

	admin.GET("/:type", contentHandler.List)
	admin.POST("/:type", contentHandler.Create)
	admin.PUT("/:type/:id", contentHandler.Update)
	admin.DELETE("/:type/:id", contentHandler.Delete)
	admin.PATCH("/:type/:id/active", contentHandler.ToggleActive)
}
