package router

import (
	"github.com/labstack/echo/v4"

	"centeradmin/internal/adapter/api/handler"
	"centeradmin/internal/adapter/api/middleware"
)

func SetupInquiryRouter(e *echo.Echo, inquiryHandler *handler.InquiryHandler, authMiddleware *middleware.AuthMiddleware) {
	// The public contact form is the one write path open to visitors
	e.POST("/v1/inquiries", inquiryHandler.CreateInquiry)

	admin := e.Group("/v1/admin/inquiries")
	admin.Use(authMiddleware.Authenticate)

	admin.GET("", inquiryHandler.ListInquiries)
	admin.GET("/:id", inquiryHandler.GetInquiry)
	admin.POST("/:id/assign", inquiryHandler.AssignInquiry)
	admin.PATCH("/:id/status", inquiryHandler.SetInquiryStatus)
	admin.DELETE("/:id", inquiryHandler.DeleteInquiry)
}
