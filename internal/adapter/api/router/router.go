package router

import (
	"github.com/labstack/echo/v4"

	"centeradmin/internal/adapter/api/handler"
	"centeradmin/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	contentHandler *handler.ContentHandler,
	inquiryHandler *handler.InquiryHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	SetupHealthRouter(e, healthHandler)
	SetupContentRouter(e, contentHandler, authMiddleware)
	SetupInquiryRouter(e, inquiryHandler, authMiddleware)
}
