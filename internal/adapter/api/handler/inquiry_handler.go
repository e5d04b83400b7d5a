package handler

import (
	"github.com/labstack/echo/v4"

	"centeradmin/internal/domain/entity"
	"centeradmin/internal/usecase"
	"centeradmin/pkg/response"
	"centeradmin/pkg/utils"
)

type InquiryHandler struct {
	inquiryUseCase *usecase.InquiryUseCase
}

func NewInquiryHandler(inquiryUseCase *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
	}
}

type createInquiryRequest struct {
	Name       string `json:"name" validate:"required"`
	Contact    string `json:"contact"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	ServiceTag string `json:"service_tag"`
}

type setInquiryStatusRequest struct {
	Status   string  `json:"status" validate:"required,oneof=pending in_progress resolved"`
	Response *string `json:"response"`
}

func (h *InquiryHandler) CreateInquiry(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	inquiry, err := h.inquiryUseCase.CreateInquiry(c.Request().Context(), usecase.CreateInquiryInput{
		Name:       req.Name,
		Contact:    req.Contact,
		Subject:    req.Subject,
		Message:    req.Message,
		ServiceTag: req.ServiceTag,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, inquiry)
}

func (h *InquiryHandler) ListInquiries(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	inquiries, total, err := h.inquiryUseCase.ListInquiries(
		c.Request().Context(),
		status,
		pagination.Page,
		pagination.PageSize,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, inquiries, total, pagination.Page, pagination.PageSize)
}

func (h *InquiryHandler) GetInquiry(c echo.Context) error {
	inquiry, err := h.inquiryUseCase.GetInquiry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}

func (h *InquiryHandler) AssignInquiry(c echo.Context) error {
	inquiry, err := h.inquiryUseCase.AssignInquiry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}

func (h *InquiryHandler) SetInquiryStatus(c echo.Context) error {
	var req setInquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	inquiry, err := h.inquiryUseCase.SetStatus(
		c.Request().Context(),
		c.Param("id"),
		entity.InquiryStatus(req.Status),
		req.Response,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}

func (h *InquiryHandler) DeleteInquiry(c echo.Context) error {
	if err := h.inquiryUseCase.DeleteInquiry(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Inquiry deleted successfully",
	})
}
