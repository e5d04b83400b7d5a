package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"centeradmin/internal/domain/entity"
	"centeradmin/internal/usecase"
	"centeradmin/pkg/errors"
	"centeradmin/pkg/logger"
	"centeradmin/pkg/response"
)

type ContentHandler struct {
	contentUseCase *usecase.ContentUseCase
	maxFileSize    int64
}

func NewContentHandler(contentUseCase *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
		maxFileSize:    5 * 1024 * 1024,
	}
}

// ListActive serves the public site: inactive entries are retained in the
// store but never listed here.
func (h *ContentHandler) ListActive(c echo.Context) error {
	contents, err := h.contentUseCase.List(c.Request().Context(), c.Param("type"), true)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contents)
}

func (h *ContentHandler) List(c echo.Context) error {
	contents, err := h.contentUseCase.List(c.Request().Context(), c.Param("type"), false)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contents)
}

func (h *ContentHandler) Get(c echo.Context) error {
	content, err := h.contentUseCase.Get(c.Request().Context(), c.Param("type"), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, content)
}

func (h *ContentHandler) Create(c echo.Context) error {
	input, closeUpload, err := h.bindSaveInput(c)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeUpload()

	content, err := h.contentUseCase.Create(c.Request().Context(), c.Param("type"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, content)
}

func (h *ContentHandler) Update(c echo.Context) error {
	input, closeUpload, err := h.bindSaveInput(c)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeUpload()

	content, err := h.contentUseCase.Update(c.Request().Context(), c.Param("type"), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, content)
}

func (h *ContentHandler) Delete(c echo.Context) error {
	if err := h.contentUseCase.Delete(c.Request().Context(), c.Param("type"), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Content deleted successfully",
	})
}

func (h *ContentHandler) ToggleActive(c echo.Context) error {
	content, err := h.contentUseCase.ToggleActive(c.Request().Context(), c.Param("type"), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, content)
}

// bindSaveInput reads the admin form: one multipart value per schema field,
// plus optional "order", "active" and "image" parts. Only fields present in
// the form end up in the input, which is what makes updates partial.
func (h *ContentHandler) bindSaveInput(c echo.Context) (usecase.SaveContentInput, func(), error) {
	noop := func() {}

	schema, ok := entity.SchemaFor(c.Param("type"))
	if !ok {
		return usecase.SaveContentInput{}, noop, errors.NotFound("Content type", nil)
	}

	params, err := c.FormParams()
	if err != nil {
		return usecase.SaveContentInput{}, noop, errors.BadRequest("Invalid form data", err)
	}

	fields := make(map[string]interface{})
	for _, def := range schema.Fields {
		values, provided := params[def.Name]
		if !provided {
			continue
		}

		switch def.Kind {
		case entity.FieldNumber:
			number, err := strconv.ParseFloat(values[0], 64)
			if err != nil {
				return usecase.SaveContentInput{}, noop, errors.Validation(fmt.Sprintf("field %q must be a number", def.Name), err)
			}
			fields[def.Name] = number
		case entity.FieldStringList:
			fields[def.Name] = append([]string{}, values...)
		default:
			fields[def.Name] = values[0]
		}
	}

	input := usecase.SaveContentInput{Fields: fields}

	if values, provided := params["order"]; provided {
		order, err := strconv.Atoi(values[0])
		if err != nil {
			return usecase.SaveContentInput{}, noop, errors.Validation("order must be an integer", err)
		}
		input.Order = &order
	}

	if values, provided := params["active"]; provided {
		active, err := strconv.ParseBool(values[0])
		if err != nil {
			return usecase.SaveContentInput{}, noop, errors.Validation("active must be a boolean", err)
		}
		input.IsActive = &active
	}

	file, err := c.FormFile("image")
	if err != nil {
		// No image part means the existing asset is kept as is.
		return input, noop, nil
	}

	if file.Size > h.maxFileSize {
		return usecase.SaveContentInput{}, noop, errors.Validation(fmt.Sprintf("Image size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil)
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		logger.Warn("Rejected upload with type %s", fileType)
		return usecase.SaveContentInput{}, noop, errors.Validation("Image type not supported", nil)
	}

	src, err := file.Open()
	if err != nil {
		return usecase.SaveContentInput{}, noop, errors.Internal("Unable to read image", err)
	}

	input.Upload = &usecase.AssetUpload{
		Reader:      src,
		ContentType: fileType,
	}

	return input, func() { src.Close() }, nil
}

func isAllowedImageType(fileType string) bool {
	allowedTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
	}

	for _, allowedType := range allowedTypes {
		if fileType == allowedType {
			return true
		}
	}

	return false
}
