package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumen-academy/academy-api/internal/dto"
	"github.com/lumen-academy/academy-api/internal/models"
	"github.com/lumen-academy/academy-api/internal/service"
	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
	"github.com/lumen-academy/academy-api/pkg/response"
)

type registrationService interface {
	Create(ctx context.Context, req dto.CreateRegistrationRequest) (*models.Registration, error)
	List(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, *models.Pagination, error)
	Export(ctx context.Context, format service.ExportFormat) (*service.ExportResult, error)
}

// RegistrationHandler wires the registration endpoints to the service.
type RegistrationHandler struct {
	service registrationService
}

// NewRegistrationHandler creates a new handler.
func NewRegistrationHandler(svc registrationService) *RegistrationHandler {
	return &RegistrationHandler{service: svc}
}

// Create handles POST /api/register.
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid registration payload."))
		return
	}

	reg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Registration successful! We will contact you soon.", response.Payload{"id": reg.ID})
}

// List handles GET /api/admin/registrations (session protected).
func (h *RegistrationHandler) List(c *gin.Context) {
	filter := models.RegistrationFilter{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 20),
	}

	registrations, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"registrations": registrations,
		"pagination":    pagination,
	})
}

// Export handles GET /api/admin/registrations/export (session protected).
func (h *RegistrationHandler) Export(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))

	result, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
