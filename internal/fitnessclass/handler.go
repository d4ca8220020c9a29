package fitnessclass

import (
	"errors"
	"net/http"

	"fitbook/internal/api"
	"fitbook/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Create a fitness class
// @Description  dateTime is wall-clock time in the display zone (IST by default) and is stored in UTC.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body fitnessclass.CreateClassRequest true "Class payload"
// @Success      200 {object} fitnessclass.FitnessClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      422 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes/ [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if !api.Bind(c, &req) {
		return
	}

	class, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidDateTime) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid dateTime, expected YYYY-MM-DDTHH:MM:SS"})
			return
		}
		logger.Error("Failed to create class", "name", req.Name, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to create class"})
		return
	}

	c.JSON(http.StatusOK, class)
}

// @Summary      List fitness classes
// @Description  dateTime is rendered in the display zone.
// @Tags         classes
// @Produce      json
// @Success      200 {array} fitnessclass.FitnessClass
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes/ [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list classes", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}
