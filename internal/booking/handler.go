package booking

import (
	"errors"
	"net/http"

	"fitbook/internal/api"
	"fitbook/internal/auth"
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

// @Summary      Book a fitness class
// @Description  Takes one slot of the class for the authenticated user.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      200 {object} booking.Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      422 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings/ [post]
func (h *Handler) BookClass(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "Could not validate credentials"})
		return
	}

	var req CreateBookingRequest
	if !api.Bind(c, &req) {
		return
	}

	booking, err := h.service.Book(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Fitness class not found"})
		case errors.Is(err, ErrNoSlots):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "No slots available"})
		case errors.Is(err, ErrAlreadyBooked):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "You already booked this class"})
		default:
			logger.Error("Failed to create booking", "user_id", userID, "class_id", *req.ClassID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to create booking"})
		}
		return
	}

	logger.Info("Booking created", "booking_id", booking.ID, "class_id", booking.ClassID, "user_id", userID)
	c.JSON(http.StatusOK, booking)
}

// @Summary      List my bookings
// @Description  Returns bookings of the authenticated user.
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} booking.Booking
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings/ [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "Could not validate credentials"})
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookings", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
