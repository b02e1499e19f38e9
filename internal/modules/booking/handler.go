package booking

import (
	"errors"
	"net/http"
	"strconv"

	"eventstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/booking", h.GetBooking)
	rg.POST("/booking", h.CreateBooking)
	rg.PUT("/booking/:bookingId", h.UpdateBooking)
}

func (h *Handler) GetBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	view, err := h.service.GetBooking(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookingId": b.ID})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), userID, bookingID, req.RoomID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookingId": b.ID})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking not allowed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process booking")
	}
}
