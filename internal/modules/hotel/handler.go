package hotel

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
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:hotelId", h.GetHotel)
}

func (h *Handler) ListHotels(c *gin.Context) {
	userID := c.GetInt64("user_id")

	hotels, err := h.service.ListHotels(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) GetHotel(c *gin.Context) {
	userID := c.GetInt64("user_id")

	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil || hotelID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}

	hotel, err := h.service.GetHotelWithRooms(c.Request.Context(), userID, hotelID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Ticket does not include hotel access")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotels")
	}
}
