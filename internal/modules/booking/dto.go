package booking

import "eventstay/internal/domain"

type BookingRequest struct {
	RoomID int64 `json:"roomId" binding:"required"`
}

// BookingView is the read shape: the booking id plus the full room record.
type BookingView struct {
	ID   int64       `json:"id"`
	Room domain.Room `json:"room"`
}
