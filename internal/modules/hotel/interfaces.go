package hotel

import (
	"context"

	"eventstay/internal/domain"
)

type HotelRepository interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	GetByID(ctx context.Context, hotelID int64) (*domain.Hotel, error)
}

type EnrollmentRepository interface {
	GetEligibilityByUserID(ctx context.Context, userID int64) (*domain.Enrollment, *domain.TicketType, error)
}
