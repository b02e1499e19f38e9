package booking

import (
	"context"

	"eventstay/internal/domain"

	"gorm.io/gorm"
)

// BookingRepository defines the booking storage operations the service
// needs. Methods taking a tx run inside the allocation transaction.
type BookingRepository interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	CountForRoom(ctx context.Context, tx *gorm.DB, roomID int64) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, b *domain.Booking) error
	UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID, userID int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Booking, *domain.Room, error)
}

// RoomRepository defines the room lookups used during allocation
type RoomRepository interface {
	GetByIDForUpdate(ctx context.Context, tx *gorm.DB, roomID int64) (*domain.Room, error)
}

// EnrollmentRepository supplies the eligibility inputs for a user
type EnrollmentRepository interface {
	GetEligibilityByUserID(ctx context.Context, userID int64) (*domain.Enrollment, *domain.TicketType, error)
}
