package hotel

import (
	"context"
	"errors"

	"eventstay/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	hotels      HotelRepository
	enrollments EnrollmentRepository
}

func NewService(hotels HotelRepository, enrollments EnrollmentRepository) *Service {
	return &Service{
		hotels:      hotels,
		enrollments: enrollments,
	}
}

// Hotel browsing is gated by the same rule as booking: only attendees
// with a paid, hotel-including, non-remote ticket see the room inventory.
func (s *Service) validateEligibility(ctx context.Context, userID int64) error {
	enrollment, ticketType, err := s.enrollments.GetEligibilityByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if len(enrollment.Tickets) == 0 || ticketType == nil {
		return ErrNotFound
	}

	if !ticketType.IncludesHotel || enrollment.Tickets[0].Status != domain.TicketPaid || ticketType.IsRemote {
		return ErrForbidden
	}
	return nil
}

func (s *Service) ListHotels(ctx context.Context, userID int64) ([]domain.Hotel, error) {
	if err := s.validateEligibility(ctx, userID); err != nil {
		return nil, err
	}
	return s.hotels.List(ctx)
}

func (s *Service) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*domain.Hotel, error) {
	if err := s.validateEligibility(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return hotel, nil
}
