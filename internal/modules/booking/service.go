package booking

import (
	"context"
	"errors"

	"eventstay/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	bookings    BookingRepository
	rooms       RoomRepository
	enrollments EnrollmentRepository
}

func NewService(bookings BookingRepository, rooms RoomRepository, enrollments EnrollmentRepository) *Service {
	return &Service{
		bookings:    bookings,
		rooms:       rooms,
		enrollments: enrollments,
	}
}

// validateEligibility checks that the user holds a paid ticket of a type
// that includes hotel access and is not remote-only. Every booking
// operation runs this before touching room state.
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

// checkRoomCapacity runs inside the allocation transaction with the room
// row locked, so the count it compares against cannot move underneath
// the following insert or update.
func (s *Service) checkRoomCapacity(ctx context.Context, tx *gorm.DB, roomID int64) (*domain.Room, error) {
	room, err := s.rooms.GetByIDForUpdate(ctx, tx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	count, err := s.bookings.CountForRoom(ctx, tx, room.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(room.Capacity) {
		return nil, ErrForbidden
	}
	return room, nil
}

func (s *Service) CreateBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	if err := s.validateEligibility(ctx, userID); err != nil {
		return nil, err
	}

	var created *domain.Booking
	err := s.bookings.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := s.checkRoomCapacity(ctx, tx, roomID); err != nil {
			return err
		}

		b := &domain.Booking{UserID: userID, RoomID: roomID}
		if err := s.bookings.Create(ctx, tx, b); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) GetBooking(ctx context.Context, userID int64) (*BookingView, error) {
	if err := s.validateEligibility(ctx, userID); err != nil {
		return nil, err
	}

	b, room, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &BookingView{ID: b.ID, Room: *room}, nil
}

// UpdateBooking re-targets an existing booking to a new room. A booking
// id with no row behind it fails with ErrForbidden, matching the
// behavior callers of this API already depend on.
func (s *Service) UpdateBooking(ctx context.Context, userID, bookingID, roomID int64) (*domain.Booking, error) {
	if err := s.validateEligibility(ctx, userID); err != nil {
		return nil, err
	}

	var updated *domain.Booking
	err := s.bookings.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := s.checkRoomCapacity(ctx, tx, roomID); err != nil {
			return err
		}

		b, err := s.bookings.UpdateRoom(ctx, tx, bookingID, roomID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrForbidden
			}
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
