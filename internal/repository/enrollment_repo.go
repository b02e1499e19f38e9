package repository

import (
	"context"

	"eventstay/internal/domain"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// GetEligibilityByUserID loads the user's enrollment with its tickets and
// the ticket type of the primary (first) ticket. A missing enrollment
// surfaces as gorm.ErrRecordNotFound; an enrollment with no tickets comes
// back with a nil ticket type for the service to judge.
func (r *EnrollmentRepository) GetEligibilityByUserID(ctx context.Context, userID int64) (*domain.Enrollment, *domain.TicketType, error) {
	var enrollment domain.Enrollment
	res := r.db.WithContext(ctx).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB { return db.Order("tickets.id") }).
		Where("user_id = ?", userID).
		First(&enrollment)
	if res.Error != nil {
		return nil, nil, res.Error
	}

	if len(enrollment.Tickets) == 0 {
		return &enrollment, nil, nil
	}

	var ticketType domain.TicketType
	if err := r.db.WithContext(ctx).First(&ticketType, enrollment.Tickets[0].TicketTypeID).Error; err != nil {
		return nil, nil, err
	}
	return &enrollment, &ticketType, nil
}
