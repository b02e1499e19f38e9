package repository

import (
	"context"
	"time"

	"eventstay/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id"`
	RoomID    int64     `gorm:"column:room_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		UserID:    m.UserID,
		RoomID:    m.RoomID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// Transaction runs fn inside a single database transaction. Capacity
// checks and the following insert/update must share one transaction so
// concurrent writers serialize on the locked room row.
func (r *BookingRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *BookingRepository) CountForRoom(ctx context.Context, tx *gorm.DB, roomID int64) (int64, error) {
	var cnt int64
	res := tx.WithContext(ctx).Model(&bookingModel{}).Where("room_id = ?", roomID).Count(&cnt)
	if res.Error != nil {
		return 0, res.Error
	}
	return cnt, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx *gorm.DB, b *domain.Booking) error {
	m := toBookingModel(b)
	res := tx.WithContext(ctx).Create(&m)
	if res.Error != nil {
		if pgErr, ok := res.Error.(*pgconn.PgError); ok && pgErr.Code == "23503" {
			// foreign key violation: the referenced room or user is gone
			return gorm.ErrRecordNotFound
		}
		return res.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// UpdateRoom re-targets the booking to a new room. Returns
// gorm.ErrRecordNotFound when no row matches the booking id.
func (r *BookingRepository) UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID, userID int64) (*domain.Booking, error) {
	res := tx.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{"room_id": roomID, "user_id": userID, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var m bookingModel
	if err := tx.WithContext(ctx).First(&m, bookingID).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// GetByUserID returns the user's booking on record together with its room.
func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, *domain.Room, error) {
	var m bookingModel
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").First(&m)
	if res.Error != nil {
		return nil, nil, res.Error
	}

	var rm roomModel
	if err := r.db.WithContext(ctx).First(&rm, m.RoomID).Error; err != nil {
		return nil, nil, err
	}
	return toDomainBooking(m), toDomainRoom(rm), nil
}
