package repository

import (
	"context"
	"time"

	"eventstay/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Capacity  int       `gorm:"column:capacity"`
	HotelID   int64     `gorm:"column:hotel_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:        m.ID,
		Name:      m.Name,
		Capacity:  m.Capacity,
		HotelID:   m.HotelID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *RoomRepository) GetByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	var m roomModel
	res := r.db.WithContext(ctx).First(&m, roomID)
	if res.Error != nil {
		return nil, res.Error
	}
	return toDomainRoom(m), nil
}

// GetByIDForUpdate locks the room row for the duration of tx. SQLite has
// no FOR UPDATE; its single writer already serializes the allocation.
func (r *RoomRepository) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, roomID int64) (*domain.Room, error) {
	q := tx.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var m roomModel
	res := q.First(&m, roomID)
	if res.Error != nil {
		return nil, res.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) ListByHotelID(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var models []roomModel
	res := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("id").Find(&models)
	if res.Error != nil {
		return nil, res.Error
	}

	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}
