package repository

import (
	"context"

	"eventstay/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	res := r.db.WithContext(ctx).Order("id").Find(&hotels)
	if res.Error != nil {
		return nil, res.Error
	}
	return hotels, nil
}

func (r *HotelRepository) GetByID(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	var hotel domain.Hotel
	res := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("rooms.id") }).
		First(&hotel, hotelID)
	if res.Error != nil {
		return nil, res.Error
	}
	return &hotel, nil
}
