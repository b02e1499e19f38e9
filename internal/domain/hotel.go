package domain

import "time"

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Capacity  int       `json:"capacity" validate:"gte=0"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
