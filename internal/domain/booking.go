package domain

import "time"

// Booking links one user to one room. A room holds at most Capacity
// bookings at a time; the booking service owns that rule.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RoomID    int64     `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
