package domain

import "time"

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

// Enrollment is a user's registration record for the event. Bookings are
// only allowed once the enrollment carries a paid, hotel-including ticket.
type Enrollment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Tickets []Ticket `json:"tickets,omitempty" gorm:"foreignKey:EnrollmentID"`
}

type Ticket struct {
	ID           int64        `json:"id"`
	EnrollmentID int64        `json:"enrollmentId"`
	TicketTypeID int64        `json:"ticketTypeId"`
	Status       TicketStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	TicketType *TicketType `json:"ticketType,omitempty" gorm:"foreignKey:TicketTypeID"`
}

type TicketType struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required"`
	Price         int64     `json:"price" validate:"gte=0"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
