package models

import (
	"time"

	"gorm.io/datatypes"
)

// Reservation statuses. Confirmed -> CheckedIn -> CheckedOut, with Cancelled
// reachable from Confirmed or CheckedIn. CheckedOut and Cancelled are terminal.
const (
	StatusConfirmed  = "Confirmed"
	StatusCheckedIn  = "CheckedIn"
	StatusCheckedOut = "CheckedOut"
	StatusCancelled  = "Cancelled"
)

// Reservation occupies the half-open window [CheckIn, CheckOut): the checkout
// day itself is free for same-day turnover.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestID uint `gorm:"index;column:guest_id" json:"guestId"`
	RoomID  uint `gorm:"index;column:room_id" json:"roomId"`

	CheckIn  time.Time `gorm:"column:check_in_date" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out_date" json:"checkOut"`

	Status string `gorm:"size:32;index" json:"status"`

	// Nights * nightly rent at booking time. Frozen: later rent changes do not
	// touch existing reservations.
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`

	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode"`

	// Client-supplied key making create retries safe: replaying the same key
	// returns the original reservation instead of double-booking.
	IdempotencyKey *string `gorm:"column:idempotency_key;size:64;uniqueIndex" json:"idempotencyKey,omitempty"`

	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanyingGuests,omitempty"`

	Guest Guest `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidStatus reports whether s is a known reservation status.
func ValidStatus(s string) bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}
