package models

import "time"

// Room categories accepted by the room upsert.
const (
	CategorySingle = "Single"
	CategoryDouble = "Double"
	CategorySuite  = "Suite"
	CategoryDeluxe = "Deluxe"
)

// Instantaneous room status. This is a coarse "right now" flag maintained by
// reservation check-in/check-out; date-ranged availability is always answered
// by the reservation overlap query, never by this field.
const (
	RoomAvailable = "Available"
	RoomOccupied  = "Occupied"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber  string     `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"roomNumber"`
	Category    string     `gorm:"size:32" json:"category"`
	Rent        float64    `json:"rent"`
	Status      string     `gorm:"size:32;default:Available" json:"status"`
	LastCleaned *time.Time `gorm:"column:last_cleaned" json:"lastCleaned,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidCategory reports whether c is one of the known room categories.
func ValidCategory(c string) bool {
	switch c {
	case CategorySingle, CategoryDouble, CategorySuite, CategoryDeluxe:
		return true
	}
	return false
}
