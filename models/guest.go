package models

import "time"

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name        string `gorm:"size:255" json:"name"`
	Contact     string `gorm:"size:100" json:"contact"`
	Email       string `gorm:"uniqueIndex;size:150" json:"email"`
	Nationality string `gorm:"size:100" json:"nationality"`
	Gender      string `gorm:"size:20" json:"gender"`

	// True while the guest has a checked-in reservation. Guests with this flag
	// set cannot be deleted.
	CheckInStatus bool `gorm:"column:check_in_status;default:false" json:"checkInStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
