package models

import "time"

// RoomServiceCharge records a service assigned to a room during a stay.
// TotalCharge is quantity x the service's unit charge at assignment time.
// The owning reservation is resolved once, when the charge is assigned, and
// stored here so billing never has to re-infer it from date ranges.
type RoomServiceCharge struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID        uint      `gorm:"index;column:room_id" json:"roomId"`
	ServiceID     uint      `gorm:"index;column:service_id" json:"serviceId"`
	ReservationID uint      `gorm:"index;column:reservation_id" json:"reservationId"`
	Quantity      int       `json:"quantity"`
	TotalCharge   float64   `gorm:"column:total_charge" json:"totalCharge"`
	ServiceDate   time.Time `gorm:"column:service_date" json:"serviceDate"`

	Room        Room        `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Service     Service     `gorm:"foreignKey:ServiceID;references:ID" json:"service,omitempty"`
	Reservation Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"reservation,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
