package models

import "time"

// Payment methods accepted by the payment surface.
const (
	MethodCash   = "Cash"
	MethodCard   = "Card"
	MethodUPI    = "UPI"
	MethodOnline = "Online"
)

const PaymentCompleted = "Completed"

// Payment is append-only; there is no update or void.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint      `gorm:"index;column:reservation_id" json:"reservationId"`
	Amount        float64   `json:"amount"`
	Method        string    `gorm:"size:32" json:"method"`
	PaymentDate   time.Time `gorm:"column:payment_date" json:"paymentDate"`
	Status        string    `gorm:"size:32;default:Completed" json:"status"`

	Reservation Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"reservation,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ValidMethod reports whether m is a known payment method.
func ValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodOnline:
		return true
	}
	return false
}
