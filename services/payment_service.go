package services

import (
	"errors"
	"time"

	"hotel-management-backend/models"

	"gorm.io/gorm"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// Record appends a completed payment against a reservation. Payments may be
// taken in any reservation state, including after checkout.
func (s *PaymentService) Record(reservationID uint, amount float64, method string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, Validation("payment amount must be positive")
	}
	if !models.ValidMethod(method) {
		return nil, Validation("unknown payment method %q", method)
	}

	var res models.Reservation
	if err := s.DB.First(&res, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("reservation %d not found", reservationID)
		}
		return nil, Infrastructure(err, "failed to load reservation")
	}

	payment := models.Payment{
		ReservationID: res.ID,
		Amount:        amount,
		Method:        method,
		PaymentDate:   time.Now(),
		Status:        models.PaymentCompleted,
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, Infrastructure(err, "failed to record payment")
	}
	return &payment, nil
}

func (s *PaymentService) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.
		Preload("Reservation.Guest").
		Preload("Reservation.Room").
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return nil, Infrastructure(err, "failed to retrieve payments")
	}
	return payments, nil
}
