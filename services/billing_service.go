package services

import (
	"errors"

	"hotel-management-backend/models"

	"gorm.io/gorm"
)

// Bill is the derived view of what a reservation owes. It is recomputed on
// every read so new service charges and payments show up immediately; nothing
// here is ever stored back.
type Bill struct {
	ReservationID  uint    `json:"reservationId"`
	RoomCharges    float64 `json:"roomCharges"`
	ServiceCharges float64 `json:"serviceCharges"`
	TotalDue       float64 `json:"totalDue"`
	TotalPaid      float64 `json:"totalPaid"`
	Balance        float64 `json:"balance"`
}

type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

// ComputeBill aggregates the frozen room total, the service charges attributed
// to the reservation, and the payments received. Balance may go negative when
// a guest has overpaid; it is not clamped.
func (s *BillingService) ComputeBill(reservationID uint) (*Bill, error) {
	var res models.Reservation
	if err := s.DB.First(&res, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("reservation %d not found", reservationID)
		}
		return nil, Infrastructure(err, "failed to load reservation")
	}

	var serviceCharges float64
	if err := s.DB.Model(&models.RoomServiceCharge{}).
		Select("COALESCE(SUM(total_charge), 0)").
		Where("reservation_id = ?", reservationID).
		Scan(&serviceCharges).Error; err != nil {
		return nil, Infrastructure(err, "failed to sum service charges")
	}

	var totalPaid float64
	if err := s.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("reservation_id = ?", reservationID).
		Scan(&totalPaid).Error; err != nil {
		return nil, Infrastructure(err, "failed to sum payments")
	}

	totalDue := res.TotalAmount + serviceCharges
	return &Bill{
		ReservationID:  res.ID,
		RoomCharges:    res.TotalAmount,
		ServiceCharges: serviceCharges,
		TotalDue:       totalDue,
		TotalPaid:      totalPaid,
		Balance:        totalDue - totalPaid,
	}, nil
}
