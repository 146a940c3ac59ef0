package services

import (
	"errors"
	"strings"
	"time"

	"hotel-management-backend/models"

	"gorm.io/gorm"
)

// ChargeService assigns room-service charges to stays. Attribution to a
// reservation is resolved once, at assignment time, and stored on the charge;
// billing then sums by reservation id with no date inference.
type ChargeService struct {
	DB *gorm.DB
}

func NewChargeService(db *gorm.DB) *ChargeService {
	return &ChargeService{DB: db}
}

type AssignChargeInput struct {
	RoomNumber string
	ServiceID  uint
	Quantity   int
	// Optional explicit owner; when zero the owning reservation is derived
	// from the service date.
	ReservationID uint
	// Defaults to now.
	ServiceDate *time.Time
}

// Assign creates a charge of Quantity x the service's unit charge against the
// room's checked-in reservation.
func (s *ChargeService) Assign(in AssignChargeInput) (*models.RoomServiceCharge, error) {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	if in.RoomNumber == "" {
		return nil, Validation("room number is required")
	}
	if in.Quantity <= 0 {
		return nil, Validation("quantity must be positive")
	}

	serviceDate := time.Now()
	if in.ServiceDate != nil {
		serviceDate = *in.ServiceDate
	}

	var charge models.RoomServiceCharge

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("room_number = ?", in.RoomNumber).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("room %s not found", in.RoomNumber)
			}
			return Infrastructure(err, "failed to load room")
		}

		var svc models.Service
		if err := tx.First(&svc, in.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("service %d not found", in.ServiceID)
			}
			return Infrastructure(err, "failed to load service")
		}

		var res *models.Reservation
		var err error
		if in.ReservationID != 0 {
			res, err = s.explicitReservation(tx, in.ReservationID, room.ID, serviceDate)
		} else {
			res, err = s.deriveReservation(tx, room.ID, serviceDate)
		}
		if err != nil {
			return err
		}
		if res.Status != models.StatusCheckedIn {
			return Conflict("reservation %d is not checked in", res.ID)
		}

		charge = models.RoomServiceCharge{
			RoomID:        room.ID,
			ServiceID:     svc.ID,
			ReservationID: res.ID,
			Quantity:      in.Quantity,
			TotalCharge:   float64(in.Quantity) * svc.Charge,
			ServiceDate:   serviceDate,
		}
		if err := tx.Create(&charge).Error; err != nil {
			return Infrastructure(err, "failed to create service charge")
		}
		return nil
	})

	if txErr != nil {
		var e *Error
		if errors.As(txErr, &e) {
			return nil, e
		}
		return nil, Infrastructure(txErr, "service charge transaction failed")
	}
	return &charge, nil
}

func (s *ChargeService) explicitReservation(tx *gorm.DB, reservationID, roomID uint, serviceDate time.Time) (*models.Reservation, error) {
	var res models.Reservation
	if err := tx.First(&res, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("reservation %d not found", reservationID)
		}
		return nil, Infrastructure(err, "failed to load reservation")
	}
	if res.RoomID != roomID {
		return nil, Validation("reservation %d is not for the given room", reservationID)
	}
	// Same bounds as derivation: the charge date must fall inside the stay,
	// checkout day included.
	if serviceDate.Before(res.CheckIn) || serviceDate.After(res.CheckOut) {
		return nil, Validation("service date falls outside reservation %d's stay", reservationID)
	}
	return &res, nil
}

// deriveReservation picks the stay that owns a charge dated serviceDate: a
// CheckedIn/CheckedOut reservation on the room whose [check-in, check-out]
// window contains the date, taking the latest check-in not exceeding it.
// Several candidates sharing that check-in make the charge ambiguous.
func (s *ChargeService) deriveReservation(tx *gorm.DB, roomID uint, serviceDate time.Time) (*models.Reservation, error) {
	var candidates []models.Reservation
	if err := tx.
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{models.StatusCheckedIn, models.StatusCheckedOut}).
		Where("check_in_date <= ? AND check_out_date >= ?", serviceDate, serviceDate).
		Order("check_in_date DESC").
		Find(&candidates).Error; err != nil {
		return nil, Infrastructure(err, "failed to resolve owning reservation")
	}
	if len(candidates) == 0 {
		return nil, Conflict("no active stay on the room covers the service date")
	}
	if len(candidates) > 1 && candidates[1].CheckIn.Equal(candidates[0].CheckIn) {
		return nil, Conflict("service date is ambiguous between multiple stays; pass an explicit reservation id")
	}
	return &candidates[0], nil
}

func (s *ChargeService) GetAll() ([]models.RoomServiceCharge, error) {
	var charges []models.RoomServiceCharge
	if err := s.DB.
		Preload("Room").
		Preload("Service").
		Preload("Reservation.Guest").
		Order("service_date DESC").
		Find(&charges).Error; err != nil {
		return nil, Infrastructure(err, "failed to retrieve service charges")
	}
	return charges, nil
}
