package services

import (
	"errors"
	"strings"
	"time"

	"hotel-management-backend/models"
	"hotel-management-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService owns the reservation lifecycle: booking, the status
// state machine, and the room/guest side effects of transitions.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type CreateReservationInput struct {
	GuestID            uint
	RoomNumber         string
	CheckIn            time.Time
	CheckOut           time.Time
	AccompanyingGuests datatypes.JSON
	// Optional client token making a retried create safe.
	IdempotencyKey string
}

// allowedTransitions is the full state machine. Missing source states
// (CheckedOut, Cancelled) are terminal.
var allowedTransitions = map[string][]string{
	models.StatusConfirmed: {models.StatusCheckedIn, models.StatusCancelled},
	models.StatusCheckedIn: {models.StatusCheckedOut, models.StatusCancelled},
}

// lockForUpdate takes a row lock where the dialect supports it. SQLite has no
// FOR UPDATE; its single-writer transaction lock already serializes the
// check-then-insert there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func transitionAllowed(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Create books a room for a guest. The overlap check and the insert run in one
// transaction holding a row lock on the room, so two concurrent creates for
// the same room serialize instead of double-booking.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	if in.RoomNumber == "" {
		return nil, Validation("room number is required")
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return nil, Validation("check-in and check-out dates are required")
	}
	if !in.CheckOut.After(in.CheckIn) {
		return nil, Validation("check-out date must be after check-in date")
	}

	if key := strings.TrimSpace(in.IdempotencyKey); key != "" {
		if existing, err := s.findByIdempotencyKey(key); err != nil {
			return nil, err
		} else if existing != nil {
			return existing, nil
		}
	}

	var created models.Reservation

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, in.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("guest %d not found", in.GuestID)
			}
			return Infrastructure(err, "failed to load guest")
		}

		// Lock the room row for the duration of the check-then-insert.
		var room models.Room
		if err := lockForUpdate(tx).
			Where("room_number = ?", in.RoomNumber).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("room %s not found", in.RoomNumber)
			}
			return Infrastructure(err, "failed to load room")
		}

		var overlapping int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ?", room.ID).
			Where("status IN ?", activeStatuses).
			Where("NOT (check_out_date <= ? OR check_in_date >= ?)", in.CheckIn, in.CheckOut).
			Count(&overlapping).Error; err != nil {
			return Infrastructure(err, "failed to check room availability")
		}
		if overlapping > 0 {
			return Conflict("room %s is not available for the requested dates", in.RoomNumber)
		}

		nights := utils.Nights(in.CheckIn, in.CheckOut)
		created = models.Reservation{
			GuestID:            guest.ID,
			RoomID:             room.ID,
			CheckIn:            in.CheckIn,
			CheckOut:           in.CheckOut,
			Status:             models.StatusConfirmed,
			TotalAmount:        float64(nights) * room.Rent,
			ReferenceCode:      uuid.New().String(),
			AccompanyingGuests: in.AccompanyingGuests,
		}
		if key := strings.TrimSpace(in.IdempotencyKey); key != "" {
			created.IdempotencyKey = &key
		}

		if err := tx.Create(&created).Error; err != nil {
			if isDuplicateKey(err) {
				// Another request with the same idempotency key won the race.
				return err
			}
			return Infrastructure(err, "failed to create reservation")
		}
		return nil
	})

	if txErr != nil {
		if isDuplicateKey(txErr) {
			if existing, err := s.findByIdempotencyKey(strings.TrimSpace(in.IdempotencyKey)); err == nil && existing != nil {
				return existing, nil
			}
		}
		var e *Error
		if errors.As(txErr, &e) {
			return nil, e
		}
		return nil, Infrastructure(txErr, "reservation transaction failed")
	}

	return s.GetByID(created.ID)
}

func (s *ReservationService) findByIdempotencyKey(key string) (*models.Reservation, error) {
	if key == "" {
		return nil, nil
	}
	var existing models.Reservation
	err := s.DB.Preload("Guest").Preload("Room").
		Where("idempotency_key = ?", key).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, Infrastructure(err, "failed to look up idempotency key")
}

// SetStatus applies one transition of the state machine, with side effects:
// CheckedIn marks the room Occupied and flags the guest; CheckedOut and
// Cancelled free the room; leaving CheckedIn clears the guest flag. Service
// charges and payments are never touched on cancellation — they stay for
// audit.
func (s *ReservationService) SetStatus(reservationID uint, newStatus string) (*models.Reservation, error) {
	if !models.ValidStatus(newStatus) {
		return nil, Validation("unknown status %q", newStatus)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := lockForUpdate(tx).
			First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("reservation %d not found", reservationID)
			}
			return Infrastructure(err, "failed to load reservation")
		}

		if !transitionAllowed(res.Status, newStatus) {
			return InvalidTransition("cannot change reservation status from %s to %s", res.Status, newStatus)
		}
		wasCheckedIn := res.Status == models.StatusCheckedIn

		if err := tx.Model(&res).Update("status", newStatus).Error; err != nil {
			return Infrastructure(err, "failed to update reservation status")
		}

		switch newStatus {
		case models.StatusCheckedIn:
			if err := tx.Model(&models.Room{}).Where("id = ?", res.RoomID).
				Update("status", models.RoomOccupied).Error; err != nil {
				return Infrastructure(err, "failed to update room status")
			}
			if err := tx.Model(&models.Guest{}).Where("id = ?", res.GuestID).
				Update("check_in_status", true).Error; err != nil {
				return Infrastructure(err, "failed to update guest status")
			}
		case models.StatusCheckedOut, models.StatusCancelled:
			if err := tx.Model(&models.Room{}).Where("id = ?", res.RoomID).
				Update("status", models.RoomAvailable).Error; err != nil {
				return Infrastructure(err, "failed to update room status")
			}
			if wasCheckedIn {
				// The guest may still be checked in on another room.
				var remaining int64
				if err := tx.Model(&models.Reservation{}).
					Where("guest_id = ? AND status = ?", res.GuestID, models.StatusCheckedIn).
					Count(&remaining).Error; err != nil {
					return Infrastructure(err, "failed to count guest stays")
				}
				if remaining == 0 {
					if err := tx.Model(&models.Guest{}).Where("id = ?", res.GuestID).
						Update("check_in_status", false).Error; err != nil {
						return Infrastructure(err, "failed to update guest status")
					}
				}
			}
		}
		return nil
	})

	if txErr != nil {
		var e *Error
		if errors.As(txErr, &e) {
			return nil, e
		}
		return nil, Infrastructure(txErr, "status transaction failed")
	}

	return s.GetByID(reservationID)
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.Preload("Guest").Preload("Room").First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("reservation %d not found", id)
		}
		return nil, Infrastructure(err, "failed to load reservation")
	}
	return &res, nil
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.
		Preload("Guest").
		Preload("Room").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, Infrastructure(err, "failed to retrieve reservations")
	}
	return list, nil
}
