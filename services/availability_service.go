package services

import (
	"time"

	"hotel-management-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers date-ranged room availability. Ranged queries go
// through the reservation table only; Room.Status is never consulted here.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// activeStatuses are the reservation states that block a room for a window.
var activeStatuses = []string{models.StatusConfirmed, models.StatusCheckedIn}

// FindAvailableRooms returns rooms with no Confirmed/CheckedIn reservation
// overlapping [checkIn, checkOut). When either date is absent the caller is
// browsing, not booking, and gets every room unfiltered.
func (s *AvailabilityService) FindAvailableRooms(checkIn, checkOut *time.Time) ([]models.Room, error) {
	var rooms []models.Room

	q := s.DB.Order("room_number")
	if checkIn != nil && checkOut != nil {
		// Half-open overlap: NOT (existing ends on/before requested start OR
		// existing starts on/after requested end). Checkout day counts as free.
		booked := s.DB.Model(&models.Reservation{}).
			Select("room_id").
			Where("status IN ?", activeStatuses).
			Where("NOT (check_out_date <= ? OR check_in_date >= ?)", *checkIn, *checkOut)
		q = q.Where("id NOT IN (?)", booked)
	}

	if err := q.Find(&rooms).Error; err != nil {
		return nil, Infrastructure(err, "failed to query available rooms")
	}
	return rooms, nil
}
