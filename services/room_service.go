package services

import (
	"errors"
	"strings"

	"hotel-management-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, Infrastructure(err, "failed to retrieve rooms")
	}
	return rooms, nil
}

// Upsert creates the room or, when the number is already taken, updates its
// category and rent. Room number is the natural key.
func (s *RoomService) Upsert(room *models.Room) (created bool, err error) {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return false, Validation("room number is required")
	}
	if !models.ValidCategory(room.Category) {
		return false, Validation("unknown room category %q", room.Category)
	}
	if room.Rent <= 0 {
		return false, Validation("nightly rent must be positive")
	}

	var existing models.Room
	findErr := s.DB.Where("room_number = ?", room.RoomNumber).First(&existing).Error
	if findErr == nil {
		existing.Category = room.Category
		existing.Rent = room.Rent
		if room.LastCleaned != nil {
			existing.LastCleaned = room.LastCleaned
		}
		if err := s.DB.Save(&existing).Error; err != nil {
			return false, Infrastructure(err, "failed to update room")
		}
		*room = existing
		return false, nil
	}
	if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return false, Infrastructure(findErr, "failed to look up room")
	}

	room.Status = models.RoomAvailable
	if err := s.DB.Create(room).Error; err != nil {
		return false, Infrastructure(err, "failed to create room")
	}
	return true, nil
}
