package services

import (
	"errors"
	"strings"

	"hotel-management-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// CreateOrGet registers a guest, deduplicating on email: creating with an
// email that already exists returns the existing record instead of a
// duplicate. The unique index on email closes the check-then-insert race —
// a losing insert falls back to re-reading the winner.
func (s *GuestService) CreateOrGet(guest *models.Guest) (alreadyExists bool, err error) {
	guest.Email = strings.TrimSpace(guest.Email)
	guest.Name = strings.TrimSpace(guest.Name)
	if guest.Email == "" {
		return false, Validation("guest email is required")
	}
	if guest.Name == "" {
		return false, Validation("guest name is required")
	}

	var existing models.Guest
	findErr := s.DB.Where("email = ?", guest.Email).First(&existing).Error
	if findErr == nil {
		*guest = existing
		return true, nil
	}
	if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return false, Infrastructure(findErr, "failed to look up guest")
	}

	if createErr := s.DB.Create(guest).Error; createErr != nil {
		if isDuplicateKey(createErr) {
			if err := s.DB.Where("email = ?", guest.Email).First(&existing).Error; err == nil {
				*guest = existing
				return true, nil
			}
		}
		return false, Infrastructure(createErr, "failed to create guest")
	}
	return false, nil
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("id DESC").Find(&guests).Error; err != nil {
		return nil, Infrastructure(err, "failed to retrieve guests")
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("guest %d not found", id)
		}
		return nil, Infrastructure(err, "failed to load guest")
	}
	return &guest, nil
}

// Delete removes a guest. Refused while the guest is checked in.
func (s *GuestService) Delete(id uint) error {
	guest, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if guest.CheckInStatus {
		return Conflict("guest %d is currently checked in and cannot be deleted", id)
	}
	if err := s.DB.Delete(&models.Guest{}, id).Error; err != nil {
		return Infrastructure(err, "failed to delete guest")
	}
	return nil
}
