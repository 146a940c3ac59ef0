package services

import (
	"errors"
	"strings"
	"time"

	"hotel-management-backend/models"

	"gorm.io/gorm"
)

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

func (s *StaffService) Create(staff *models.Staff) error {
	staff.Name = strings.TrimSpace(staff.Name)
	if staff.Name == "" {
		return Validation("staff name is required")
	}
	if staff.JoinDate.IsZero() {
		staff.JoinDate = time.Now()
	}
	if err := s.DB.Create(staff).Error; err != nil {
		return Infrastructure(err, "failed to create staff member")
	}
	return nil
}

func (s *StaffService) Update(staff *models.Staff) error {
	var existing models.Staff
	if err := s.DB.First(&existing, staff.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("staff member %d not found", staff.ID)
		}
		return Infrastructure(err, "failed to load staff member")
	}
	if err := s.DB.Model(&existing).Updates(map[string]interface{}{
		"name":    staff.Name,
		"dept":    staff.Dept,
		"age":     staff.Age,
		"contact": staff.Contact,
		"salary":  staff.Salary,
	}).Error; err != nil {
		return Infrastructure(err, "failed to update staff member")
	}
	return nil
}

func (s *StaffService) Delete(id uint) error {
	result := s.DB.Delete(&models.Staff{}, id)
	if result.Error != nil {
		return Infrastructure(result.Error, "failed to delete staff member")
	}
	if result.RowsAffected == 0 {
		return NotFound("staff member %d not found", id)
	}
	return nil
}

func (s *StaffService) GetAll() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Order("id DESC").Find(&staff).Error; err != nil {
		return nil, Infrastructure(err, "failed to retrieve staff")
	}
	return staff, nil
}
