package services

import (
	"strings"

	"hotel-management-backend/models"

	"gorm.io/gorm"
)

// CatalogService manages the service catalog (laundry, meals, spa...).
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) Create(svc *models.Service) error {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return Validation("service name is required")
	}
	if svc.Charge <= 0 {
		return Validation("service charge must be positive")
	}
	if err := s.DB.Create(svc).Error; err != nil {
		return Infrastructure(err, "failed to create service")
	}
	return nil
}

func (s *CatalogService) GetAll() ([]models.Service, error) {
	var services []models.Service
	if err := s.DB.Order("name").Find(&services).Error; err != nil {
		return nil, Infrastructure(err, "failed to retrieve services")
	}
	return services, nil
}
