package services

import (
	"context"

	"gorm.io/gorm"

	"prom_map/internal/models"
)

// LocationService is the record store for map locations.
type LocationService struct {
	DB *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{DB: db}
}

// List returns every location in storage order.
func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	locations := make([]models.Location, 0)
	if err := s.DB.WithContext(ctx).Find(&locations).Error; err != nil {
		return nil, translate("list locations", err)
	}
	return locations, nil
}

func (s *LocationService) Get(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	if err := s.DB.WithContext(ctx).First(&location, id).Error; err != nil {
		return nil, translate("get location", err)
	}
	return &location, nil
}

func (s *LocationService) Create(ctx context.Context, location *models.Location) error {
	return translate("create location", s.DB.WithContext(ctx).Create(location).Error)
}

// Update writes only the given columns of location and reloads the row. A row
// deleted since it was read stays deleted and yields ErrNotFound.
func (s *LocationService) Update(ctx context.Context, location *models.Location, columns []string) error {
	db := s.DB.WithContext(ctx)
	if len(columns) > 0 {
		res := db.Model(location).Select(columns).Updates(location)
		if res.Error != nil {
			return translate("update location", res.Error)
		}
		if res.RowsAffected == 0 {
			return translate("update location", gorm.ErrRecordNotFound)
		}
	}
	return translate("update location", db.First(location, location.ID).Error)
}

// Delete removes the row permanently.
func (s *LocationService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Location{}, id)
	if res.Error != nil {
		return translate("delete location", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete location", gorm.ErrRecordNotFound)
	}
	return nil
}
