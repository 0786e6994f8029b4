package services

import (
	"context"

	"gorm.io/gorm"

	"prom_map/internal/models"
)

// RouteService is the record store for walking routes.
type RouteService struct {
	DB *gorm.DB
}

func NewRouteService(db *gorm.DB) *RouteService {
	return &RouteService{DB: db}
}

func (s *RouteService) List(ctx context.Context) ([]models.Route, error) {
	routes := make([]models.Route, 0)
	if err := s.DB.WithContext(ctx).Find(&routes).Error; err != nil {
		return nil, translate("list routes", err)
	}
	return routes, nil
}

func (s *RouteService) Get(ctx context.Context, id uint) (*models.Route, error) {
	var route models.Route
	if err := s.DB.WithContext(ctx).First(&route, id).Error; err != nil {
		return nil, translate("get route", err)
	}
	return &route, nil
}

func (s *RouteService) Create(ctx context.Context, route *models.Route) error {
	return translate("create route", s.DB.WithContext(ctx).Create(route).Error)
}

// Update writes only the given columns of route and reloads the row. A row
// deleted since it was read stays deleted and yields ErrNotFound.
func (s *RouteService) Update(ctx context.Context, route *models.Route, columns []string) error {
	db := s.DB.WithContext(ctx)
	if len(columns) > 0 {
		res := db.Model(route).Select(columns).Updates(route)
		if res.Error != nil {
			return translate("update route", res.Error)
		}
		if res.RowsAffected == 0 {
			return translate("update route", gorm.ErrRecordNotFound)
		}
	}
	return translate("update route", db.First(route, route.ID).Error)
}

func (s *RouteService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Route{}, id)
	if res.Error != nil {
		return translate("delete route", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete route", gorm.ErrRecordNotFound)
	}
	return nil
}
