package models

import (
	"time"

	"gorm.io/datatypes"
)

// Route is a walking route: a polyline plus its steps and points of interest.
// The JSON blobs are stored as submitted and never inspected on write.
type Route struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Name             *string         `json:"name"`
	Description      *string         `gorm:"type:text" json:"description"`
	Coordinates      datatypes.JSON  `json:"coordinates"` // [[lon, lat], ...]
	Color            *string         `json:"color"`
	Distance         *string         `json:"distance"`
	Duration         *string         `json:"duration"`
	District         *string         `json:"district"`
	Price            *bool           `json:"price"`
	PointsOfInterest datatypes.JSON  `gorm:"column:pointsOfInterest" json:"pointsOfInterest"` // [{title, coordinates}]
	ImageURL         *string         `gorm:"column:imageUrl" json:"imageUrl"`
	Likes            *int            `json:"likes"`
	CreatedDate      *datatypes.Date `gorm:"column:createdAt" json:"createdAt"`
	Steps            datatypes.JSON  `json:"steps"` // [{title, description, image}]
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

var routeFields = fieldSet[Route]{
	"name":             func(r *Route) any { return &r.Name },
	"description":      func(r *Route) any { return &r.Description },
	"coordinates":      func(r *Route) any { return &r.Coordinates },
	"color":            func(r *Route) any { return &r.Color },
	"distance":         func(r *Route) any { return &r.Distance },
	"duration":         func(r *Route) any { return &r.Duration },
	"district":         func(r *Route) any { return &r.District },
	"price":            func(r *Route) any { return &r.Price },
	"pointsOfInterest": func(r *Route) any { return &r.PointsOfInterest },
	"imageUrl":         func(r *Route) any { return &r.ImageURL },
	"likes":            func(r *Route) any { return &r.Likes },
	"createdAt":        func(r *Route) any { return &r.CreatedDate },
	"steps":            func(r *Route) any { return &r.Steps },
}

// Apply projects p onto r through the route allow-list.
func (r *Route) Apply(p Payload) error {
	return routeFields.apply(r, p)
}

// Columns returns the columns an update with p writes.
func (Route) Columns(p Payload) []string {
	return routeFields.columns(p)
}
