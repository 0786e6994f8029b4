package models

import (
	"time"

	"gorm.io/datatypes"
)

// Location is a point of interest shown on the map.
// Every column is nullable; nothing is required on create.
type Location struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Tag          *string        `json:"tag"`
	Property     *string        `json:"property"`
	Address      *string        `json:"address"`
	Center       datatypes.JSON `json:"center"` // [lon, lat]
	Zoom         *int           `json:"zoom"`
	Title        *string        `json:"title"`
	Description  *string        `gorm:"type:text" json:"description"`
	Likes        *int           `json:"likes"`
	Price        *bool          `json:"price"`
	IsHistorical *bool          `gorm:"column:isHistorical" json:"isHistorical"`
	AudioURL     *string        `gorm:"column:audioUrl" json:"audioUrl"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// address is persisted but not mass-assignable.
var locationFields = fieldSet[Location]{
	"tag":          func(l *Location) any { return &l.Tag },
	"property":     func(l *Location) any { return &l.Property },
	"center":       func(l *Location) any { return &l.Center },
	"zoom":         func(l *Location) any { return &l.Zoom },
	"title":        func(l *Location) any { return &l.Title },
	"description":  func(l *Location) any { return &l.Description },
	"likes":        func(l *Location) any { return &l.Likes },
	"price":        func(l *Location) any { return &l.Price },
	"isHistorical": func(l *Location) any { return &l.IsHistorical },
	"audioUrl":     func(l *Location) any { return &l.AudioURL },
}

// Apply projects p onto l through the location allow-list.
func (l *Location) Apply(p Payload) error {
	return locationFields.apply(l, p)
}

// Columns returns the columns an update with p writes.
func (Location) Columns(p Payload) []string {
	return locationFields.columns(p)
}
