package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"prom_map/internal/models"
)

// LocationStore is the persistence the location handlers need.
type LocationStore interface {
	List(ctx context.Context) ([]models.Location, error)
	Get(ctx context.Context, id uint) (*models.Location, error)
	Create(ctx context.Context, location *models.Location) error
	Update(ctx context.Context, location *models.Location, columns []string) error
	Delete(ctx context.Context, id uint) error
}

// LocationController serves location CRUD for both the public and the admin
// route groups.
type LocationController struct {
	Store LocationStore
}

func NewLocationController(store LocationStore) *LocationController {
	return &LocationController{Store: store}
}

const locationNotFound = "Location not found"

// List returns all locations.
func (lc *LocationController) List(c *gin.Context) {
	locations, err := lc.Store.List(c.Request.Context())
	if err != nil {
		respondError(c, locationNotFound, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// Get returns a single location.
func (lc *LocationController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	location, err := lc.Store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, locationNotFound, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// Create stores the allow-listed fields of the body as a new location.
func (lc *LocationController) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	var location models.Location
	if err := location.Apply(payload); err != nil {
		respondError(c, locationNotFound, err)
		return
	}
	if err := lc.Store.Create(c.Request.Context(), &location); err != nil {
		respondError(c, locationNotFound, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

// Update overwrites the allow-listed fields present in the body.
func (lc *LocationController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	location, err := lc.Store.Get(ctx, id)
	if err != nil {
		respondError(c, locationNotFound, err)
		return
	}

	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	if err := location.Apply(payload); err != nil {
		respondError(c, locationNotFound, err)
		return
	}
	if err := lc.Store.Update(ctx, location, location.Columns(payload)); err != nil {
		respondError(c, locationNotFound, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// Delete removes a location permanently.
func (lc *LocationController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := lc.Store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, locationNotFound, err)
		return
	}
	c.Status(http.StatusNoContent)
}
