package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"prom_map/internal/models"
)

// RouteStore is the persistence the route handlers need.
type RouteStore interface {
	List(ctx context.Context) ([]models.Route, error)
	Get(ctx context.Context, id uint) (*models.Route, error)
	Create(ctx context.Context, route *models.Route) error
	Update(ctx context.Context, route *models.Route, columns []string) error
	Delete(ctx context.Context, id uint) error
}

type RouteController struct {
	Store RouteStore
}

func NewRouteController(store RouteStore) *RouteController {
	return &RouteController{Store: store}
}

const routeNotFound = "Route not found"

func (rc *RouteController) List(c *gin.Context) {
	routes, err := rc.Store.List(c.Request.Context())
	if err != nil {
		respondError(c, routeNotFound, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (rc *RouteController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := rc.Store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, routeNotFound, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// Create stores the allow-listed fields of the body as a new route. The
// coordinates are not checked against the points of interest.
func (rc *RouteController) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	var route models.Route
	if err := route.Apply(payload); err != nil {
		respondError(c, routeNotFound, err)
		return
	}
	if err := rc.Store.Create(c.Request.Context(), &route); err != nil {
		respondError(c, routeNotFound, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

func (rc *RouteController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	route, err := rc.Store.Get(ctx, id)
	if err != nil {
		respondError(c, routeNotFound, err)
		return
	}

	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	if err := route.Apply(payload); err != nil {
		respondError(c, routeNotFound, err)
		return
	}
	if err := rc.Store.Update(ctx, route, route.Columns(payload)); err != nil {
		respondError(c, routeNotFound, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (rc *RouteController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.Store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, routeNotFound, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GeoJSON renders the route as a FeatureCollection: the polyline as a
// LineString followed by one Point per point of interest.
func (rc *RouteController) GeoJSON(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := rc.Store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, routeNotFound, err)
		return
	}

	fc, err := routeFeatures(route)
	if err != nil {
		requestLog(c).WithError(err).Warn("GeoJSON: stored geometry is not renderable")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		respondError(c, routeNotFound, err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", body)
}

var errBadGeometry = errors.New("coordinates must be [lon, lat] pairs")

type pointOfInterest struct {
	Title       *string   `json:"title"`
	Coordinates []float64 `json:"coordinates"`
}

func routeFeatures(route *models.Route) (*gjson.FeatureCollection, error) {
	fc := &gjson.FeatureCollection{Features: []*gjson.Feature{}}

	var path [][]float64
	if len(route.Coordinates) > 0 {
		if err := json.Unmarshal(route.Coordinates, &path); err != nil {
			return nil, fmt.Errorf("route coordinates: %w", errBadGeometry)
		}
	}
	if len(path) > 0 {
		flat := make([]float64, 0, 2*len(path))
		for _, p := range path {
			if len(p) != 2 {
				return nil, fmt.Errorf("route coordinates: %w", errBadGeometry)
			}
			flat = append(flat, p[0], p[1])
		}
		fc.Features = append(fc.Features, &gjson.Feature{
			ID:       strconv.FormatUint(uint64(route.ID), 10),
			Geometry: geom.NewLineStringFlat(geom.XY, flat),
			Properties: map[string]interface{}{
				"name":     route.Name,
				"color":    route.Color,
				"distance": route.Distance,
				"duration": route.Duration,
				"district": route.District,
			},
		})
	}

	var pois []pointOfInterest
	if len(route.PointsOfInterest) > 0 {
		if err := json.Unmarshal(route.PointsOfInterest, &pois); err != nil {
			return nil, fmt.Errorf("points of interest: %w", errBadGeometry)
		}
	}
	for _, poi := range pois {
		if len(poi.Coordinates) != 2 {
			return nil, fmt.Errorf("point of interest: %w", errBadGeometry)
		}
		fc.Features = append(fc.Features, &gjson.Feature{
			Geometry:   geom.NewPointFlat(geom.XY, poi.Coordinates),
			Properties: map[string]interface{}{"title": poi.Title},
		})
	}
	return fc, nil
}
