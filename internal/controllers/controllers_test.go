package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prom_map/internal/models"
	"prom_map/internal/services"
	"prom_map/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockLocationStore is a mock of LocationStore
type MockLocationStore struct {
	mock.Mock
}

func (m *MockLocationStore) List(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Location), args.Error(1)
}

func (m *MockLocationStore) Get(ctx context.Context, id uint) (*models.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationStore) Create(ctx context.Context, location *models.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockLocationStore) Update(ctx context.Context, location *models.Location, columns []string) error {
	return m.Called(ctx, location, columns).Error(0)
}

func (m *MockLocationStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func newLocationEngine(store LocationStore) *gin.Engine {
	lc := NewLocationController(store)
	r := gin.New()
	r.GET("/locations", lc.List)
	r.POST("/locations", lc.Create)
	r.GET("/locations/:id", lc.Get)
	r.PUT("/locations/:id", lc.Update)
	r.DELETE("/locations/:id", lc.Delete)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLocationController_StorageFailures(t *testing.T) {
	t.Run("list failure is a 500", func(t *testing.T) {
		store := &MockLocationStore{}
		store.On("List", mock.Anything).Return(nil, errors.New("connection reset"))

		w := serve(newLocationEngine(store), http.MethodGet, "/locations", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "connection reset")
		store.AssertExpectations(t)
	})

	t.Run("missing id is a 404", func(t *testing.T) {
		store := &MockLocationStore{}
		store.On("Get", mock.Anything, uint(9999)).Return(nil, services.ErrNotFound)

		w := serve(newLocationEngine(store), http.MethodPut, "/locations/9999", `{"title":"x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Location not found"}`, w.Body.String())
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("create failure is a 500", func(t *testing.T) {
		store := &MockLocationStore{}
		store.On("Create", mock.Anything, mock.AnythingOfType("*models.Location")).Return(errors.New("disk full"))

		w := serve(newLocationEngine(store), http.MethodPost, "/locations", `{"title":"x"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLocationController_BadInput(t *testing.T) {
	store := &MockLocationStore{}
	r := newLocationEngine(store)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"non numeric id", http.MethodGet, "/locations/abc", ""},
		{"array body", http.MethodPost, "/locations", `[1,2]`},
		{"broken json", http.MethodPost, "/locations", `{"title":`},
		{"wrong field type", http.MethodPost, "/locations", `{"likes":"many"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLocationController_CreateProjectsBody(t *testing.T) {
	store := &MockLocationStore{}
	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Location")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Location).ID = 1
		}).
		Return(nil)

	w := serve(newLocationEngine(store), http.MethodPost, "/locations", `{"title":"Point A","price":true,"hacker":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Point A", body["title"])
	assert.Equal(t, true, body["price"])
	assert.Nil(t, body["center"])
	assert.NotContains(t, body, "hacker")
}

func TestLocationController_EmptyBodyUpdateIsNoop(t *testing.T) {
	existing := &models.Location{ID: 3, Title: ptr("Kept")}
	store := &MockLocationStore{}
	store.On("Get", mock.Anything, uint(3)).Return(existing, nil)
	store.On("Update", mock.Anything, existing, []string{}).Return(nil)

	w := serve(newLocationEngine(store), http.MethodPut, "/locations/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Kept"`)
	store.AssertExpectations(t)
}

func TestLocationController_UpdateWritesOnlySentColumns(t *testing.T) {
	existing := &models.Location{ID: 3, Title: ptr("Kept")}
	store := &MockLocationStore{}
	store.On("Get", mock.Anything, uint(3)).Return(existing, nil)
	store.On("Update", mock.Anything, existing, []string{"likes", "tag"}).Return(nil)

	w := serve(newLocationEngine(store), http.MethodPut, "/locations/3", `{"tag":null,"likes":2,"hacker":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}

func TestLocationController_UpdateOfVanishedRowIsNotFound(t *testing.T) {
	store := &MockLocationStore{}
	store.On("Get", mock.Anything, uint(3)).Return(&models.Location{ID: 3}, nil)
	store.On("Update", mock.Anything, mock.Anything, []string{"likes"}).Return(services.ErrNotFound)

	w := serve(newLocationEngine(store), http.MethodPut, "/locations/3", `{"likes":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Location not found"}`, w.Body.String())
}

// vanishingStore deletes each row right after handing it out.
type vanishingStore struct {
	*services.LocationService
}

func (v vanishingStore) Get(ctx context.Context, id uint) (*models.Location, error) {
	location, err := v.LocationService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return location, v.LocationService.Delete(ctx, id)
}

func TestLocationController_UpdateRacingDeleteKeepsRowDeleted(t *testing.T) {
	svc := services.NewLocationService(testhelpers.NewDB(t))
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, &models.Location{Title: ptr("Doomed")}))

	w := serve(newLocationEngine(vanishingStore{svc}), http.MethodPut, "/locations/1", `{"likes":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRouteFeatures(t *testing.T) {
	t.Run("line and points of interest", func(t *testing.T) {
		route := &models.Route{
			ID:               4,
			Name:             ptr("Old town"),
			Coordinates:      []byte(`[[85.0,56.5],[85.1,56.6]]`),
			PointsOfInterest: []byte(`[{"title":"Tower","coordinates":[85.05,56.55]}]`),
		}
		fc, err := routeFeatures(route)
		require.NoError(t, err)

		b, err := fc.MarshalJSON()
		require.NoError(t, err)

		var out struct {
			Type     string `json:"type"`
			Features []struct {
				ID       string `json:"id"`
				Geometry struct {
					Type        string          `json:"type"`
					Coordinates json.RawMessage `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]any `json:"properties"`
			} `json:"features"`
		}
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Equal(t, "FeatureCollection", out.Type)
		require.Len(t, out.Features, 2)
		assert.Equal(t, "4", out.Features[0].ID)
		assert.Equal(t, "LineString", out.Features[0].Geometry.Type)
		assert.JSONEq(t, `[[85,56.5],[85.1,56.6]]`, string(out.Features[0].Geometry.Coordinates))
		assert.Equal(t, "Old town", out.Features[0].Properties["name"])
		assert.Equal(t, "Point", out.Features[1].Geometry.Type)
		assert.Equal(t, "Tower", out.Features[1].Properties["title"])
	})

	t.Run("no geometry yields an empty collection", func(t *testing.T) {
		fc, err := routeFeatures(&models.Route{ID: 1, Coordinates: []byte(`null`)})
		require.NoError(t, err)
		assert.Empty(t, fc.Features)
	})

	t.Run("malformed pairs", func(t *testing.T) {
		_, err := routeFeatures(&models.Route{ID: 1, Coordinates: []byte(`[[85.0]]`)})
		assert.ErrorIs(t, err, errBadGeometry)

		_, err = routeFeatures(&models.Route{ID: 1, Coordinates: []byte(`"somewhere"`)})
		assert.ErrorIs(t, err, errBadGeometry)
	})
}

func ptr[T any](v T) *T { return &v }
