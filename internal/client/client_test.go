package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://api.prom-map.ru/api", "/locations", "https://api.prom-map.ru/api/locations"},
		{"https://api.prom-map.ru/api/", "/locations", "https://api.prom-map.ru/api/locations"},
		{"https://api.prom-map.ru/api", "locations/3", "https://api.prom-map.ru/api/locations/3"},
	}
	for _, tt := range tests {
		b, err := NewBase(tt.base, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, b.Resolve(tt.path, nil))
	}

	b, err := NewBase("http://h/booking", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://h/booking/spaces/?parkId=7", b.Resolve("spaces/", url.Values{"parkId": {"7"}}))
}

func TestDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Write([]byte(`{"value":1}`))
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Location not found"}`))
		}
	}))
	defer srv.Close()

	b, err := NewBase(srv.URL, nil)
	require.NoError(t, err)
	ctx := context.Background()

	var out struct{ Value int }
	require.NoError(t, b.DoJSON(ctx, http.MethodPost, "/ok", nil, map[string]int{"a": 1}, &out))
	assert.Equal(t, 1, out.Value)

	require.NoError(t, b.DoJSON(ctx, http.MethodDelete, "/empty", nil, nil, &out))

	_, err = b.Do(ctx, http.MethodGet, "/missing", nil, nil)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Location not found")
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestDoTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	b, err := NewBase(srv.URL, nil)
	require.NoError(t, err)
	_, err = b.Do(context.Background(), http.MethodGet, "/", nil, nil)
	require.Error(t, err)
	var se *StatusError
	assert.False(t, errors.As(err, &se))
}
