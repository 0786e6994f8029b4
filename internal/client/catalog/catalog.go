// Package catalog is the client for the location and route API.
package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"prom_map/internal/client"
	"prom_map/internal/models"
)

type Client struct {
	base *client.Base
}

func New(baseURL string, hc *http.Client) (*Client, error) {
	base, err := client.NewBase(baseURL, hc)
	if err != nil {
		return nil, err
	}
	return &Client{base: base}, nil
}

func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	if err := c.base.DoJSON(ctx, method, path, nil, body, out); err != nil {
		logrus.WithError(err).WithField("op", op).Warn("catalog request failed")
		return err
	}
	return nil
}

func (c *Client) GetLocations(ctx context.Context) ([]models.Location, error) {
	var out []models.Location
	if err := c.call(ctx, "GetLocations", http.MethodGet, "/locations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLocation(ctx context.Context, id uint) (*models.Location, error) {
	var out models.Location
	if err := c.call(ctx, "GetLocation", http.MethodGet, fmt.Sprintf("/locations/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLocation sends data as-is; the server keeps only the fields it recognizes.
func (c *Client) CreateLocation(ctx context.Context, data any) (*models.Location, error) {
	var out models.Location
	if err := c.call(ctx, "CreateLocation", http.MethodPost, "/locations", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLocation(ctx context.Context, id uint, data any) (*models.Location, error) {
	var out models.Location
	if err := c.call(ctx, "UpdateLocation", http.MethodPut, fmt.Sprintf("/locations/%d", id), data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id uint) error {
	return c.call(ctx, "DeleteLocation", http.MethodDelete, fmt.Sprintf("/locations/%d", id), nil, nil)
}

func (c *Client) GetRoutes(ctx context.Context) ([]models.Route, error) {
	var out []models.Route
	if err := c.call(ctx, "GetRoutes", http.MethodGet, "/routes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRoute(ctx context.Context, id uint) (*models.Route, error) {
	var out models.Route
	if err := c.call(ctx, "GetRoute", http.MethodGet, fmt.Sprintf("/routes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRoute(ctx context.Context, data any) (*models.Route, error) {
	var out models.Route
	if err := c.call(ctx, "CreateRoute", http.MethodPost, "/routes", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRoute(ctx context.Context, id uint, data any) (*models.Route, error) {
	var out models.Route
	if err := c.call(ctx, "UpdateRoute", http.MethodPut, fmt.Sprintf("/routes/%d", id), data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRoute(ctx context.Context, id uint) error {
	return c.call(ctx, "DeleteRoute", http.MethodDelete, fmt.Sprintf("/routes/%d", id), nil, nil)
}
