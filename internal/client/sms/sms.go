// Package sms is the client for the space-status service.
package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"prom_map/internal/client"
)

const (
	StatusOpen   = "open"
	StatusOccupy = "occupy"
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

// ClearPlace marks the space open.
func (c *Client) ClearPlace(ctx context.Context, spaceID string) (json.RawMessage, error) {
	return c.updateStatus(ctx, spaceID, StatusOpen)
}

// DownLocker marks the space occupied.
func (c *Client) DownLocker(ctx context.Context, spaceID string) (json.RawMessage, error) {
	return c.updateStatus(ctx, spaceID, StatusOccupy)
}

func (c *Client) updateStatus(ctx context.Context, spaceID, status string) (json.RawMessage, error) {
	var out json.RawMessage
	path := "space/" + url.PathEscape(spaceID) + "/update"
	if err := c.base.DoJSON(ctx, http.MethodPost, path, nil, map[string]string{"status": status}, &out); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"space_id": spaceID, "status": status}).Warn("sms status update failed")
		return nil, err
	}
	return out, nil
}
