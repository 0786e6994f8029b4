// Package booking is the client for the external booking/locker/charger
// service. Responses are passed through as raw JSON.
package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"prom_map/internal/client"
	"prom_map/internal/client/session"
)

type Client struct {
	base    *client.Base
	session *session.Session
}

// New wraps hc's transport so every request carries the session's bearer token.
func New(baseURL string, sess *session.Session, hc *http.Client) (*Client, error) {
	wrapped := &http.Client{}
	if hc != nil {
		*wrapped = *hc
	}
	wrapped.Transport = &session.Transport{Base: wrapped.Transport, Session: sess}

	base, err := client.NewBase(baseURL, wrapped)
	if err != nil {
		return nil, err
	}
	return &Client{base: base, session: sess}, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// do performs the request and caches any token found in a successful response.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (json.RawMessage, error) {
	data, err := c.base.Do(ctx, method, path, query, body)
	if err != nil {
		logrus.WithError(err).WithField("op", op).Warn("booking request failed")
		return nil, err
	}
	c.captureToken(ctx, data)
	return json.RawMessage(data), nil
}

func (c *Client) captureToken(ctx context.Context, data []byte) {
	var envelope struct {
		Token string `json:"token"`
	}
	if json.Unmarshal(data, &envelope) != nil || envelope.Token == "" {
		return
	}
	if err := c.session.Update(ctx, envelope.Token); err != nil {
		logrus.WithError(err).Error("booking: could not persist session token")
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	return c.do(ctx, "Login", http.MethodPost, "user/login", nil, credentials{Email: email, Password: password})
}

func (c *Client) Register(ctx context.Context, email, password string) (json.RawMessage, error) {
	return c.do(ctx, "Register", http.MethodPost, "user/register", nil, credentials{Email: email, Password: password})
}

func (c *Client) GetSpaces(ctx context.Context, parkID string) (json.RawMessage, error) {
	return c.do(ctx, "GetSpaces", http.MethodGet, "spaces/", url.Values{"parkId": {parkID}}, nil)
}

func (c *Client) GetSessionsLockers(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetSessionsLockers", http.MethodGet, "admin/sessions/lockers", nil, nil)
}

func (c *Client) GetChargers(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetChargers", http.MethodGet, "admin/chargers", nil, nil)
}

func (c *Client) GetSessionsChargers(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetSessionsChargers", http.MethodGet, "admin/sessions/chargers", nil, nil)
}

// FinishSession cancels a session; kind is "lockers" or "chargers".
func (c *Client) FinishSession(ctx context.Context, sessionID, kind string) (json.RawMessage, error) {
	path := "admin/sessions/" + url.PathEscape(kind) + "/cancel/" + url.PathEscape(sessionID)
	return c.do(ctx, "FinishSession", http.MethodPost, path, nil, nil)
}

// FinishPayment confirms a captured payment.
func (c *Client) FinishPayment(ctx context.Context, paymentID string) (json.RawMessage, error) {
	body := map[string]string{"paymentId": paymentID, "event": "captured"}
	return c.do(ctx, "FinishPayment", http.MethodPost, "admin/payments/confirm", nil, body)
}

func (c *Client) GetPaymentInfo(ctx context.Context, paymentID string) (json.RawMessage, error) {
	return c.do(ctx, "GetPaymentInfo", http.MethodGet, "admin/payments/"+url.PathEscape(paymentID), nil, nil)
}

func (c *Client) EnableLocker(ctx context.Context, spaceID string) (json.RawMessage, error) {
	return c.do(ctx, "EnableLocker", http.MethodPost, "admin/spaces/"+url.PathEscape(spaceID)+"/enable", nil, nil)
}

func (c *Client) DisableLocker(ctx context.Context, spaceID string) (json.RawMessage, error) {
	return c.do(ctx, "DisableLocker", http.MethodPost, "admin/spaces/"+url.PathEscape(spaceID)+"/disable", nil, nil)
}

func (c *Client) ResetAll(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "ResetAll", http.MethodPost, "admin/sessions/reset", nil, nil)
}

// UserMe returns the account behind the current token.
func (c *Client) UserMe(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "UserMe", http.MethodGet, "user/me", nil, nil)
}
