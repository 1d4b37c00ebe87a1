// Package gateway is the admin console's HTTP client for the portal backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SahanHeshan/GovPortal/internal/adminconsole/models"
)

// Client calls the portal REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        Logger
}

// NewClient creates a portal API client. tokens supplies the bearer token for
// authenticated calls; login itself runs without one.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

// LoginResult is the login response: the officer profile plus the minted token
type LoginResult struct {
	Officer     models.Officer
	AccessToken string
}

// Login authenticates with an OAuth2-style password grant
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	endpoint := c.baseURL + "/api/v1/gov/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: malformed login form", ErrBadRequest)
	default:
		return nil, unexpectedStatus(resp)
	}

	var body struct {
		models.Officer
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Login succeeded: username=%s", username)
	return &LoginResult{Officer: body.Officer, AccessToken: body.AccessToken}, nil
}

// Logout kills the server-side session of the current token
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/gov/logout", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		// Token already dead, which is what logout wanted anyway
		return nil
	default:
		return unexpectedStatus(resp)
	}
}

// ListServices fetches the service catalogue of one office
func (c *Client) ListServices(ctx context.Context, officeID int64) ([]models.Service, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/gov/services/%d", officeID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	var services []models.Service
	if err := json.NewDecoder(resp.Body).Decode(&services); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return services, nil
}

// ListSlots fetches every slot owned by one service
func (c *Client) ListSlots(ctx context.Context, reservationID int64) ([]models.TimeSlot, error) {
	return c.listSlots(ctx, fmt.Sprintf("/api/v1/appointments/available_slots/%d", reservationID))
}

// ListSlotsByDate fetches one service's slots on one calendar date
// ("YYYY-MM-DD")
func (c *Client) ListSlotsByDate(ctx context.Context, reservationID int64, date string) ([]models.TimeSlot, error) {
	return c.listSlots(ctx, fmt.Sprintf("/api/v1/appointments/available_slots/%d/%s", reservationID, date))
}

func (c *Client) listSlots(ctx context.Context, path string) ([]models.TimeSlot, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	var slots []models.TimeSlot
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return slots, nil
}

// GetSlot fetches one slot by id
func (c *Client) GetSlot(ctx context.Context, slotID int64) (*models.TimeSlot, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/appointments/slot/%d", slotID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	return decodeSlot(resp.Body)
}

// CreateSlot submits a create payload and returns the first created instance
func (c *Client) CreateSlot(ctx context.Context, payload models.CreateSlotPayload) (*models.TimeSlot, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/appointments/create_slot", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusCreated); err != nil {
		return nil, err
	}

	return decodeSlot(resp.Body)
}

// UpdateSlot submits an update payload for one slot
func (c *Client) UpdateSlot(ctx context.Context, slotID int64, payload models.UpdateSlotPayload) (*models.TimeSlot, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/appointments/slot/%d", slotID), payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	return decodeSlot(resp.Body)
}

// DeleteSlot removes one slot
func (c *Client) DeleteSlot(ctx context.Context, slotID int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/appointments/slot/delete/%d", slotID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp, http.StatusOK)
}

// do builds and executes an authenticated request. payload, when non-nil,
// is sent as a JSON body.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response, want int) error {
	switch resp.StatusCode {
	case want:
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, errorMessage(resp))
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return unexpectedStatus(resp)
	}
}

// errorMessage pulls the backend's message out of the uniform error body
func errorMessage(resp *http.Response) string {
	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return "request rejected"
	}
	return body.Message
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}

func decodeSlot(r io.Reader) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	if err := json.NewDecoder(r).Decode(&slot); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &slot, nil
}
