package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"clinic-console/internal/domain/clinic"
	apperrors "clinic-console/pkg/errors"
	"clinic-console/pkg/logger"
)

// Config holds configuration for the backend client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the HTTP client for the remote clinic backend. Every call
// serializes JSON, attaches the bearer token when one is set, and decodes
// the backend's {success, data|message} envelope. Failures are returned as
// tagged errors: *apperrors.UnavailableError for transport failures,
// *apperrors.AuthError for rejected credentials, *apperrors.UpstreamError
// for other backend rejections.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	mu    sync.RWMutex
	token string
}

// New creates a backend client. The timeout bounds every request; callers
// can cancel earlier through the context.
func New(cfg Config, log *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the stored bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently stored bearer token, empty when anonymous.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs one backend request. body is JSON-encoded when non-nil; the
// response body is decoded into out when out is non-nil and the request
// succeeded.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError("failed to encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return apperrors.NewInternalError("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := logger.WithContext(ctx, c.log)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("backend request failed",
			zap.String("url", url),
			zap.String("method", method),
			zap.Error(err),
			zap.String("hint", "check that the backend is running and reachable"),
		)
		return apperrors.NewUnavailableError("clinic backend unreachable", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewUnavailableError("failed to read backend response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := rejectionMessage(data)
		log.Warn("backend rejected request",
			zap.String("url", url),
			zap.String("method", method),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return apperrors.NewAuthError(msg)
		}
		return apperrors.NewUpstreamError(resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return apperrors.NewUnavailableError("failed to decode backend response", err)
		}
	}
	return nil
}

// rejectionMessage extracts the backend's message field, falling back to a
// generic message when the body carries none.
func rejectionMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return "Request failed"
}

// LoginResult is the payload returned on a successful admin login.
type LoginResult struct {
	Token string
	User  clinic.AdminUser
}

// Login authenticates an admin and stores the returned token on success.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	req := map[string]string{"username": username, "password": password}
	var resp struct {
		Success bool             `json:"success"`
		Token   string           `json:"token"`
		User    clinic.AdminUser `json:"user"`
		Message string           `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Token == "" {
		return nil, apperrors.NewAuthError(fallback(resp.Message, "Login failed"))
	}
	c.SetToken(resp.Token)
	return &LoginResult{Token: resp.Token, User: resp.User}, nil
}

// SignupPayload is the registrant data submitted from the signup form.
type SignupPayload struct {
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	CountryCode string         `json:"countryCode"`
	DateOfBirth string         `json:"dateOfBirth"`
	Gender      string         `json:"gender"`
	Address     clinic.Address `json:"address"`
}

// Signup registers a new visitor.
func (c *Client) Signup(ctx context.Context, payload SignupPayload) (*clinic.Registrant, error) {
	var resp struct {
		Success bool              `json:"success"`
		User    clinic.Registrant `json:"user"`
		Message string            `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", payload, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apperrors.NewUpstreamError(0, fallback(resp.Message, "Signup failed"))
	}
	return &resp.User, nil
}

// VerifyToken checks the stored token against the backend. It returns an
// auth error when no token is stored.
func (c *Client) VerifyToken(ctx context.Context) error {
	if c.Token() == "" {
		return apperrors.NewAuthError("no token found")
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return apperrors.NewAuthError(fallback(resp.Message, "Token verification failed"))
	}
	return nil
}

// Pagination is the page metadata the backend returns on list endpoints.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// ListUsers fetches a page of registrants.
func (c *Client) ListUsers(ctx context.Context, page, limit int) ([]clinic.Registrant, *Pagination, error) {
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Users      []clinic.Registrant `json:"users"`
			Pagination *Pagination         `json:"pagination"`
		} `json:"data"`
	}
	path := fmt.Sprintf("/users?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Data.Users, resp.Data.Pagination, nil
}

// UserStats fetches the backend's registrant summary.
func (c *Client) UserStats(ctx context.Context) (*clinic.UserStats, error) {
	var resp struct {
		Success bool             `json:"success"`
		Data    clinic.UserStats `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateUserStatus changes a registrant's review status.
func (c *Client) UpdateUserStatus(ctx context.Context, id, status string) error {
	req := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, "/users/"+id+"/status", req, nil)
}

// DeleteUser removes a registrant.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}

// Appointments fetches all appointments.
func (c *Client) Appointments(ctx context.Context) ([]clinic.Appointment, error) {
	var resp struct {
		Success      bool                 `json:"success"`
		Appointments []clinic.Appointment `json:"appointments"`
	}
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

// BookAppointment submits a public booking request.
func (c *Client) BookAppointment(ctx context.Context, appt clinic.Appointment) (*clinic.Appointment, error) {
	var resp struct {
		Success     bool               `json:"success"`
		Appointment clinic.Appointment `json:"appointment"`
		Message     string             `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/appointments", appt, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apperrors.NewUpstreamError(0, fallback(resp.Message, "Failed to book appointment"))
	}
	return &resp.Appointment, nil
}

// UpdateAppointmentStatus changes an appointment's status.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	req := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, "/appointments/"+id+"/status", req, nil)
}

// Offers fetches active offers (public view).
func (c *Client) Offers(ctx context.Context) ([]clinic.Offer, error) {
	return c.fetchOffers(ctx, "/offers")
}

// AllOffers fetches every offer including inactive ones (admin view).
func (c *Client) AllOffers(ctx context.Context) ([]clinic.Offer, error) {
	return c.fetchOffers(ctx, "/offers/all")
}

func (c *Client) fetchOffers(ctx context.Context, path string) ([]clinic.Offer, error) {
	var resp struct {
		Success bool           `json:"success"`
		Data    []clinic.Offer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// OfferPayload is the offer data sent on create and update. Pointer and
// omitempty fields allow partial updates such as an activation toggle.
type OfferPayload struct {
	Title              string   `json:"title,omitempty"`
	Description        string   `json:"description,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	OriginalPrice      *float64 `json:"originalPrice,omitempty"`
	Image              string   `json:"image,omitempty"`
	Category           string   `json:"category,omitempty"`
	Features           []string `json:"features,omitempty"`
	IsActive           *bool    `json:"isActive,omitempty"`
	TermsAndConditions string   `json:"termsAndConditions,omitempty"`
}

// CreateOffer creates a new offer.
func (c *Client) CreateOffer(ctx context.Context, payload OfferPayload) (*clinic.Offer, error) {
	var resp struct {
		Success bool         `json:"success"`
		Data    clinic.Offer `json:"data"`
		Message string       `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/offers", payload, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apperrors.NewUpstreamError(0, fallback(resp.Message, "Failed to create offer"))
	}
	return &resp.Data, nil
}

// UpdateOffer updates an existing offer; zero fields are left untouched.
func (c *Client) UpdateOffer(ctx context.Context, id string, payload OfferPayload) error {
	return c.do(ctx, http.MethodPut, "/offers/"+id, payload, nil)
}

// DeleteOffer removes an offer.
func (c *Client) DeleteOffer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/offers/"+id, nil, nil)
}

// SliderImages fetches active slider images (public view).
func (c *Client) SliderImages(ctx context.Context) ([]clinic.SliderImage, error) {
	return c.fetchSlider(ctx, "/slider")
}

// AllSliderImages fetches every slider image including inactive ones.
func (c *Client) AllSliderImages(ctx context.Context) ([]clinic.SliderImage, error) {
	return c.fetchSlider(ctx, "/slider/all")
}

func (c *Client) fetchSlider(ctx context.Context, path string) ([]clinic.SliderImage, error) {
	var resp struct {
		Success bool                 `json:"success"`
		Data    []clinic.SliderImage `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SliderPayload is the slider image data sent on create and update.
type SliderPayload struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
	Order       *int   `json:"order,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// CreateSliderImage creates a new slider image.
func (c *Client) CreateSliderImage(ctx context.Context, payload SliderPayload) (*clinic.SliderImage, error) {
	var resp struct {
		Success bool               `json:"success"`
		Data    clinic.SliderImage `json:"data"`
		Message string             `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/slider", payload, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apperrors.NewUpstreamError(0, fallback(resp.Message, "Failed to create slider image"))
	}
	return &resp.Data, nil
}

// UpdateSliderImage updates an existing slider image.
func (c *Client) UpdateSliderImage(ctx context.Context, id string, payload SliderPayload) error {
	return c.do(ctx, http.MethodPut, "/slider/"+id, payload, nil)
}

// DeleteSliderImage removes a slider image.
func (c *Client) DeleteSliderImage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/slider/"+id, nil, nil)
}

// Health checks backend reachability.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func fallback(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}
