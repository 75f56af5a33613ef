package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/fleet-tracker/internal/config"
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg config.ClientAdapter) ServerAdapter {
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/token")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var token models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.User{}, fmt.Errorf("decode token response: %w", err)
	}

	h.SetToken(token.AccessToken)

	return h.Me(ctx)
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) ListReports(ctx context.Context, offset, limit int64) ([]models.Report, error) {
	req := h.authedRequest(ctx)
	if offset > 0 {
		req.SetQueryParam("offset", strconv.FormatInt(offset, 10))
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatInt(limit, 10))
	}

	resp, err := req.Get("/reports")
	if err != nil {
		return nil, fmt.Errorf("list reports request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var reports []models.Report
	if err = json.Unmarshal(resp.Body(), &reports); err != nil {
		return nil, fmt.Errorf("decode reports response: %w", err)
	}

	return reports, nil
}

func (h *httpServerAdapter) CreateReport(ctx context.Context, req models.ReportCreateRequest) (models.Report, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/reports")
	if err != nil {
		return models.Report{}, fmt.Errorf("create report request: %w", err)
	}

	return decodeReport(resp)
}

func (h *httpServerAdapter) ApproveReport(ctx context.Context, reportID int64) (models.Report, error) {
	resp, err := h.authedRequest(ctx).Post(fmt.Sprintf("/reports/%d/approve", reportID))
	if err != nil {
		return models.Report{}, fmt.Errorf("approve report request: %w", err)
	}

	return decodeReport(resp)
}

func (h *httpServerAdapter) RejectReport(ctx context.Context, reportID int64) (models.Report, error) {
	resp, err := h.authedRequest(ctx).Post(fmt.Sprintf("/reports/%d/reject", reportID))
	if err != nil {
		return models.Report{}, fmt.Errorf("reject report request: %w", err)
	}

	return decodeReport(resp)
}

func (h *httpServerAdapter) CancelReport(ctx context.Context, reportID int64) (models.Report, error) {
	resp, err := h.authedRequest(ctx).Post(fmt.Sprintf("/captain/reports/%d/cancel", reportID))
	if err != nil {
		return models.Report{}, fmt.Errorf("cancel report request: %w", err)
	}

	return decodeReport(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeReport(resp *resty.Response) (models.Report, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Report{}, err
	}

	var report models.Report
	if err := json.Unmarshal(resp.Body(), &report); err != nil {
		return models.Report{}, fmt.Errorf("decode report response: %w", err)
	}

	return report, nil
}
