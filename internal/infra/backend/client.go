// Package backend implements the typed client of the marketplace REST backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"go.uber.org/fx"
)

// maxErrorBody bounds how much of an error response is read for details.
const maxErrorBody = 4 << 10

// Client is the net/http implementation of service.MarketplaceGateway.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds the gateway from the backend section of the config.
func NewClient(params ClientParams) (service.MarketplaceGateway, error) {
	return newClient(params.Config.Backend, params.Logger)
}

func newClient(cfg *config.BackendConfig, logger *slog.Logger) (*Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("backend base URL is required")
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid backend base URL")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("backend base URL must be absolute: %q", cfg.BaseURL)
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}, nil
}

// envelope is the backend's success wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// errorBody covers the error shapes the backend is known to return.
type errorBody struct {
	Message string `json:"message"`
	Error   any    `json:"error"`
	Details any    `json:"details"`
}

func (c *Client) Login(ctx context.Context, req service.LoginRequest) (*entity.AuthSession, error) {
	var session entity.AuthSession
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, req, &session); err != nil {
		// A 401 on login means bad credentials rather than an expired session.
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	return &session, nil
}

func (c *Client) Register(ctx context.Context, req service.RegisterRequest) (*entity.AuthSession, error) {
	var session entity.AuthSession
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, req, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) ListOrders(ctx context.Context, token string, filter entity.OrderFilter) (*entity.OrderPage, error) {
	query := url.Values{}
	setIfNotEmpty(query, "store_id", filter.StoreID)
	setIfNotEmpty(query, "status", string(filter.Status))
	setIfPositive(query, "page", filter.Page)
	setIfPositive(query, "page_size", filter.PageSize)

	var page entity.OrderPage
	if err := c.do(ctx, http.MethodGet, "/api/orders", token, query, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*entity.Order, error) {
	var order entity.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), token, nil, nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	body := map[string]entity.OrderStatus{"status": status}

	var order entity.Order
	path := "/api/orders/" + url.PathEscape(orderID) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, token, nil, body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) SearchStores(ctx context.Context, token, query string, page int) (*entity.StorePage, error) {
	values := url.Values{}
	setIfNotEmpty(values, "q", query)
	setIfPositive(values, "page", page)

	var result entity.StorePage
	if err := c.do(ctx, http.MethodGet, "/api/stores", token, values, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) GetStore(ctx context.Context, token, storeID string) (*entity.Store, error) {
	var store entity.Store
	if err := c.do(ctx, http.MethodGet, "/api/stores/"+url.PathEscape(storeID), token, nil, nil, &store); err != nil {
		return nil, err
	}

	return &store, nil
}

func (c *Client) AttachStoreImage(ctx context.Context, token, storeID string, req service.StoreImageRequest) (*entity.Store, error) {
	var store entity.Store
	path := "/api/stores/" + url.PathEscape(storeID) + "/images"
	if err := c.do(ctx, http.MethodPost, path, token, nil, req, &store); err != nil {
		return nil, err
	}

	return &store, nil
}

func (c *Client) ListPartnerships(ctx context.Context, token, storeID string) ([]*entity.Partnership, error) {
	query := url.Values{}
	setIfNotEmpty(query, "store_id", storeID)

	var partnerships []*entity.Partnership
	if err := c.do(ctx, http.MethodGet, "/api/partnerships", token, query, nil, &partnerships); err != nil {
		return nil, err
	}

	return partnerships, nil
}

func (c *Client) RequestPartnership(ctx context.Context, token string, req service.PartnershipRequest) (*entity.Partnership, error) {
	var partnership entity.Partnership
	if err := c.do(ctx, http.MethodPost, "/api/partnerships", token, nil, req, &partnership); err != nil {
		return nil, err
	}

	return &partnership, nil
}

func (c *Client) RespondPartnership(ctx context.Context, token, partnershipID string, decision entity.PartnershipDecision) (*entity.Partnership, error) {
	body := map[string]entity.PartnershipDecision{"decision": decision}

	var partnership entity.Partnership
	path := "/api/partnerships/" + url.PathEscape(partnershipID)
	if err := c.do(ctx, http.MethodPatch, path, token, nil, body, &partnership); err != nil {
		return nil, err
	}

	return &partnership, nil
}

func (c *Client) AdminKPIs(ctx context.Context, token string) ([]entity.KPI, error) {
	var kpis []entity.KPI
	if err := c.do(ctx, http.MethodGet, "/api/admin/kpis", token, nil, nil, &kpis); err != nil {
		return nil, err
	}

	return kpis, nil
}

func (c *Client) AdminAlerts(ctx context.Context, token string) ([]entity.Alert, error) {
	var alerts []entity.Alert
	if err := c.do(ctx, http.MethodGet, "/api/admin/alerts", token, nil, nil, &alerts); err != nil {
		return nil, err
	}

	return alerts, nil
}

// do performs one backend call. It never retries.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, in, out any) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger).With(
		slog.String("backend_method", method),
		slog.String("backend_path", path),
	)

	endpoint := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode backend request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return errors.Wrap(err, "failed to build backend request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Backend call failed", slog.Any("error", err))

		return domainerrors.ErrBackendUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		appErr := mapStatus(resp.StatusCode, readErrorMessage(resp.Body))
		logger.Warn("Backend call rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("error_code", appErr.ErrorCode()),
		)

		return appErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		logger.Error("Backend returned malformed envelope", slog.Any("error", err))

		return domainerrors.ErrBackendUnavailable.WrapMessage("malformed backend response")
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		logger.Error("Backend returned unexpected payload", slog.Any("error", err))

		return domainerrors.ErrBackendUnavailable.WrapMessage("unexpected backend payload")
	}

	return nil
}

// mapStatus translates a backend status code into the application error taxonomy.
func mapStatus(status int, message string) *domainerrors.BaseError {
	switch {
	case status == http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized
	case status == http.StatusForbidden:
		return domainerrors.ErrForbidden
	case status == http.StatusNotFound:
		return domainerrors.ErrNotFound
	case status == http.StatusConflict:
		return domainerrors.ErrConflict.WithDetails(message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domainerrors.ErrValidationFailed.WithDetails(message)
	default:
		return domainerrors.ErrBackendUnavailable.WithDetails(fmt.Sprintf("backend status %d", status))
	}
}

func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}

	switch {
	case body.Message != "":
		return body.Message
	case body.Error != nil:
		return describe(body.Error)
	case body.Details != nil:
		return describe(body.Details)
	default:
		return ""
	}
}

// describe flattens a free-form JSON error value into one line.
func describe(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if msg, ok := val["message"].(string); ok {
			return msg
		}
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return string(raw)
}

func setIfNotEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setIfPositive(values url.Values, key string, value int) {
	if value > 0 {
		values.Set(key, strconv.Itoa(value))
	}
}
