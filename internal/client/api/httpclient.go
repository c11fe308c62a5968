package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/portfolioimane/storefront-cli/internal/client/models"
	"github.com/portfolioimane/storefront-cli/internal/common"
	"github.com/portfolioimane/storefront-cli/internal/logging"
)

// HTTPClient is the JSON-over-HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New builds an HTTPClient for the API at baseURL. Tokens from the given
// source are attached to every request by the underlying transport.
func New(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &authTransport{base: http.DefaultTransport, tokens: tokens},
		},
		log: log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &resp, false); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Cart(ctx context.Context) ([]models.CartLine, error) {
	var resp struct {
		Items []models.CartLine `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &resp, false); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) RemoveCartItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/remove/%d", id), nil, nil, false)
}

func (c *HTTPClient) CartCount(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cart/count", nil, &resp, false); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *HTTPClient) CheckoutSummary(ctx context.Context) (*models.CheckoutSummary, error) {
	var resp models.CheckoutSummary
	if err := c.do(ctx, http.MethodGet, "/api/checkout", nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) PlaceCashOrder(ctx context.Context) (*OrderPlacement, error) {
	var resp OrderPlacement
	if err := c.do(ctx, http.MethodPost, "/api/checkout/cash-on-delivery", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateWalletPayment(ctx context.Context) (string, error) {
	body := map[string]string{"payment_method": string(models.MethodWallet)}

	var resp struct {
		RedirectURL string `json:"redirect_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/create-payment", body, &resp, true); err != nil {
		return "", err
	}
	return resp.RedirectURL, nil
}

func (c *HTTPClient) ProcessCardPayment(ctx context.Context, paymentMethodID string) (*CardPayment, error) {
	body := map[string]string{
		"payment_method_id": paymentMethodID,
		"payment_method":    string(models.MethodCard),
	}

	var resp CardPayment
	if err := c.do(ctx, http.MethodPost, "/api/process-payment", body, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) OrderDetails(ctx context.Context, id int64) (*models.OrderDetails, error) {
	var resp models.OrderDetails
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/order-details/%d", id), nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs a single request and decodes the JSON response into out (when
// non-nil). Order-creating POSTs set idempotent to attach an Idempotency-Key,
// so a duplicate submission racing a slow response cannot create a second
// order server-side.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any, idempotent bool) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if idempotent {
		req.Header.Set(common.IdempotencyKeyHeader, uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err.Error())
		return fmt.Errorf("%s %s: %w", method, path, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(ctx, method, path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) decodeError(ctx context.Context, method, path string, status int, raw []byte) error {
	apiErr := &Error{Status: status}

	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Fields = payload.Errors
	}

	c.log.Warn(ctx, "api error", "method", method, "path", path, "status", status)
	return apiErr
}
