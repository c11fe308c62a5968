package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/portfolioimane/storefront-cli/internal/common"
	"github.com/portfolioimane/storefront-cli/internal/logging"
)

// HTTPProcessor implements Processor against the processor's REST API using
// a publishable (client-side) key. Like the storefront gateway it makes a
// single attempt per call.
type HTTPProcessor struct {
	baseURL        string
	publishableKey string
	http           *http.Client
	log            logging.Logger
}

func NewHTTPProcessor(baseURL, publishableKey string, log logging.Logger) *HTTPProcessor {
	return &HTTPProcessor{
		baseURL:        strings.TrimRight(baseURL, "/"),
		publishableKey: publishableKey,
		http:           &http.Client{},
		log:            log,
	}
}

// Error is a structured failure reported by the processor (decline, invalid
// card, unknown intent).
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("processor: %s (%s)", e.Message, e.Code)
	}
	return "processor: " + e.Message
}

func (p *HTTPProcessor) CreatePaymentMethod(ctx context.Context, card Card) (string, error) {
	form := url.Values{}
	form.Set("type", "card")
	form.Set("card[number]", card.Number)
	form.Set("card[exp_month]", card.ExpMonth)
	form.Set("card[exp_year]", card.ExpYear)
	form.Set("card[cvc]", card.CVC)

	var resp struct {
		ID string `json:"id"`
	}
	if err := p.post(ctx, "/v1/payment_methods", form, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", &Error{Message: "no payment method id in response"}
	}
	return resp.ID, nil
}

func (p *HTTPProcessor) ConfirmPayment(ctx context.Context, clientSecret string) (*Intent, error) {
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_secret", clientSecret)

	var intent Intent
	if err := p.post(ctx, "/v1/payment_intents/"+intentID+"/confirm", form, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// intentIDFromSecret derives the intent id from a client secret of the form
// "<intent id>_secret_<nonce>".
func intentIDFromSecret(secret string) (string, error) {
	id, _, found := strings.Cut(secret, "_secret_")
	if !found || id == "" {
		return "", &Error{Message: "malformed client secret"}
	}
	return id, nil
}

func (p *HTTPProcessor) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+p.publishableKey)

	resp, err := p.http.Do(req)
	if err != nil {
		p.log.Error(ctx, "processor request failed", "path", path, "error", err.Error())
		return fmt.Errorf("POST %s: %w", path, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error Error `json:"error"`
		}
		if err := json.Unmarshal(raw, &payload); err == nil && payload.Error.Message != "" {
			p.log.Warn(ctx, "processor error", "path", path, "status", resp.StatusCode, "code", payload.Error.Code)
			return &payload.Error
		}
		return &Error{Message: http.StatusText(resp.StatusCode)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
