// Package zarinpal is a client for the ZarinPal v4 payment gateway.
package zarinpal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wallet-settlement/config"
	"wallet-settlement/internal/core/ports"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const (
	requestPath  = "/pg/v4/payment/request.json"
	verifyPath   = "/pg/v4/payment/verify.json"
	startPayPath = "/pg/StartPay/"
)

// rialsPerToman converts the stored toman amount to the rial amount the
// gateway expects.
var rialsPerToman = decimal.NewFromInt(10)

// Client implements ports.PaymentGateway.
type Client struct {
	http       *resty.Client
	baseURL    string
	merchantID string
}

// NewClient creates a gateway client. Calls are never retried automatically.
func NewClient(cfg config.GatewayConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:       rc,
		baseURL:    baseURL,
		merchantID: cfg.MerchantID,
	}
}

type metadata struct {
	Email string `json:"email,omitempty"`
}

type requestBody struct {
	MerchantID  string    `json:"merchant_id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CallbackURL string    `json:"callback_url"`
	Metadata    *metadata `json:"metadata,omitempty"`
}

type verifyBody struct {
	MerchantID string `json:"merchant_id"`
	Amount     int64  `json:"amount"`
	Authority  string `json:"authority"`
}

// envelope is the common response shape. The gateway sends an empty array
// in whichever of data/errors does not apply, so both are decoded lazily.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

type responseData struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Authority string      `json:"authority"`
	RefID     json.Number `json:"ref_id"`
}

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Initiate opens a payment and returns the authority plus the redirect URL.
func (c *Client) Initiate(ctx context.Context, req ports.InitiateRequest) (*ports.InitiateResult, error) {
	body := requestBody{
		MerchantID:  c.merchantID,
		Amount:      minorUnits(req.Amount),
		Description: req.Description,
		CallbackURL: req.CallbackURL,
	}
	if req.Email != "" {
		body.Metadata = &metadata{Email: req.Email}
	}

	data, err := c.post(ctx, "gateway request", requestPath, body)
	if err != nil {
		return nil, err
	}
	if data.Code != ports.GatewayCodeSuccess || data.Authority == "" {
		return nil, &ports.GatewayError{Code: data.Code, Message: messageOr(data.Message, "payment request rejected")}
	}

	return &ports.InitiateResult{
		Authority:  data.Authority,
		PaymentURL: c.baseURL + startPayPath + data.Authority,
	}, nil
}

// Verify confirms a payment. Code 101 means an earlier verify already
// succeeded and is reported with AlreadyVerified set.
func (c *Client) Verify(ctx context.Context, authority string, amount decimal.Decimal) (*ports.VerifyResult, error) {
	body := verifyBody{
		MerchantID: c.merchantID,
		Amount:     minorUnits(amount),
		Authority:  authority,
	}

	data, err := c.post(ctx, "gateway verify", verifyPath, body)
	if err != nil {
		return nil, err
	}

	switch data.Code {
	case ports.GatewayCodeSuccess, ports.GatewayCodeAlreadyVerified:
		return &ports.VerifyResult{
			Code:            data.Code,
			RefID:           data.RefID.String(),
			AlreadyVerified: data.Code == ports.GatewayCodeAlreadyVerified,
		}, nil
	default:
		return nil, &ports.GatewayError{Code: data.Code, Message: messageOr(data.Message, "payment verification failed")}
	}
}

func (c *Client) post(ctx context.Context, op, path string, body any) (*responseData, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, &ports.NetworkError{Op: op, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, &ports.NetworkError{Op: op, Err: fmt.Errorf("decode response (status %d): %w", resp.StatusCode(), err)}
	}

	if isObject(env.Errors) {
		var e responseError
		if err := json.Unmarshal(env.Errors, &e); err != nil {
			return nil, &ports.NetworkError{Op: op, Err: fmt.Errorf("decode errors: %w", err)}
		}
		if e.Code != 0 {
			return nil, &ports.GatewayError{Code: e.Code, Message: messageOr(e.Message, "gateway error")}
		}
	}

	if resp.IsError() {
		return nil, &ports.NetworkError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode())}
	}

	if !isObject(env.Data) {
		return nil, &ports.NetworkError{Op: op, Err: errors.New("response has no data")}
	}
	var data responseData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, &ports.NetworkError{Op: op, Err: fmt.Errorf("decode data: %w", err)}
	}
	return &data, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(rialsPerToman).Round(0).IntPart()
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
