package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
)

// Client talks to the cart and discount services over REST. It implements
// CartAPI and DiscountAPI. No retries and no circuit breaking: every failure
// is terminal for that one call and the caller decides what to tell the user.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, e.g. for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CurrentCart(ctx context.Context) (string, error) {
	var out currentCartDTO
	if err := c.getJSON(ctx, "/cart/api/current", &out); err != nil {
		return "", fmt.Errorf("get current cart: %w", err)
	}
	return out.CartID, nil
}

func (c *Client) ListLines(ctx context.Context, cartID string) ([]*domain.CartLine, error) {
	var dtos []CartLineDTO
	if err := c.getJSON(ctx, "/cart/api/"+cartID+"/items", &dtos); err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	lines := make([]*domain.CartLine, 0, len(dtos))
	for _, d := range dtos {
		lines = append(lines, d.ToDomain())
	}
	return lines, nil
}

func (c *Client) Subtotal(ctx context.Context, cartID string) (int64, error) {
	var total int64
	if err := c.getJSON(ctx, "/cart/api/"+cartID+"/total", &total); err != nil {
		return 0, fmt.Errorf("get cart total: %w", err)
	}
	return total, nil
}

func (c *Client) UpdateLine(ctx context.Context, cartID, lineID string, req UpdateLineRequest) (UpdateLineResult, error) {
	var out UpdateLineResult
	err := c.doJSON(ctx, http.MethodPut, "/CartProduct/"+cartID+"/"+lineID, req, &out)
	if err != nil {
		return UpdateLineResult{}, fmt.Errorf("update cart line: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteLine(ctx context.Context, cartID, lineID string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/CartProduct/"+cartID+"/"+lineID, nil, nil); err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

func (c *Client) DeleteSelected(ctx context.Context, cartID string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/CartProduct/"+cartID+"/selected", nil, nil); err != nil {
		return fmt.Errorf("delete selected lines: %w", err)
	}
	return nil
}

func (c *Client) DeleteUnavailableLine(ctx context.Context, cartID, lineID string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/CartProduct/"+cartID+"/unavailable/"+lineID, nil, nil); err != nil {
		return fmt.Errorf("delete unavailable line: %w", err)
	}
	return nil
}

func (c *Client) Apply(ctx context.Context, code string, subtotal int64) (int64, error) {
	req := applyDiscountRequestDTO{DiscountCode: code, OrderTotal: subtotal}
	var out applyDiscountResponseDTO
	if err := c.doJSON(ctx, http.MethodPost, "/discounts/apply", req, &out); err != nil {
		return 0, fmt.Errorf("apply discount: %w", err)
	}
	return out.Result.DiscountAmount, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: readServerMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readServerMessage pulls a human-readable message out of an error body.
// Both {"message": ...} and {"error": ...} shapes are in use server-side.
func readServerMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
