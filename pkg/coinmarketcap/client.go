package coinmarketcap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a quotes client. A zero timeout keeps the http.Client default.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// QuotesLatest fetches the latest quotes for symbols in a single request.
// The API key header is sent even when empty; the service answers with its own error.
func (c *Client) QuotesLatest(ctx context.Context, symbols []string) (*QuotesResponse, error) {
	params := url.Values{}
	params.Set(SymbolParam, strings.Join(symbols, ","))
	endpoint := c.baseURL + QuotesLatestPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accepts", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(APIKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, body)
	}

	var out QuotesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if out.Status.ErrorCode != 0 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			ErrorCode:  out.Status.ErrorCode,
			Message:    out.Status.ErrorMessage,
		}
	}

	return &out, nil
}

// statusError builds an APIError from an error body, falling back to the raw
// body when it carries no status block.
func statusError(code int, body []byte) *APIError {
	var env struct {
		Status Status `json:"status"`
	}
	apiErr := &APIError{StatusCode: code, Message: strings.TrimSpace(string(body))}
	if err := json.Unmarshal(body, &env); err == nil && env.Status.ErrorMessage != "" {
		apiErr.ErrorCode = env.Status.ErrorCode
		apiErr.Message = env.Status.ErrorMessage
	}
	return apiErr
}
