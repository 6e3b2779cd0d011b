package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// Payload is a decoded but not yet validated API response. Validate turns it
// into a domain.ReviewFeed.
type Payload map[string]json.RawMessage

// Config holds Practicum API client configuration.
type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

// Client fetches homework statuses from the Practicum API. It performs no
// retries; the next scheduled poll is the retry.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint: endpoint,
		token:    cfg.Token,
		logger:   logger.With("source", "practicum"),
	}
}

// Fetch issues a single authenticated GET for statuses newer than fromDate
// (Unix seconds). The payload is decoded but not validated.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (Payload, error) {
	u := fmt.Sprintf("%s?%s", c.endpoint, url.Values{
		"from_date": {strconv.FormatInt(fromDate, 10)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, newError(KindTransport, "create request", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindTransport, "execute request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newError(KindUnexpectedStatus,
			fmt.Sprintf("endpoint answered %d", resp.StatusCode), nil)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, newError(KindMalformedPayload, "decode response", err)
	}

	c.logger.Debug("fetched homework statuses", "from_date", fromDate)
	return payload, nil
}
