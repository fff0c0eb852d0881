// Package schooldigger provides the HTTP client for the SchoolDigger API.
package schooldigger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edtools/schooldigger-mcp/internal/common"
)

// Credentials holds the SchoolDigger appID/appKey pair sent as query
// parameters on every request.
type Credentials struct {
	AppID  string
	AppKey string
}

// Client performs authenticated GET requests against the SchoolDigger API.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a new client targeting the given SchoolDigger base URL.
func NewClient(baseURL string, creds Credentials, timeout time.Duration, logger *common.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Get performs a GET request against the given endpoint and returns the
// raw JSON response body. Credentials are merged into the query after the
// caller's params so they can never be overridden, and are omitted entirely
// when unconfigured. A non-2xx status or a non-JSON body is an error.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for key, vals := range params {
		for _, v := range vals {
			query.Add(key, v)
		}
	}
	if c.creds.AppID != "" {
		query.Set("appID", c.creds.AppID)
	}
	if c.creds.AppKey != "" {
		query.Set("appKey", c.creds.AppKey)
	}

	requestURL := strings.TrimSuffix(c.baseURL, "/") + "/" + strings.TrimPrefix(endpoint, "/")
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	// Correlate request and response logs for this one upstream call
	log := c.logger.WithCorrelationId(uuid.New().String())

	log.Debug().
		Str("method", "GET").
		Str("endpoint", endpoint).
		Msg("SchoolDigger API Request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Dur("duration", duration).Msg("SchoolDigger API Request Failed")
		return nil, fmt.Errorf("schooldigger request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	log.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("SchoolDigger API Response")

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s", errResp.Error)
		}
		return nil, fmt.Errorf("schooldigger returned %d: %s", resp.StatusCode, string(body))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("invalid JSON response from schooldigger")
	}

	return body, nil
}

// Call performs Get and folds any failure into an {"error": message} JSON
// value, so callers always receive JSON whether the upstream call succeeded
// or not.
func (c *Client) Call(ctx context.Context, endpoint string, params url.Values) json.RawMessage {
	body, err := c.Get(ctx, endpoint, params)
	if err != nil {
		return errorValue(err.Error())
	}
	return body
}

// errorValue builds the {"error": message} value returned in place of a
// response body on failure.
func errorValue(message string) json.RawMessage {
	v, _ := json.Marshal(map[string]string{"error": message})
	return v
}
