package fdc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/renalplate/backend/internal/domain"
)

const (
	maxAttempts  = 3
	maxErrorBody = 2048
)

// Client handles communication with the USDA FoodData Central API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new FoodData Central client.
func NewClient(apiKey, baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	// FDC allows 1000 requests per hour; 1000/3600 ≈ 0.278 req/sec.
	limiter := rate.NewLimiter(rate.Limit(0.278), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger,
	}
}

// doRequest executes an HTTP GET request against the provider.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "RenalPlate/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFDCUnavailable, err)
	}

	return resp, nil
}

// SearchFoods searches FoodData Central for candidate foods.
func (c *Client) SearchFoods(ctx context.Context, query string, pageSize int) (*domain.FoodSearchResponse, error) {
	if pageSize < 1 {
		pageSize = 1
	}

	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("api_key", c.apiKey)
	params.Add("pageSize", strconv.Itoa(pageSize))

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry transient failures; 404 and other 4xx are final.
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			c.logger.Warn("search request failed",
				zap.String("query", query), zap.Int("attempt", attempt), zap.Error(err))
			lastErr = err
			sleepBackoff(ctx, attempt)
			continue
		}

		body, _ := readLimitedBody(resp.Body, 1<<20)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if resp.StatusCode == http.StatusNotFound {
				return nil, domain.ErrFoodNotFound
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrFDCUnavailable, resp.StatusCode)
			if !isRetryable(resp.StatusCode) {
				c.logger.Warn("search rejected",
					zap.String("query", query), zap.Int("status", resp.StatusCode),
					zap.ByteString("body", truncate(body, maxErrorBody)))
				return nil, lastErr
			}
			c.logger.Warn("search failed",
				zap.String("query", query), zap.Int("status", resp.StatusCode), zap.Int("attempt", attempt))
			sleepBackoff(ctx, attempt)
			continue
		}

		var searchResp domain.FoodSearchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrFDCUnavailable, err)
		}

		if len(searchResp.Foods) == 0 {
			c.logger.Info("no foods found", zap.String("query", query))
			return nil, domain.ErrFoodNotFound
		}

		c.logger.Debug("search succeeded",
			zap.String("query", query), zap.Int("hits", len(searchResp.Foods)))
		return &searchResp, nil
	}

	return nil, lastErr
}

// GetFood retrieves the detailed nutrient breakdown for a specific food.
func (c *Client) GetFood(ctx context.Context, fdcID int64) (*domain.FoodDetail, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/food/%d", c.baseURL, fdcID)
	params := url.Values{}
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := readLimitedBody(resp.Body, maxErrorBody)
		c.logger.Warn("detail fetch failed",
			zap.Int64("fdcId", fdcID), zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrFDCUnavailable, resp.StatusCode)
	}

	var detail domain.FoodDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrFDCUnavailable, err)
	}

	return &detail, nil
}

// isRetryable reports whether a status code is worth another attempt.
func isRetryable(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}

// exponentialBackoff returns the wait before the next attempt: 500ms, 1s, 2s.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

func sleepBackoff(ctx context.Context, attempt int) {
	select {
	case <-time.After(exponentialBackoff(attempt)):
	case <-ctx.Done():
	}
}

// readLimitedBody reads at most limit bytes of a response body.
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
