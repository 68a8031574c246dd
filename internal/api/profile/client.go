package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"career-offer-tracker/internal/models"
)

// Client for requests to the Profile Service
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	userAgent  string
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger:    logger,
		userAgent: "Career-Offer-Tracker/1.0",
	}
}

// doRequest performs a single bearer-authenticated JSON request. Failures are
// not retried here: callers treat remote errors as non-fatal and the engine
// never re-attempts a failed push.
func (c *Client) doRequest(ctx context.Context, method, path, token string, payload interface{}) ([]byte, error) {
	fullURL := c.baseURL + path

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Debug("successful request",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Int("status", resp.StatusCode),
		)
		return body, nil
	}

	c.logger.Error("profile API error",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Int("status", resp.StatusCode),
		zap.String("body", string(body)),
	)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("unauthorized")
	case http.StatusForbidden:
		return nil, fmt.Errorf("forbidden")
	case http.StatusNotFound:
		return nil, fmt.Errorf("not found")
	case http.StatusBadRequest:
		var apiErr ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Description != "" {
			return nil, fmt.Errorf("bad request: %s", apiErr.Description)
		}
		return nil, fmt.Errorf("bad request: %s", string(body))
	default:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

// parseResponse parses a JSON response into dest.
func (c *Client) parseResponse(data []byte, dest interface{}) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// FetchMetadata retrieves the user's profile metadata, including the remote
// favorites field.
func (c *Client) FetchMetadata(ctx context.Context, token string) (*Metadata, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/metadata", token, nil)
	if err != nil {
		c.logger.Error("failed to fetch metadata", zap.Error(err))
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}

	var envelope metadataEnvelope
	if err := c.parseResponse(data, &envelope); err != nil {
		c.logger.Error("failed to parse metadata response", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("metadata fetched",
		zap.Int("favorites", len(envelope.Metadata.JobOffers)),
		zap.Int("years_completed", len(envelope.Metadata.YearsCompleted)),
	)

	return &envelope.Metadata, nil
}

// ReplaceFavorites overwrites the remote favorites field with the given list.
func (c *Client) ReplaceFavorites(ctx context.Context, token string, offers []models.Offer) error {
	_, err := c.doRequest(ctx, http.MethodPatch, "/metadata", token, favoritesPayload{JobOffers: offers})
	if err != nil {
		c.logger.Error("failed to replace remote favorites",
			zap.Int("count", len(offers)),
			zap.Error(err),
		)
		return fmt.Errorf("replace favorites: %w", err)
	}

	c.logger.Debug("remote favorites replaced", zap.Int("count", len(offers)))
	return nil
}

// RemoveFavorites deletes the given entries from the remote favorites field.
func (c *Client) RemoveFavorites(ctx context.Context, token string, offers []models.Offer) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/metadata", token, favoritesPayload{JobOffers: offers})
	if err != nil {
		c.logger.Error("failed to remove remote favorites",
			zap.Int("count", len(offers)),
			zap.Error(err),
		)
		return fmt.Errorf("remove favorites: %w", err)
	}

	c.logger.Debug("remote favorites removed", zap.Int("count", len(offers)))
	return nil
}
