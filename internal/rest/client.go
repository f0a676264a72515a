package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/habtools/habctl/internal/config"
	"github.com/habtools/habctl/internal/errors"
	"github.com/rs/zerolog"
)

// Client performs single-shot REST calls against the server. Each call is
// independent and stateless: no retries, no caching, no de-duplication.
// Cancellation and deadlines come from the caller's context.
type Client struct {
	logger     zerolog.Logger
	httpClient HTTPClientProvider
	base       string
}

var _ ItemProvider = (*Client)(nil)

// NewClient creates a REST client for the server described by cfg.
func NewClient(logger zerolog.Logger, cfg *config.Config, httpClient HTTPClientProvider) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		logger:     logger.With().Str("component", "rest_client").Logger(),
		httpClient: httpClient,
		base:       ResolveBaseURL(cfg),
	}
}

// BaseURL returns the resolved scheme+authority the client talks to.
func (c *Client) BaseURL() string {
	return c.base
}

// GetItem fetches a single item by name. A response body carrying an error
// field resolves to a NotFound typed error; the caller treats that as "no
// result", not as a failure.
func (c *Client) GetItem(ctx context.Context, name string) (*Item, error) {
	target := BuildURL(c.base, "/rest/items/"+url.PathEscape(name))

	body, err := c.get(ctx, target)
	if err != nil {
		if hErr, ok := err.(*errors.HabError); ok && hErr.Type == errors.ErrorTypeNotFound {
			hErr.WithContext("item", name)
		}
		return nil, err
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to parse item response").
			WithContext("url", target)
	}

	if item.NotFound() {
		return nil, errors.New(errors.ErrorTypeNotFound, item.Error.Message).
			WithContext("item", name)
	}

	return &item, nil
}

// ListItems fetches every item the server knows about.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	target := BuildURL(c.base, "/rest/items")

	body, err := c.get(ctx, target)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to parse items response").
			WithContext("url", target)
	}

	return items, nil
}

// GetServiceConfig fetches the configuration record of a managed service.
func (c *Client) GetServiceConfig(ctx context.Context, serviceID string) (ServiceConfig, error) {
	target := BuildURL(c.base, "/rest/services/"+url.PathEscape(serviceID)+"/config")

	body, err := c.get(ctx, target)
	if err != nil {
		return nil, err
	}

	var cfg ServiceConfig
	if err := json.Unmarshal(body, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to parse service config response").
			WithContext("url", target).
			WithContext("service", serviceID)
	}

	return cfg, nil
}

// ListSitemaps fetches the sitemaps the server exposes.
func (c *Client) ListSitemaps(ctx context.Context) ([]Sitemap, error) {
	target := BuildURL(c.base, "/rest/sitemaps")

	body, err := c.get(ctx, target)
	if err != nil {
		return nil, err
	}

	var sitemaps []Sitemap
	if err := json.Unmarshal(body, &sitemaps); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to parse sitemaps response").
			WithContext("url", target)
	}

	return sitemaps, nil
}

// GetSpec fetches the server's OpenAPI document as raw bytes.
func (c *Client) GetSpec(ctx context.Context) ([]byte, error) {
	return c.get(ctx, BuildURL(c.base, "/rest/spec"))
}

// get performs a single GET and returns the response body. Transport
// rejection and non-2xx statuses without a parseable error envelope map to
// a network typed error; an error envelope maps to NotFound.
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "invalid request URL").
			WithContext("url", target)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	if err != nil {
		c.logger.Error().
			Err(err).
			Dur("duration", duration).
			Str("url", target).
			Msg("request failed")
		return nil, errors.Wrap(err, errors.ErrorTypeNetwork, "request failed").
			WithContext("url", target)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeNetwork, "failed to read response body").
			WithContext("url", target)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Int("body_length", len(body)).
		Str("url", target).
		Msg("request completed")

	if resp.StatusCode >= 400 {
		if msg := errors.ExtractMessage(body); msg != "" {
			return nil, errors.New(errors.ErrorTypeNotFound, msg).
				WithContext("url", target)
		}
		return nil, errors.Newf(errors.ErrorTypeNetwork, "server returned status %d", resp.StatusCode).
			WithContext("url", target)
	}

	return body, nil
}
