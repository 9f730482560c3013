// Package hub fetches model configuration and metadata from a Hugging Face
// style model hub over plain HTTP.
package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public Hugging Face hub.
	DefaultBaseURL = "https://huggingface.co"
	// DefaultTimeout bounds each request.
	DefaultTimeout = 10 * time.Second

	// Some gated models serve config.json to browsers but not to anonymous
	// API clients, so identify as one.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// configPaths are the repo-view variants under which config.json may be
// reachable, tried in order.
var configPaths = []string{
	"%s/%s/raw/main/config.json",
	"%s/%s/resolve/main/config.json",
	"%s/%s/blob/main/config.json",
}

// ErrAllURLsFailed means every URL variant was a soft miss.
var ErrAllURLsFailed = errors.New("failed to fetch config from all URLs")

// StatusError is a hard HTTP failure: any status outside the 401/404
// soft-miss set. It stops the fallback chain immediately.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.Code, e.Status)
}

// Client talks to one hub instance.
type Client struct {
	http    *resty.Client
	baseURL string
	log     zerolog.Logger
}

// New builds a Client for the given hub base URL and per-request timeout.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	c := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
	return &Client{
		http:    c,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// FetchConfig retrieves a model's config.json, trying the raw, resolve and
// blob views in order. A 401/404 response, a transport error or an
// undecodable body falls through to the next variant; any other HTTP error
// stops the chain. The first successfully decoded document wins.
func (c *Client) FetchConfig(ctx context.Context, modelID string) (map[string]any, error) {
	for _, tmpl := range configPaths {
		url := fmt.Sprintf(tmpl, c.baseURL, modelID)
		resp, err := c.http.R().SetContext(ctx).Get(url)
		if err != nil {
			c.log.Debug().Str("url", url).Err(err).Msg("config fetch attempt failed")
			continue
		}
		if resp.IsError() {
			code := resp.StatusCode()
			if code == http.StatusUnauthorized || code == http.StatusNotFound {
				c.log.Debug().Str("url", url).Int("status", code).Msg("config not served here")
				continue
			}
			return nil, &StatusError{Code: code, Status: resp.Status()}
		}
		var cfg map[string]any
		if err := json.Unmarshal(resp.Body(), &cfg); err != nil {
			c.log.Debug().Str("url", url).Err(err).Msg("config body is not valid JSON")
			continue
		}
		c.log.Debug().Str("url", url).Msg("config fetched")
		return cfg, nil
	}
	return nil, ErrAllURLsFailed
}

// FetchModelInfo retrieves a model's metadata document from the hub API.
// Single attempt, no fallback.
func (c *Client) FetchModelInfo(ctx context.Context, modelID string) (map[string]any, error) {
	url := fmt.Sprintf("%s/api/models/%s", c.baseURL, modelID)
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode(), resp.Status())
	}
	var info map[string]any
	if err := json.Unmarshal(resp.Body(), &info); err != nil {
		return nil, fmt.Errorf("failed to fetch from API: %w", err)
	}
	return info, nil
}
