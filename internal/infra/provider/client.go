// Package provider holds the HTTP clients for the third-party hotel, deal,
// recipe and image APIs. Every client normalizes its payload into domain
// types and reports any failure as an error so a fallback chain can move on.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"breakfast-deals/internal/pkg/clock"
	"breakfast-deals/internal/pkg/config"
	"breakfast-deals/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 4 << 20

var (
	ErrMalformedResponse = errs.New("malformed provider response")
	ErrNoResults         = errs.New("provider returned no results")
	ErrNotConfigured     = errs.New("provider is not configured")
)

// Error is a non-2xx answer from a provider.
type Error struct {
	Provider   string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Provider, e.StatusCode)
}

// Client is the shared HTTP fetch capability used by every provider.
type Client struct {
	http      *http.Client
	userAgent string
	validate  *validator.Validate
	clock     clock.Clock
}

func NewClient(cfg config.ProvidersConfig, clk clock.Clock) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: cfg.Timeout}, cfg.UserAgent, clk)
}

func NewClientWithHTTP(hc *http.Client, userAgent string, clk clock.Clock) *Client {
	return &Client{
		http:      hc,
		userAgent: userAgent,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		clock:     clk,
	}
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, provider, endpoint string, query url.Values, header http.Header, out any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return errs.Wrapf(err, "%s: parse url", provider)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errs.Wrapf(err, "%s: build request", provider)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrapf(err, "%s: request failed", provider)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &Error{Provider: provider, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return errs.Mark(errs.Wrapf(err, "%s: decode response", provider), ErrMalformedResponse)
	}
	return nil
}

// check runs struct validation on a decoded payload.
func (c *Client) check(provider string, payload any) error {
	if err := c.validate.Struct(payload); err != nil {
		return errs.Mark(errs.Wrapf(err, "%s: invalid payload", provider), ErrMalformedResponse)
	}
	return nil
}

func (c *Client) now() time.Time {
	return c.clock.Now()
}

func bearer(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}

func rapidAPI(key, baseURL string) http.Header {
	h := http.Header{}
	h.Set("X-RapidAPI-Key", key)
	if u, err := url.Parse(baseURL); err == nil {
		h.Set("X-RapidAPI-Host", u.Host)
	}
	return h
}

func notConfigured(provider string) error {
	return errs.Wrapf(ErrNotConfigured, "%s", provider)
}
