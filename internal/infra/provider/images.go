package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"breakfast-deals/internal/pkg/config"
)

const NameUnsplash = "unsplash"

type Unsplash struct {
	client  *Client
	apiKey  string
	baseURL string
}

func NewUnsplash(client *Client, cfg config.ProvidersConfig) *Unsplash {
	return &Unsplash{
		client:  client,
		apiKey:  cfg.UnsplashAPIKey,
		baseURL: strings.TrimRight(cfg.UnsplashBaseURL, "/"),
	}
}

type unsplashSearch struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular" validate:"required,url"`
		} `json:"urls"`
	} `json:"results" validate:"dive"`
}

// SearchPhotos returns the regular-size URLs of photos matching query.
func (u *Unsplash) SearchPhotos(ctx context.Context, query string) ([]string, error) {
	if u.apiKey == "" {
		return nil, notConfigured(NameUnsplash)
	}

	header := http.Header{}
	header.Set("Authorization", "Client-ID "+u.apiKey)
	header.Set("Accept-Version", "v1")

	var payload unsplashSearch
	if err := u.client.getJSON(ctx, NameUnsplash, u.baseURL+"/search/photos", url.Values{"query": {query}}, header, &payload); err != nil {
		return nil, err
	}
	if err := u.client.check(NameUnsplash, payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, ErrNoResults
	}

	out := make([]string, len(payload.Results))
	for i, r := range payload.Results {
		out[i] = r.URLs.Regular
	}
	return out, nil
}
