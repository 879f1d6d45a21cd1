//go:build unit

package provider_test

import (
	"context"
	"net/http"
	"testing"

	"breakfast-deals/internal/infra/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsplashSearchPhotos(t *testing.T) {
	t.Run("returns regular urls", func(t *testing.T) {
		srv, got := newServer(t, http.StatusOK, `{"results":[
			{"urls":{"regular":"https://images.unsplash.com/a"}},
			{"urls":{"regular":"https://images.unsplash.com/b"}}
		]}`)
		u := provider.NewUnsplash(newClient(), providersConfig(srv.URL))

		actual, err := u.SearchPhotos(context.Background(), "pancakes")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://images.unsplash.com/a", "https://images.unsplash.com/b"}, actual)
		assert.Equal(t, "/search/photos", got.req.URL.Path)
		assert.Equal(t, "pancakes", got.req.URL.Query().Get("query"))
		assert.Equal(t, "Client-ID unsplash-key", got.req.Header.Get("Authorization"))
	})

	t.Run("invalid url is malformed", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{"results":[{"urls":{"regular":"not a url"}}]}`)
		u := provider.NewUnsplash(newClient(), providersConfig(srv.URL))

		_, err := u.SearchPhotos(context.Background(), "pancakes")
		assert.ErrorIs(t, err, provider.ErrMalformedResponse)
	})

	t.Run("no photos", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{"results":[]}`)
		u := provider.NewUnsplash(newClient(), providersConfig(srv.URL))

		_, err := u.SearchPhotos(context.Background(), "pancakes")
		assert.ErrorIs(t, err, provider.ErrNoResults)
	})
}
