//go:build unit

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"breakfast-deals/internal/infra/provider"
	"breakfast-deals/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookingsBody = `{"hotels":[{
	"id":"hc-1","hotel_id":"bk-1","name":"Grand Hyatt","address":"123 Luxury Ave",
	"images":["https://img.example.com/1.jpg","https://img.example.com/2.jpg"],
	"rating":4.8,"booking_reference":"GH12345",
	"check_in":"2025-03-10T14:00:00Z","check_out":"2025-03-15T11:00:00Z",
	"room_type":"Deluxe King","guests":2
}]}`

func TestHotelsComDetails(t *testing.T) {
	t.Run("maps the details payload", func(t *testing.T) {
		srv, got := newServer(t, http.StatusOK, `{
			"name":"Marriott Downtown",
			"address":{"streetAddress":"456 Main St","locality":"Chicago","region":"IL"},
			"propertyGallery":{"images":[{"image":{"url":"https://img.example.com/m.jpg"}}]},
			"starRating":4.5
		}`)
		h := provider.NewHotelsCom(newClient(), providersConfig(srv.URL))

		actual, err := h.Details(context.Background(), "hotel2")
		require.NoError(t, err)

		assert.Equal(t, "hotel2", actual.ID)
		assert.Equal(t, "Marriott Downtown", actual.Name)
		assert.Equal(t, "456 Main St, Chicago, IL", actual.Address)
		assert.Equal(t, "https://img.example.com/m.jpg", actual.Image)
		assert.Equal(t, 4.5, actual.Rating)

		require.NotNil(t, got.req)
		assert.Equal(t, "/hotels/details", got.req.URL.Path)
		assert.Equal(t, "hotel2", got.req.URL.Query().Get("hotel_id"))
		assert.Equal(t, "en_US", got.req.URL.Query().Get("locale"))
		assert.Equal(t, "hotels-key", got.req.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, strings.TrimPrefix(srv.URL, "http://"), got.req.Header.Get("X-RapidAPI-Host"))
		assert.Equal(t, "breakfast-deals-test", got.req.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", got.req.Header.Get("Accept"))
	})

	t.Run("missing gallery is malformed", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{"name":"No Photos","propertyGallery":{"images":[]},"starRating":3}`)
		h := provider.NewHotelsCom(newClient(), providersConfig(srv.URL))

		_, err := h.Details(context.Background(), "hotel2")
		assert.ErrorIs(t, err, provider.ErrMalformedResponse)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusTooManyRequests, `{"message":"quota"}`)
		h := provider.NewHotelsCom(newClient(), providersConfig(srv.URL))

		_, err := h.Details(context.Background(), "hotel2")
		var perr *provider.Error
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, provider.NameHotelsCom, perr.Provider)
		assert.Equal(t, http.StatusTooManyRequests, perr.StatusCode)
	})

	t.Run("body that is not json", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `<html>maintenance</html>`)
		h := provider.NewHotelsCom(newClient(), providersConfig(srv.URL))

		_, err := h.Details(context.Background(), "hotel2")
		assert.ErrorIs(t, err, provider.ErrMalformedResponse)
	})

	t.Run("not configured", func(t *testing.T) {
		h := provider.NewHotelsCom(newClient(), config.ProvidersConfig{})

		_, err := h.Details(context.Background(), "hotel2")
		assert.ErrorIs(t, err, provider.ErrNotConfigured)
	})
}

func TestHotelsComSearch(t *testing.T) {
	t.Run("maps results", func(t *testing.T) {
		srv, got := newServer(t, http.StatusOK, `{"results":[
			{"id":"h1","name":"Ritz","address":{"streetAddress":"1 Park Ln","locality":"London"},
			 "propertyImage":{"image":{"url":"https://img.example.com/r.jpg"}},"starRating":5}
		]}`)
		h := provider.NewHotelsCom(newClient(), providersConfig(srv.URL))

		actual, err := h.Search(context.Background(), "London", "2025-03-10", "2025-03-12")
		require.NoError(t, err)
		require.Len(t, actual, 1)

		assert.Equal(t, "h1", actual[0].ID)
		assert.Equal(t, "1 Park Ln, London", actual[0].Address)
		assert.Equal(t, "https://img.example.com/r.jpg", actual[0].Image)

		q := got.req.URL.Query()
		assert.Equal(t, "/hotels/search", got.req.URL.Path)
		assert.Equal(t, "London", q.Get("query"))
		assert.Equal(t, "STAR_RATING_HIGHEST_FIRST", q.Get("sort_order"))
		assert.Equal(t, "2025-03-10", q.Get("checkin"))
		assert.Equal(t, "2025-03-12", q.Get("checkout"))
	})

	t.Run("empty results count as failure", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{"results":[]}`)
		h := provider.NewHotelsCom(newClient(), providersConfig(srv.URL))

		_, err := h.Search(context.Background(), "Nowhere", "", "")
		assert.ErrorIs(t, err, provider.ErrNoResults)
	})
}

func TestHotelsComBookings(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, bookingsBody)
	h := provider.NewHotelsCom(newClient(), providersConfig(srv.URL))

	actual, err := h.Bookings(context.Background())
	require.NoError(t, err)
	require.Len(t, actual, 1)

	assert.Equal(t, "hc-1", actual[0].ID)
	assert.Equal(t, "https://img.example.com/1.jpg", actual[0].Image)
	assert.Equal(t, "GH12345", actual[0].BookingReference)
	assert.Equal(t, time.Date(2025, time.March, 15, 11, 0, 0, 0, time.UTC), actual[0].CheckOutDate.UTC())
	assert.Equal(t, "/bookings", got.req.URL.Path)
	assert.Equal(t, "Bearer hotels-key", got.req.Header.Get("Authorization"))
}

func TestBookingComDetails(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{
		"name":"Hilton Garden Inn","address":"789 Park Ave",
		"main_photo_url":"https://img.example.com/h.jpg","review_score":8.6
	}`)
	b := provider.NewBookingCom(newClient(), providersConfig(srv.URL))

	actual, err := b.Details(context.Background(), "hotel3")
	require.NoError(t, err)

	assert.Equal(t, "hotel3", actual.ID)
	assert.Equal(t, "789 Park Ave", actual.Address)
	assert.InDelta(t, 4.3, actual.Rating, 0.0001)
	assert.Equal(t, "en-us", got.req.URL.Query().Get("locale"))
	assert.Equal(t, "booking-key", got.req.Header.Get("X-RapidAPI-Key"))
}

func TestBookingComBookings(t *testing.T) {
	t.Run("uses the hotel id of each booking", func(t *testing.T) {
		srv, got := newServer(t, http.StatusOK, bookingsBody)
		b := provider.NewBookingCom(newClient(), providersConfig(srv.URL))

		actual, err := b.Bookings(context.Background())
		require.NoError(t, err)
		require.Len(t, actual, 1)

		assert.Equal(t, "bk-1", actual[0].ID)
		assert.Equal(t, "/hotels/bookings", got.req.URL.Path)
		assert.Equal(t, "Bearer booking-key", got.req.Header.Get("Authorization"))
	})

	t.Run("check-out before check-in is malformed", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{"hotels":[{
			"hotel_id":"bk-1","name":"X","booking_reference":"R",
			"check_in":"2025-03-15T00:00:00Z","check_out":"2025-03-10T00:00:00Z","guests":1
		}]}`)
		b := provider.NewBookingCom(newClient(), providersConfig(srv.URL))

		_, err := b.Bookings(context.Background())
		assert.ErrorIs(t, err, provider.ErrMalformedResponse)
	})

	t.Run("no bookings", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{"hotels":[]}`)
		b := provider.NewBookingCom(newClient(), providersConfig(srv.URL))

		_, err := b.Bookings(context.Background())
		assert.ErrorIs(t, err, provider.ErrNoResults)
	})

	t.Run("server error", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusInternalServerError, ``)
		b := provider.NewBookingCom(newClient(), providersConfig(srv.URL))

		_, err := b.Bookings(context.Background())
		var perr *provider.Error
		assert.True(t, errors.As(err, &perr))
	})
}
