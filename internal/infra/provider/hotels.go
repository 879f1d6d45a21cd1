package provider

import (
	"context"
	"net/url"
	"strings"
	"time"

	"breakfast-deals/internal/domain/hotel"
	"breakfast-deals/internal/pkg/config"
)

const (
	NameHotelsCom  = "hotels.com"
	NameBookingCom = "booking.com"
)

// bookingsPayload is the reservation listing shape shared by both hotel APIs.
type bookingsPayload struct {
	Hotels []bookedHotelPayload `json:"hotels" validate:"dive"`
}

type bookedHotelPayload struct {
	ID               string    `json:"id"`
	HotelID          string    `json:"hotel_id"`
	Name             string    `json:"name" validate:"required"`
	Address          string    `json:"address"`
	Images           []string  `json:"images"`
	Rating           float64   `json:"rating" validate:"gte=0,lte=5"`
	BookingReference string    `json:"booking_reference" validate:"required"`
	CheckIn          time.Time `json:"check_in" validate:"required"`
	CheckOut         time.Time `json:"check_out" validate:"required,gtfield=CheckIn"`
	RoomType         string    `json:"room_type"`
	Guests           int       `json:"guests" validate:"gte=1"`
}

func (p bookedHotelPayload) toDomain(id string) hotel.BookedHotel {
	var img string
	if len(p.Images) > 0 {
		img = p.Images[0]
	}
	return hotel.BookedHotel{
		Hotel: hotel.Hotel{
			ID:      id,
			Name:    p.Name,
			Address: p.Address,
			Image:   img,
			Rating:  p.Rating,
		},
		BookingReference: p.BookingReference,
		CheckInDate:      p.CheckIn,
		CheckOutDate:     p.CheckOut,
		RoomType:         p.RoomType,
		Guests:           p.Guests,
	}
}

// HotelsCom talks to the Hotels.com RapidAPI catalog and the Hotels.com
// bookings API.
type HotelsCom struct {
	client       *Client
	apiKey       string
	rapidBaseURL string
	baseURL      string
}

func NewHotelsCom(client *Client, cfg config.ProvidersConfig) *HotelsCom {
	return &HotelsCom{
		client:       client,
		apiKey:       cfg.HotelsAPIKey,
		rapidBaseURL: strings.TrimRight(cfg.HotelsRapidAPIBaseURL, "/"),
		baseURL:      strings.TrimRight(cfg.HotelsBaseURL, "/"),
	}
}

type hotelsComAddress struct {
	StreetAddress string `json:"streetAddress"`
	Locality      string `json:"locality"`
	Region        string `json:"region"`
}

type hotelsComImage struct {
	Image struct {
		URL string `json:"url"`
	} `json:"image"`
}

type hotelsComDetails struct {
	Name            string           `json:"name" validate:"required"`
	Address         hotelsComAddress `json:"address"`
	PropertyGallery struct {
		Images []hotelsComImage `json:"images" validate:"min=1"`
	} `json:"propertyGallery"`
	StarRating float64 `json:"starRating" validate:"gte=0,lte=5"`
}

type hotelsComSearch struct {
	Results []struct {
		ID            string           `json:"id" validate:"required"`
		Name          string           `json:"name" validate:"required"`
		Address       hotelsComAddress `json:"address"`
		PropertyImage hotelsComImage   `json:"propertyImage"`
		StarRating    float64          `json:"starRating" validate:"gte=0,lte=5"`
	} `json:"results" validate:"dive"`
}

func (h *HotelsCom) Details(ctx context.Context, hotelID string) (hotel.Hotel, error) {
	if h.apiKey == "" {
		return hotel.Hotel{}, notConfigured(NameHotelsCom)
	}

	var payload hotelsComDetails
	q := url.Values{"hotel_id": {hotelID}, "locale": {"en_US"}}
	if err := h.client.getJSON(ctx, NameHotelsCom, h.rapidBaseURL+"/hotels/details", q, rapidAPI(h.apiKey, h.rapidBaseURL), &payload); err != nil {
		return hotel.Hotel{}, err
	}
	if err := h.client.check(NameHotelsCom, payload); err != nil {
		return hotel.Hotel{}, err
	}

	a := payload.Address
	return hotel.Hotel{
		ID:      hotelID,
		Name:    payload.Name,
		Address: joinAddress(a.StreetAddress, a.Locality, a.Region),
		Image:   payload.PropertyGallery.Images[0].Image.URL,
		Rating:  payload.StarRating,
	}, nil
}

// Search lists hotels in a location, highest star rating first.
func (h *HotelsCom) Search(ctx context.Context, location, checkIn, checkOut string) ([]hotel.Hotel, error) {
	if h.apiKey == "" {
		return nil, notConfigured(NameHotelsCom)
	}

	q := url.Values{
		"query":      {location},
		"sort_order": {"STAR_RATING_HIGHEST_FIRST"},
		"locale":     {"en_US"},
	}
	if checkIn != "" {
		q.Set("checkin", checkIn)
	}
	if checkOut != "" {
		q.Set("checkout", checkOut)
	}

	var payload hotelsComSearch
	if err := h.client.getJSON(ctx, NameHotelsCom, h.rapidBaseURL+"/hotels/search", q, rapidAPI(h.apiKey, h.rapidBaseURL), &payload); err != nil {
		return nil, err
	}
	if err := h.client.check(NameHotelsCom, payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, ErrNoResults
	}

	out := make([]hotel.Hotel, len(payload.Results))
	for i, r := range payload.Results {
		out[i] = hotel.Hotel{
			ID:      r.ID,
			Name:    r.Name,
			Address: joinAddress(r.Address.StreetAddress, r.Address.Locality),
			Image:   r.PropertyImage.Image.URL,
			Rating:  r.StarRating,
		}
	}
	return out, nil
}

func (h *HotelsCom) Bookings(ctx context.Context) ([]hotel.BookedHotel, error) {
	if h.apiKey == "" {
		return nil, notConfigured(NameHotelsCom)
	}

	var payload bookingsPayload
	if err := h.client.getJSON(ctx, NameHotelsCom, h.baseURL+"/bookings", nil, bearer(h.apiKey), &payload); err != nil {
		return nil, err
	}
	if err := h.client.check(NameHotelsCom, payload); err != nil {
		return nil, err
	}
	if len(payload.Hotels) == 0 {
		return nil, ErrNoResults
	}

	out := make([]hotel.BookedHotel, len(payload.Hotels))
	for i, p := range payload.Hotels {
		out[i] = p.toDomain(p.ID)
	}
	return out, nil
}

// BookingCom talks to the Booking.com RapidAPI catalog and the Booking.com
// distribution bookings API.
type BookingCom struct {
	client       *Client
	apiKey       string
	rapidBaseURL string
	baseURL      string
}

func NewBookingCom(client *Client, cfg config.ProvidersConfig) *BookingCom {
	return &BookingCom{
		client:       client,
		apiKey:       cfg.BookingAPIKey,
		rapidBaseURL: strings.TrimRight(cfg.BookingRapidAPIBaseURL, "/"),
		baseURL:      strings.TrimRight(cfg.BookingBaseURL, "/"),
	}
}

type bookingComDetails struct {
	Name         string  `json:"name" validate:"required"`
	Address      string  `json:"address"`
	MainPhotoURL string  `json:"main_photo_url"`
	ReviewScore  float64 `json:"review_score" validate:"gte=0,lte=10"`
}

func (b *BookingCom) Details(ctx context.Context, hotelID string) (hotel.Hotel, error) {
	if b.apiKey == "" {
		return hotel.Hotel{}, notConfigured(NameBookingCom)
	}

	var payload bookingComDetails
	q := url.Values{"hotel_id": {hotelID}, "locale": {"en-us"}}
	if err := b.client.getJSON(ctx, NameBookingCom, b.rapidBaseURL+"/hotels/details", q, rapidAPI(b.apiKey, b.rapidBaseURL), &payload); err != nil {
		return hotel.Hotel{}, err
	}
	if err := b.client.check(NameBookingCom, payload); err != nil {
		return hotel.Hotel{}, err
	}

	return hotel.Hotel{
		ID:      hotelID,
		Name:    payload.Name,
		Address: payload.Address,
		Image:   payload.MainPhotoURL,
		Rating:  hotel.RatingFromTenPointScale(payload.ReviewScore),
	}, nil
}

func (b *BookingCom) Bookings(ctx context.Context) ([]hotel.BookedHotel, error) {
	if b.apiKey == "" {
		return nil, notConfigured(NameBookingCom)
	}

	var payload bookingsPayload
	if err := b.client.getJSON(ctx, NameBookingCom, b.baseURL+"/hotels/bookings", nil, bearer(b.apiKey), &payload); err != nil {
		return nil, err
	}
	if err := b.client.check(NameBookingCom, payload); err != nil {
		return nil, err
	}
	if len(payload.Hotels) == 0 {
		return nil, ErrNoResults
	}

	out := make([]hotel.BookedHotel, len(payload.Hotels))
	for i, p := range payload.Hotels {
		out[i] = p.toDomain(p.HotelID)
	}
	return out, nil
}

func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
