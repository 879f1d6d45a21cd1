package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/domain/image"
	"breakfast-deals/internal/pkg/config"
)

const (
	NameHotelbeds   = "hotelbeds"
	NameSpoonacular = "spoonacular"
)

// Hotelbeds fetches breakfast deals for a set of hotels.
type Hotelbeds struct {
	client  *Client
	apiKey  string
	secret  string
	baseURL string
	pick    image.Picker
}

func NewHotelbeds(client *Client, cfg config.ProvidersConfig, pick image.Picker) *Hotelbeds {
	return &Hotelbeds{
		client:  client,
		apiKey:  cfg.HotelbedsAPIKey,
		secret:  cfg.HotelbedsSecret,
		baseURL: strings.TrimRight(cfg.HotelbedsBaseURL, "/"),
		pick:    pick,
	}
}

type hotelbedsDeals struct {
	Deals []struct {
		ID             string    `json:"id" validate:"required"`
		HotelID        string    `json:"hotel_id" validate:"required"`
		Title          string    `json:"title" validate:"required"`
		Description    string    `json:"description"`
		Price          float64   `json:"price" validate:"gte=0"`
		OriginalPrice  float64   `json:"original_price" validate:"gtefield=Price"`
		Currency       string    `json:"currency" validate:"required,len=3"`
		Image          string    `json:"image"`
		AvailableUntil time.Time `json:"available_until"`
		Ingredients    []string  `json:"ingredients"`
		DietaryOptions []string  `json:"dietary_options"`
		TimeSlots      []string  `json:"time_slots"`
	} `json:"deals" validate:"dive"`
}

// Signature is the hex SHA-256 of key, secret and unix timestamp concatenated.
func Signature(apiKey, secret string, ts int64) string {
	sum := sha256.Sum256([]byte(apiKey + secret + strconv.FormatInt(ts, 10)))
	return hex.EncodeToString(sum[:])
}

func (h *Hotelbeds) Deals(ctx context.Context, hotelIDs []string) ([]deal.Deal, error) {
	if h.apiKey == "" || h.secret == "" {
		return nil, notConfigured(NameHotelbeds)
	}

	ts := h.client.now().Unix()
	header := http.Header{}
	header.Set("Api-key", h.apiKey)
	header.Set("Signature", Signature(h.apiKey, h.secret, ts))
	header.Set("X-Timestamp", strconv.FormatInt(ts, 10))

	var payload hotelbedsDeals
	q := url.Values{"hotel_ids": {strings.Join(hotelIDs, ",")}}
	if err := h.client.getJSON(ctx, NameHotelbeds, h.baseURL+"/breakfast-deals", q, header, &payload); err != nil {
		return nil, err
	}
	if err := h.client.check(NameHotelbeds, payload); err != nil {
		return nil, err
	}
	if len(payload.Deals) == 0 {
		return nil, ErrNoResults
	}

	out := make([]deal.Deal, len(payload.Deals))
	for i, d := range payload.Deals {
		img := d.Image
		if img == "" {
			img = image.RandomBreakfast(h.pick)
		}
		out[i] = deal.Deal{
			ID:             d.ID,
			HotelID:        d.HotelID,
			Title:          d.Title,
			Description:    d.Description,
			Price:          d.Price,
			OriginalPrice:  d.OriginalPrice,
			Currency:       d.Currency,
			Image:          img,
			AvailableUntil: d.AvailableUntil,
			Ingredients:    d.Ingredients,
			DietaryOptions: d.DietaryOptions,
			TimeSlots:      d.TimeSlots,
		}
	}
	return out, nil
}

const (
	recipeCount        = 5
	summaryLimit       = 200
	dealPriceFactor    = 2.5
	originalPriceRatio = 3.5
)

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// Spoonacular turns breakfast recipes into deals for a hotel.
type Spoonacular struct {
	client  *Client
	apiKey  string
	baseURL string
}

func NewSpoonacular(client *Client, cfg config.ProvidersConfig) *Spoonacular {
	return &Spoonacular{
		client:  client,
		apiKey:  cfg.SpoonacularAPIKey,
		baseURL: strings.TrimRight(cfg.SpoonacularBaseURL, "/"),
	}
}

type spoonacularSearch struct {
	Results []struct {
		ID                  int64   `json:"id" validate:"required"`
		Title               string  `json:"title" validate:"required"`
		Summary             string  `json:"summary"`
		PricePerServing     float64 `json:"pricePerServing" validate:"gte=0"`
		Image               string  `json:"image"`
		ExtendedIngredients []struct {
			Name string `json:"name"`
		} `json:"extendedIngredients"`
		Diets []string `json:"diets"`
	} `json:"results" validate:"dive"`
}

func (s *Spoonacular) BreakfastDeals(ctx context.Context, hotelID string) ([]deal.Deal, error) {
	if s.apiKey == "" {
		return nil, notConfigured(NameSpoonacular)
	}

	q := url.Values{
		"apiKey":               {s.apiKey},
		"query":                {"breakfast"},
		"type":                 {"breakfast"},
		"addRecipeInformation": {"true"},
		"number":               {strconv.Itoa(recipeCount)},
	}
	var payload spoonacularSearch
	if err := s.client.getJSON(ctx, NameSpoonacular, s.baseURL+"/complexSearch", q, nil, &payload); err != nil {
		return nil, err
	}
	if err := s.client.check(NameSpoonacular, payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, ErrNoResults
	}

	now := s.client.now()
	out := make([]deal.Deal, len(payload.Results))
	for i, r := range payload.Results {
		ingredients := make([]string, len(r.ExtendedIngredients))
		for j, ing := range r.ExtendedIngredients {
			ingredients[j] = ing.Name
		}
		out[i] = deal.Deal{
			ID:             fmt.Sprintf("spoon_%d", r.ID),
			HotelID:        hotelID,
			Title:          r.Title,
			Description:    Summarize(r.Summary),
			Price:          roundCents(r.PricePerServing * dealPriceFactor),
			OriginalPrice:  roundCents(r.PricePerServing * originalPriceRatio),
			Currency:       "USD",
			Image:          r.Image,
			AvailableUntil: deal.ValidUntil(now),
			Ingredients:    ingredients,
			DietaryOptions: r.Diets,
			TimeSlots:      deal.GenerateTimeSlots(),
		}
	}
	return out, nil
}

// Summarize strips markup and truncates to a short teaser ending in "...".
func Summarize(html string) string {
	text := []rune(htmlTag.ReplaceAllString(html, ""))
	if len(text) > summaryLimit {
		text = text[:summaryLimit]
	}
	return string(text) + "..."
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
