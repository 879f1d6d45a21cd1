package queries

import (
	"context"
	"log/slog"
	"strings"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/domain/hotel"
	"breakfast-deals/internal/domain/image"
	"breakfast-deals/internal/infra/mockdata"
	"breakfast-deals/internal/pkg/clock"
	"breakfast-deals/internal/pkg/errs"
	"breakfast-deals/internal/pkg/fallback"
)

// CatalogQueries serves hotels, deals and images through provider fallback
// chains. Every chain ends in static data, so only lookups of a single item
// by id can fail.
type CatalogQueries interface {
	HotelDetails(ctx context.Context, hotelID string) (fallback.Result[hotel.Hotel], error)
	BookedHotels(ctx context.Context) fallback.Result[[]hotel.BookedHotel]
	BookedHotelByID(ctx context.Context, hotelID string) (fallback.Result[hotel.BookedHotel], error)
	SearchHotels(ctx context.Context, location, checkIn, checkOut string) fallback.Result[[]hotel.Hotel]

	Deals(ctx context.Context, hotelIDs []string) fallback.Result[[]deal.Deal]
	TodaysDeals(ctx context.Context) fallback.Result[[]deal.Deal]
	DealByID(ctx context.Context, dealID string) (fallback.Result[deal.Deal], error)
	BreakfastMenu(ctx context.Context, hotelID, hotelName string) fallback.Result[[]deal.Deal]

	RandomBreakfastImage() string
	RandomHotelImage() string
	BreakfastImageByCuisine(cuisine string) string
	HotelImageByType(hotelType string) string
	SearchImages(ctx context.Context, query string) fallback.Result[[]string]
}

// HotelProvider is a hotel catalog that also lists the user's bookings.
type HotelProvider interface {
	HotelDetailsSource
	BookingsSource
}

// SearchableHotelProvider adds location search to a HotelProvider.
type SearchableHotelProvider interface {
	HotelProvider
	HotelSearcher
}

// CatalogSources lists the live providers behind each chain. A nil source is
// skipped.
type CatalogSources struct {
	HotelsCom   SearchableHotelProvider
	BookingCom  HotelProvider
	Hotelbeds   DealSource
	Spoonacular RecipeSource
	Unsplash    PhotoSearcher
}

const (
	nameHotelsCom   = "hotels.com"
	nameBookingCom  = "booking.com"
	nameHotelbeds   = "hotelbeds"
	nameSpoonacular = "spoonacular"
	nameUnsplash    = "unsplash"
)

type catalogQueriesImpl struct {
	sources CatalogSources
	cache   fallback.Cache
	clock   clock.Clock
	pick    image.Picker
	logger  *slog.Logger
}

func NewCatalogQueries(
	sources CatalogSources,
	cache fallback.Cache,
	clock clock.Clock,
	pick image.Picker,
	logger *slog.Logger,
) CatalogQueries {
	return &catalogQueriesImpl{
		sources: sources,
		cache:   cache,
		clock:   clock,
		pick:    pick,
		logger:  logger,
	}
}

func (q *catalogQueriesImpl) HotelDetails(ctx context.Context, hotelID string) (fallback.Result[hotel.Hotel], error) {
	var calls []fallback.Call[hotel.Hotel]
	if q.sources.HotelsCom != nil {
		calls = append(calls, hotelDetailsCall(nameHotelsCom, q.sources.HotelsCom, hotelID))
	}
	if q.sources.BookingCom != nil {
		calls = append(calls, hotelDetailsCall(nameBookingCom, q.sources.BookingCom, hotelID))
	}

	var static hotel.Hotel
	if booked, ok := hotel.FindBooked(mockdata.BookedHotels(), hotelID); ok {
		static = booked.Hotel
	}

	res := fallback.ResolveCached(ctx, q.logger, q.cache, "hotel:"+hotelID, calls, static)
	if res.Value.ID == "" {
		return res, errs.Wrapf(hotel.ErrHotelNotFound, "hotel %s", hotelID)
	}
	return res, nil
}

// BookedHotels asks Booking.com first, then Hotels.com.
func (q *catalogQueriesImpl) BookedHotels(ctx context.Context) fallback.Result[[]hotel.BookedHotel] {
	var calls []fallback.Call[[]hotel.BookedHotel]
	if q.sources.BookingCom != nil {
		calls = append(calls, bookingsCall(nameBookingCom, q.sources.BookingCom))
	}
	if q.sources.HotelsCom != nil {
		calls = append(calls, bookingsCall(nameHotelsCom, q.sources.HotelsCom))
	}
	return fallback.ResolveCached(ctx, q.logger, q.cache, "hotels:booked", calls, mockdata.BookedHotels())
}

func (q *catalogQueriesImpl) BookedHotelByID(ctx context.Context, hotelID string) (fallback.Result[hotel.BookedHotel], error) {
	all := q.BookedHotels(ctx)
	found, ok := hotel.FindBooked(all.Value, hotelID)
	res := fallback.Result[hotel.BookedHotel]{Value: found, Source: all.Source, Degraded: all.Degraded}
	if !ok {
		return res, errs.Wrapf(hotel.ErrHotelNotFound, "booked hotel %s", hotelID)
	}
	return res, nil
}

func (q *catalogQueriesImpl) SearchHotels(ctx context.Context, location, checkIn, checkOut string) fallback.Result[[]hotel.Hotel] {
	var calls []fallback.Call[[]hotel.Hotel]
	if q.sources.HotelsCom != nil {
		searcher := q.sources.HotelsCom
		calls = append(calls, fallback.Call[[]hotel.Hotel]{
			Name: nameHotelsCom,
			Fetch: func(ctx context.Context) ([]hotel.Hotel, error) {
				found, err := searcher.Search(ctx, location, checkIn, checkOut)
				if err != nil {
					return nil, err
				}
				return found, validateEach(found, hotel.Hotel.Validate)
			},
		})
	}
	key := strings.Join([]string{"hotels:search", strings.ToLower(location), checkIn, checkOut}, ":")
	return fallback.ResolveCached(ctx, q.logger, q.cache, key, calls, []hotel.Hotel{})
}

// Deals falls back to the static deals of the requested hotels, each with a
// fresh placeholder image. With no hotel ids the whole static set is used.
func (q *catalogQueriesImpl) Deals(ctx context.Context, hotelIDs []string) fallback.Result[[]deal.Deal] {
	var calls []fallback.Call[[]deal.Deal]
	if q.sources.Hotelbeds != nil {
		source := q.sources.Hotelbeds
		calls = append(calls, fallback.Call[[]deal.Deal]{
			Name: nameHotelbeds,
			Fetch: func(ctx context.Context) ([]deal.Deal, error) {
				found, err := source.Deals(ctx, hotelIDs)
				if err != nil {
					return nil, err
				}
				return found, validateEach(found, deal.Deal.Validate)
			},
		})
	}

	static := mockdata.Deals()
	if len(hotelIDs) > 0 {
		static = deal.FilterByHotels(static, hotelIDs)
		for i := range static {
			static[i].Image = image.RandomBreakfast(q.pick)
		}
	}

	key := "deals:" + strings.Join(hotelIDs, ",")
	return fallback.ResolveCached(ctx, q.logger, q.cache, key, calls, static)
}

func (q *catalogQueriesImpl) TodaysDeals(ctx context.Context) fallback.Result[[]deal.Deal] {
	booked := q.BookedHotels(ctx)
	deals := q.Deals(ctx, hotel.IDs(booked.Value))
	deals.Degraded = deals.Degraded || booked.Degraded
	return deals
}

// DealByID resolves the owning hotel from the static catalog, fetches that
// hotel's deals and picks the one with the given id.
func (q *catalogQueriesImpl) DealByID(ctx context.Context, dealID string) (fallback.Result[deal.Deal], error) {
	known, ok := deal.FindByID(mockdata.Deals(), dealID)
	if !ok {
		return fallback.Result[deal.Deal]{}, errs.Wrapf(deal.ErrDealNotFound, "deal %s", dealID)
	}

	deals := q.Deals(ctx, []string{known.HotelID})
	found, ok := deal.FindByID(deals.Value, dealID)
	res := fallback.Result[deal.Deal]{Value: found, Source: deals.Source, Degraded: deals.Degraded}
	if !ok {
		return res, errs.Wrapf(deal.ErrDealNotFound, "deal %s", dealID)
	}
	return res, nil
}

// BreakfastMenu builds deals from breakfast recipes, falling back to the
// house continental breakfast.
func (q *catalogQueriesImpl) BreakfastMenu(ctx context.Context, hotelID, hotelName string) fallback.Result[[]deal.Deal] {
	var calls []fallback.Call[[]deal.Deal]
	if q.sources.Spoonacular != nil {
		source := q.sources.Spoonacular
		calls = append(calls, fallback.Call[[]deal.Deal]{
			Name: nameSpoonacular,
			Fetch: func(ctx context.Context) ([]deal.Deal, error) {
				found, err := source.BreakfastDeals(ctx, hotelID)
				if err != nil {
					return nil, err
				}
				return found, validateEach(found, deal.Deal.Validate)
			},
		})
	}

	static := []deal.Deal{
		deal.NewDefaultBreakfast(hotelID, hotelName, image.BreakfastByCuisine("continental"), q.clock.Now()),
	}
	return fallback.ResolveCached(ctx, q.logger, q.cache, "breakfast:"+hotelID, calls, static)
}

func (q *catalogQueriesImpl) RandomBreakfastImage() string {
	return image.RandomBreakfast(q.pick)
}

func (q *catalogQueriesImpl) RandomHotelImage() string {
	return image.RandomHotel(q.pick)
}

func (q *catalogQueriesImpl) BreakfastImageByCuisine(cuisine string) string {
	return image.BreakfastByCuisine(cuisine)
}

func (q *catalogQueriesImpl) HotelImageByType(hotelType string) string {
	return image.HotelByType(hotelType)
}

func (q *catalogQueriesImpl) SearchImages(ctx context.Context, query string) fallback.Result[[]string] {
	var calls []fallback.Call[[]string]
	if q.sources.Unsplash != nil {
		searcher := q.sources.Unsplash
		calls = append(calls, fallback.Call[[]string]{
			Name: nameUnsplash,
			Fetch: func(ctx context.Context) ([]string, error) {
				return searcher.SearchPhotos(ctx, query)
			},
		})
	}
	return fallback.Resolve(ctx, q.logger, calls, []string{image.SourceURL(query)})
}

func hotelDetailsCall(name string, source HotelDetailsSource, hotelID string) fallback.Call[hotel.Hotel] {
	return fallback.Call[hotel.Hotel]{
		Name: name,
		Fetch: func(ctx context.Context) (hotel.Hotel, error) {
			h, err := source.Details(ctx, hotelID)
			if err != nil {
				return hotel.Hotel{}, err
			}
			if err := h.Validate(); err != nil {
				return hotel.Hotel{}, errs.Wrapf(err, "%s returned invalid hotel", name)
			}
			return h, nil
		},
	}
}

func bookingsCall(name string, source BookingsSource) fallback.Call[[]hotel.BookedHotel] {
	return fallback.Call[[]hotel.BookedHotel]{
		Name: name,
		Fetch: func(ctx context.Context) ([]hotel.BookedHotel, error) {
			found, err := source.Bookings(ctx)
			if err != nil {
				return nil, err
			}
			return found, validateEach(found, hotel.BookedHotel.Validate)
		},
	}
}

func validateEach[T any](items []T, validate func(T) error) error {
	for i, item := range items {
		if err := validate(item); err != nil {
			return errs.Wrapf(err, "item %d", i)
		}
	}
	return nil
}
