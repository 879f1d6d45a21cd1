package queries

import (
	"context"
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/domain/hotel"
	"breakfast-deals/internal/domain/reservation"
)

// SlotAvailability is the read model behind the availability endpoint.
type SlotAvailability struct {
	DealID    string
	TimeSlot  string
	Date      time.Time
	Capacity  int
	Booked    int
	Remaining int
	Available bool
}

type ReservationReader interface {
	ReadAll(ctx context.Context) []*reservation.Reservation
}

// Provider ports. Implementations live in internal/infra/provider.

type HotelDetailsSource interface {
	Details(ctx context.Context, hotelID string) (hotel.Hotel, error)
}

type BookingsSource interface {
	Bookings(ctx context.Context) ([]hotel.BookedHotel, error)
}

type HotelSearcher interface {
	Search(ctx context.Context, location, checkIn, checkOut string) ([]hotel.Hotel, error)
}

type DealSource interface {
	Deals(ctx context.Context, hotelIDs []string) ([]deal.Deal, error)
}

type RecipeSource interface {
	BreakfastDeals(ctx context.Context, hotelID string) ([]deal.Deal, error)
}

type PhotoSearcher interface {
	SearchPhotos(ctx context.Context, query string) ([]string, error)
}
