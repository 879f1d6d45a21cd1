package response

import (
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/domain/hotel"
	"breakfast-deals/internal/pkg/fallback"

	"github.com/jinzhu/copier"
)

// CatalogResponse wraps chain output with its provenance. Degraded is true
// when the data came from cache or the built-in catalog.
type CatalogResponse[T any] struct {
	Data     T      `json:"data"`
	Source   string `json:"source"`
	Degraded bool   `json:"degraded"`
}

type HotelResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Image   string  `json:"image"`
	Rating  float64 `json:"rating"`
}

type BookedHotelResponse struct {
	HotelResponse
	BookingReference string    `json:"bookingReference"`
	CheckInDate      time.Time `json:"checkInDate"`
	CheckOutDate     time.Time `json:"checkOutDate"`
	RoomType         string    `json:"roomType"`
	Guests           int       `json:"guests"`
	Nights           int       `json:"nights"`
}

type DealResponse struct {
	ID             string    `json:"id"`
	HotelID        string    `json:"hotelId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	OriginalPrice  float64   `json:"originalPrice"`
	Discount       float64   `json:"discount"`
	Currency       string    `json:"currency"`
	Image          string    `json:"image"`
	AvailableUntil time.Time `json:"availableUntil"`
	Ingredients    []string  `json:"ingredients"`
	DietaryOptions []string  `json:"dietaryOptions"`
	TimeSlots      []string  `json:"timeSlots"`
}

type ImageResponse struct {
	URL string `json:"url"`
}

func Wrap[T, R any](res fallback.Result[T], mapFn func(T) R) CatalogResponse[R] {
	return CatalogResponse[R]{
		Data:     mapFn(res.Value),
		Source:   res.Source,
		Degraded: res.Degraded,
	}
}

func FromHotel(h hotel.Hotel) HotelResponse {
	var out HotelResponse
	_ = copier.Copy(&out, &h)
	return out
}

func FromHotels(list []hotel.Hotel) []HotelResponse {
	out := make([]HotelResponse, len(list))
	for i, h := range list {
		out[i] = FromHotel(h)
	}
	return out
}

func FromBookedHotel(b hotel.BookedHotel) BookedHotelResponse {
	return BookedHotelResponse{
		HotelResponse:    FromHotel(b.Hotel),
		BookingReference: b.BookingReference,
		CheckInDate:      b.CheckInDate,
		CheckOutDate:     b.CheckOutDate,
		RoomType:         b.RoomType,
		Guests:           b.Guests,
		Nights:           b.Nights(),
	}
}

func FromBookedHotels(list []hotel.BookedHotel) []BookedHotelResponse {
	out := make([]BookedHotelResponse, len(list))
	for i, b := range list {
		out[i] = FromBookedHotel(b)
	}
	return out
}

func FromDeal(d deal.Deal) DealResponse {
	var out DealResponse
	_ = copier.CopyWithOption(&out, &d, copier.Option{DeepCopy: true})
	out.Discount = d.Discount()
	if out.Ingredients == nil {
		out.Ingredients = []string{}
	}
	if out.DietaryOptions == nil {
		out.DietaryOptions = []string{}
	}
	if out.TimeSlots == nil {
		out.TimeSlots = []string{}
	}
	return out
}

func FromDeals(list []deal.Deal) []DealResponse {
	out := make([]DealResponse, len(list))
	for i, d := range list {
		out[i] = FromDeal(d)
	}
	return out
}

func FromImageURLs(urls []string) []ImageResponse {
	out := make([]ImageResponse, len(urls))
	for i, u := range urls {
		out[i] = ImageResponse{URL: u}
	}
	return out
}
