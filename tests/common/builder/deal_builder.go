//go:build unit || e2e

package builder

import (
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/domain/hotel"
)

type DealBuilder struct {
	ID             string
	HotelID        string
	Title          string
	Price          float64
	OriginalPrice  float64
	Currency       string
	AvailableUntil time.Time
	TimeSlots      []string
}

func NewDealBuilder() *DealBuilder {
	return &DealBuilder{
		ID:             "deal1",
		HotelID:        "hotel1",
		Title:          "Luxury Continental Breakfast",
		Price:          24.99,
		OriginalPrice:  34.99,
		Currency:       "USD",
		AvailableUntil: time.Date(2030, time.December, 31, 23, 59, 59, 0, time.UTC),
		TimeSlots:      []string{"7:00 AM - 8:30 AM", "8:30 AM - 10:00 AM"},
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

func (b *DealBuilder) Build() deal.Deal {
	return deal.Deal{
		ID:             b.ID,
		HotelID:        b.HotelID,
		Title:          b.Title,
		Description:    "Fresh pastries and premium coffee.",
		Price:          b.Price,
		OriginalPrice:  b.OriginalPrice,
		Currency:       b.Currency,
		Image:          "https://images.example.com/deal.jpg",
		AvailableUntil: b.AvailableUntil,
		Ingredients:    []string{"Pastries", "Coffee"},
		DietaryOptions: []string{"Vegetarian"},
		TimeSlots:      append([]string(nil), b.TimeSlots...),
	}
}

type BookedHotelBuilder struct {
	ID        string
	Name      string
	Rating    float64
	Reference string
	CheckIn   time.Time
	CheckOut  time.Time
	Guests    int
}

func NewBookedHotelBuilder() *BookedHotelBuilder {
	return &BookedHotelBuilder{
		ID:        "hotel1",
		Name:      "Grand Hyatt",
		Rating:    4.8,
		Reference: "GH12345",
		CheckIn:   time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, time.March, 15, 11, 0, 0, 0, time.UTC),
		Guests:    2,
	}
}

func (b *BookedHotelBuilder) With(mutate func(*BookedHotelBuilder)) *BookedHotelBuilder {
	mutate(b)
	return b
}

func (b *BookedHotelBuilder) BuildHotel() hotel.Hotel {
	return hotel.Hotel{
		ID:      b.ID,
		Name:    b.Name,
		Address: "123 Luxury Ave, New York",
		Image:   "https://images.example.com/hotel.jpg",
		Rating:  b.Rating,
	}
}

func (b *BookedHotelBuilder) Build() hotel.BookedHotel {
	return hotel.BookedHotel{
		Hotel:            b.BuildHotel(),
		BookingReference: b.Reference,
		CheckInDate:      b.CheckIn,
		CheckOutDate:     b.CheckOut,
		RoomType:         "Deluxe King",
		Guests:           b.Guests,
	}
}
