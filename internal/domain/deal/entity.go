package deal

import (
	"slices"
	"strings"
	"time"

	"breakfast-deals/internal/pkg/errs"
)

var (
	ErrMissingID        = errs.New("deal id is required")
	ErrMissingHotelID   = errs.New("deal hotel id is required")
	ErrNegativePrice    = errs.New("deal price cannot be negative")
	ErrPriceAboveOrigin = errs.New("deal price exceeds original price")
	ErrMissingCurrency  = errs.New("deal currency is required")
	ErrUnknownTimeSlot  = errs.New("time slot is not offered by deal")
	ErrDealNotFound     = errs.New("deal not found")
)

// Deal is a discounted breakfast offer as returned by a deal provider.
// Values are replaced wholesale on every fetch and never mutated in place.
type Deal struct {
	ID             string    `json:"id"`
	HotelID        string    `json:"hotelId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	OriginalPrice  float64   `json:"originalPrice"`
	Currency       string    `json:"currency"`
	Image          string    `json:"image"`
	AvailableUntil time.Time `json:"availableUntil"`
	Ingredients    []string  `json:"ingredients,omitempty"`
	DietaryOptions []string  `json:"dietaryOptions,omitempty"`
	TimeSlots      []string  `json:"timeSlots,omitempty"`
}

func (d Deal) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(d.HotelID) == "" {
		return ErrMissingHotelID
	}
	if d.Price < 0 {
		return ErrNegativePrice
	}
	if d.Price > d.OriginalPrice {
		return ErrPriceAboveOrigin
	}
	if strings.TrimSpace(d.Currency) == "" {
		return ErrMissingCurrency
	}
	return nil
}

func (d Deal) HasTimeSlot(slot string) bool {
	return slices.Contains(d.TimeSlots, slot)
}

func (d Deal) Discount() float64 {
	return d.OriginalPrice - d.Price
}

func FindByID(deals []Deal, id string) (Deal, bool) {
	for _, d := range deals {
		if d.ID == id {
			return d, true
		}
	}
	return Deal{}, false
}

func FilterByHotels(deals []Deal, hotelIDs []string) []Deal {
	out := make([]Deal, 0, len(deals))
	for _, d := range deals {
		if slices.Contains(hotelIDs, d.HotelID) {
			out = append(out, d)
		}
	}
	return out
}
