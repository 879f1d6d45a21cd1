package hotel

import (
	"strings"
	"time"

	"breakfast-deals/internal/pkg/errs"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	ErrMissingID         = errs.New("hotel id is required")
	ErrMissingName       = errs.New("hotel name is required")
	ErrRatingOutOfRange  = errs.New("hotel rating must be between 0 and 5")
	ErrInvalidStayPeriod = errs.New("check-in must be before check-out")
	ErrInvalidGuests     = errs.New("guest count must be positive")
	ErrMissingReference  = errs.New("booking reference is required")
	ErrHotelNotFound     = errs.New("hotel not found")
)

type Hotel struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Image   string  `json:"image"`
	Rating  float64 `json:"rating"`
}

func (h Hotel) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(h.Name) == "" {
		return ErrMissingName
	}
	if h.Rating < MinRating || h.Rating > MaxRating {
		return ErrRatingOutOfRange
	}
	return nil
}

// BookedHotel is a hotel stay the user already holds.
type BookedHotel struct {
	Hotel
	BookingReference string    `json:"bookingReference"`
	CheckInDate      time.Time `json:"checkInDate"`
	CheckOutDate     time.Time `json:"checkOutDate"`
	RoomType         string    `json:"roomType"`
	Guests           int       `json:"guests"`
}

func (b BookedHotel) Validate() error {
	if err := b.Hotel.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(b.BookingReference) == "" {
		return ErrMissingReference
	}
	if !b.CheckInDate.Before(b.CheckOutDate) {
		return ErrInvalidStayPeriod
	}
	if b.Guests < 1 {
		return ErrInvalidGuests
	}
	return nil
}

func (b BookedHotel) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// RatingFromTenPointScale converts a 10-point review score to the 5-point scale.
func RatingFromTenPointScale(score float64) float64 {
	return score / 2
}

func IDs(hotels []BookedHotel) []string {
	ids := make([]string, len(hotels))
	for i, h := range hotels {
		ids[i] = h.ID
	}
	return ids
}

func FindBooked(hotels []BookedHotel, id string) (BookedHotel, bool) {
	for _, h := range hotels {
		if h.ID == id {
			return h, true
		}
	}
	return BookedHotel{}, false
}
