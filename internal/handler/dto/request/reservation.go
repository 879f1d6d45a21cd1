package request

import (
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/pkg/errs"
	"breakfast-deals/internal/pkg/patch"
	"breakfast-deals/internal/usecase/commands"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("date must be YYYY-MM-DD or RFC 3339")

type CreateReservationRequest struct {
	DealID              string     `json:"dealId" binding:"required"`
	TimeSlot            string     `json:"timeSlot" binding:"required"`
	NumberOfGuests      int        `json:"numberOfGuests" binding:"required,min=1"`
	SpecialRequests     *string    `json:"specialRequests,omitempty"`
	DietaryRequirements []string   `json:"dietaryRequirements,omitempty"`
	Date                *time.Time `json:"date,omitempty"`
}

func (r CreateReservationRequest) GetSpecialRequests() *string {
	return patch.TrimmedOrNil(r.SpecialRequests)
}

func (r CreateReservationRequest) GetDietaryRequirements() []string {
	return patch.Compact(r.DietaryRequirements)
}

func (r CreateReservationRequest) ToParams(d deal.Deal) commands.CreateReservationParams {
	return commands.CreateReservationParams{
		Deal:                d,
		TimeSlot:            r.TimeSlot,
		NumberOfGuests:      r.NumberOfGuests,
		SpecialRequests:     r.GetSpecialRequests(),
		DietaryRequirements: r.GetDietaryRequirements(),
		Date:                r.Date,
	}
}

type AvailabilityQuery struct {
	TimeSlot string `form:"time_slot" binding:"required"`
	Date     string `form:"date"`
}

// ParseDate reads a calendar date in loc or a full RFC 3339 timestamp.
// An empty value yields fallback.
func (q AvailabilityQuery) ParseDate(loc *time.Location, fallback time.Time) (time.Time, error) {
	if q.Date == "" {
		return fallback, nil
	}
	if t, err := time.ParseInLocation(DateLayout, q.Date, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, q.Date)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return t, nil
}
