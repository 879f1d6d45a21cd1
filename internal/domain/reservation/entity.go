package reservation

import (
	"slices"
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/pkg/clock"
	"breakfast-deals/internal/pkg/errs"
	"breakfast-deals/internal/pkg/patch"
)

var (
	ErrInvalidStatus       = errs.New("invalid reservation status")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrIDGeneration        = errs.New("failed to generate reservation id")
)

type Services struct {
	Clock       clock.Clock
	IDGenerator IDGenerator
}

// BookingRequest carries what the caller selected for a deal. The slot and
// guest count are expected to be validated by the caller beforehand.
type BookingRequest struct {
	Deal                deal.Deal
	TimeSlot            string
	NumberOfGuests      int
	SpecialRequests     *string
	DietaryRequirements []string
	// Date defaults to the creation instant when nil.
	Date *time.Time
}

type Reservation struct {
	id                  string
	dealID              string
	hotelID             string
	timeSlot            string
	date                time.Time
	numberOfGuests      int
	specialRequests     *string
	dietaryRequirements []string
	totalPrice          float64
	currency            string
	status              Status
	createdAt           time.Time
}

// NewReservation builds a confirmed reservation priced from the deal.
func NewReservation(services *Services, req BookingRequest) (*Reservation, error) {
	id, err := services.IDGenerator.NewID()
	if err != nil {
		return nil, errs.Mark(err, ErrIDGeneration)
	}

	now := services.Clock.Now()
	date := patch.Coalesce(req.Date, now)

	return &Reservation{
		id:                  id,
		dealID:              req.Deal.ID,
		hotelID:             req.Deal.HotelID,
		timeSlot:            req.TimeSlot,
		date:                date,
		numberOfGuests:      req.NumberOfGuests,
		specialRequests:     req.SpecialRequests,
		dietaryRequirements: slices.Clone(req.DietaryRequirements),
		totalPrice:          req.Deal.Price * float64(req.NumberOfGuests),
		currency:            req.Deal.Currency,
		status:              StatusConfirmed,
		createdAt:           now,
	}, nil
}

func ReconstructReservation(
	id, dealID, hotelID, timeSlot string,
	date time.Time,
	numberOfGuests int,
	specialRequests *string,
	dietaryRequirements []string,
	totalPrice float64,
	currency string,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:                  id,
		dealID:              dealID,
		hotelID:             hotelID,
		timeSlot:            timeSlot,
		date:                date,
		numberOfGuests:      numberOfGuests,
		specialRequests:     specialRequests,
		dietaryRequirements: dietaryRequirements,
		totalPrice:          totalPrice,
		currency:            currency,
		status:              status,
		createdAt:           createdAt,
	}
}

// Cancel moves the reservation to cancelled. Every other field is left as is.
// It reports whether the status changed.
func (r *Reservation) Cancel() bool {
	if r.status == StatusCancelled {
		return false
	}
	r.status = StatusCancelled
	return true
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

// Occupies reports whether r holds a seat in the given deal, slot and calendar day.
func (r *Reservation) Occupies(dealID, timeSlot string, day time.Time, loc *time.Location) bool {
	return r.IsActive() &&
		r.dealID == dealID &&
		r.timeSlot == timeSlot &&
		clock.SameDay(r.date, day, loc)
}

func (r *Reservation) ID() string                    { return r.id }
func (r *Reservation) DealID() string                { return r.dealID }
func (r *Reservation) HotelID() string               { return r.hotelID }
func (r *Reservation) TimeSlot() string              { return r.timeSlot }
func (r *Reservation) Date() time.Time               { return r.date }
func (r *Reservation) NumberOfGuests() int           { return r.numberOfGuests }
func (r *Reservation) SpecialRequests() *string      { return r.specialRequests }
func (r *Reservation) DietaryRequirements() []string { return r.dietaryRequirements }
func (r *Reservation) TotalPrice() float64           { return r.totalPrice }
func (r *Reservation) Currency() string              { return r.currency }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
