//go:build unit || e2e

package builder

import (
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/domain/reservation"
	reqdto "breakfast-deals/internal/handler/dto/request"
	"breakfast-deals/internal/pkg/clock"
	"breakfast-deals/internal/usecase/commands"
)

// ReservationNow is the instant every builder-made reservation is created at.
var ReservationNow = time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID                  string
	Deal                deal.Deal
	TimeSlot            string
	NumberOfGuests      int
	SpecialRequests     *string
	DietaryRequirements []string
	Date                *time.Time
	Status              reservation.Status
	CreatedAt           time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	d := NewDealBuilder().Build()
	return &ReservationBuilder{
		ID:             "res_test_1",
		Deal:           d,
		TimeSlot:       d.TimeSlots[0],
		NumberOfGuests: 2,
		Status:         reservation.StatusConfirmed,
		CreatedAt:      ReservationNow,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithDate(t time.Time) *ReservationBuilder {
	b.Date = &t
	return b
}

func (b *ReservationBuilder) BuildParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		Deal:                b.Deal,
		TimeSlot:            b.TimeSlot,
		NumberOfGuests:      b.NumberOfGuests,
		SpecialRequests:     b.SpecialRequests,
		DietaryRequirements: b.DietaryRequirements,
		Date:                b.Date,
	}
}

func (b *ReservationBuilder) BuildBookingRequest() reservation.BookingRequest {
	return reservation.BookingRequest{
		Deal:                b.Deal,
		TimeSlot:            b.TimeSlot,
		NumberOfGuests:      b.NumberOfGuests,
		SpecialRequests:     b.SpecialRequests,
		DietaryRequirements: b.DietaryRequirements,
		Date:                b.Date,
	}
}

// BuildDomain creates the reservation through the domain constructor with a
// fixed clock.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	clk := clock.NewMockClock(b.CreatedAt)
	services := &reservation.Services{
		Clock:       clk,
		IDGenerator: reservation.NewSequenceGenerator(clk.Now),
	}
	return reservation.NewReservation(services, b.BuildBookingRequest())
}

// BuildStored returns a reservation as it would be read back from storage.
func (b *ReservationBuilder) BuildStored() *reservation.Reservation {
	date := b.CreatedAt
	if b.Date != nil {
		date = *b.Date
	}
	return reservation.ReconstructReservation(
		b.ID,
		b.Deal.ID,
		b.Deal.HotelID,
		b.TimeSlot,
		date,
		b.NumberOfGuests,
		b.SpecialRequests,
		b.DietaryRequirements,
		b.Deal.Price*float64(b.NumberOfGuests),
		b.Deal.Currency,
		b.Status,
		b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		DealID:              b.Deal.ID,
		TimeSlot:            b.TimeSlot,
		NumberOfGuests:      b.NumberOfGuests,
		SpecialRequests:     b.SpecialRequests,
		DietaryRequirements: b.DietaryRequirements,
		Date:                b.Date,
	}
}
