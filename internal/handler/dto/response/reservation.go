package response

import (
	"time"

	"breakfast-deals/internal/domain/reservation"
	"breakfast-deals/internal/usecase/queries"
)

type ReservationResponse struct {
	ID                  string    `json:"id"`
	DealID              string    `json:"dealId"`
	HotelID             string    `json:"hotelId"`
	TimeSlot            string    `json:"timeSlot"`
	Date                time.Time `json:"date"`
	NumberOfGuests      int       `json:"numberOfGuests"`
	SpecialRequests     *string   `json:"specialRequests,omitempty"`
	DietaryRequirements []string  `json:"dietaryRequirements,omitempty"`
	TotalPrice          float64   `json:"totalPrice"`
	Currency            string    `json:"currency"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

type CancelReservationResponse struct {
	ID        string `json:"id"`
	Cancelled bool   `json:"cancelled"`
}

type AvailabilityResponse struct {
	DealID    string    `json:"dealId"`
	TimeSlot  string    `json:"timeSlot"`
	Date      time.Time `json:"date"`
	Capacity  int       `json:"capacity"`
	Booked    int       `json:"booked"`
	Remaining int       `json:"remaining"`
	Available bool      `json:"available"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                  r.ID(),
		DealID:              r.DealID(),
		HotelID:             r.HotelID(),
		TimeSlot:            r.TimeSlot(),
		Date:                r.Date(),
		NumberOfGuests:      r.NumberOfGuests(),
		SpecialRequests:     r.SpecialRequests(),
		DietaryRequirements: r.DietaryRequirements(),
		TotalPrice:          r.TotalPrice(),
		Currency:            r.Currency(),
		Status:              r.Status().String(),
		CreatedAt:           r.CreatedAt(),
	}
}

func FromReservations(list []*reservation.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, len(list))
	for i, r := range list {
		out[i] = FromReservation(r)
	}
	return out
}

func FromSlotAvailability(v *queries.SlotAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		DealID:    v.DealID,
		TimeSlot:  v.TimeSlot,
		Date:      v.Date,
		Capacity:  v.Capacity,
		Booked:    v.Booked,
		Remaining: v.Remaining,
		Available: v.Available,
	}
}
