package converter

import (
	"fmt"
	"time"

	"breakfast-deals/internal/domain/reservation"
)

// ReservationRecord is the persisted JSON shape of a reservation.
type ReservationRecord struct {
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

func ReservationToRecord(res *reservation.Reservation) ReservationRecord {
	return ReservationRecord{
		ID:                  res.ID(),
		DealID:              res.DealID(),
		HotelID:             res.HotelID(),
		TimeSlot:            res.TimeSlot(),
		Date:                res.Date(),
		NumberOfGuests:      res.NumberOfGuests(),
		SpecialRequests:     res.SpecialRequests(),
		DietaryRequirements: res.DietaryRequirements(),
		TotalPrice:          res.TotalPrice(),
		Currency:            res.Currency(),
		Status:              res.Status().String(),
		CreatedAt:           res.CreatedAt(),
	}
}

func ReservationFromRecord(rec ReservationRecord) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(rec.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		rec.ID,
		rec.DealID,
		rec.HotelID,
		rec.TimeSlot,
		rec.Date,
		rec.NumberOfGuests,
		rec.SpecialRequests,
		rec.DietaryRequirements,
		rec.TotalPrice,
		rec.Currency,
		status,
		rec.CreatedAt,
	), nil
}

func ReservationsToRecords(list []*reservation.Reservation) []ReservationRecord {
	out := make([]ReservationRecord, len(list))
	for i, r := range list {
		out[i] = ReservationToRecord(r)
	}
	return out
}

func ReservationsFromRecords(records []ReservationRecord) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(records))
	for i, rec := range records {
		r, err := ReservationFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, err)
		}
		out = append(out, r)
	}
	return out, nil
}
