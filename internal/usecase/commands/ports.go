package commands

import (
	"context"

	"breakfast-deals/internal/domain/reservation"
)

// ReservationRepository persists the full reservation list as one document.
// Load fails when the document cannot be read in full; a missing document is
// an empty list.
type ReservationRepository interface {
	Load(ctx context.Context) ([]*reservation.Reservation, error)
	WriteAll(ctx context.Context, list []*reservation.Reservation) error
}
