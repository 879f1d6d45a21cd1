package queries

import (
	"context"
	"time"

	"breakfast-deals/internal/domain/reservation"
	"breakfast-deals/internal/pkg/errs"
)

type ReservationQueries interface {
	ListForDeal(ctx context.Context, dealID string) []*reservation.Reservation
	ListAll(ctx context.Context) []*reservation.Reservation
	GetByID(ctx context.Context, id string) (*reservation.Reservation, error)
	// IsTimeSlotAvailable counts confirmed reservations for the deal, slot
	// label and calendar day of date, and compares against slot capacity.
	IsTimeSlotAvailable(ctx context.Context, dealID, timeSlot string, date time.Time) (bool, error)
	SlotAvailability(ctx context.Context, dealID, timeSlot string, date time.Time) (*SlotAvailability, error)
}

type reservationQueriesImpl struct {
	reader ReservationReader
	policy reservation.CapacityPolicy
}

func NewReservationQueries(reader ReservationReader, policy reservation.CapacityPolicy) ReservationQueries {
	return &reservationQueriesImpl{
		reader: reader,
		policy: policy,
	}
}

func (q *reservationQueriesImpl) ListForDeal(ctx context.Context, dealID string) []*reservation.Reservation {
	return reservation.FilterByDeal(q.reader.ReadAll(ctx), dealID)
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) []*reservation.Reservation {
	return q.reader.ReadAll(ctx)
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	res, _ := reservation.FindByID(q.reader.ReadAll(ctx), id)
	if res == nil {
		return nil, errs.Wrapf(reservation.ErrReservationNotFound, "reservation %s", id)
	}
	return res, nil
}

func (q *reservationQueriesImpl) IsTimeSlotAvailable(ctx context.Context, dealID, timeSlot string, date time.Time) (bool, error) {
	view, err := q.SlotAvailability(ctx, dealID, timeSlot, date)
	if err != nil {
		return false, err
	}
	return view.Available, nil
}

func (q *reservationQueriesImpl) SlotAvailability(ctx context.Context, dealID, timeSlot string, date time.Time) (*SlotAvailability, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list := reservation.FilterByDeal(q.reader.ReadAll(ctx), dealID)
	booked := q.policy.CountBooked(list, dealID, timeSlot, date)
	remaining := q.policy.Remaining(list, dealID, timeSlot, date)

	return &SlotAvailability{
		DealID:    dealID,
		TimeSlot:  timeSlot,
		Date:      date,
		Capacity:  q.policy.Capacity,
		Booked:    booked,
		Remaining: remaining,
		Available: booked < q.policy.Capacity,
	}, nil
}
