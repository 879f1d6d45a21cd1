package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/domain/reservation"
	"breakfast-deals/internal/infra/events"
	"breakfast-deals/internal/pkg/errs"
)

var (
	ErrReservationCreation = errs.New("failed to create reservation")
	ErrReservationStore    = errs.New("failed to update reservation")
	ErrSlotUnavailable     = errs.New("time slot is fully booked")
	ErrReservationNotFound = reservation.ErrReservationNotFound
)

type CreateReservationParams struct {
	Deal                deal.Deal
	TimeSlot            string
	NumberOfGuests      int
	SpecialRequests     *string
	DietaryRequirements []string
	// Date defaults to now when nil.
	Date *time.Time
}

func (p CreateReservationParams) toBookingRequest() reservation.BookingRequest {
	return reservation.BookingRequest{
		Deal:                p.Deal,
		TimeSlot:            p.TimeSlot,
		NumberOfGuests:      p.NumberOfGuests,
		SpecialRequests:     p.SpecialRequests,
		DietaryRequirements: p.DietaryRequirements,
		Date:                p.Date,
	}
}

type ReservationCommands interface {
	// CreateReservation appends a confirmed reservation without checking
	// capacity. A concurrent availability check may therefore be stale by the
	// time the write lands; use BookReservation for a checked booking.
	CreateReservation(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error)
	// BookReservation checks slot capacity and creates the reservation in one
	// critical section.
	BookReservation(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error)
	// CancelReservation reports false when the id is unknown or the store
	// fails; the returned error tells the two apart.
	CancelReservation(ctx context.Context, id string) (bool, error)
}

type reservationCommandsImpl struct {
	// mu serializes every read-modify-write of the reservation document.
	mu        sync.Mutex
	repo      ReservationRepository
	publisher events.Publisher
	services  *reservation.Services
	policy    reservation.CapacityPolicy
	logger    *slog.Logger
}

func NewReservationCommands(
	repo ReservationRepository,
	publisher events.Publisher,
	services *reservation.Services,
	policy reservation.CapacityPolicy,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		repo:      repo,
		publisher: publisher,
		services:  services,
		policy:    policy,
		logger:    logger,
	}
}

func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, err := c.repo.Load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load reservations"), ErrReservationCreation)
	}
	return c.appendReservation(ctx, list, params)
}

func (c *reservationCommandsImpl) BookReservation(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, err := c.repo.Load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load reservations"), ErrReservationCreation)
	}
	day := c.services.Clock.Now()
	if params.Date != nil {
		day = *params.Date
	}
	if !c.policy.IsAvailable(list, params.Deal.ID, params.TimeSlot, day) {
		c.logger.InfoContext(ctx, "time slot fully booked",
			"dealID", params.Deal.ID,
			"timeSlot", params.TimeSlot,
			"capacity", c.policy.Capacity,
		)
		return nil, errs.Wrapf(ErrSlotUnavailable, "deal %s slot %q", params.Deal.ID, params.TimeSlot)
	}
	return c.appendReservation(ctx, list, params)
}

func (c *reservationCommandsImpl) appendReservation(ctx context.Context, list []*reservation.Reservation, params CreateReservationParams) (*reservation.Reservation, error) {
	res, err := reservation.NewReservation(c.services, params.toBookingRequest())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build reservation"), ErrReservationCreation)
	}

	if err := c.repo.WriteAll(ctx, append(list, res)); err != nil {
		c.logger.ErrorContext(ctx, "failed to save reservation", "dealID", params.Deal.ID, "error", err)
		return nil, errs.Mark(errs.Wrap(err, "save reservation"), ErrReservationCreation)
	}

	c.logger.InfoContext(ctx, "reservation created",
		"reservationID", res.ID(),
		"dealID", res.DealID(),
		"timeSlot", res.TimeSlot(),
		"guests", res.NumberOfGuests(),
	)
	c.publish(ctx, events.TypeReservationCreated, res)
	return res, nil
}

func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, err := c.repo.Load(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to load reservations for cancellation", "reservationID", id, "error", err)
		return false, errs.Mark(errs.Wrap(err, "load reservations"), ErrReservationStore)
	}
	res, _ := reservation.FindByID(list, id)
	if res == nil {
		return false, errs.Wrapf(ErrReservationNotFound, "reservation %s", id)
	}

	if !res.Cancel() {
		// already cancelled, nothing to write
		return true, nil
	}

	if err := c.repo.WriteAll(ctx, list); err != nil {
		c.logger.ErrorContext(ctx, "failed to save cancellation", "reservationID", id, "error", err)
		return false, errs.Mark(errs.Wrap(err, "save cancellation"), ErrReservationStore)
	}

	c.logger.InfoContext(ctx, "reservation cancelled", "reservationID", id)
	c.publish(ctx, events.TypeReservationCancelled, res)
	return true, nil
}

func (c *reservationCommandsImpl) publish(ctx context.Context, typ events.Type, res *reservation.Reservation) {
	event := events.Event{
		Type:          typ,
		ReservationID: res.ID(),
		DealID:        res.DealID(),
		HotelID:       res.HotelID(),
		TimeSlot:      res.TimeSlot(),
		Date:          res.Date(),
		Guests:        res.NumberOfGuests(),
		OccurredAt:    c.services.Clock.Now(),
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.WarnContext(ctx, "failed to publish reservation event",
			"type", typ,
			"reservationID", res.ID(),
			"error", err,
		)
	}
}
