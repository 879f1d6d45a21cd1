package events

import (
	"context"
	"time"
)

type Type string

const (
	TypeReservationCreated   Type = "reservation.created"
	TypeReservationCancelled Type = "reservation.cancelled"
)

// Event is the message published after a reservation write succeeded.
type Event struct {
	Type          Type      `json:"type"`
	ReservationID string    `json:"reservationId"`
	DealID        string    `json:"dealId"`
	HotelID       string    `json:"hotelId"`
	TimeSlot      string    `json:"timeSlot"`
	Date          time.Time `json:"date"`
	Guests        int       `json:"numberOfGuests"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
