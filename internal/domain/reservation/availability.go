package reservation

import "time"

const DefaultSlotCapacity = 10

// CapacityPolicy caps confirmed reservations per (deal, time slot, calendar day).
// Guest counts are not summed; each reservation takes one place.
type CapacityPolicy struct {
	Capacity int
	Location *time.Location
}

func NewCapacityPolicy(capacity int, loc *time.Location) CapacityPolicy {
	if capacity < 1 {
		capacity = DefaultSlotCapacity
	}
	if loc == nil {
		loc = time.Local
	}
	return CapacityPolicy{Capacity: capacity, Location: loc}
}

func (p CapacityPolicy) CountBooked(list []*Reservation, dealID, timeSlot string, day time.Time) int {
	n := 0
	for _, r := range list {
		if r.Occupies(dealID, timeSlot, day, p.Location) {
			n++
		}
	}
	return n
}

func (p CapacityPolicy) IsAvailable(list []*Reservation, dealID, timeSlot string, day time.Time) bool {
	return p.CountBooked(list, dealID, timeSlot, day) < p.Capacity
}

func (p CapacityPolicy) Remaining(list []*Reservation, dealID, timeSlot string, day time.Time) int {
	left := p.Capacity - p.CountBooked(list, dealID, timeSlot, day)
	if left < 0 {
		return 0
	}
	return left
}

func FilterByDeal(list []*Reservation, dealID string) []*Reservation {
	out := make([]*Reservation, 0, len(list))
	for _, r := range list {
		if r.dealID == dealID {
			out = append(out, r)
		}
	}
	return out
}

func FindByID(list []*Reservation, id string) (*Reservation, int) {
	for i, r := range list {
		if r.id == id {
			return r, i
		}
	}
	return nil, -1
}
