package deal

import "fmt"

const (
	firstBreakfastHour = 6
	lastBreakfastHour  = 10
)

// GenerateTimeSlots returns the half-hour breakfast windows offered when a
// provider does not publish its own, from 6:00 AM up to 11:00 AM.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, (lastBreakfastHour-firstBreakfastHour+1)*2)
	for hour := firstBreakfastHour; hour <= lastBreakfastHour; hour++ {
		slots = append(slots,
			fmt.Sprintf("%d:00 AM - %d:30 AM", hour, hour),
			fmt.Sprintf("%d:30 AM - %d:00 AM", hour, hour+1),
		)
	}
	return slots
}
