package deal

import (
	"fmt"
	"time"
)

const defaultDealValidity = 30 * 24 * time.Hour

// NewDefaultBreakfast builds the house deal served when no recipe provider answers.
func NewDefaultBreakfast(hotelID, hotelName, image string, now time.Time) Deal {
	return Deal{
		ID:      "default_" + hotelID,
		HotelID: hotelID,
		Title:   "Continental Breakfast Experience",
		Description: fmt.Sprintf(
			"Start your day with our signature breakfast at %s, featuring a selection of fresh pastries, seasonal fruits, and premium coffee.",
			hotelName,
		),
		Price:          24.99,
		OriginalPrice:  34.99,
		Currency:       "USD",
		Image:          image,
		AvailableUntil: now.Add(defaultDealValidity),
		Ingredients: []string{
			"Fresh pastries",
			"Seasonal fruits",
			"Artisanal cheeses",
			"Premium coffee",
			"Fresh juices",
		},
		DietaryOptions: []string{"Vegetarian", "Gluten-free options"},
		TimeSlots:      GenerateTimeSlots(),
	}
}

// ValidUntil is the availability deadline given to generated deals.
func ValidUntil(now time.Time) time.Time {
	return now.Add(defaultDealValidity)
}
