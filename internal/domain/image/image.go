// Package image builds placeholder image URLs for deals and hotels.
package image

import (
	"math/rand/v2"
	"net/url"
)

const sourceBaseURL = "https://source.unsplash.com/random/1200x800/?"

var breakfastCategories = []string{
	"breakfast",
	"brunch",
	"coffee",
	"croissant",
	"pastry",
	"hotel breakfast",
	"buffet",
	"continental breakfast",
}

var hotelCategories = []string{
	"hotel",
	"resort",
	"luxury hotel",
	"hotel room",
	"hotel lobby",
	"boutique hotel",
}

// Picker chooses an index in [0, n). Tests substitute a deterministic one.
type Picker func(n int) int

func DefaultPicker(n int) int {
	return rand.IntN(n)
}

func RandomBreakfast(pick Picker) string {
	return SourceURL(breakfastCategories[pick(len(breakfastCategories))])
}

func RandomHotel(pick Picker) string {
	return SourceURL(hotelCategories[pick(len(hotelCategories))])
}

func BreakfastByCuisine(cuisine string) string {
	return SourceURL(cuisine + " breakfast")
}

func HotelByType(hotelType string) string {
	return SourceURL(hotelType + " hotel")
}

func SourceURL(query string) string {
	return sourceBaseURL + url.QueryEscape(query)
}
