// Package mockdata is the built-in catalog served when every live provider fails.
package mockdata

import (
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/internal/domain/hotel"
)

var dealsValidUntil = time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)

// BookedHotels returns a fresh copy on every call.
func BookedHotels() []hotel.BookedHotel {
	return []hotel.BookedHotel{
		{
			Hotel: hotel.Hotel{
				ID:      "hotel1",
				Name:    "Grand Hyatt",
				Address: "123 Luxury Ave, New York, NY 10001",
				Image:   "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?auto=format&fit=crop&w=1470&q=80",
				Rating:  4.8,
			},
			BookingReference: "GH12345",
			CheckInDate:      time.Date(2023, time.December, 15, 14, 0, 0, 0, time.UTC),
			CheckOutDate:     time.Date(2023, time.December, 20, 11, 0, 0, 0, time.UTC),
			RoomType:         "Deluxe King",
			Guests:           2,
		},
		{
			Hotel: hotel.Hotel{
				ID:      "hotel2",
				Name:    "Marriott Resort",
				Address: "456 Beach Blvd, Miami, FL 33139",
				Image:   "https://images.unsplash.com/photo-1618773928121-c32242e63f39?auto=format&fit=crop&w=1470&q=80",
				Rating:  4.6,
			},
			BookingReference: "MR67890",
			CheckInDate:      time.Date(2024, time.January, 10, 15, 0, 0, 0, time.UTC),
			CheckOutDate:     time.Date(2024, time.January, 17, 10, 0, 0, 0, time.UTC),
			RoomType:         "Ocean View Suite",
			Guests:           3,
		},
		{
			Hotel: hotel.Hotel{
				ID:      "hotel3",
				Name:    "Four Seasons",
				Address: "789 Mountain Dr, Aspen, CO 81611",
				Image:   "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?auto=format&fit=crop&w=1470&q=80",
				Rating:  4.9,
			},
			BookingReference: "FS24680",
			CheckInDate:      time.Date(2024, time.February, 5, 16, 0, 0, 0, time.UTC),
			CheckOutDate:     time.Date(2024, time.February, 12, 11, 0, 0, 0, time.UTC),
			RoomType:         "Mountain View Premium",
			Guests:           2,
		},
	}
}

// Deals returns a fresh copy on every call.
func Deals() []deal.Deal {
	return []deal.Deal{
		{
			ID:             "deal1",
			HotelID:        "hotel1",
			Title:          "Luxury Continental Breakfast",
			Description:    "Start your day with our luxury continental breakfast featuring freshly baked pastries, seasonal fruits, artisanal cheeses, and premium coffee.",
			Price:          24.99,
			OriginalPrice:  34.99,
			Currency:       "USD",
			Image:          "https://images.unsplash.com/photo-1606756790138-261d2b21cd75?auto=format&fit=crop&w=1374&q=80",
			AvailableUntil: dealsValidUntil,
			Ingredients:    []string{"Artisanal pastries", "Seasonal fruits", "Gourmet cheeses", "Premium coffee"},
			DietaryOptions: []string{"Vegetarian", "Gluten-free options"},
			TimeSlots:      []string{"7:00 AM - 8:30 AM", "8:30 AM - 10:00 AM"},
		},
		{
			ID:             "deal2",
			HotelID:        "hotel1",
			Title:          "Chef's Special Brunch",
			Description:    "Indulge in our chef's special brunch featuring made-to-order omelets, Belgian waffles, prime bacon, and signature mimosas.",
			Price:          39.99,
			OriginalPrice:  59.99,
			Currency:       "USD",
			Image:          "https://images.unsplash.com/photo-1590846406792-0adc7f938f1d?auto=format&fit=crop&w=1372&q=80",
			AvailableUntil: dealsValidUntil,
			Ingredients:    []string{"Organic eggs", "Artisanal bread", "Premium meats", "Fresh vegetables"},
			DietaryOptions: []string{"Vegetarian", "Dairy-free options"},
			TimeSlots:      []string{"9:00 AM - 11:00 AM", "11:00 AM - 1:00 PM"},
		},
		{
			ID:             "deal3",
			HotelID:        "hotel2",
			Title:          "Beachside Breakfast Buffet",
			Description:    "Enjoy our expansive breakfast buffet with ocean views, featuring fresh seafood, tropical fruits, and island-inspired dishes.",
			Price:          32.99,
			OriginalPrice:  45.99,
			Currency:       "USD",
			Image:          "https://images.unsplash.com/photo-1467003909585-2f8a72700288?auto=format&fit=crop&w=1470&q=80",
			AvailableUntil: dealsValidUntil,
			Ingredients:    []string{"Fresh seafood", "Tropical fruits", "Island specialties", "Freshly baked breads"},
			DietaryOptions: []string{"Vegetarian", "Pescatarian", "Gluten-free options"},
			TimeSlots:      []string{"7:30 AM - 9:30 AM", "9:30 AM - 11:30 AM"},
		},
		{
			ID:             "deal4",
			HotelID:        "hotel3",
			Title:          "Alpine Morning Feast",
			Description:    "Fuel your mountain adventures with our hearty alpine breakfast featuring local specialties, organic ingredients, and artisanal coffee.",
			Price:          29.99,
			OriginalPrice:  42.99,
			Currency:       "USD",
			Image:          "https://images.unsplash.com/photo-1458642849426-cfb724f15ef7?auto=format&fit=crop&w=1470&q=80",
			AvailableUntil: dealsValidUntil,
			Ingredients:    []string{"Local cheeses", "Mountain honey", "Organic meats", "Artisanal breads"},
			DietaryOptions: []string{"Vegetarian", "Gluten-free options", "High-protein options"},
			TimeSlots:      []string{"6:30 AM - 8:30 AM", "8:30 AM - 10:30 AM"},
		},
		{
			ID:             "deal5",
			HotelID:        "hotel2",
			Title:          "Tropical Sunrise Breakfast",
			Description:    "Experience our tropical sunrise breakfast with freshly squeezed juices, exotic fruits, and beachside views.",
			Price:          27.99,
			OriginalPrice:  39.99,
			Currency:       "USD",
			Image:          "https://images.unsplash.com/photo-1546520057-a59c8958d7ca?auto=format&fit=crop&w=1470&q=80",
			AvailableUntil: dealsValidUntil,
			Ingredients:    []string{"Exotic fruits", "Fresh juices", "Coconut specialties", "Island pastries"},
			DietaryOptions: []string{"Vegan options", "Gluten-free options"},
			TimeSlots:      []string{"6:00 AM - 8:00 AM", "8:00 AM - 10:00 AM"},
		},
	}
}
