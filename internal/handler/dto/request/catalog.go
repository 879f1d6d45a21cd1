package request

import "strings"

type HotelSearchQuery struct {
	Location string `form:"location" binding:"required"`
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
}

type DealsQuery struct {
	HotelIDs string `form:"hotel_ids"`
}

// IDs splits the comma separated hotel id list, dropping blanks.
func (q DealsQuery) IDs() []string {
	if q.HotelIDs == "" {
		return nil
	}
	var out []string
	for _, id := range strings.Split(q.HotelIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

type BreakfastMenuQuery struct {
	Name string `form:"name"`
}

type ImageSearchQuery struct {
	Query string `form:"query" binding:"required"`
}
