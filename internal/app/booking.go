package app

import (
	"fmt"
	"strings"

	"butler/internal/domain"
)

var bookingVerbs = []string{"book", "reserve", "schedule"}

// hasBookingIntent reports whether the normalized query contains a booking
// verb.
func hasBookingIntent(query string) bool {
	return containsAny(query, bookingVerbs)
}

// detectBooking resolves which service the guest wants to book. Services
// are scanned per matched category in catalog order; the first one whose
// name occurs in the query wins. No match (including no matched categories
// at all) yields a clarification prompt.
func detectBooking(query string, cats []domain.Category, snap domain.CatalogSnapshot) domain.Reply {
	for _, cat := range cats {
		for _, s := range servicesFor(cat, snap) {
			if s.Name == "" {
				continue
			}
			if strings.Contains(query, strings.ToLower(s.Name)) {
				return domain.Reply{
					Text:    fmt.Sprintf("Great choice! I can help you book %s.", s.Name),
					Actions: []domain.Action{{Kind: domain.ActionBooking, ServiceID: s.ID}},
				}
			}
		}
	}
	return domain.Reply{
		Text: "I'd be happy to help you with a booking. Could you tell me which service you would like to book?",
	}
}

// servicesFor resolves the concrete service list for a category: dedicated
// snapshot groups for restaurants, spa and tours; everything else lives in
// hotel.services filtered by type.
func servicesFor(cat domain.Category, snap domain.CatalogSnapshot) []domain.ServiceRecord {
	switch cat {
	case domain.CategoryRestaurant:
		return snap.Restaurants
	case domain.CategorySpa:
		return snap.SpaServices
	case domain.CategoryTour:
		return snap.Attractions
	default:
		var out []domain.ServiceRecord
		for _, s := range snap.Hotel.Services {
			if s.Type == cat {
				out = append(out, s)
			}
		}
		return out
	}
}
