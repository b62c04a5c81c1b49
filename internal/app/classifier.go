package app

import (
	"strings"

	"butler/internal/domain"
)

// categoryKeywords maps each category to the query substrings that select
// it. Matching is case-insensitive substring membership; categories are
// independent, so a query may hit several.
var categoryKeywords = map[domain.Category][]string{
	domain.CategoryRestaurant:    {"restaurant", "dining", "food", "eat", "meal", "breakfast", "lunch", "dinner", "café", "cafe", "bistro"},
	domain.CategorySpa:           {"spa", "massage", "wellness", "relax", "relaxation", "facial", "treatment", "therapy"},
	domain.CategoryTransport:     {"transport", "taxi", "car", "shuttle", "airport", "transfer", "ride", "transportation", "pickup", "uber"},
	domain.CategoryTour:          {"tour", "excursion", "sightseeing", "guide", "visit", "attraction", "activity", "adventure"},
	domain.CategoryEntertainment: {"entertainment", "show", "movie", "theater", "concert", "event", "tickets", "nightlife"},
	domain.CategoryRoomService:   {"room service", "housekeeping", "laundry", "cleaning", "turndown", "amenities"},
}

// Classify returns the categories mentioned in the query, in fixed priority
// order so the first element is the dispatch category. Pure function, no I/O.
func Classify(query string) []domain.Category {
	q := strings.ToLower(query)
	var cats []domain.Category
	for _, cat := range domain.CategoryPriority {
		if containsAny(q, categoryKeywords[cat]) {
			cats = append(cats, cat)
		}
	}
	return cats
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
