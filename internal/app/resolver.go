package app

import (
	"context"
	"fmt"
	"strings"

	"butler/internal/adapters/observability"
	"butler/internal/domain"
)

var genericInquiryTerms = []string{"service", "offer", "available", "what can you do"}

const genericFallbackText = "I can provide information about our hotel services including transportation, dining, spa services, tours, entertainment, and room service. What specific service would you like to know more about?"

// fullServiceGroups is the fixed enumeration used when the catalog is empty.
var fullServiceGroups = []string{"transportation", "dining", "spa services", "tours", "entertainment", "room service"}

// Resolver is the single entry point of the concierge core. It never errors
// and never returns an empty reply: fetch failures degrade to the empty
// snapshot, unmatched queries get a clarification or FAQ answer.
type Resolver struct {
	catalog *CatalogCache
}

func NewResolver(c *CatalogCache) *Resolver { return &Resolver{catalog: c} }

// Resolve answers one guest query.
func (r *Resolver) Resolve(ctx context.Context, query string) domain.Reply {
	snap := r.catalog.Get(ctx)
	q := strings.ToLower(query)
	cats := Classify(query)

	if hasBookingIntent(q) {
		observability.ObserveResolution("booking")
		return detectBooking(q, cats, snap)
	}

	if len(cats) == 0 {
		return r.resolveUncategorized(q, snap)
	}

	// single-category response policy: first match in priority order wins
	cat := cats[0]
	observability.ObserveResolution(string(cat))
	return Format(cat, servicesFor(cat, snap))
}

// ResolveText is Resolve with the reply flattened to the bracketed-tag wire
// form.
func (r *Resolver) ResolveText(ctx context.Context, query string) string {
	return r.Resolve(ctx, query).Render()
}

func (r *Resolver) resolveUncategorized(q string, snap domain.CatalogSnapshot) domain.Reply {
	if containsAny(q, genericInquiryTerms) {
		observability.ObserveResolution("overview")
		return serviceOverview(snap)
	}

	switch {
	case containsAny(q, []string{"wifi", "internet", "password"}):
		observability.ObserveResolution("faq")
		return domain.Reply{Text: "Our hotel offers complimentary high-speed WiFi throughout the property. The network name is 'AIButler-Guest' and the password is provided in your welcome package or you can get it from reception."}
	case containsAny(q, []string{"checkout", "check out", "leave"}):
		observability.ObserveResolution("faq")
		return domain.Reply{
			Text:    "Our standard checkout time is 11:00 AM. Would you like to request a late checkout?",
			Actions: []domain.Action{{Kind: domain.ActionCalendar}},
		}
	case containsAny(q, []string{"checkin", "check in", "arrive"}):
		observability.ObserveResolution("faq")
		return domain.Reply{
			Text:    "Our standard check-in time is 3:00 PM. Early check-in may be available based on room availability. Would you like me to check if early check-in is possible for your reservation?",
			Actions: []domain.Action{{Kind: domain.ActionCalendar}},
		}
	}

	observability.ObserveResolution("fallback")
	return domain.Reply{Text: genericFallbackText}
}

// serviceOverview composes a sentence enumerating the non-empty service
// groups, falling back to the full fixed list when the catalog is empty.
func serviceOverview(snap domain.CatalogSnapshot) domain.Reply {
	var groups []string
	if len(servicesFor(domain.CategoryTransport, snap)) > 0 {
		groups = append(groups, "transportation")
	}
	if len(snap.Restaurants) > 0 {
		groups = append(groups, "dining")
	}
	if len(snap.SpaServices) > 0 {
		groups = append(groups, "spa services")
	}
	if len(snap.Attractions) > 0 {
		groups = append(groups, "tours and activities")
	}
	if len(servicesFor(domain.CategoryEntertainment, snap)) > 0 {
		groups = append(groups, "entertainment")
	}
	if len(groups) == 0 {
		groups = fullServiceGroups
	}

	return domain.Reply{
		Text: fmt.Sprintf("At %s, we can assist you with %s.\n\nWhat specific service would you like information about?",
			domain.HotelName, joinGroups(groups)),
	}
}

// joinGroups lists one item bare; two or more are comma-joined with a final
// "and" before the last.
func joinGroups(groups []string) string {
	if len(groups) == 1 {
		return groups[0]
	}
	return strings.Join(groups[:len(groups)-1], ", ") + ", and " + groups[len(groups)-1]
}
