package app

import (
	"fmt"
	"strconv"
	"strings"

	"butler/internal/domain"
)

// fieldID selects one optional line of a service entry.
type fieldID int

const (
	fieldDescription fieldID = iota
	fieldCuisine
	fieldMenu
	fieldPrice
	fieldDuration
	fieldVendor
	fieldLocation
)

// presentation drives the formatter for one category: which fields to show,
// in what order, and with which guest-facing copy.
type presentation struct {
	header        string
	empty         string
	emptyActions  []domain.Action
	cta           string
	fallbackName  string
	fallbackDesc  string
	priceLabel    string
	locationLabel string
	fields        []fieldID
}

var presentations = map[domain.Category]presentation{
	domain.CategoryTransport: {
		header:        "Here are the transportation services available through our hotel:",
		empty:         "I'm sorry, but I don't have any information about transportation services at the moment. Would you like me to check with our concierge desk for transportation options?",
		cta:           "Would you like to book a taxi? I can help arrange a pickup time and location.",
		fallbackName:  "Taxi Service",
		fallbackDesc:  "No description available",
		priceLabel:    "Starting price",
		locationLabel: "Pickup location",
		fields:        []fieldID{fieldDescription, fieldPrice, fieldVendor, fieldLocation},
	},
	domain.CategoryRestaurant: {
		header:       "Here are the dining options available at our hotel:",
		empty:        "I'm sorry, but we don't have any restaurant information available at the moment. Our concierge would be happy to recommend nearby dining options.",
		cta:          "Would you like to make a reservation at any of these restaurants?",
		fallbackName: "Restaurant",
		fields:       []fieldID{fieldCuisine, fieldMenu},
	},
	domain.CategorySpa: {
		header:       "Here are the spa and wellness services available at our hotel:",
		empty:        "I'm sorry, but we don't have any spa services information available at the moment. Our concierge can recommend relaxation options.",
		cta:          "Would you like to book a spa appointment?",
		fallbackName: "Spa Service",
		fallbackDesc: "Relaxing experience",
		priceLabel:   "Price",
		fields:       []fieldID{fieldDescription, fieldDuration, fieldPrice},
	},
	domain.CategoryTour: {
		header:        "Here are the tours and activities available through our hotel:",
		empty:         "I'm sorry, but we don't have any tour or activity information available at the moment. Our concierge can suggest local attractions.",
		cta:           "Would you like to book any of these activities?",
		fallbackName:  "Activity",
		fallbackDesc:  "Exciting experience",
		priceLabel:    "Price",
		locationLabel: "Location",
		fields:        []fieldID{fieldDescription, fieldLocation, fieldPrice},
	},
	domain.CategoryEntertainment: {
		header:       "Here are the entertainment options available through our hotel:",
		empty:        "I'm sorry, but we don't have any entertainment service information available at the moment. Our concierge can recommend entertainment options.",
		cta:          "Would you like me to help you book any of these entertainment options?",
		fallbackName: "Entertainment",
		fallbackDesc: "No description available",
		priceLabel:   "Price",
		fields:       []fieldID{fieldDescription, fieldPrice, fieldVendor},
	},
	domain.CategoryRoomService: {
		header:       "Here are the in-room services available:",
		empty:        "We offer 24/7 room service and housekeeping. When would you like to schedule service for your room?",
		emptyActions: []domain.Action{{Kind: domain.ActionCalendar}},
		cta:          "When would you like to schedule one of these services?",
		fallbackName: "Room Service",
		fallbackDesc: "No description available",
		priceLabel:   "Price",
		fields:       []fieldID{fieldDescription, fieldPrice},
	},
}

// menuItemCap limits rendered menu entries per restaurant.
const menuItemCap = 3

// Format renders the guest-facing summary for one category. Identical input
// produces byte-identical output.
func Format(cat domain.Category, services []domain.ServiceRecord) domain.Reply {
	p, ok := presentations[cat]
	if !ok {
		// unknown tag, answer generically rather than fault
		return domain.Reply{Text: genericFallbackText}
	}
	if len(services) == 0 {
		return domain.Reply{Text: p.empty, Actions: p.emptyActions}
	}

	var b strings.Builder
	b.WriteString(p.header)
	b.WriteString("\n\n")

	for i, s := range services {
		name := s.Name
		if name == "" {
			name = p.fallbackName
		}
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, name)

		for _, f := range p.fields {
			switch f {
			case fieldDescription:
				desc := s.Description
				if desc == "" {
					desc = p.fallbackDesc
				}
				fmt.Fprintf(&b, "   - %s\n", desc)
			case fieldCuisine:
				cuisine := s.Cuisine
				if cuisine == "" {
					cuisine = "Various cuisines"
				}
				fmt.Fprintf(&b, "   - Cuisine: %s\n", cuisine)
			case fieldMenu:
				for j, m := range s.Menu {
					if j == menuItemCap {
						break
					}
					item := m.Item
					if item == "" {
						item = "Dish"
					}
					price := m.Price
					if price == "" {
						price = "Price varies"
					}
					fmt.Fprintf(&b, "     • %s - %s\n", item, price)
					if m.Description != "" {
						fmt.Fprintf(&b, "       %s\n", m.Description)
					}
				}
			case fieldPrice:
				// nil and negative both mean "no price"; zero means free
				if s.Price != nil && *s.Price >= 0 {
					fmt.Fprintf(&b, "   - %s: %s\n", p.priceLabel, priceString(*s.Price))
				}
			case fieldDuration:
				if s.Duration > 0 {
					fmt.Fprintf(&b, "   - Duration: %d minutes\n", s.Duration)
				}
			case fieldVendor:
				if s.Vendor != "" {
					fmt.Fprintf(&b, "   - Provided by: %s\n", s.Vendor)
				}
			case fieldLocation:
				if s.Location != "" {
					fmt.Fprintf(&b, "   - %s: %s\n", p.locationLabel, s.Location)
				}
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(p.cta)
	return domain.Reply{
		Text:    b.String(),
		Actions: []domain.Action{{Kind: domain.ActionCalendar}},
	}
}

func priceString(v float64) string {
	if v == 0 {
		return "Free"
	}
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}
