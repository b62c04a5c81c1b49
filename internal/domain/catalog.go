package domain

// HotelName is the property this concierge serves. Used in the default
// snapshot and in guest-facing copy.
const HotelName = "The AI Butler Hotel"

// Category tags a service record and drives classification and formatting.
type Category string

const (
	CategoryTransport     Category = "transport"
	CategoryRestaurant    Category = "restaurant"
	CategorySpa           Category = "spa"
	CategoryTour          Category = "tour"
	CategoryEntertainment Category = "entertainment"
	CategoryRoomService   Category = "room_service"
)

// CategoryPriority is the fixed dispatch order when a query matches more
// than one category. Only the first match is answered.
var CategoryPriority = []Category{
	CategoryTransport,
	CategoryRestaurant,
	CategorySpa,
	CategoryTour,
	CategoryEntertainment,
	CategoryRoomService,
}

type MenuItem struct {
	Item        string `json:"item"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

// ServiceRecord is one bookable offering. Immutable once fetched; identity
// is ID. Price is a pointer so "no price" and "free" stay distinct.
type ServiceRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       *float64   `json:"price,omitempty"`
	Duration    int        `json:"duration,omitempty"` // minutes
	Vendor      string     `json:"vendor,omitempty"`
	Location    string     `json:"location,omitempty"`
	Type        Category   `json:"type"`
	Cuisine     string     `json:"cuisine,omitempty"`
	Menu        []MenuItem `json:"menu,omitempty"`
}

type HotelInfo struct {
	Name     string          `json:"name"`
	Services []ServiceRecord `json:"services"`
}

// CatalogSnapshot is the full structured set of hotel and vendor offerings.
// Produced wholesale by a fetch; never partially mutated.
type CatalogSnapshot struct {
	Hotel       HotelInfo       `json:"hotel"`
	Restaurants []ServiceRecord `json:"restaurants"`
	SpaServices []ServiceRecord `json:"spa_services"`
	Attractions []ServiceRecord `json:"attractions"`
}

// EmptyCatalog is the safe default served when no catalog data is available.
func EmptyCatalog() CatalogSnapshot {
	return CatalogSnapshot{
		Hotel:       HotelInfo{Name: HotelName, Services: []ServiceRecord{}},
		Restaurants: []ServiceRecord{},
		SpaServices: []ServiceRecord{},
		Attractions: []ServiceRecord{},
	}
}

// Empty reports whether the snapshot carries no services at all.
func (c CatalogSnapshot) Empty() bool {
	return len(c.Hotel.Services) == 0 &&
		len(c.Restaurants) == 0 &&
		len(c.SpaServices) == 0 &&
		len(c.Attractions) == 0
}
