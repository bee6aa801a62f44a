package domain

type CabinClass string

const (
	CabinEconomy        CabinClass = "ECONOMY"
	CabinPremiumEconomy CabinClass = "PREMIUM_ECONOMY"
	CabinBusiness       CabinClass = "BUSINESS"
	CabinFirst          CabinClass = "FIRST"
)

// SearchParams are the user-supplied search inputs. Origin, Destination
// and DepartureDate are required; everything else has defaults.
type SearchParams struct {
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate string     `json:"departureDate"`
	ReturnDate    string     `json:"returnDate,omitempty"`
	Adults        int        `json:"adults"`
	Children      int        `json:"children"`
	Infants       int        `json:"infants"`
	CabinClass    CabinClass `json:"cabinClass"`
	MaxResults    int        `json:"maxResults"`
}

// SearchResult is what the collaborator hands back: the offers plus the
// airline-code-to-name dictionary from the response.
type SearchResult struct {
	Flights  []FlightOffer     `json:"data"`
	Carriers map[string]string `json:"carriers"`
}

type SortKey string

const (
	SortPriceAsc      SortKey = "price_asc"
	SortPriceDesc     SortKey = "price_desc"
	SortDurationAsc   SortKey = "duration_asc"
	SortDepartureAsc  SortKey = "departure_asc"
	SortDepartureDesc SortKey = "departure_desc"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortPriceAsc, SortPriceDesc, SortDurationAsc, SortDepartureAsc, SortDepartureDesc:
		return true
	}
	return false
}

// FilterCriteria is a conjunction of independent predicates. Empty
// allowlists mean "allow all".
type FilterCriteria struct {
	// Stops lists allowed stop buckets: 0, 1 or 2, where 2 means "two
	// or more".
	Stops []int `json:"stops"`
	// PriceRange is [min, max] inclusive on the grand total.
	PriceRange [2]float64 `json:"priceRange"`
	// Airlines lists allowed validating airline codes.
	Airlines []string `json:"airlines"`
	// DepartureHours is [min, max] inclusive on the outbound local
	// departure hour, 0-24.
	DepartureHours [2]int `json:"departureHours"`
	// MaxDurationMinutes caps the outbound duration.
	MaxDurationMinutes int `json:"maxDurationMinutes"`
}

// DefaultFilters is the allow-everything criteria used before any
// search has produced data-derived bounds.
func DefaultFilters() FilterCriteria {
	return FilterCriteria{
		PriceRange:         [2]float64{0, 10000},
		DepartureHours:     [2]int{0, 24},
		MaxDurationMinutes: 1440,
	}
}
