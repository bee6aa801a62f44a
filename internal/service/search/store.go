package search

import (
	"math"
	"sync"

	"github.com/Domenick1991/skypulse/internal/domain"
	"github.com/Domenick1991/skypulse/internal/service/offers"
)

// Store holds the current search state: the raw result list, the
// carriers dictionary and the active filter criteria and sort key. It
// is an explicit injectable container rather than a package singleton
// so the engine stays testable in isolation.
//
// Each search gets a generation number; only the result of the newest
// generation is applied, so a slow response from a superseded search
// is discarded instead of clobbering fresher data.
type Store struct {
	mu         sync.Mutex
	generation uint64
	applied    uint64
	flights    []domain.FlightOffer
	carriers   map[string]string
	criteria   domain.FilterCriteria
	sortKey    domain.SortKey
}

func NewStore() *Store {
	return &Store{
		criteria: domain.DefaultFilters(),
		sortKey:  domain.SortPriceAsc,
	}
}

// Begin reserves a generation for a new in-flight search.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// Apply installs a completed search result. It returns false and
// leaves the store untouched when the generation has been superseded.
// Filter criteria are reset to data-derived defaults.
func (s *Store) Apply(generation uint64, result *domain.SearchResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation < s.generation || generation <= s.applied {
		return false
	}
	s.applied = generation
	s.flights = result.Flights
	s.carriers = result.Carriers
	s.criteria = DerivedFilters(result.Flights)
	return true
}

func (s *Store) Flights() []domain.FlightOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FlightOffer, len(s.flights))
	copy(out, s.flights)
	return out
}

func (s *Store) Carriers() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.carriers))
	for k, v := range s.carriers {
		out[k] = v
	}
	return out
}

func (s *Store) Criteria() domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

func (s *Store) SetCriteria(criteria domain.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = criteria
}

// ResetFilters restores data-derived defaults for the held flights.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = DerivedFilters(s.flights)
}

func (s *Store) SortKey() domain.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortKey
}

func (s *Store) SetSortKey(key domain.SortKey) {
	if !key.IsValid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
}

// Processed runs the filter/sort engine over the held flights with the
// active criteria and sort key.
func (s *Store) Processed() []domain.FlightOffer {
	s.mu.Lock()
	flights := s.flights
	criteria := s.criteria
	key := s.sortKey
	s.mu.Unlock()
	return offers.Process(flights, criteria, key)
}

// DerivedFilters builds allow-all criteria with price and duration
// bounds taken from the result set. An empty set falls back to the
// static defaults.
func DerivedFilters(flights []domain.FlightOffer) domain.FilterCriteria {
	if len(flights) == 0 {
		return domain.DefaultFilters()
	}

	minPrice := flights[0].GrandTotal()
	maxPrice := minPrice
	maxDuration := domain.ParseDuration(flights[0].Outbound().Duration)
	for _, f := range flights[1:] {
		price := f.GrandTotal()
		if price < minPrice {
			minPrice = price
		}
		if price > maxPrice {
			maxPrice = price
		}
		if d := domain.ParseDuration(f.Outbound().Duration); d > maxDuration {
			maxDuration = d
		}
	}

	return domain.FilterCriteria{
		PriceRange:         [2]float64{math.Floor(minPrice), math.Ceil(maxPrice)},
		DepartureHours:     [2]int{0, 24},
		MaxDurationMinutes: maxDuration,
	}
}
