package search

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/skypulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCollaborator struct {
	mock.Mock
}

func (m *MockCollaborator) SearchFlights(ctx context.Context, params domain.SearchParams, useMock bool) (*domain.SearchResult, error) {
	args := m.Called(ctx, params, useMock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func (m *MockCollaborator) SearchAirports(ctx context.Context, keyword string, useMock bool) ([]domain.Airport, error) {
	args := m.Called(ctx, keyword, useMock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetSearch(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func (m *MockCache) SetSearch(ctx context.Context, params domain.SearchParams, result *domain.SearchResult) error {
	args := m.Called(ctx, params, result)
	return args.Error(0)
}

func (m *MockCache) GetAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCache) SetAirports(ctx context.Context, keyword string, airports []domain.Airport) error {
	args := m.Called(ctx, keyword, airports)
	return args.Error(0)
}

func searchParams() domain.SearchParams {
	return domain.SearchParams{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-02-15",
		Adults:        1,
		CabinClass:    domain.CabinEconomy,
		MaxResults:    100,
	}
}

func searchResult(prices ...string) *domain.SearchResult {
	flights := make([]domain.FlightOffer, len(prices))
	for i, p := range prices {
		flights[i] = domain.FlightOffer{
			ID: p,
			Itineraries: []domain.Itinerary{{
				Duration: "PT7H30M",
				Segments: []domain.Segment{{
					Departure: domain.FlightPoint{IATACode: "JFK", At: "2026-02-15T08:00:00"},
					Arrival:   domain.FlightPoint{IATACode: "LHR", At: "2026-02-15T20:30:00"},
				}},
			}},
			Price: domain.Price{Currency: "USD", Total: p, GrandTotal: p},
		}
	}
	return &domain.SearchResult{
		Flights:  flights,
		Carriers: map[string]string{"BA": "BRITISH AIRWAYS"},
	}
}

func TestSearch_ValidationErrors(t *testing.T) {
	service := NewSearchService(new(MockCollaborator), NewStore())

	cases := []struct {
		name     string
		mutate   func(*domain.SearchParams)
		expected error
	}{
		{"missing origin", func(p *domain.SearchParams) { p.Origin = "" }, domain.ErrMissingOrigin},
		{"missing destination", func(p *domain.SearchParams) { p.Destination = "" }, domain.ErrMissingDestination},
		{"missing departure date", func(p *domain.SearchParams) { p.DepartureDate = "" }, domain.ErrMissingDepartureDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := searchParams()
			tc.mutate(&params)

			_, err := service.Search(context.Background(), params, false)

			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestSearch_AppliesResultAndDerivesFilters(t *testing.T) {
	collaborator := new(MockCollaborator)
	collaborator.On("SearchFlights", mock.Anything, searchParams(), false).
		Return(searchResult("450.50", "299.99", "612.40"), nil)

	store := NewStore()
	service := NewSearchService(collaborator, store)

	result, err := service.Search(context.Background(), searchParams(), false)

	assert.NoError(t, err)
	assert.Len(t, result.Flights, 3)
	assert.Len(t, store.Flights(), 3)
	assert.Equal(t, "612.40", store.Flights()[2].ID)
	assert.Equal(t, map[string]string{"BA": "BRITISH AIRWAYS"}, store.Carriers())

	criteria := store.Criteria()
	assert.Equal(t, [2]float64{299, 613}, criteria.PriceRange)
	assert.Equal(t, [2]int{0, 24}, criteria.DepartureHours)
	assert.Equal(t, 450, criteria.MaxDurationMinutes)
	collaborator.AssertExpectations(t)
}

func TestSearch_NormalizesParams(t *testing.T) {
	params := searchParams()
	params.Adults = 0
	params.CabinClass = ""
	params.MaxResults = 0

	normalized := searchParams()
	normalized.MaxResults = 25

	collaborator := new(MockCollaborator)
	collaborator.On("SearchFlights", mock.Anything, normalized, false).
		Return(searchResult("450.00"), nil)

	service := NewSearchService(collaborator, NewStore(), WithMaxResults(25))

	_, err := service.Search(context.Background(), params, false)

	assert.NoError(t, err)
	collaborator.AssertExpectations(t)
}

func TestSearch_PropagatesCollaboratorError(t *testing.T) {
	upstream := &domain.UpstreamError{Status: 500, Message: "provider unavailable"}

	collaborator := new(MockCollaborator)
	collaborator.On("SearchFlights", mock.Anything, mock.Anything, false).Return(nil, upstream)

	store := NewStore()
	service := NewSearchService(collaborator, store)

	_, err := service.Search(context.Background(), searchParams(), false)

	var upstreamErr *domain.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.Empty(t, store.Flights())
}

func TestSearch_CacheHitSkipsCollaborator(t *testing.T) {
	cache := new(MockCache)
	cache.On("GetSearch", mock.Anything, searchParams()).Return(searchResult("450.00"), nil)

	collaborator := new(MockCollaborator)
	store := NewStore()
	service := NewSearchService(collaborator, store, WithCache(cache))

	result, err := service.Search(context.Background(), searchParams(), false)

	assert.NoError(t, err)
	assert.Len(t, result.Flights, 1)
	assert.Len(t, store.Flights(), 1)
	collaborator.AssertNotCalled(t, "SearchFlights", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestSearch_CacheMissStoresResult(t *testing.T) {
	cache := new(MockCache)
	cache.On("GetSearch", mock.Anything, searchParams()).Return(nil, nil)
	cache.On("SetSearch", mock.Anything, searchParams(), mock.Anything).Return(nil)

	collaborator := new(MockCollaborator)
	collaborator.On("SearchFlights", mock.Anything, searchParams(), false).
		Return(searchResult("450.00"), nil)

	service := NewSearchService(collaborator, NewStore(), WithCache(cache))

	_, err := service.Search(context.Background(), searchParams(), false)

	assert.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestSearch_MockModeBypassesCache(t *testing.T) {
	cache := new(MockCache)

	collaborator := new(MockCollaborator)
	collaborator.On("SearchFlights", mock.Anything, searchParams(), true).
		Return(searchResult("450.00"), nil)

	service := NewSearchService(collaborator, NewStore(), WithCache(cache))

	_, err := service.Search(context.Background(), searchParams(), true)

	assert.NoError(t, err)
	cache.AssertNotCalled(t, "GetSearch", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "SetSearch", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_StaleGenerationDiscarded(t *testing.T) {
	store := NewStore()

	first := store.Begin()
	second := store.Begin()

	assert.True(t, store.Apply(second, searchResult("300.00", "400.00")))
	assert.False(t, store.Apply(first, searchResult("999.00")))

	flights := store.Flights()
	assert.Len(t, flights, 2)
	assert.Equal(t, "300.00", flights[0].ID)
}

func TestStore_SetSortKeyRejectsInvalid(t *testing.T) {
	store := NewStore()

	store.SetSortKey(domain.SortDurationAsc)
	assert.Equal(t, domain.SortDurationAsc, store.SortKey())

	store.SetSortKey(domain.SortKey("bogus"))
	assert.Equal(t, domain.SortDurationAsc, store.SortKey())
}

func TestStore_ResetFiltersRestoresDerivedDefaults(t *testing.T) {
	store := NewStore()
	gen := store.Begin()
	assert.True(t, store.Apply(gen, searchResult("300.00", "400.00")))

	store.SetCriteria(domain.FilterCriteria{
		Stops:              []int{0},
		PriceRange:         [2]float64{0, 100},
		DepartureHours:     [2]int{6, 12},
		MaxDurationMinutes: 60,
	})
	assert.Empty(t, store.Processed())

	store.ResetFilters()

	criteria := store.Criteria()
	assert.Empty(t, criteria.Stops)
	assert.Equal(t, [2]float64{300, 400}, criteria.PriceRange)
	assert.Len(t, store.Processed(), 2)
}

func TestDerivedFilters_EmptyFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, domain.DefaultFilters(), DerivedFilters(nil))
}

func TestAirports_ShortKeywordShortCircuits(t *testing.T) {
	collaborator := new(MockCollaborator)
	service := NewSearchService(collaborator, NewStore())

	airports, err := service.Airports(context.Background(), "j", false)

	assert.NoError(t, err)
	assert.Empty(t, airports)
	collaborator.AssertNotCalled(t, "SearchAirports", mock.Anything, mock.Anything, mock.Anything)
}

func TestAirports_DelegatesAndCaches(t *testing.T) {
	found := []domain.Airport{{IATACode: "JFK", Name: "John F. Kennedy International Airport"}}

	cache := new(MockCache)
	cache.On("GetAirports", mock.Anything, "new york").Return(nil, nil)
	cache.On("SetAirports", mock.Anything, "new york", found).Return(nil)

	collaborator := new(MockCollaborator)
	collaborator.On("SearchAirports", mock.Anything, "new york", false).Return(found, nil)

	service := NewSearchService(collaborator, NewStore(), WithCache(cache))

	airports, err := service.Airports(context.Background(), "new york", false)

	assert.NoError(t, err)
	assert.Equal(t, found, airports)
	cache.AssertExpectations(t)
	collaborator.AssertExpectations(t)
}

func TestAirports_PropagatesNetworkError(t *testing.T) {
	collaborator := new(MockCollaborator)
	collaborator.On("SearchAirports", mock.Anything, "london", false).
		Return(nil, &domain.NetworkError{Err: errors.New("dial tcp: connection refused")})

	service := NewSearchService(collaborator, NewStore())

	_, err := service.Airports(context.Background(), "london", false)

	var networkErr *domain.NetworkError
	assert.ErrorAs(t, err, &networkErr)
}
