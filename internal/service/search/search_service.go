package search

import (
	"context"

	"github.com/Domenick1991/skypulse/internal/domain"
	"github.com/sirupsen/logrus"
)

const minKeywordLength = 2

type SearchUseCase interface {
	Search(ctx context.Context, params domain.SearchParams, useMock bool) (*domain.SearchResult, error)
	Airports(ctx context.Context, keyword string, useMock bool) ([]domain.Airport, error)
}

// Collaborator is the external flight aggregator boundary.
type Collaborator interface {
	SearchFlights(ctx context.Context, params domain.SearchParams, useMock bool) (*domain.SearchResult, error)
	SearchAirports(ctx context.Context, keyword string, useMock bool) ([]domain.Airport, error)
}

type Cache interface {
	GetSearch(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error)
	SetSearch(ctx context.Context, params domain.SearchParams, result *domain.SearchResult) error
	GetAirports(ctx context.Context, keyword string) ([]domain.Airport, error)
	SetAirports(ctx context.Context, keyword string, airports []domain.Airport) error
}

type SearchService struct {
	collaborator Collaborator
	cache        Cache
	store        *Store
	maxResults   int
}

type SearchServiceOption func(*SearchService)

func WithCache(cache Cache) SearchServiceOption {
	return func(s *SearchService) { s.cache = cache }
}

func WithMaxResults(max int) SearchServiceOption {
	return func(s *SearchService) { s.maxResults = max }
}

func NewSearchService(collaborator Collaborator, store *Store, opts ...SearchServiceOption) *SearchService {
	service := &SearchService{
		collaborator: collaborator,
		store:        store,
		maxResults:   100,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *SearchService) Store() *Store { return s.store }

// Search validates the parameters, queries the collaborator and, when
// the response is still current, replaces the held flight list and
// resets the filters to data-derived defaults.
func (s *SearchService) Search(ctx context.Context, params domain.SearchParams, useMock bool) (*domain.SearchResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	params = s.normalize(params)

	if s.cache != nil && !useMock {
		if cached, err := s.cache.GetSearch(ctx, params); err == nil && cached != nil {
			s.store.Apply(s.store.Begin(), cached)
			return cached, nil
		}
	}

	generation := s.store.Begin()
	result, err := s.collaborator.SearchFlights(ctx, params, useMock)
	if err != nil {
		return nil, err
	}

	if !s.store.Apply(generation, result) {
		logrus.WithFields(logrus.Fields{
			"origin":      params.Origin,
			"destination": params.Destination,
		}).Debug("discarding stale search response")
		return result, nil
	}

	if s.cache != nil && !useMock {
		_ = s.cache.SetSearch(ctx, params, result)
	}
	return result, nil
}

// Airports looks up airports by keyword. Keywords shorter than two
// runes short-circuit to an empty list.
func (s *SearchService) Airports(ctx context.Context, keyword string, useMock bool) ([]domain.Airport, error) {
	if len([]rune(keyword)) < minKeywordLength {
		return []domain.Airport{}, nil
	}

	if s.cache != nil && !useMock {
		if cached, err := s.cache.GetAirports(ctx, keyword); err == nil && cached != nil {
			return cached, nil
		}
	}

	airports, err := s.collaborator.SearchAirports(ctx, keyword, useMock)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && !useMock {
		_ = s.cache.SetAirports(ctx, keyword, airports)
	}
	return airports, nil
}

func validateParams(params domain.SearchParams) error {
	switch {
	case params.Origin == "":
		return &domain.ValidationError{Err: domain.ErrMissingOrigin}
	case params.Destination == "":
		return &domain.ValidationError{Err: domain.ErrMissingDestination}
	case params.DepartureDate == "":
		return &domain.ValidationError{Err: domain.ErrMissingDepartureDate}
	}
	return nil
}

func (s *SearchService) normalize(params domain.SearchParams) domain.SearchParams {
	if params.Adults <= 0 {
		params.Adults = 1
	}
	if params.CabinClass == "" {
		params.CabinClass = domain.CabinEconomy
	}
	if params.MaxResults <= 0 || params.MaxResults > s.maxResults {
		params.MaxResults = s.maxResults
	}
	return params
}

var _ SearchUseCase = (*SearchService)(nil)
