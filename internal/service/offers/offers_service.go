package offers

import (
	"sort"

	"github.com/Domenick1991/skypulse/internal/domain"
)

// Process filters flights by the criteria conjunction and sorts the
// survivors by the chosen key. The input slice is never mutated; the
// result is always a subset of the input.
func Process(flights []domain.FlightOffer, criteria domain.FilterCriteria, key domain.SortKey) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(flights))
	for _, f := range flights {
		if Matches(f, criteria) {
			result = append(result, f)
		}
	}
	sortOffers(result, key)
	return result
}

// Matches reports whether the offer passes all five filter predicates.
// Predicates short-circuit in precedence order; any failure excludes
// the offer.
func Matches(f domain.FlightOffer, criteria domain.FilterCriteria) bool {
	outbound := f.Outbound()

	if len(criteria.Stops) > 0 {
		bucket := outbound.Stops()
		if bucket >= 2 {
			bucket = 2
		}
		if !containsInt(criteria.Stops, bucket) {
			return false
		}
	}

	price := f.GrandTotal()
	if price < criteria.PriceRange[0] || price > criteria.PriceRange[1] {
		return false
	}

	if len(criteria.Airlines) > 0 && !containsString(criteria.Airlines, f.MainCarrier()) {
		return false
	}

	hour := f.DepartureTime().Hour()
	if hour < criteria.DepartureHours[0] || hour > criteria.DepartureHours[1] {
		return false
	}

	if criteria.MaxDurationMinutes > 0 && domain.ParseDuration(outbound.Duration) > criteria.MaxDurationMinutes {
		return false
	}

	return true
}

// sortOffers orders in place by a single key. Stable sort keeps the
// upstream order for equal values.
func sortOffers(flights []domain.FlightOffer, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].GrandTotal() < flights[j].GrandTotal()
		})
	case domain.SortPriceDesc:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].GrandTotal() > flights[j].GrandTotal()
		})
	case domain.SortDurationAsc:
		sort.SliceStable(flights, func(i, j int) bool {
			return domain.ParseDuration(flights[i].Outbound().Duration) < domain.ParseDuration(flights[j].Outbound().Duration)
		})
	case domain.SortDepartureAsc:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].DepartureTime().Before(flights[j].DepartureTime())
		})
	case domain.SortDepartureDesc:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[j].DepartureTime().Before(flights[i].DepartureTime())
		})
	}
}

// CheapestID returns the id of the lowest grand-total offer in the
// processed set, or "" when the set is empty.
func CheapestID(flights []domain.FlightOffer) string {
	if len(flights) == 0 {
		return ""
	}
	best := flights[0]
	for _, f := range flights[1:] {
		if f.GrandTotal() < best.GrandTotal() {
			best = f
		}
	}
	return best.ID
}

// FastestID returns the id of the shortest outbound offer in the
// processed set, or "" when the set is empty.
func FastestID(flights []domain.FlightOffer) string {
	if len(flights) == 0 {
		return ""
	}
	best := flights[0]
	for _, f := range flights[1:] {
		if domain.ParseDuration(f.Outbound().Duration) < domain.ParseDuration(best.Outbound().Duration) {
			best = f
		}
	}
	return best.ID
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
