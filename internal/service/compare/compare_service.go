package compare

import "github.com/Domenick1991/skypulse/internal/domain"

// MaxFlights caps the comparison set.
const MaxFlights = 3

// Set is an ordered comparison set of up to three offers, unique by id.
// The zero value is ready to use.
type Set struct {
	flights []domain.FlightOffer
}

// BestValues holds the per-attribute minima used for highlighting.
type BestValues struct {
	BestPrice           float64 `json:"bestPrice"`
	BestDurationMinutes int     `json:"bestDurationMinutes"`
	BestStops           int     `json:"bestStops"`
}

// Add appends the offer. Silently a no-op when the set is full or the
// id is already present.
func (s *Set) Add(f domain.FlightOffer) {
	if len(s.flights) >= MaxFlights {
		return
	}
	for _, existing := range s.flights {
		if existing.ID == f.ID {
			return
		}
	}
	s.flights = append(s.flights, f)
}

// Remove drops the offer with the given id, no-op when absent.
func (s *Set) Remove(id string) {
	for i, f := range s.flights {
		if f.ID == id {
			s.flights = append(s.flights[:i], s.flights[i+1:]...)
			return
		}
	}
}

func (s *Set) Clear() {
	s.flights = nil
}

func (s *Set) Len() int {
	return len(s.flights)
}

// Flights returns a copy of the members in insertion order.
func (s *Set) Flights() []domain.FlightOffer {
	out := make([]domain.FlightOffer, len(s.flights))
	copy(out, s.flights)
	return out
}

// BestValues computes the minimum price, outbound duration and stop
// count across the members. The caller must guard against an empty
// set; the comparison view is only shown with two or more members.
func (s *Set) BestValues() BestValues {
	best := BestValues{}
	for i, f := range s.flights {
		price := f.GrandTotal()
		duration := domain.ParseDuration(f.Outbound().Duration)
		stops := f.Outbound().Stops()
		if i == 0 || price < best.BestPrice {
			best.BestPrice = price
		}
		if i == 0 || duration < best.BestDurationMinutes {
			best.BestDurationMinutes = duration
		}
		if i == 0 || stops < best.BestStops {
			best.BestStops = stops
		}
	}
	return best
}
