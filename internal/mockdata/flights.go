package mockdata

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/Domenick1991/skypulse/internal/domain"
)

type airline struct {
	code string
	name string
}

var airlines = []airline{
	{"AA", "American Airlines"},
	{"DL", "Delta Air Lines"},
	{"UA", "United Airlines"},
	{"BA", "British Airways"},
	{"LH", "Lufthansa"},
	{"AF", "Air France"},
	{"EK", "Emirates"},
	{"SQ", "Singapore Airlines"},
	{"QR", "Qatar Airways"},
}

var layoverAirports = []string{"ORD", "DFW", "ATL", "LHR", "CDG", "AMS", "DXB"}

// Generator produces synthetic flight offers with the same shape the
// live collaborator returns. The randomness source is injectable so
// tests get deterministic output.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// GenerateFlights builds 20-50 random offers for the requested route
// plus the carriers dictionary covering every airline in the table.
func (g *Generator) GenerateFlights(params domain.SearchParams) *domain.SearchResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := 20 + g.rng.Intn(30)
	flights := make([]domain.FlightOffer, 0, count)
	for i := 0; i < count; i++ {
		flights = append(flights, g.randomOffer(params, i))
	}

	carriers := make(map[string]string, len(airlines))
	for _, a := range airlines {
		carriers[a.code] = a.name
	}

	return &domain.SearchResult{Flights: flights, Carriers: carriers}
}

func (g *Generator) randomOffer(params domain.SearchParams, index int) domain.FlightOffer {
	carrier := airlines[g.rng.Intn(len(airlines))]

	stops := 2
	if r := g.rng.Float64(); r > 0.6 {
		stops = 0
	} else if g.rng.Float64() > 0.5 {
		stops = 1
	}

	basePrice := 200 + g.rng.Float64()*800
	durationMinutes := 180 + g.rng.Intn(600)
	total := fmt.Sprintf("%.2f", basePrice*float64(stops+1)*0.8)
	base := fmt.Sprintf("%.2f", basePrice*float64(stops+1)*0.7)

	itineraries := []domain.Itinerary{{
		Duration: isoDuration(durationMinutes),
		Segments: g.segments(params.Origin, params.Destination, params.DepartureDate, stops, carrier.code, durationMinutes),
	}}
	if params.ReturnDate != "" {
		itineraries = append(itineraries, domain.Itinerary{
			Duration: isoDuration(durationMinutes),
			Segments: g.segments(params.Destination, params.Origin, params.ReturnDate, stops, carrier.code, durationMinutes),
		})
	}

	return domain.FlightOffer{
		ID:                     fmt.Sprintf("flight-%d", index),
		Source:                 "MOCK",
		OneWay:                 params.ReturnDate == "",
		LastTicketingDate:      params.DepartureDate,
		NumberOfBookableSeats:  1 + g.rng.Intn(9),
		Itineraries:            itineraries,
		Price: domain.Price{
			Currency:   "USD",
			Total:      total,
			Base:       base,
			GrandTotal: total,
		},
		ValidatingAirlineCodes: []string{carrier.code},
	}
}

func (g *Generator) segments(origin, destination, date string, stops int, carrierCode string, totalMinutes int) []domain.Segment {
	segments := make([]domain.Segment, 0, stops+1)
	segmentMinutes := totalMinutes / (stops + 1)

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		day = time.Now().AddDate(0, 0, 7)
	}

	current := origin
	for i := 0; i <= stops; i++ {
		next := destination
		if i < stops {
			next = layoverAirports[g.rng.Intn(len(layoverAirports))]
		}

		departure := day.Add(time.Duration(6+i*4)*time.Hour + time.Duration(g.rng.Intn(60))*time.Minute)
		arrival := departure.Add(time.Duration(segmentMinutes) * time.Minute)

		segments = append(segments, domain.Segment{
			Departure:   domain.FlightPoint{IATACode: current, At: departure.Format("2006-01-02T15:04:05")},
			Arrival:     domain.FlightPoint{IATACode: next, At: arrival.Format("2006-01-02T15:04:05")},
			CarrierCode: carrierCode,
			Number:      strconv.Itoa(100 + g.rng.Intn(9000)),
			Aircraft:    domain.Aircraft{Code: "320"},
			Duration:    isoDuration(segmentMinutes),
		})
		current = next
	}
	return segments
}

func isoDuration(minutes int) string {
	return fmt.Sprintf("PT%dH%dM", minutes/60, minutes%60)
}
