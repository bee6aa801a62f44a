package mockdata

import (
	"math/rand"
	"testing"

	"github.com/Domenick1991/skypulse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateFlights_CountAndShape(t *testing.T) {
	generator := NewGenerator(rand.New(rand.NewSource(7)))
	params := domain.SearchParams{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-02-15",
		Adults:        1,
	}

	result := generator.GenerateFlights(params)

	assert.GreaterOrEqual(t, len(result.Flights), 20)
	assert.LessOrEqual(t, len(result.Flights), 49)
	assert.Len(t, result.Carriers, 9)

	for _, f := range result.Flights {
		assert.Equal(t, "MOCK", f.Source)
		assert.True(t, f.OneWay)
		assert.Len(t, f.Itineraries, 1)

		segments := f.Outbound().Segments
		assert.NotEmpty(t, segments)
		assert.Equal(t, "JFK", segments[0].Departure.IATACode)
		assert.Equal(t, "LHR", segments[len(segments)-1].Arrival.IATACode)
		assert.LessOrEqual(t, f.Outbound().Stops(), 2)

		assert.Greater(t, f.GrandTotal(), 0.0)
		assert.Equal(t, "USD", f.Price.Currency)
		assert.Greater(t, domain.ParseDuration(f.Outbound().Duration), 0)

		_, ok := result.Carriers[f.MainCarrier()]
		assert.True(t, ok, "carrier %s missing from dictionary", f.MainCarrier())
	}
}

func TestGenerateFlights_RoundTripAddsReturnItinerary(t *testing.T) {
	generator := NewGenerator(rand.New(rand.NewSource(7)))
	params := domain.SearchParams{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-02-15",
		ReturnDate:    "2026-02-22",
	}

	result := generator.GenerateFlights(params)

	for _, f := range result.Flights {
		assert.False(t, f.OneWay)
		assert.Len(t, f.Itineraries, 2)

		ret := f.Itineraries[1].Segments
		assert.Equal(t, "LHR", ret[0].Departure.IATACode)
		assert.Equal(t, "JFK", ret[len(ret)-1].Arrival.IATACode)
	}
}

func TestGenerateFlights_SeededRunsAreDeterministic(t *testing.T) {
	params := domain.SearchParams{
		Origin:        "SFO",
		Destination:   "NRT",
		DepartureDate: "2026-03-01",
	}

	first := NewGenerator(rand.New(rand.NewSource(99))).GenerateFlights(params)
	second := NewGenerator(rand.New(rand.NewSource(99))).GenerateFlights(params)

	assert.Equal(t, first, second)
}

func TestSearchAirports(t *testing.T) {
	byCode := SearchAirports("jfk")
	assert.Len(t, byCode, 1)
	assert.Equal(t, "JFK", byCode[0].IATACode)

	byCity := SearchAirports("London")
	assert.Len(t, byCity, 1)
	assert.Equal(t, "LHR", byCity[0].IATACode)

	byCountry := SearchAirports("japan")
	assert.Len(t, byCountry, 1)
	assert.Equal(t, "NRT", byCountry[0].IATACode)

	assert.Empty(t, SearchAirports("atlantis"))
}

func TestSearchAirports_SubstringAcrossFields(t *testing.T) {
	matches := SearchAirports("international")
	assert.NotEmpty(t, matches)
	for _, a := range matches {
		assert.Contains(t, a.Name, "International")
	}
}
