package domain

import (
	"regexp"
	"strconv"
	"time"
)

// FlightOffer is the normalized offer shape shared by the live Amadeus
// collaborator and the mock generator. Offers are treated as immutable
// once ingested.
type FlightOffer struct {
	ID                     string      `json:"id"`
	Source                 string      `json:"source"`
	OneWay                 bool        `json:"oneWay"`
	LastTicketingDate      string      `json:"lastTicketingDate"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats"`
	Itineraries            []Itinerary `json:"itineraries"`
	Price                  Price       `json:"price"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
}

// Itinerary is one directional trip, outbound or return.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single non-stop leg between two airports.
type Segment struct {
	Departure    FlightPoint `json:"departure"`
	Arrival      FlightPoint `json:"arrival"`
	CarrierCode  string      `json:"carrierCode"`
	Number       string      `json:"number"`
	Aircraft     Aircraft    `json:"aircraft"`
	Duration     string      `json:"duration"`
}

type FlightPoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
}

type Airport struct {
	IATACode    string `json:"iataCode"`
	Name        string `json:"name"`
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
}

// Stops returns the stop count of the itinerary: segments minus one.
func (i Itinerary) Stops() int {
	if len(i.Segments) == 0 {
		return 0
	}
	return len(i.Segments) - 1
}

// Outbound returns the first itinerary. The search collaborator always
// returns at least one.
func (f FlightOffer) Outbound() Itinerary {
	if len(f.Itineraries) == 0 {
		return Itinerary{}
	}
	return f.Itineraries[0]
}

// GrandTotal parses the grand-total price as a float. Malformed values
// come back as 0.
func (f FlightOffer) GrandTotal() float64 {
	v, err := strconv.ParseFloat(f.Price.GrandTotal, 64)
	if err != nil {
		return 0
	}
	return v
}

// MainCarrier returns the first validating airline code.
func (f FlightOffer) MainCarrier() string {
	if len(f.ValidatingAirlineCodes) == 0 {
		return ""
	}
	return f.ValidatingAirlineCodes[0]
}

// DepartureTime parses the outbound first segment departure timestamp.
// Timestamps from the collaborator are local and carry no zone.
func (f FlightOffer) DepartureTime() time.Time {
	out := f.Outbound()
	if len(out.Segments) == 0 {
		return time.Time{}
	}
	return ParseLocalTime(out.Segments[0].Departure.At)
}

const localTimeLayout = "2006-01-02T15:04:05"

// ParseLocalTime parses an Amadeus-style local timestamp, falling back
// to RFC3339 for mock data produced with a zone suffix.
func ParseLocalTime(s string) time.Time {
	if t, err := time.Parse(localTimeLayout, s); err == nil {
		return t
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)

// ParseDuration converts an ISO-8601 duration like "PT7H30M" to minutes.
// Unparseable input yields 0.
func ParseDuration(iso string) int {
	m := isoDurationRe.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

// FormatDuration renders minutes as "7h 30m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours == 0:
		return strconv.Itoa(mins) + "m"
	case mins == 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	}
}

// StopsLabel renders a stop count for display.
func StopsLabel(stops int) string {
	switch stops {
	case 0:
		return "Nonstop"
	case 1:
		return "1 stop"
	default:
		return strconv.Itoa(stops) + " stops"
	}
}
