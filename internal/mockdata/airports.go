package mockdata

import (
	"strings"

	"github.com/Domenick1991/skypulse/internal/domain"
)

var airports = []domain.Airport{
	{IATACode: "JFK", Name: "John F. Kennedy International Airport", CityName: "New York", CountryCode: "US", CountryName: "United States"},
	{IATACode: "LAX", Name: "Los Angeles International Airport", CityName: "Los Angeles", CountryCode: "US", CountryName: "United States"},
	{IATACode: "ORD", Name: "O'Hare International Airport", CityName: "Chicago", CountryCode: "US", CountryName: "United States"},
	{IATACode: "MIA", Name: "Miami International Airport", CityName: "Miami", CountryCode: "US", CountryName: "United States"},
	{IATACode: "SFO", Name: "San Francisco International Airport", CityName: "San Francisco", CountryCode: "US", CountryName: "United States"},
	{IATACode: "SEA", Name: "Seattle-Tacoma International Airport", CityName: "Seattle", CountryCode: "US", CountryName: "United States"},
	{IATACode: "BOS", Name: "Logan International Airport", CityName: "Boston", CountryCode: "US", CountryName: "United States"},
	{IATACode: "DFW", Name: "Dallas/Fort Worth International Airport", CityName: "Dallas", CountryCode: "US", CountryName: "United States"},
	{IATACode: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", CityName: "Atlanta", CountryCode: "US", CountryName: "United States"},
	{IATACode: "DEN", Name: "Denver International Airport", CityName: "Denver", CountryCode: "US", CountryName: "United States"},
	{IATACode: "LHR", Name: "Heathrow Airport", CityName: "London", CountryCode: "GB", CountryName: "United Kingdom"},
	{IATACode: "CDG", Name: "Charles de Gaulle Airport", CityName: "Paris", CountryCode: "FR", CountryName: "France"},
	{IATACode: "AMS", Name: "Amsterdam Airport Schiphol", CityName: "Amsterdam", CountryCode: "NL", CountryName: "Netherlands"},
	{IATACode: "FRA", Name: "Frankfurt Airport", CityName: "Frankfurt", CountryCode: "DE", CountryName: "Germany"},
	{IATACode: "MAD", Name: "Adolfo Suarez Madrid-Barajas Airport", CityName: "Madrid", CountryCode: "ES", CountryName: "Spain"},
	{IATACode: "BCN", Name: "Barcelona-El Prat Airport", CityName: "Barcelona", CountryCode: "ES", CountryName: "Spain"},
	{IATACode: "FCO", Name: "Leonardo da Vinci-Fiumicino Airport", CityName: "Rome", CountryCode: "IT", CountryName: "Italy"},
	{IATACode: "MUC", Name: "Munich Airport", CityName: "Munich", CountryCode: "DE", CountryName: "Germany"},
	{IATACode: "ZRH", Name: "Zurich Airport", CityName: "Zurich", CountryCode: "CH", CountryName: "Switzerland"},
	{IATACode: "VIE", Name: "Vienna International Airport", CityName: "Vienna", CountryCode: "AT", CountryName: "Austria"},
	{IATACode: "DXB", Name: "Dubai International Airport", CityName: "Dubai", CountryCode: "AE", CountryName: "United Arab Emirates"},
	{IATACode: "SIN", Name: "Singapore Changi Airport", CityName: "Singapore", CountryCode: "SG", CountryName: "Singapore"},
	{IATACode: "HKG", Name: "Hong Kong International Airport", CityName: "Hong Kong", CountryCode: "HK", CountryName: "Hong Kong"},
	{IATACode: "NRT", Name: "Narita International Airport", CityName: "Tokyo", CountryCode: "JP", CountryName: "Japan"},
	{IATACode: "ICN", Name: "Incheon International Airport", CityName: "Seoul", CountryCode: "KR", CountryName: "South Korea"},
	{IATACode: "BKK", Name: "Suvarnabhumi Airport", CityName: "Bangkok", CountryCode: "TH", CountryName: "Thailand"},
	{IATACode: "DEL", Name: "Indira Gandhi International Airport", CityName: "Delhi", CountryCode: "IN", CountryName: "India"},
	{IATACode: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", CityName: "Mumbai", CountryCode: "IN", CountryName: "India"},
	{IATACode: "PEK", Name: "Beijing Capital International Airport", CityName: "Beijing", CountryCode: "CN", CountryName: "China"},
	{IATACode: "PVG", Name: "Shanghai Pudong International Airport", CityName: "Shanghai", CountryCode: "CN", CountryName: "China"},
	{IATACode: "SYD", Name: "Sydney Kingsford Smith Airport", CityName: "Sydney", CountryCode: "AU", CountryName: "Australia"},
	{IATACode: "MEL", Name: "Melbourne Airport", CityName: "Melbourne", CountryCode: "AU", CountryName: "Australia"},
	{IATACode: "YYZ", Name: "Toronto Pearson International Airport", CityName: "Toronto", CountryCode: "CA", CountryName: "Canada"},
	{IATACode: "YVR", Name: "Vancouver International Airport", CityName: "Vancouver", CountryCode: "CA", CountryName: "Canada"},
	{IATACode: "GRU", Name: "Sao Paulo/Guarulhos International Airport", CityName: "Sao Paulo", CountryCode: "BR", CountryName: "Brazil"},
}

// SearchAirports matches the keyword against code, name, city and
// country, case-insensitively.
func SearchAirports(keyword string) []domain.Airport {
	needle := strings.ToLower(keyword)
	var matches []domain.Airport
	for _, a := range airports {
		if strings.Contains(strings.ToLower(a.IATACode), needle) ||
			strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.CityName), needle) ||
			strings.Contains(strings.ToLower(a.CountryName), needle) {
			matches = append(matches, a)
		}
	}
	return matches
}
