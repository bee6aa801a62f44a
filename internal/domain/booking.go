package domain

type PassengerType string

const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

type Passenger struct {
	ID             string        `json:"id"`
	Type           PassengerType `json:"type"`
	Title          string        `json:"title"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	DateOfBirth    string        `json:"dateOfBirth"`
	Nationality    string        `json:"nationality"`
	PassportNumber string        `json:"passportNumber,omitempty"`
	PassportExpiry string        `json:"passportExpiry,omitempty"`
}

type ContactInfo struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
}

type PaymentInfo struct {
	CardNumber  string `json:"cardNumber"`
	CardHolder  string `json:"cardHolder"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`
}

// Confirmation is the record produced by the simulated payment step.
type Confirmation struct {
	Reference     string `json:"reference"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	TotalPrice    string `json:"totalPrice"`
}
