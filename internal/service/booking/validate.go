package booking

import (
	"strings"

	"github.com/Domenick1991/skypulse/internal/domain"
)

// Step validation predicates. Pure, callable independently of any
// transport; the wizard re-runs them whenever step data changes.

// PassengersComplete requires at least one passenger and non-empty
// name, date of birth and nationality on every record.
func PassengersComplete(passengers []domain.Passenger) bool {
	if len(passengers) == 0 {
		return false
	}
	for _, p := range passengers {
		if p.FirstName == "" || p.LastName == "" || p.DateOfBirth == "" || p.Nationality == "" {
			return false
		}
	}
	return true
}

// ContactComplete requires an email containing "@" and a non-empty
// phone number.
func ContactComplete(contact *domain.ContactInfo) bool {
	if contact == nil {
		return false
	}
	return strings.Contains(contact.Email, "@") && contact.Phone != ""
}

// PaymentComplete requires a 16-digit card number (spaces ignored), a
// cardholder name, 2-digit expiry month and year and a 3-digit CVV.
func PaymentComplete(payment *domain.PaymentInfo) bool {
	if payment == nil {
		return false
	}
	card := strings.ReplaceAll(payment.CardNumber, " ", "")
	return allDigits(card) && len(card) == 16 &&
		payment.CardHolder != "" &&
		allDigits(payment.ExpiryMonth) && len(payment.ExpiryMonth) == 2 &&
		allDigits(payment.ExpiryYear) && len(payment.ExpiryYear) == 2 &&
		allDigits(payment.CVV) && len(payment.CVV) == 3
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
