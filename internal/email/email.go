package email

import (
	"context"

	"github.com/Domenick1991/skypulse/internal/kafka"
	"github.com/sirupsen/logrus"
)

// Sender echoes booking-confirmation emails. There is no real mail
// backend; booking is simulated end to end.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ConfirmationEvent) error {
	logrus.WithFields(logrus.Fields{
		"to":        event.Email,
		"reference": event.Reference,
		"route":     event.Origin + "-" + event.Destination,
		"total":     event.TotalPrice,
	}).Info("send booking confirmation email")
	return nil
}
