package booking

import (
	"context"
	"math/rand"
	"time"

	"github.com/Domenick1991/skypulse/internal/domain"
	"github.com/Domenick1991/skypulse/internal/kafka"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Wizard steps, in order. Confirmation is terminal and only reachable
// from the review step.
const (
	StepPassengers = 1
	StepContact    = 2
	StepPayment    = 3
	StepReview     = 4
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

var _ Producer = (*kafka.Producer)(nil)

// Wizard drives the four-step booking flow for one selected offer.
// It is a plain state container mutated from a single goroutine, per
// the event-driven model of the surrounding application.
type Wizard struct {
	flight domain.FlightOffer

	passengers []domain.Passenger
	contact    *domain.ContactInfo
	payment    *domain.PaymentInfo

	currentStep int
	completed   map[int]struct{}
	confirmed   bool

	confirmDelay time.Duration
	rng          *rand.Rand
	producer     Producer
	topic        string
}

type WizardOption func(*Wizard)

// WithConfirmDelay overrides the simulated payment-processing delay.
func WithConfirmDelay(d time.Duration) WizardOption {
	return func(w *Wizard) { w.confirmDelay = d }
}

// WithProducer publishes a confirmation event to the topic after a
// successful confirm. A nil producer disables publishing.
func WithProducer(p Producer, topic string) WizardOption {
	return func(w *Wizard) {
		w.producer = p
		w.topic = topic
	}
}

// WithRand injects the randomness source used for reference codes.
func WithRand(rng *rand.Rand) WizardOption {
	return func(w *Wizard) { w.rng = rng }
}

func NewWizard(flight domain.FlightOffer, opts ...WizardOption) *Wizard {
	w := &Wizard{
		flight:       flight,
		currentStep:  StepPassengers,
		completed:    make(map[int]struct{}),
		confirmDelay: 2 * time.Second,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Flight() domain.FlightOffer { return w.flight }
func (w *Wizard) CurrentStep() int           { return w.currentStep }
func (w *Wizard) Confirmed() bool            { return w.confirmed }

func (w *Wizard) IsStepComplete(step int) bool {
	_, ok := w.completed[step]
	return ok
}

// SetPassengers replaces the passenger list and re-evaluates the step
// predicate. Passengers without an id get one assigned.
func (w *Wizard) SetPassengers(passengers []domain.Passenger) {
	for i := range passengers {
		if passengers[i].ID == "" {
			passengers[i].ID = uuid.NewString()
		}
	}
	w.passengers = passengers
	if PassengersComplete(passengers) {
		w.MarkComplete(StepPassengers)
	}
}

func (w *Wizard) SetContact(contact domain.ContactInfo) {
	w.contact = &contact
	if ContactComplete(w.contact) {
		w.MarkComplete(StepContact)
	}
}

func (w *Wizard) SetPayment(payment domain.PaymentInfo) {
	w.payment = &payment
	if PaymentComplete(w.payment) {
		w.MarkComplete(StepPayment)
	}
}

func (w *Wizard) Passengers() []domain.Passenger { return w.passengers }
func (w *Wizard) Contact() *domain.ContactInfo   { return w.contact }
func (w *Wizard) Payment() *domain.PaymentInfo   { return w.payment }

// MarkComplete records the step as validated. Idempotent.
func (w *Wizard) MarkComplete(step int) {
	if step < StepPassengers || step > StepReview {
		return
	}
	w.completed[step] = struct{}{}
}

// Advance moves to the next step, gated on the current step being
// complete. A gated call leaves the wizard unchanged.
func (w *Wizard) Advance() error {
	if w.currentStep >= StepReview {
		return domain.ErrStepIncomplete
	}
	if !w.IsStepComplete(w.currentStep) {
		return domain.ErrStepIncomplete
	}
	w.currentStep++
	return nil
}

// Retreat moves one step back. Completed steps stay completed so the
// user can move back and forth without re-validating.
func (w *Wizard) Retreat() {
	if w.currentStep > StepPassengers {
		w.currentStep--
	}
}

// JumpTo moves directly to an already-completed step, forward or
// backward. A jump to an incomplete step is a no-op.
func (w *Wizard) JumpTo(step int) {
	if !w.IsStepComplete(step) {
		return
	}
	w.currentStep = step
}

// Confirm runs the simulated payment from the review step: a fixed
// delay, then a generated confirmation record echoing route, date and
// total. Prior data-collection steps must all be complete.
func (w *Wizard) Confirm(ctx context.Context) (*domain.Confirmation, error) {
	if w.confirmed {
		return nil, domain.ErrAlreadyConfirmed
	}
	if w.currentStep != StepReview {
		return nil, domain.ErrNotReviewStep
	}
	for step := StepPassengers; step <= StepPayment; step++ {
		if !w.IsStepComplete(step) {
			return nil, domain.ErrStepIncomplete
		}
	}

	if w.confirmDelay > 0 {
		timer := time.NewTimer(w.confirmDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	outbound := w.flight.Outbound()
	confirmation := &domain.Confirmation{
		Reference:  w.newReference(),
		TotalPrice: w.flight.Price.GrandTotal,
	}
	if len(outbound.Segments) > 0 {
		first := outbound.Segments[0]
		last := outbound.Segments[len(outbound.Segments)-1]
		confirmation.Origin = first.Departure.IATACode
		confirmation.Destination = last.Arrival.IATACode
		confirmation.DepartureDate = first.Departure.At
	}

	w.confirmed = true
	w.publish(ctx, confirmation)
	return confirmation, nil
}

// Reset clears all wizard state back to step one. Called when the
// wizard is dismissed, cancelled or completed alike.
func (w *Wizard) Reset() {
	w.passengers = nil
	w.contact = nil
	w.payment = nil
	w.currentStep = StepPassengers
	w.completed = make(map[int]struct{})
	w.confirmed = false
}

// newReference builds "SP" plus six random uppercase alphanumerics.
func (w *Wizard) newReference() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = referenceCharset[w.rng.Intn(len(referenceCharset))]
	}
	return "SP" + string(code)
}

func (w *Wizard) publish(ctx context.Context, c *domain.Confirmation) {
	if w.producer == nil || w.topic == "" {
		return
	}
	var email string
	if w.contact != nil {
		email = w.contact.Email
	}
	event := kafka.ConfirmationEvent{
		Reference:     c.Reference,
		Origin:        c.Origin,
		Destination:   c.Destination,
		DepartureDate: c.DepartureDate,
		TotalPrice:    c.TotalPrice,
		Email:         email,
		Passengers:    len(w.passengers),
		ConfirmedAt:   time.Now(),
	}
	if err := w.producer.Publish(ctx, w.topic, c.Reference, event); err != nil {
		logrus.WithError(err).WithField("reference", c.Reference).Warn("failed to publish confirmation event")
	}
}
