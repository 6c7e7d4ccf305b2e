package checkout

import (
	"context"
	"sync"
	"time"

	"boleteria/internal/venueapi"
)

type State string

const (
	StateForm    State = "form"
	StatePayment State = "payment"
	StateSuccess State = "success"
	StateClosed  State = "closed"
)

// Session is one purchase attempt: created when the storefront opens the
// purchase modal, discarded when it closes or succeeds. It is the only owner
// of the buyer draft, the applied coupon, the order snapshot and the payment
// preference handle; closing drops all four.
type Session struct {
	mu sync.Mutex

	id         string
	eventID    string
	eventTitle string
	unitPrice  float64
	userID     *string

	state      State
	form       *Form
	coupon     *venueapi.Coupon
	order      *venueapi.Order
	preference *venueapi.PaymentPreference

	notice     string
	checking   bool
	submitting bool

	pollCancel context.CancelFunc

	createdAt time.Time
	touchedAt time.Time
}

// View is the session snapshot handlers serialize back to the storefront.
type View struct {
	ID              string                       `json:"id"`
	State           State                        `json:"state"`
	EventID         string                       `json:"eventId"`
	EventTitle      string                       `json:"eventTitle"`
	Buyer           Form                         `json:"buyer"`
	Quote           Quote                        `json:"quote"`
	Coupon          *venueapi.Coupon             `json:"coupon,omitempty"`
	Order           *venueapi.Order              `json:"order,omitempty"`
	Preference      *venueapi.PaymentPreference  `json:"preference,omitempty"`
	RedirectURL     string                       `json:"redirectUrl,omitempty"`
	Error           string                       `json:"error,omitempty"`
	CheckingPayment bool                         `json:"checkingPayment"`
}

func newSession(id, eventID, eventTitle string, unitPrice float64, userID *string) *Session {
	now := time.Now()
	return &Session{
		id:         id,
		eventID:    eventID,
		eventTitle: eventTitle,
		unitPrice:  unitPrice,
		userID:     userID,
		state:      StateForm,
		form:       NewForm(),
		createdAt:  now,
		touchedAt:  now,
	}
}

func (s *Session) view() View {
	buyer := *s.form
	buyer.FieldErrors = make(map[string]string, len(s.form.FieldErrors))
	for field, msg := range s.form.FieldErrors {
		buyer.FieldErrors[field] = msg
	}
	return View{
		ID:              s.id,
		State:           s.state,
		EventID:         s.eventID,
		EventTitle:      s.eventTitle,
		Buyer:           buyer,
		Quote:           NewQuote(s.unitPrice, s.form.Quantity, s.coupon),
		Coupon:          s.coupon,
		Order:           s.order,
		Preference:      s.preference,
		Error:           s.notice,
		CheckingPayment: s.checking,
	}
}

// View returns a consistent snapshot under the session lock.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) touch() {
	s.touchedAt = time.Now()
}

// beginPayment moves form -> payment. The order snapshot and the preference
// handle exist if and only if the session has passed the form phase.
func (s *Session) beginPayment(order venueapi.Order, pref venueapi.PaymentPreference) {
	s.order = &order
	s.preference = &pref
	s.state = StatePayment
	s.notice = ""
	s.submitting = false
}

func (s *Session) succeed() {
	if s.state != StatePayment {
		return
	}
	s.state = StateSuccess
	s.notice = ""
	s.checking = false
	s.stopPolling()
}

// close tears the session down from any state: buyer draft, coupon, order
// and preference are all discarded and any running poller is cancelled.
func (s *Session) close() {
	s.stopPolling()
	s.form.Reset()
	s.coupon = nil
	s.order = nil
	s.preference = nil
	s.notice = ""
	s.checking = false
	s.submitting = false
	s.state = StateClosed
}

func (s *Session) stopPolling() {
	if s.pollCancel != nil {
		s.pollCancel()
		s.pollCancel = nil
	}
}
