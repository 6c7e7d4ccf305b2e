package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"boleteria/internal/venueapi"
)

var (
	ErrWrongState     = errors.New("operation not valid in current session state")
	ErrSubmitInFlight = errors.New("submit already in progress for this session")
)

// User-facing messages, kept in the storefront's language.
const (
	msgFormInvalid      = "Por favor corrige los errores y asegúrate de seleccionar al menos una entrada."
	msgSubmitFailed     = "Error al procesar la compra. Intenta nuevamente."
	msgCouponInvalid    = "Cupón inválido."
	msgPaymentRejected  = "El pago fue rechazado o falló. Intenta nuevamente."
	msgPaymentFailed    = "Error al procesar el pago. Intenta nuevamente."
	msgWidgetError      = "Hubo un error con el formulario de pago. Por favor, inténtalo de nuevo."
	msgPaymentCancelled = "El pago fue cancelado o rechazado."
	msgAwaitingWallet   = "Completa el pago en la ventana de MercadoPago que se abrió. Verificando estado..."
	msgPollTimeout      = "Tiempo de verificación agotado. Verifica manualmente el estado del pago."
	msgVerifyFailed     = "Error al verificar el estado. Inténtalo nuevamente."
)

// Checkout drives the purchase flow: collect buyer data, create the backend
// records (tickets, then order, then payment preference), hand off to the
// payment widget, and confirm the outcome either directly or by polling.
type Checkout struct {
	api         *venueapi.Client
	store       *Store
	poller      *Poller
	redirectURL string
	logger      *slog.Logger
}

func New(api *venueapi.Client, redirectURL string, logger *slog.Logger) *Checkout {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checkout{
		api:         api,
		store:       NewStore(0),
		poller:      NewPoller(api, logger),
		redirectURL: strings.TrimRight(redirectURL, "?"),
		logger:      logger,
	}
}

// Start opens a purchase session for an event. The event is fetched up front
// so the session carries the unit price and title for quoting and the
// payment description.
func (c *Checkout) Start(ctx context.Context, eventID string, userID *string) (View, error) {
	event, err := c.api.GetEvent(ctx, eventID)
	if err != nil {
		return View{}, fmt.Errorf("load event %s: %w", eventID, err)
	}
	sess := c.store.Create(event.ID, event.Title, event.Price, userID)
	return sess.View(), nil
}

func (c *Checkout) Get(sessionID string) (View, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	return sess.View(), nil
}

// SetBuyerField updates one buyer field with field-scoped validation. Only
// meaningful in the form phase.
func (c *Checkout) SetBuyerField(sessionID, field, value string) (View, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != StateForm {
		return sess.view(), ErrWrongState
	}
	sess.form.SetField(field, value)
	sess.touch()
	return sess.view(), nil
}

func (c *Checkout) SetQuantity(sessionID string, quantity int) (View, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != StateForm {
		return sess.view(), ErrWrongState
	}
	sess.form.SetQuantity(quantity)
	sess.touch()
	return sess.view(), nil
}

// ApplyCoupon validates a code against the event. On success the previous
// coupon is replaced wholesale; on failure it is left untouched and the
// upstream message (when the API sent one) is surfaced.
func (c *Checkout) ApplyCoupon(ctx context.Context, sessionID, code string) (View, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	code = strings.ToUpper(strings.TrimSpace(code))

	coupon, apiErr := c.api.ValidateCoupon(ctx, code, sess.eventID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state == StateClosed {
		return sess.view(), ErrWrongState
	}
	sess.touch()
	if apiErr != nil {
		c.logger.Warn("coupon_rejected", "session_id", sessionID, "code", code, "error", apiErr)
		sess.notice = venueapi.UserMessage(apiErr, msgCouponInvalid)
		return sess.view(), nil
	}
	sess.coupon = &coupon
	sess.notice = ""
	return sess.view(), nil
}

// RemoveCoupon clears the applied coupon. Purely local, no network call.
func (c *Checkout) RemoveCoupon(sessionID string) (View, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.coupon = nil
	sess.touch()
	return sess.view(), nil
}

// Submit advances form -> payment. In strict sequence: one ticket per unit
// of quantity, then the order referencing every ticket, then the payment
// preference for the order total. Any failure keeps the session in the form
// phase with the error surfaced; tickets already created are not rolled
// back (the venue API offers no compensation call). Only one submit may be
// in flight per session; a second concurrent submit gets ErrSubmitInFlight.
func (c *Checkout) Submit(ctx context.Context, sessionID string) (View, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	if sess.state != StateForm {
		defer sess.mu.Unlock()
		return sess.view(), ErrWrongState
	}
	if sess.submitting {
		defer sess.mu.Unlock()
		return sess.view(), ErrSubmitInFlight
	}
	if !sess.form.Validate() || sess.form.Quantity < 1 {
		sess.notice = msgFormInvalid
		defer sess.mu.Unlock()
		return sess.view(), nil
	}
	sess.submitting = true
	sess.notice = ""
	form := *sess.form
	eventID := sess.eventID
	unitPrice := sess.unitPrice
	userID := sess.userID
	sess.mu.Unlock()

	ticketIDs := make([]int64, 0, form.Quantity)
	for i := 0; i < form.Quantity; i++ {
		ticket, err := c.api.CreateTicket(ctx, venueapi.CreateTicketRequest{
			EventID:       eventID,
			BuyerName:     form.BuyerName,
			BuyerLastName: form.BuyerLastName,
			BuyerEmail:    form.BuyerEmail,
			BuyerPhone:    form.Phone(),
			BuyerDNI:      form.BuyerDNI,
		})
		if err != nil {
			c.logger.Error("ticket_create_failed", "session_id", sessionID, "created", len(ticketIDs), "error", err)
			return c.failSubmit(sess, err)
		}
		ticketIDs = append(ticketIDs, ticket.ID)
	}

	order, err := c.api.CreateOrder(ctx, venueapi.CreateOrderRequest{
		UserID:    userID,
		TicketIDs: ticketIDs,
	})
	if err != nil {
		c.logger.Error("order_create_failed", "session_id", sessionID, "tickets", len(ticketIDs), "error", err)
		return c.failSubmit(sess, err)
	}

	pref, err := c.api.CreatePaymentPreference(ctx, venueapi.PreferenceRequest{
		OrderID:       order.ID,
		Amount:        PreferenceAmount(unitPrice, form.Quantity),
		BuyerName:     form.BuyerName,
		BuyerLastName: form.BuyerLastName,
		BuyerEmail:    form.BuyerEmail,
		BuyerPhone:    form.BuyerPhone,
		BuyerDNI:      form.BuyerDNI,
	})
	if err != nil {
		c.logger.Error("preference_create_failed", "session_id", sessionID, "order_id", order.ID, "error", err)
		return c.failSubmit(sess, err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != StateForm {
		return sess.view(), ErrWrongState
	}
	sess.beginPayment(order, pref)
	sess.touch()
	c.logger.Info("checkout_order_created", "session_id", sessionID, "order_id", order.ID, "tickets", len(ticketIDs))
	return sess.view(), nil
}

func (c *Checkout) failSubmit(sess *Session, err error) (View, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.submitting = false
	sess.notice = venueapi.UserMessage(err, msgSubmitFailed)
	return sess.view(), nil
}

// WidgetSubmission is what the payment widget posts from the browser. The
// paymentType discriminator chooses redirect or direct handling; FormData is
// absent for wallet-style methods and that is not an error.
type WidgetSubmission struct {
	PaymentType string          `json:"paymentType"`
	FormData    *WidgetFormData `json:"formData"`
}

type WidgetFormData struct {
	Token             string       `json:"token"`
	PaymentMethodID   string       `json:"payment_method_id"`
	IssuerID          string       `json:"issuer_id"`
	Installments      int          `json:"installments"`
	TransactionAmount float64      `json:"transaction_amount"`
	Payer             *WidgetPayer `json:"payer"`
}

type WidgetPayer struct {
	Email          string                        `json:"email"`
	Identification *venueapi.BrickIdentification `json:"identification"`
}

const walletPaymentType = "wallet_purchase"

// SubmitPayment handles the widget's submit callback in the payment phase.
func (c *Checkout) SubmitPayment(ctx context.Context, sessionID string, in WidgetSubmission) (View, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	if sess.state != StatePayment || sess.order == nil || sess.preference == nil {
		defer sess.mu.Unlock()
		return sess.view(), ErrWrongState
	}
	orderID := sess.order.ID
	preferenceID := sess.preference.PreferenceID
	eventTitle := sess.eventTitle
	unitPrice := sess.unitPrice
	form := *sess.form
	sess.mu.Unlock()

	if in.PaymentType == walletPaymentType && in.FormData == nil {
		return c.startWalletFlow(ctx, sess, orderID, preferenceID)
	}

	if in.FormData == nil {
		c.logger.Warn("brick_submit_without_form_data", "session_id", sessionID, "payment_type", in.PaymentType)
		sess.mu.Lock()
		defer sess.mu.Unlock()
		sess.notice = msgPaymentFailed
		return sess.view(), nil
	}

	payer := venueapi.BrickPayer{
		Email:          form.BuyerEmail,
		Identification: venueapi.BrickIdentification{Type: "DNI", Number: form.BuyerDNI},
	}
	if in.FormData.Payer != nil {
		if in.FormData.Payer.Email != "" {
			payer.Email = in.FormData.Payer.Email
		}
		if in.FormData.Payer.Identification != nil {
			payer.Identification = *in.FormData.Payer.Identification
		}
	}

	result, err := c.api.ProcessBrickPayment(ctx, venueapi.BrickPaymentRequest{
		OrderID:           orderID,
		Token:             in.FormData.Token,
		PaymentMethodID:   in.FormData.PaymentMethodID,
		IssuerID:          in.FormData.IssuerID,
		Installments:      in.FormData.Installments,
		TransactionAmount: PreferenceAmount(unitPrice, form.Quantity),
		Description:       "Compra de entradas para " + eventTitle,
		Payer:             payer,
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()
	if err != nil {
		c.logger.Error("brick_payment_failed", "session_id", sessionID, "order_id", orderID, "error", err)
		sess.notice = msgPaymentFailed
		return sess.view(), nil
	}
	if result.Status != venueapi.PaymentStatusApproved {
		c.logger.Warn("brick_payment_not_approved", "session_id", sessionID, "order_id", orderID,
			"status", result.Status, "detail", result.StatusDetail)
		sess.notice = msgPaymentRejected
		return sess.view(), nil
	}
	sess.succeed()
	c.logger.Info("checkout_paid", "session_id", sessionID, "order_id", orderID, "payment_id", result.ID)
	return sess.view(), nil
}

// startWalletFlow hands the buyer to the provider's hosted page and starts
// the status poller. One immediate check runs first in case the redirect
// round-trip already finished.
func (c *Checkout) startWalletFlow(ctx context.Context, sess *Session, orderID, preferenceID string) (View, error) {
	redirect := c.redirectURL + "?pref_id=" + url.QueryEscape(preferenceID)

	if outcome, terminal, err := c.poller.CheckOnce(ctx, orderID); err == nil && terminal {
		c.applyPollOutcome(sess, outcome)
		view := sess.View()
		view.RedirectURL = redirect
		return view, nil
	}

	sess.mu.Lock()
	if sess.state != StatePayment {
		defer sess.mu.Unlock()
		return sess.view(), ErrWrongState
	}
	sess.stopPolling()
	pollCtx, cancel := context.WithCancel(context.Background())
	sess.pollCancel = cancel
	sess.checking = true
	sess.notice = msgAwaitingWallet
	sess.touch()
	view := sess.view()
	view.RedirectURL = redirect
	sess.mu.Unlock()

	go c.poller.Run(pollCtx, orderID, func(outcome PollOutcome) {
		c.applyPollOutcome(sess, outcome)
	})

	c.logger.Info("wallet_poll_started", "session_id", sess.id, "order_id", orderID)
	return view, nil
}

func (c *Checkout) applyPollOutcome(sess *Session, outcome PollOutcome) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state == StateClosed {
		return
	}
	switch outcome {
	case PollPaid:
		sess.succeed()
	case PollCancelled:
		sess.checking = false
		sess.stopPolling()
		sess.notice = msgPaymentCancelled
	case PollTimedOut:
		sess.checking = false
		sess.stopPolling()
		sess.notice = msgPollTimeout
	}
}

// WidgetError records a client-side widget failure so the buyer sees a
// retryable message. The session stays in the payment phase.
func (c *Checkout) WidgetError(sessionID string) (View, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != StatePayment {
		return sess.view(), ErrWrongState
	}
	sess.notice = msgWidgetError
	sess.touch()
	return sess.view(), nil
}

// VerifyNow is the user-triggered out-of-band status check. It short-circuits
// to the same terminal handling as the interval poll and reports the raw
// status when the order is still in flight.
func (c *Checkout) VerifyNow(ctx context.Context, sessionID string) (View, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	if sess.state != StatePayment || sess.order == nil {
		defer sess.mu.Unlock()
		return sess.view(), ErrWrongState
	}
	orderID := sess.order.ID
	sess.mu.Unlock()

	order, err := c.api.GetOrder(ctx, orderID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()
	if err != nil {
		c.logger.Warn("manual_verify_failed", "session_id", sessionID, "order_id", orderID, "error", err)
		sess.notice = msgVerifyFailed
		return sess.view(), nil
	}
	switch order.Status {
	case venueapi.OrderStatusPaid:
		sess.succeed()
	case venueapi.OrderStatusCancelled:
		sess.checking = false
		sess.stopPolling()
		sess.notice = msgPaymentCancelled
	default:
		sess.notice = fmt.Sprintf("Estado actual: %s. Si ya pagaste, espera unos minutos o contacta soporte.", order.Status)
	}
	return sess.view(), nil
}

// Close cancels the flow from any state and discards the session.
func (c *Checkout) Close(sessionID string) {
	c.store.Remove(sessionID)
}
