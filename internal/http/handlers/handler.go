package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"boleteria/internal/checkout"
	"boleteria/internal/config"
	authmw "boleteria/internal/http/middleware"
	"boleteria/internal/integrations"
	"boleteria/internal/rate"
	"boleteria/internal/venueapi"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	venue         *venueapi.Client
	checkout      *checkout.Checkout
	s3            *integrations.S3Client
	cfg           *config.Config
	logger        *slog.Logger
	validator     *validator.Validate
	publicLimiter *rate.WindowLimiter
	couponLimiter *rate.WindowLimiter
}

func New(venue *venueapi.Client, co *checkout.Checkout, s3 *integrations.S3Client, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		venue:         venue,
		checkout:      co,
		s3:            s3,
		cfg:           cfg,
		logger:        logger,
		validator:     validator.New(),
		publicLimiter: rate.NewWindowLimiter(30, time.Minute),
		couponLimiter: rate.NewWindowLimiter(10, time.Minute),
	}
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

func (h *Handler) loggerForRequest(r *http.Request) *slog.Logger {
	logger := h.logger
	if logger == nil {
		return slog.Default()
	}
	if reqID := chimw.GetReqID(r.Context()); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	if claims, ok := authmw.ClaimsFromContext(r.Context()); ok {
		logger = logger.With("user_id", claims.UserID, "role", string(claims.Role))
	}
	return logger
}

// venueFor returns the venue client scoped to the caller. Authenticated
// operators act upstream with their own venue token; everyone else gets the
// unauthenticated client.
func (h *Handler) venueFor(r *http.Request) *venueapi.Client {
	if claims, ok := authmw.ClaimsFromContext(r.Context()); ok && claims.VenueToken != "" {
		return h.venue.WithToken(claims.VenueToken)
	}
	return h.venue
}
