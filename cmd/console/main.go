package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boleteria/internal/auth"
	"boleteria/internal/checkout"
	"boleteria/internal/config"
	"boleteria/internal/http/handlers"
	"boleteria/internal/http/middleware"
	"boleteria/internal/integrations"
	"boleteria/internal/logging"
	"boleteria/internal/venueapi"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("log error: %v", err)
	}
	defer func() {
		_ = cleanup()
	}()
	logger = logger.With("service", "console")
	slog.SetDefault(logger)

	ctx := context.Background()

	venue := venueapi.NewClient(venueapi.Config{BaseURL: cfg.VenueAPIURL}, nil, logger)
	co := checkout.New(venue, cfg.MercadoPago.RedirectURL, logger)

	var s3Client *integrations.S3Client
	if cfg.S3.Bucket != "" {
		s3Client, err = integrations.NewS3(ctx, cfg.S3)
		if err != nil {
			logger.Error("s3 error", "error", err)
			os.Exit(1)
		}
	}

	h := handlers.New(venue, co, s3Client, cfg, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/auth/login", h.Login)

	r.Get("/events", h.ListEvents)
	r.Get("/events/{id}", h.GetEvent)

	r.Get("/checkout/config", h.CheckoutConfig)
	r.Post("/checkout", h.StartCheckout)
	r.Route("/checkout/{id}", func(r chi.Router) {
		r.Get("/", h.GetCheckout)
		r.Delete("/", h.CloseCheckout)
		r.Put("/buyer", h.SetCheckoutBuyerField)
		r.Put("/quantity", h.SetCheckoutQuantity)
		r.Post("/coupon", h.ApplyCheckoutCoupon)
		r.Delete("/coupon", h.RemoveCheckoutCoupon)
		r.Post("/submit", h.SubmitCheckout)
		r.Post("/payment", h.SubmitCheckoutPayment)
		r.Post("/payment/error", h.CheckoutWidgetError)
		r.Post("/verify", h.VerifyCheckoutPayment)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.JWTSecret))

		r.Post("/auth/logout", h.Logout)
		r.Get("/me", h.Me)

		r.With(middleware.RequirePermission(auth.PermDashboard)).
			Get("/admin/dashboard/stats", h.DashboardStats)

		r.Route("/admin/reports", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermReports))
			r.Get("/", h.ReportsData)
			r.Get("/top-events", h.TopEvents)
			r.Get("/sales-chart", h.SalesChart)
		})

		r.Route("/admin/events", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermAddEvent)).Post("/", h.CreateEvent)
			r.With(middleware.RequirePermission(auth.PermEvents)).Put("/{id}", h.UpdateEvent)
			r.With(middleware.RequirePermission(auth.PermEvents)).Delete("/{id}", h.DeleteEvent)
		})

		r.Route("/admin/media", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermEvents))
			r.Post("/presign", h.PresignMedia)
			r.Post("/upload", h.UploadMedia)
		})

		r.Route("/admin/categories", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermCategories))
			r.Get("/", h.ListCategories)
			r.Post("/", h.CreateCategory)
			r.Put("/{id}", h.UpdateCategory)
			r.Delete("/{id}", h.DeleteCategory)
		})

		r.Route("/admin/artists", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermArtists))
			r.Get("/", h.ListArtists)
			r.Get("/{id}", h.GetArtist)
			r.Post("/", h.CreateArtist)
			r.Put("/{id}", h.UpdateArtist)
			r.Delete("/{id}", h.DeleteArtist)
		})

		r.Route("/admin/coupons", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermCoupons))
			r.Get("/", h.ListCoupons)
			r.Post("/", h.CreateCoupon)
			r.Put("/{id}", h.UpdateCoupon)
			r.Delete("/{id}", h.DeleteCoupon)
		})

		r.Route("/admin/users", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermUsers))
			r.Get("/", h.ListUsers)
			r.Patch("/{id}/toggle", h.ToggleUserActive)
		})

		r.Route("/admin/tickets", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermTickets))
			r.Get("/", h.ListTickets)
			r.Get("/{id}", h.GetTicket)
			r.Post("/{id}/qr", h.GenerateTicketQR)
			r.Get("/{id}/qr.png", h.TicketQRImage)
		})

		r.Route("/admin/orders", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermTickets))
			r.Get("/", h.ListOrders)
			r.Get("/{id}", h.GetOrder)
		})

		r.Route("/admin/service-orders", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermService))
			r.Get("/", h.ListServiceOrders)
			r.Post("/", h.CreateServiceOrder)
			r.Put("/{id}/status", h.UpdateServiceOrderStatus)
		})

		r.Route("/admin/tables", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermService))
			r.Get("/", h.ListTables)
			r.Post("/", h.CreateTable)
			r.Put("/{id}", h.UpdateTable)
			r.Delete("/{id}", h.DeleteTable)
		})

		r.Route("/admin/kitchen", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermKitchen))
			r.Get("/orders", h.ListKitchenOrders)
			r.Put("/orders/{id}/status", h.UpdateServiceOrderStatus)
		})

		r.Route("/admin/qr", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermQRScanner))
			r.Post("/validate", h.ValidateQR)
			r.Post("/checkin", h.CheckInTicket)
		})
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		logger.Info("console_listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutdown", "service", "console")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
