// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/verifield/credplane/internal/auth"
	"github.com/verifield/credplane/internal/config"
	"github.com/verifield/credplane/internal/event"
	"github.com/verifield/credplane/internal/handler"
	"github.com/verifield/credplane/internal/middleware"
	"github.com/verifield/credplane/internal/notify"
	"github.com/verifield/credplane/internal/repository"
	"github.com/verifield/credplane/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	linkRepo := repository.NewAffiliationRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	licenseRepo := repository.NewLicenseRepository(db)
	auditRepo := repository.NewAdminActionLogRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize the expiration notifier. Without a Sendgrid key the sweep
	// logs notices instead of mailing them.
	var notifier notify.Notifier = notify.LogNotifier{Logger: logger}
	if cfg.Sendgrid.APIKey != "" {
		mailService, err := notify.NewService(cfg, notify.ProviderSendgrid)
		if err != nil {
			return fmt.Errorf("initializing mail service: %w", err)
		}
		notifier = notify.NewEmailNotifier(mailService, cfg.MailFrom)
	}

	emitter := event.SlogEmitter{Logger: logger}

	// Initialize services
	accountService := service.NewAccountService(userRepo, passwordHasher, tokenManager)
	companyService := service.NewCompanyService(companyRepo, userRepo, auditRepo)
	providerService := service.NewProviderService(providerRepo, auditRepo)
	affiliationService := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, emitter)
	documentService := service.NewDocumentService(documentRepo, providerRepo, linkRepo, emitter)
	licenseService := service.NewLicenseService(licenseRepo, providerRepo, linkRepo, service.ExpirationBoardVerifier{}, emitter)
	alertService := service.NewAlertService(licenseRepo, notifier, emitter, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(accountService)
	companyHandler := handler.NewCompanyHandler(companyService)
	providerHandler := handler.NewProviderHandler(providerService)
	affiliationHandler := handler.NewAffiliationHandler(affiliationService)
	documentHandler := handler.NewDocumentHandler(documentService)
	licenseHandler := handler.NewLicenseHandler(licenseService)
	alertHandler := handler.NewAlertHandler(alertService, cfg.CronSecret)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/auth/signup", authHandler.SignupHandler)
			r.Post("/auth/login", authHandler.LoginHandler)
		})

		// The sweep trigger authenticates via the cron shared secret, not
		// the JWT middleware.
		r.Get("/cron/check-expirations", alertHandler.RunSweep)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Route("/companies", func(r chi.Router) {
				r.Post("/", companyHandler.Create)
				r.Get("/", companyHandler.ListOwn)
				r.Post("/join", affiliationHandler.RequestJoin)
				r.Get("/{companyID}/requests", affiliationHandler.ListRequests)
				r.Get("/{companyID}/actions", companyHandler.Actions)
				r.Post("/requests/{linkID}/approve", affiliationHandler.Approve)
				r.Post("/requests/{linkID}/reject", affiliationHandler.Reject)
				r.Post("/requests/{linkID}/revert", affiliationHandler.Revert)
				r.Delete("/requests/{linkID}", affiliationHandler.Remove)
			})

			r.Route("/providers", func(r chi.Router) {
				r.Post("/onboard", providerHandler.Onboard)
				r.Get("/me", providerHandler.Me)
				r.Post("/{providerID}/approve", providerHandler.Approve)
				r.Post("/{providerID}/reject", providerHandler.Reject)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", documentHandler.Upload)
				r.Get("/", documentHandler.ListOwn)
				r.Post("/{documentID}/approve", documentHandler.Approve)
				r.Post("/{documentID}/reject", documentHandler.Reject)
				r.Post("/{documentID}/revert", documentHandler.Revert)
			})

			r.Route("/licenses", func(r chi.Router) {
				r.Post("/", licenseHandler.Add)
				r.Get("/", licenseHandler.ListOwn)
				r.Post("/{licenseID}/verify", licenseHandler.Verify)
				r.Post("/{licenseID}/revert", licenseHandler.Revert)
			})

			r.Get("/alerts/expiring-licenses", alertHandler.ExpiringLicenses)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"requestID", chimw.GetReqID(r.Context()),
			)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"panic", rec,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
