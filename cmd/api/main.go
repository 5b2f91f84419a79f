package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pressdeck/pressdeck-api/internal/config"
	"github.com/pressdeck/pressdeck-api/internal/domain/auth"
	"github.com/pressdeck/pressdeck-api/internal/domain/client"
	"github.com/pressdeck/pressdeck-api/internal/domain/coverage"
	"github.com/pressdeck/pressdeck-api/internal/domain/dashboard"
	"github.com/pressdeck/pressdeck-api/internal/domain/game"
	"github.com/pressdeck/pressdeck-api/internal/domain/outlet"
	"github.com/pressdeck/pressdeck-api/internal/domain/partner"
	"github.com/pressdeck/pressdeck-api/internal/domain/platform"
	"github.com/pressdeck/pressdeck-api/internal/domain/sale"
	"github.com/pressdeck/pressdeck-api/internal/domain/user"
	"github.com/pressdeck/pressdeck-api/internal/middleware"
	"github.com/pressdeck/pressdeck-api/internal/pkg/database"
	"github.com/pressdeck/pressdeck-api/internal/pkg/jwt"
	"github.com/pressdeck/pressdeck-api/internal/pkg/partnerapi"
	pkgresponse "github.com/pressdeck/pressdeck-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting PressDeck API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	clientRepo := client.NewRepository(db)
	gameRepo := game.NewRepository(db)
	platformRepo := platform.NewRepository(db)
	saleRepo := sale.NewRepository(db)
	outletRepo := outlet.NewRepository(db)
	coverageRepo := coverage.NewRepository(db)
	dashboardRepo := dashboard.NewRepository(db)

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService)
	clientService := client.NewService(clientRepo)
	gameService := game.NewService(gameRepo, clientRepo)
	platformService := platform.NewService(platformRepo)
	saleService := sale.NewService(saleRepo, gameRepo, platformRepo, redis, cfg.PreviewCacheTTL)
	outletService := outlet.NewService(outletRepo)
	coverageService := coverage.NewService(coverageRepo, gameRepo, outletRepo)
	dashboardService := dashboard.NewService(dashboardRepo)

	// ---------- Partner sync ----------
	var partnerWorker *partner.Worker
	if cfg.PartnerSyncEnabled {
		partnerClient := partnerapi.NewClient(partnerapi.Config{
			BaseURL: cfg.PartnerBaseURL,
			Token:   cfg.PartnerToken,
			Timeout: time.Duration(cfg.PartnerTimeoutSeconds) * time.Second,
		})
		partnerWorker = partner.NewWorker(partnerClient, platformRepo, gameRepo, outletRepo, coverageRepo, redis, cfg.PartnerSyncInterval)
		partnerWorker.Start()
	} else {
		log.Info().Msg("Partner sync disabled")
	}

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	clientHandler := client.NewHandler(clientService)
	gameHandler := game.NewHandler(gameService)
	platformHandler := platform.NewHandler(platformService)
	saleHandler := sale.NewHandler(saleService)
	outletHandler := outlet.NewHandler(outletService)
	coverageHandler := coverage.NewHandler(coverageService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/clients", clientHandler.Routes(authMiddleware))
		r.Mount("/games", gameHandler.Routes(authMiddleware))
		r.Mount("/games/{gameID}/sales/calendar", saleHandler.CalendarRoutes(authMiddleware))
		r.Mount("/games/{gameID}/coverage", coverageHandler.SummaryRoutes(authMiddleware))
		r.Mount("/platforms", platformHandler.Routes(authMiddleware))
		r.Mount("/events", platformHandler.EventRoutes(authMiddleware))
		r.Mount("/sales", saleHandler.Routes(authMiddleware))
		r.Mount("/outlets", outletHandler.Routes(authMiddleware))
		r.Mount("/coverage", coverageHandler.Routes(authMiddleware))
		r.Mount("/dashboard", dashboardHandler.Routes(authMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	if partnerWorker != nil {
		partnerWorker.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
