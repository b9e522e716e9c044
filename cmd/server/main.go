package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"limoride/internal/api"
	"limoride/internal/auth"
	"limoride/internal/config"
	"limoride/internal/inventory"
	"limoride/internal/logging"
	"limoride/internal/repository"
	"limoride/internal/service"
)

func main() {
	config.LoadConfig()
	logging.Initialize()
	log := logging.GetLogger()
	defer log.Sync()

	cfg := config.AppConfig

	var store repository.SessionStore
	if cfg.RedisAddr != "" {
		redisStore, err := repository.NewRedisSessionStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		store = redisStore
		log.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	} else {
		store = repository.NewMemorySessionStore()
		log.Info("using in-memory session store")
	}

	inventoryClient := inventory.NewClient(cfg.UpstreamBaseURL, cfg.FetchConcurrency)
	submitClient := service.NewSubmitClient(cfg.UpstreamBaseURL)
	sender := service.NewSenderService()
	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute

	bookingService := service.NewBookingService(inventoryClient, store, submitClient, sender, ttl)
	jobService := service.NewJobService(store)
	adminAuthService := service.NewAdminAuthService()

	wizardHandler := api.NewWizardHandler(bookingService)
	ratesHandler := api.NewRatesHandler(bookingService)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthService)
	adminHandler := api.NewAdminHandler()

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/rates", ratesHandler.GetRates).Methods("GET")
	r.HandleFunc("/api/wizard", wizardHandler.CreateSession).Methods("POST")
	r.HandleFunc("/api/wizard/{id}", wizardHandler.GetSession).Methods("GET")
	r.HandleFunc("/api/wizard/{id}/fields", wizardHandler.SetField).Methods("PATCH")
	r.HandleFunc("/api/wizard/{id}/next", wizardHandler.Next).Methods("POST")
	r.HandleFunc("/api/wizard/{id}/back", wizardHandler.Back).Methods("POST")
	r.HandleFunc("/api/wizard/{id}/vehicle", wizardHandler.SelectVehicle).Methods("POST")
	r.HandleFunc("/api/wizard/{id}/submit", wizardHandler.Submit).Methods("POST")

	// Admin endpoints (protected)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/prices/preview", adminHandler.PricePreview).Methods("POST")

	// Session maintenance
	c := cron.New()
	if _, err := c.AddFunc("@every 10m", func() {
		if err := jobService.PurgeExpiredSessions(context.Background()); err != nil {
			log.Error("session sweep failed", zap.Error(err))
		}
	}); err != nil {
		log.Fatal("Failed to schedule session sweeper", zap.Error(err))
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	addr := ":" + cfg.AppPort
	log.Info("Server running", zap.String("addr", addr), zap.String("upstream", cfg.UpstreamBaseURL))
	if err := http.ListenAndServe(addr, handlers.CombinedLoggingHandler(os.Stdout, corsHandler(r))); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
