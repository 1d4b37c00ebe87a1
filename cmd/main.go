package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	createSlotHandler "github.com/SahanHeshan/GovPortal/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/SahanHeshan/GovPortal/internal/api/handlers/delete_slot"
	getAvailableSlotsHandler "github.com/SahanHeshan/GovPortal/internal/api/handlers/get_available_slots"
	getServicesHandler "github.com/SahanHeshan/GovPortal/internal/api/handlers/get_services"
	getSlotHandler "github.com/SahanHeshan/GovPortal/internal/api/handlers/get_slot"
	getSlotsByDateHandler "github.com/SahanHeshan/GovPortal/internal/api/handlers/get_slots_by_date"
	loginHandler "github.com/SahanHeshan/GovPortal/internal/api/handlers/login"
	logoutHandler "github.com/SahanHeshan/GovPortal/internal/api/handlers/logout"
	updateSlotHandler "github.com/SahanHeshan/GovPortal/internal/api/handlers/update_slot"
	"github.com/SahanHeshan/GovPortal/internal/api/middleware"
	"github.com/SahanHeshan/GovPortal/internal/config"
	sessionStore "github.com/SahanHeshan/GovPortal/internal/infra/session"
	govserviceRepo "github.com/SahanHeshan/GovPortal/internal/infra/storage/govservice"
	officerRepo "github.com/SahanHeshan/GovPortal/internal/infra/storage/officer"
	slotRepo "github.com/SahanHeshan/GovPortal/internal/infra/storage/slot"
	authService "github.com/SahanHeshan/GovPortal/internal/service/auth"
	govservicesService "github.com/SahanHeshan/GovPortal/internal/service/govservices"
	slotsService "github.com/SahanHeshan/GovPortal/internal/service/slots"
	createSlotUC "github.com/SahanHeshan/GovPortal/internal/usecase/create_slot"
	updateSlotUC "github.com/SahanHeshan/GovPortal/internal/usecase/update_slot"
	"github.com/SahanHeshan/GovPortal/pkg/logger"
	"github.com/SahanHeshan/GovPortal/pkg/metrics"
	"github.com/SahanHeshan/GovPortal/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting GovPortal appointment service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Postgres
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Redis session store
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal("Failed to ping redis: %v", err)
	}
	cancelPing()
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	idleBudget := time.Duration(cfg.Auth.IdleTimeoutSecs) * time.Second
	sessions := sessionStore.NewStore(rdb, idleBudget)

	// Repositories
	slotRepository := slotRepo.NewRepository(db)
	govserviceRepository := govserviceRepo.NewRepository(db)
	officerRepository := officerRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Services
	slotsSvc := slotsService.NewService(slotRepository, log)
	govservicesSvc := govservicesService.NewService(govserviceRepository, log)
	authSvc := authService.NewService(
		officerRepository,
		sessions,
		[]byte(cfg.Auth.JWTSecret),
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)

	// Use cases
	createSlotUseCase := createSlotUC.NewUseCase(slotRepository, govserviceRepository, txMgr, log)
	updateSlotUseCase := updateSlotUC.NewUseCase(slotRepository, log)

	// Handlers
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getServices := getServicesHandler.NewHandler(govservicesSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotsSvc, log)
	getSlotsByDate := getSlotsByDateHandler.NewHandler(slotsSvc, log)
	getSlot := getSlotHandler.NewHandler(slotsSvc, log)
	createSlot := createSlotHandler.NewHandler(createSlotUseCase, log)
	updateSlot := updateSlotHandler.NewHandler(updateSlotUseCase, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Login is the only unauthenticated route; it gets a per-IP rate limit
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginPerSecond, cfg.RateLimit.LoginBurst, log)
	api.Handle("/gov/login",
		loginLimiter.Middleware(http.HandlerFunc(login.Handle))).Methods(http.MethodPost)

	// Everything else requires a live bearer session
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret), sessions, log))

	protected.HandleFunc("/gov/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/gov/services/{gov_node_id}", getServices.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/appointments/available_slots/{reservation_id}",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/available_slots/{reservation_id}/{date}",
		getSlotsByDate.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/create_slot", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/slot/{slot_id}", getSlot.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/slot/{slot_id}", updateSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/slot/delete/{slot_id}", deleteSlot.Handle).Methods(http.MethodDelete)

	// The consumer is a browser SPA on another origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
