package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	createReservationHandler "github.com/m04kA/BaccalaMarket/internal/api/handlers/create_reservation"
	getAdvisoryHandler "github.com/m04kA/BaccalaMarket/internal/api/handlers/get_advisory"
	getProductHandler "github.com/m04kA/BaccalaMarket/internal/api/handlers/get_product"
	getProductsHandler "github.com/m04kA/BaccalaMarket/internal/api/handlers/get_products"
	getWeekHandler "github.com/m04kA/BaccalaMarket/internal/api/handlers/get_week"
	"github.com/m04kA/BaccalaMarket/internal/api/middleware"
	"github.com/m04kA/BaccalaMarket/internal/config"
	"github.com/m04kA/BaccalaMarket/internal/integrations/telegram"
	"github.com/m04kA/BaccalaMarket/internal/reservation"
	shopService "github.com/m04kA/BaccalaMarket/internal/service/shop"
	createReservationUC "github.com/m04kA/BaccalaMarket/internal/usecase/create_reservation"
	"github.com/m04kA/BaccalaMarket/internal/web"
	"github.com/m04kA/BaccalaMarket/pkg/logger"
	"github.com/m04kA/BaccalaMarket/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("BACCALA_CONFIG"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BaccalaMarket...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент Telegram
	telegramClient := telegram.NewClient(
		cfg.Telegram.APIEndpoint,
		cfg.Telegram.Token,
		cfg.Telegram.ChatID,
		cfg.TelegramTimeout(),
		log,
	)
	if metricsCollector != nil {
		telegramClient.WithMetrics(metricsCollector)
	}
	if cfg.Telegram.Token == "" || cfg.Telegram.ChatID == "" {
		log.Warn("Telegram credentials are not configured: every reservation will fail to submit")
	} else {
		log.Info("Telegram client initialized (chat_id=%s, timeout=%ds)", cfg.Telegram.ChatID, cfg.Telegram.Timeout)
	}

	// Настройки формы
	settings := reservation.DefaultSettings()
	settings.GramsPerPerson = cfg.Shop.GramsPerPerson
	settings.DefaultPersonCount = cfg.Shop.DefaultPersonCount
	settings.SubmitTimeout = cfg.TelegramTimeout()
	timeProvider := &reservation.RealTimeProvider{Location: cfg.Shop.Location()}

	// reservationMetrics остается nil-интерфейсом, если метрики выключены
	var reservationMetrics interface {
		RecordReservation(source, outcome string)
	}
	if metricsCollector != nil {
		reservationMetrics = metricsCollector
	}

	// Инициализируем сервисы и use cases
	shopSvc := shopService.NewService(settings, timeProvider, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		settings,
		telegramClient,
		reservationMetrics,
		timeProvider,
		log,
	)

	// Веб-форма
	webServer, err := web.NewServer(settings, telegramClient, reservationMetrics, timeProvider, log)
	if err != nil {
		log.Fatal("Failed to initialize web form: %v", err)
	}

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getProducts := getProductsHandler.NewHandler(shopSvc, log)
	getProduct := getProductHandler.NewHandler(shopSvc, log)
	getWeek := getWeekHandler.NewHandler(shopSvc, log)
	getAdvisory := getAdvisoryHandler.NewHandler(shopSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Страница с формой
	r.HandleFunc("/", webServer.HandleIndex).Methods(http.MethodGet)
	r.HandleFunc("/prenota", webServer.HandleAction).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/products", getProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/{productId}", getProduct.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/week", getWeek.Handle).Methods(http.MethodGet)
	api.HandleFunc("/advisory", getAdvisory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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
