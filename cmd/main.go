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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addTransactionHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/add_transaction"
	checkAvailabilityHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_available_slots"
	getClientAnalyticsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_client_analytics"
	getClientVisitsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_client_visits"
	getDailyRevenueHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_daily_revenue"
	getRecommendedServicesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_recommended_services"
	listClientsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_clients"
	listMastersHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_masters"
	listServicesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_services"
	manageCatalogHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/manage_catalog"
	masterCalendarHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/master_calendar"
	moveAppointmentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/move_appointment"
	notificationsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/notifications"
	updateAppointmentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_appointment"
	updateClientHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_client"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/config"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/ratelimit"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/seed"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/calendar"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/eventbus"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	catalogService "github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-StudioBooking/internal/service/clients"
	ledgerService "github.com/m04kA/SMC-StudioBooking/internal/service/ledger"
	notificationsService "github.com/m04kA/SMC-StudioBooking/internal/service/notifications"
	createAppointmentUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/tracing"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-StudioBooking (%s)...", cfg.Studio.Name)

	location, err := cfg.Studio.Location()
	if err != nil {
		log.Fatal("Unknown studio timezone %q: %v", cfg.Studio.Timezone, err)
	}

	// Трейсинг
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to set up tracing: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище: Postgres или только память
	var db *sql.DB
	if cfg.Database.Enabled {
		db, err = sql.Open("postgres", cfg.Database.DSN())
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
	} else {
		log.Warn("Database disabled: studio data lives in memory only")
	}

	store, err := openStorage(context.Background(), db, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to prepare storage: %v", err)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(store.catalog, log)
	clientsSvc := clientsService.NewService(store.clients, nil, location, log)
	ledgerSvc := ledgerService.NewService(store.ledger, metricsCollector, location, log)
	checker := availability.NewChecker(catalogSvc, log)
	appointmentsSvc := appointments.NewService(
		store.appointments,
		store.tx,
		catalogSvc,
		clientsSvc,
		checker,
		metricsCollector,
		log,
		appointments.Options{
			SlotStepMinutes: cfg.Studio.SlotStepMinutes,
			Location:        location,
			Policy:          appointments.PolicyFor(cfg.Studio.StrictTransitions),
		},
	)
	analyticsSvc := analytics.NewService(appointmentsSvc, catalogSvc, clientsSvc, log, analytics.Options{
		FavoriteLimit:       cfg.Studio.FavoriteLimit,
		RecommendationLimit: cfg.Studio.RecommendationLimit,
	})
	notificationsSvc := notificationsService.NewService(location, log)
	policy := access.Policy{}

	// Восстанавливаем состояние из базы
	if err := store.restore(context.Background(), catalogSvc, clientsSvc, appointmentsSvc, ledgerSvc); err != nil {
		log.Fatal("Failed to restore studio state: %v", err)
	}

	// Начальный каталог для пустой студии
	if cfg.Studio.SeedFile != "" && catalogSvc.IsEmpty() {
		catalogSeed, err := seed.Load(cfg.Studio.SeedFile)
		if err != nil {
			log.Fatal("Failed to load seed file %s: %v", cfg.Studio.SeedFile, err)
		}
		if err := seed.Apply(context.Background(), catalogSeed, catalogSvc, log); err != nil {
			log.Fatal("Failed to apply seed: %v", err)
		}
	}

	// Подписчики событий записей
	appointmentsSvc.Subscribe(notificationsSvc)
	if cfg.Kafka.Enabled {
		writer := eventbus.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		publisher := eventbus.NewPublisher(writer, log)
		defer publisher.Close()
		appointmentsSvc.Subscribe(publisher)
		log.Info("Appointment events are published to kafka topic %s", cfg.Kafka.Topic)
	}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(clientsSvc, appointmentsSvc, analyticsSvc, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogSvc,
		appointmentsSvc,
		checker,
		getAvailableSlotsUC.Grid{
			StartHour:   cfg.Studio.SlotStartHour,
			EndHour:     cfg.Studio.SlotEndHour,
			StepMinutes: cfg.Studio.SlotStepMinutes,
		},
		log,
	)

	// Инициализируем handlers
	listMasters := listMastersHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	manageCatalog := manageCatalogHandler.NewHandler(catalogSvc, policy, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, policy, log)
	updateClient := updateClientHandler.NewHandler(clientsSvc, policy, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, location, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(appointmentsSvc, catalogSvc, location, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, location, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, policy, log)
	moveAppointment := moveAppointmentHandler.NewHandler(appointmentsSvc, policy, location, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, policy, log)
	getClientAnalytics := getClientAnalyticsHandler.NewHandler(analyticsSvc, policy, log)
	getClientVisits := getClientVisitsHandler.NewHandler(analyticsSvc, policy, log)
	getRecommended := getRecommendedServicesHandler.NewHandler(analyticsSvc, log)
	addTransaction := addTransactionHandler.NewHandler(ledgerSvc, policy, log)
	getDailyRevenue := getDailyRevenueHandler.NewHandler(ledgerSvc, policy, location, log)
	inbox := notificationsHandler.NewHandler(notificationsSvc, policy, log)
	masterCalendar := masterCalendarHandler.NewHandler(
		calendar.NewExporter(appointmentsSvc, catalogSvc, cfg.Studio.Name), location, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Actor)

	// --- Каталог ---
	api.HandleFunc("/masters", listMasters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/masters", manageCatalog.CreateMaster).Methods(http.MethodPost)
	api.HandleFunc("/masters/{masterId}", listMasters.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}", manageCatalog.UpdateMaster).Methods(http.MethodPut)
	api.HandleFunc("/masters/{masterId}", manageCatalog.DeactivateMaster).Methods(http.MethodDelete)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", manageCatalog.CreateService).Methods(http.MethodPost)
	api.HandleFunc("/services/{serviceId}", manageCatalog.UpdateService).Methods(http.MethodPut)
	api.HandleFunc("/services/{serviceId}", manageCatalog.DeactivateService).Methods(http.MethodDelete)

	// --- Расписание мастера ---
	api.HandleFunc("/masters/{masterId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}/calendar.ics", masterCalendar.Handle).Methods(http.MethodGet)

	// --- Записи ---
	booking := http.Handler(http.HandlerFunc(createAppointment.Handle))
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		limiter := ratelimit.New(rdb, cfg.Redis.BookingLimit, time.Duration(cfg.Redis.WindowSeconds)*time.Second, "")
		booking = middleware.RateLimit(limiter, log)(booking)
		log.Info("Booking rate limit enabled: %d requests per %ds", limiter.Limit(), cfg.Redis.WindowSeconds)
	}
	api.Handle("/appointments", booking).Methods(http.MethodPost)
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{appointmentId}/move", moveAppointment.Handle).Methods(http.MethodPost)

	// --- Клиенты ---
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", listClients.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", updateClient.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/clients/{clientId}/analytics", getClientAnalytics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/visits", getClientVisits.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/recommendations", getRecommended.Handle).Methods(http.MethodGet)

	// --- Касса ---
	api.HandleFunc("/cash/transactions", addTransaction.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cash/revenue", getDailyRevenue.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	api.HandleFunc("/notifications", inbox.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read-all", inbox.MarkAllRead).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{notificationId}/read", inbox.MarkRead).Methods(http.MethodPost)

	var handler http.Handler = r
	if cfg.Tracing.Enabled {
		handler = tracing.Handler(r, cfg.Metrics.ServiceName)
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.OTLPEndpoint)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
