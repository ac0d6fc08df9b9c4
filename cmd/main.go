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

	bookAppointmentHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/cancel_appointment"
	cancelEmergencyHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/cancel_emergency"
	deleteAppointmentHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/delete_appointment"
	dispatchEmergencyHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/dispatch_emergency"
	facilitiesBySectorHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/facilities_by_sector"
	getAppointmentHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/get_available_slots"
	getEmergencyHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/get_emergency"
	listFacilitiesHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/list_facilities"
	listUserAppointmentsHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/list_user_appointments"
	nearestFacilitiesHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/nearest_facilities"
	rescheduleAppointmentHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/reschedule_appointment"
	respondEmergencyHandler "github.com/umurava/maternalcare-booking/internal/api/handlers/respond_emergency"
	"github.com/umurava/maternalcare-booking/internal/api/middleware"
	"github.com/umurava/maternalcare-booking/internal/config"
	"github.com/umurava/maternalcare-booking/internal/directory"
	"github.com/umurava/maternalcare-booking/internal/geo"
	appointmentRepo "github.com/umurava/maternalcare-booking/internal/infra/storage/appointment"
	contactRepo "github.com/umurava/maternalcare-booking/internal/infra/storage/contact"
	emergencyRepo "github.com/umurava/maternalcare-booking/internal/infra/storage/emergency"
	"github.com/umurava/maternalcare-booking/internal/notify"
	"github.com/umurava/maternalcare-booking/internal/reminder"
	appointmentsService "github.com/umurava/maternalcare-booking/internal/service/appointments"
	emergenciesService "github.com/umurava/maternalcare-booking/internal/service/emergencies"
	"github.com/umurava/maternalcare-booking/internal/slots"
	bookAppointmentUC "github.com/umurava/maternalcare-booking/internal/usecase/book_appointment"
	dispatchEmergencyUC "github.com/umurava/maternalcare-booking/internal/usecase/dispatch_emergency"
	getAvailableSlotsUC "github.com/umurava/maternalcare-booking/internal/usecase/get_available_slots"
	"github.com/umurava/maternalcare-booking/pkg/logger"
	"github.com/umurava/maternalcare-booking/pkg/metrics"
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

	log.Info("Starting maternalcare-booking...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Repositories
	appointments := appointmentRepo.NewRepository(db)
	emergencies := emergencyRepo.NewRepository(db)
	contacts := contactRepo.NewRepository(db)

	// In-memory facility catalog and slot grid
	facilities := directory.New()
	slotResolver := slots.NewResolver()
	ranker := geo.NewRanker(facilities)

	// Outbound notifications (SendGrid + Twilio)
	dispatcher := notify.NewDispatcher(cfg.Notifications, log)

	// Services
	appointmentSvc := appointmentsService.NewService(appointments, slotResolver, dispatcher, log)
	emergencySvc := emergenciesService.NewService(emergencies, log)

	// Use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointments,
		facilities,
		slotResolver,
		dispatcher,
		contacts,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointments,
		facilities,
		slotResolver,
		log,
	)
	dispatchEmergencyUseCase := dispatchEmergencyUC.NewUseCase(
		emergencies,
		ranker,
		dispatcher,
		log,
	)

	// 24-hour reminder sweep
	reminderJob := reminder.NewJob(cfg.Reminder, appointments, contacts, dispatcher, log)
	if cfg.Reminder.Enabled {
		if err := reminderJob.Start(); err != nil {
			log.Fatal("Failed to start reminder job: %v", err)
		}
		defer reminderJob.Stop()
		log.Info("Reminder job scheduled (%s)", cfg.Reminder.CronSpec)
	}

	// Handlers
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listUserAppointments := listUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilities, log)
	nearestFacilities := nearestFacilitiesHandler.NewHandler(ranker, log)
	facilitiesBySector := facilitiesBySectorHandler.NewHandler(facilities, log)
	dispatchEmergency := dispatchEmergencyHandler.NewHandler(dispatchEmergencyUseCase, log)
	getEmergency := getEmergencyHandler.NewHandler(emergencySvc, log)
	cancelEmergency := cancelEmergencyHandler.NewHandler(emergencySvc, log)
	respondEmergency := respondEmergencyHandler.NewHandler(emergencySvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the facility directory and slot availability are
	// readable without a token.
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/nearest", nearestFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/sector/{district}/{sector}", facilitiesBySector.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected routes require a bearer token.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/user", listUserAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", cancelAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id}", rescheduleAppointment.Handle).Methods(http.MethodPut)

	protected.HandleFunc("/emergencies", dispatchEmergency.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/emergencies/{id}", getEmergency.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/emergencies/{id}", cancelEmergency.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/emergencies/{id}/respond", respondEmergency.Handle).Methods(http.MethodPatch)

	// Admin routes additionally require the admin role.
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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
