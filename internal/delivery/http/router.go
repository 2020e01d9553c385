package http

import (
	"net/http"

	"clinica-turnos/internal/delivery/http/handler"
	"clinica-turnos/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	catalogHandler        *handler.CatalogHandler
	appointmentHandler    *handler.AppointmentHandler
	bookingSessionHandler *handler.BookingSessionHandler
	clinicalRecordHandler *handler.ClinicalRecordHandler
	reportHandler         *handler.ReportHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	appointmentHandler *handler.AppointmentHandler,
	bookingSessionHandler *handler.BookingSessionHandler,
	clinicalRecordHandler *handler.ClinicalRecordHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		catalogHandler:        catalogHandler,
		appointmentHandler:    appointmentHandler,
		bookingSessionHandler: bookingSessionHandler,
		clinicalRecordHandler: clinicalRecordHandler,
		reportHandler:         reportHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/specialist", r.authHandler.RegisterSpecialist).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Catalog routes (public: browsing requires no account)
	api.HandleFunc("/specialties", r.catalogHandler.ListSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/specialists", r.catalogHandler.ListSpecialists).Methods(http.MethodGet)
	api.HandleFunc("/specialists/{id}/availability", r.catalogHandler.GetAvailability).Methods(http.MethodGet)

	// Booking sessions (any authenticated user)
	sessions := api.PathPrefix("/booking-sessions").Subrouter()
	sessions.Use(r.authMiddleware.Authenticate)
	sessions.HandleFunc("", r.bookingSessionHandler.Start).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", r.bookingSessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/next", r.bookingSessionHandler.Next).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/back", r.bookingSessionHandler.Back).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/specialty", r.bookingSessionHandler.SelectSpecialty).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/specialist", r.bookingSessionHandler.SelectSpecialist).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/day", r.bookingSessionHandler.SelectDay).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/time", r.bookingSessionHandler.SelectTime).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/patient-email", r.bookingSessionHandler.SetPatientEmail).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/month", r.bookingSessionHandler.ChangeMonth).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/swipe", r.bookingSessionHandler.Swipe).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/submit", r.bookingSessionHandler.Submit).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", r.bookingSessionHandler.Close).Methods(http.MethodDelete)

	// Appointments (any authenticated user)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("/mine", r.appointmentHandler.ListMine).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/review", r.appointmentHandler.Review).Methods(http.MethodPost)

	// Appointment status changes (specialist only)
	specialist := api.PathPrefix("/appointments").Subrouter()
	specialist.Use(r.authMiddleware.Authenticate)
	specialist.Use(middleware.RequireSpecialist)
	specialist.HandleFunc("/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPost)
	specialist.HandleFunc("/{id}/archive", r.appointmentHandler.Archive).Methods(http.MethodPost)

	// Historia clinica
	records := api.PathPrefix("/clinical-records").Subrouter()
	records.Use(r.authMiddleware.Authenticate)
	records.HandleFunc("/mine", r.clinicalRecordHandler.ListMine).Methods(http.MethodGet)
	records.HandleFunc("/appointment/{id}", r.clinicalRecordHandler.GetByAppointment).Methods(http.MethodGet)

	recordsSpecialist := api.PathPrefix("/clinical-records").Subrouter()
	recordsSpecialist.Use(r.authMiddleware.Authenticate)
	recordsSpecialist.Use(middleware.RequireSpecialist)
	recordsSpecialist.HandleFunc("", r.clinicalRecordHandler.Create).Methods(http.MethodPost)
	recordsSpecialist.HandleFunc("/my-patients", r.clinicalRecordHandler.MyPatients).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/appointments", r.appointmentHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/reports/appointments-per-day", r.reportHandler.AppointmentsPerDay).Methods(http.MethodGet)
	admin.HandleFunc("/reports/completed-appointments", r.reportHandler.CompletedAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.reportHandler.RecentAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/users/export", r.reportHandler.ExportUsers).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
