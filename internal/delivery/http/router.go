package http

import (
	"net/http"

	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	"go-doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

// NewRouter wires the directory routes. A nil authMiddleware leaves
// booking open to anonymous callers.
func NewRouter(
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// Setup registers the routes and returns the server handler. CORS and
// request logging wrap the mux router so preflight requests and unmatched
// paths go through them too.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory routes (public)
	api.HandleFunc("/doctors", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)

	// Booking routes
	booking := api.PathPrefix("/doctors/{id}/appointments").Subrouter()
	if r.authMiddleware != nil {
		booking.Use(r.authMiddleware.Authenticate)
	}
	booking.HandleFunc("", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
