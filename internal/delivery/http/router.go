package http

import (
	"net/http"

	"developer-service/internal/delivery/http/handler"
	"developer-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	developerHandler    *handler.DeveloperHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	accessLogMiddleware *middleware.AccessLogMiddleware
}

func NewRouter(
	developerHandler *handler.DeveloperHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	accessLogMiddleware *middleware.AccessLogMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		developerHandler:    developerHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		accessLogMiddleware: accessLogMiddleware,
	}
}

// Setup registers every route and returns the router wrapped in the
// request-id, access-log and CORS middleware. The wrapping sits outside mux
// so preflight and unmatched requests are handled too.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Developer routes; mutations go through auth when it is enabled
	developers := api.PathPrefix("/developers").Subrouter()
	developers.Handle("", r.protect(r.developerHandler.CreateDeveloper)).Methods(http.MethodPost)
	developers.Handle("", r.protect(r.developerHandler.UpdateDeveloper)).Methods(http.MethodPut)
	developers.HandleFunc("", r.developerHandler.GetAllDevelopers).Methods(http.MethodGet)
	developers.HandleFunc("/specialty/{specialty}", r.developerHandler.GetAllDevelopersBySpecialty).Methods(http.MethodGet)
	developers.HandleFunc("/email/{email}", r.developerHandler.GetDeveloperByEmail).Methods(http.MethodGet)
	developers.HandleFunc("/{id}", r.developerHandler.GetDeveloperByID).Methods(http.MethodGet)
	developers.Handle("/{id}", r.protect(r.developerHandler.DeleteDeveloper)).Methods(http.MethodDelete)

	// Audit log routes
	auditLogs := api.PathPrefix("/audit-logs").Subrouter()
	auditLogs.Use(r.authMiddleware.Authenticate)
	auditLogs.HandleFunc("", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	auditLogs.HandleFunc("/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	return middleware.RequestID(r.accessLogMiddleware.Handle(r.corsMiddleware.Handle(r.router)))
}

func (r *Router) protect(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
