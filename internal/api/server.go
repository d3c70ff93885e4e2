package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/api/docs"
	interviewapi "github.com/prepmate/interview-backend/internal/api/interview"
	"github.com/prepmate/interview-backend/internal/api/middleware"
	resumeapi "github.com/prepmate/interview-backend/internal/api/resume"
	userapi "github.com/prepmate/interview-backend/internal/api/user"
	"github.com/prepmate/interview-backend/internal/auth"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	interviewHandler *interviewapi.Handler,
	userHandler *userapi.Handler,
	resumeHandler *resumeapi.Handler,
	tokens *auth.TokenService,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Public auth routes; /auth/me is guarded inside
	userapi.RegisterRoutes(r, userHandler, auth.Middleware(tokens))

	// Everything below requires a valid token
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens))
		interviewapi.RegisterRoutes(r, interviewHandler)
		resumeapi.RegisterRoutes(r, resumeHandler)
	})

	return r
}
