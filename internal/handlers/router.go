package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appMiddleware "github.com/nutripal/profile-backend/internal/middleware"
	"github.com/nutripal/profile-backend/internal/storage"
)

// NewRouter wires the profile routes. Only creation is gated by identity
// verification.
func NewRouter(profiles *ProfileHandler, users appMiddleware.UserLookup, stager *storage.Stager) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	parseForm := appMiddleware.ParseProfileForm(stager)

	r.Route("/profile", func(r chi.Router) {
		r.With(parseForm, appMiddleware.VerifyUser(users)).Post("/", profiles.CreateProfile)
		r.Get("/{uid}", profiles.GetProfile)
		r.With(parseForm).Put("/{uid}", profiles.UpdateProfile)
	})

	return r
}
