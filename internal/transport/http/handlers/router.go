package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vedran77/barter/internal/transport/http/middleware"
)

// Router wires every route to its handler. All routes except the welcome
// page, health check and the auth endpoints require a bearer token.
func Router(auth *AuthHandler, profile *ProfileHandler, products *ProductHandler, offers *OfferHandler, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Barter App!"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", auth.Register)
		r.Post("/login", auth.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret))

		r.Route("/profile", func(r chi.Router) {
			r.Put("/update_interests/{user_id}", profile.UpdateInterests)
			r.Put("/update_profile_picture/{user_id}", profile.UpdateProfilePicture)
			r.Put("/update_user", profile.UpdateUser)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", products.Create)
			r.Put("/", products.Update)
			r.Get("/owner/{owner_id}", products.ListByOwner)
			r.Get("/{id}", products.Get)
			r.Delete("/{id}", products.Delete)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Post("/", offers.Create)
			r.Put("/", offers.Update)
			r.Get("/{id}", offers.Get)
			r.Delete("/{id}", offers.Delete)
			r.Patch("/{id}/accept", offers.Accept)
			r.Patch("/{id}/reject", offers.Reject)
		})
	})

	return r
}
