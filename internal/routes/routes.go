package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AnshRaj112/guildhall-backend/internal/handlers"
)

// SetupRoutes mounts the operational routes directly on r and the API behind
// apiMiddlewares, so rate limits and host checks never reach /health or /metrics.
func SetupRoutes(r chi.Router, h *handlers.Handler, gatherer prometheus.Gatherer, apiMiddlewares ...func(http.Handler) http.Handler) {
	r.Get("/health", h.Health)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(apiMiddlewares...)
		apiRoutes(r, h)
	})
}

func apiRoutes(r chi.Router, h *handlers.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{id}", h.GetUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
		r.Get("/{id}/groups", h.ListUserGroups)
	})

	r.Route("/groups", func(r chi.Router) {
		r.Get("/", h.ListGroups)
		r.Post("/", h.CreateGroup)
		r.Get("/{id}", h.GetGroup)
		r.Put("/{id}", h.UpdateGroup)
		r.Delete("/{id}", h.DeleteGroup)

		r.Get("/{id}/members", h.ListMembers)
		r.Post("/{id}/members", h.AddMember)
		r.Get("/{id}/members/{userId}", h.GetMember)
		r.Put("/{id}/members/{userId}", h.UpdateMember)
		r.Delete("/{id}/members/{userId}", h.RemoveMember)
	})

	// "profils" is the path existing clients use.
	r.Route("/profils", func(r chi.Router) {
		r.Get("/", h.ListProfiles)
		r.Post("/", h.CreateProfile)
		r.Get("/{id}", h.GetProfile)
		r.Put("/{id}", h.UpdateProfile)
		r.Delete("/{id}", h.DeleteProfile)
		r.Post("/{id}/image", h.UploadProfileImage)
	})
}
