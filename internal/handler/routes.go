package handler

import (
	"github.com/go-chi/chi/v5"
)

// Routes builds the chi router for the full API surface.
// Package endpoints live under /api/v1/packages; the root, health, and
// documentation endpoints are served at the top level.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.Root)
	r.Get("/health", s.Health)
	r.Get("/openapi.yaml", s.OpenAPI)
	r.Get("/docs", s.Docs)

	r.Route("/api/v1/packages", func(r chi.Router) {
		r.Get("/", s.ListPackages)
		r.Post("/", s.CreatePackage)

		r.Route("/{packageID}", func(r chi.Router) {
			r.Get("/", s.GetPackage)
			r.Put("/", s.UpdatePackage)
			r.Delete("/", s.DeletePackage)

			r.Post("/itinerary", s.AddItineraryItem)
			r.Delete("/itinerary/{itineraryID}", s.DeleteItineraryItem)

			r.Post("/images", s.AddPackageImage)
			r.Delete("/images/{imageID}", s.DeletePackageImage)
		})
	})

	return r
}
