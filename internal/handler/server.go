// Package handler implements the HTTP handlers for the Wanderlust Travel API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (package.go, itinerary.go, image.go, health.go) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/monu322/travel-agency-app/internal/domain"
)

// PackageServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type PackageServicer interface {
	List(ctx context.Context, f domain.PackageFilter, p domain.ListParams) ([]domain.PackageSummary, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Package, error)
	Create(ctx context.Context, pkg domain.Package) (domain.Package, error)
	Update(ctx context.Context, id uuid.UUID, u domain.PackageUpdate) (domain.Package, error)
	Archive(ctx context.Context, id uuid.UUID) error
	AddItineraryItem(ctx context.Context, packageID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error)
	RemoveItineraryItem(ctx context.Context, packageID, itemID uuid.UUID) error
	AddImage(ctx context.Context, packageID uuid.UUID, img domain.PackageImage) (domain.PackageImage, error)
	RemoveImage(ctx context.Context, packageID, imageID uuid.UUID) error
}

// Pinger is the slice of *pgxpool.Pool the health endpoint needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go via Server.Routes().
type Server struct {
	packages PackageServicer
	db       Pinger
}

// NewServer constructs the Server with all its dependencies.
// db may be nil in tests that do not exercise the health endpoint.
func NewServer(packages PackageServicer, db Pinger) *Server {
	return &Server{packages: packages, db: db}
}
