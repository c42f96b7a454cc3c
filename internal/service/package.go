// Package service contains the business logic for the Wanderlust Travel API.
// Services validate inputs, enforce the aggregate composition rules, and
// orchestrate repo calls. No SQL lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/monu322/travel-agency-app/internal/domain"
	"github.com/monu322/travel-agency-app/internal/repo"
)

// PackageService implements the package aggregate operations.
// It holds all three repos because reads compose the parent with its
// ordered children, and child writes require a parent existence check.
type PackageService struct {
	packages    repo.PackageRepo
	itineraries repo.ItineraryRepo
	images      repo.ImageRepo
	log         *slog.Logger
}

// NewPackageService constructs a PackageService backed by the provided repos.
// A nil logger falls back to slog.Default.
func NewPackageService(packages repo.PackageRepo, itineraries repo.ItineraryRepo, images repo.ImageRepo, log *slog.Logger) *PackageService {
	if log == nil {
		log = slog.Default()
	}
	return &PackageService{
		packages:    packages,
		itineraries: itineraries,
		images:      images,
		log:         log,
	}
}

// List returns one page of package summaries matching the filter, ordered by
// creation time descending. Children are never included in list results.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PackageService) List(ctx context.Context, f domain.PackageFilter, p domain.ListParams) ([]domain.PackageSummary, error) {
	summaries, err := s.packages.List(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("service.PackageService.List: %w", err)
	}
	if summaries == nil {
		return []domain.PackageSummary{}, nil
	}
	return summaries, nil
}

// Get returns a single package composed with its full ordered children:
// itinerary items by day_number ascending, images by display_order ascending.
// Returns domain.ErrNotFound if the package does not exist; in that case no
// child queries are issued. Absent children yield empty slices, not errors.
func (s *PackageService) Get(ctx context.Context, id uuid.UUID) (domain.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return domain.Package{}, fmt.Errorf("service.PackageService.Get: %w", err)
	}

	items, err := s.itineraries.ListByPackageID(ctx, id)
	if err != nil {
		return domain.Package{}, fmt.Errorf("service.PackageService.Get: %w", err)
	}
	if items == nil {
		items = []domain.ItineraryItem{}
	}
	pkg.Itinerary = items

	images, err := s.images.ListByPackageID(ctx, id)
	if err != nil {
		return domain.Package{}, fmt.Errorf("service.PackageService.Get: %w", err)
	}
	if images == nil {
		images = []domain.PackageImage{}
	}
	pkg.Images = images

	return pkg, nil
}

// Create validates and persists a new package together with its optional
// itinerary items and images, then returns the fully composed aggregate.
//
// The write is deliberately non-transactional: the parent row is inserted
// first, then each child is inserted sequentially and independently. A
// failed child insert does not roll back the parent or earlier children —
// it is logged and skipped, and the final re-read reflects whatever was
// actually persisted.
func (s *PackageService) Create(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	normalizePackage(&pkg)
	if err := validatePackage(pkg); err != nil {
		return domain.Package{}, err
	}

	created, err := s.packages.Insert(ctx, pkg)
	if err != nil {
		return domain.Package{}, fmt.Errorf("service.PackageService.Create: %w", err)
	}

	for i, item := range pkg.Itinerary {
		item.PackageID = created.ID
		if _, err := s.itineraries.Insert(ctx, item); err != nil {
			s.log.WarnContext(ctx, "itinerary insert failed during package create",
				"package_id", created.ID,
				"index", i,
				"day_number", item.DayNumber,
				"error", err,
			)
		}
	}

	for i, img := range pkg.Images {
		img.PackageID = created.ID
		if _, err := s.images.Insert(ctx, img); err != nil {
			s.log.WarnContext(ctx, "image insert failed during package create",
				"package_id", created.ID,
				"index", i,
				"error", err,
			)
		}
	}

	return s.Get(ctx, created.ID)
}

// Update applies a partial update to an existing package and returns the
// fully composed result.
// Returns domain.ErrNotFound if the package does not exist, domain.ErrNoFields
// if no field at all was provided (checked before any write), and
// domain.ErrValidation if a provided field violates a business rule.
func (s *PackageService) Update(ctx context.Context, id uuid.UUID, u domain.PackageUpdate) (domain.Package, error) {
	exists, err := s.packages.Exists(ctx, id)
	if err != nil {
		return domain.Package{}, fmt.Errorf("service.PackageService.Update: %w", err)
	}
	if !exists {
		return domain.Package{}, fmt.Errorf("service.PackageService.Update: %w", domain.ErrNotFound)
	}

	if u.IsEmpty() {
		return domain.Package{}, fmt.Errorf("service.PackageService.Update: %w", domain.ErrNoFields)
	}
	if err := validatePackageUpdate(u); err != nil {
		return domain.Package{}, err
	}

	if err := s.packages.Update(ctx, id, u); err != nil {
		return domain.Package{}, fmt.Errorf("service.PackageService.Update: %w", err)
	}

	return s.Get(ctx, id)
}

// Archive soft-deletes a package by transitioning its status to archived.
// Archiving an already-archived package succeeds silently.
// Returns domain.ErrNotFound if the package does not exist.
func (s *PackageService) Archive(ctx context.Context, id uuid.UUID) error {
	exists, err := s.packages.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("service.PackageService.Archive: %w", err)
	}
	if !exists {
		return fmt.Errorf("service.PackageService.Archive: %w", domain.ErrNotFound)
	}

	if err := s.packages.SetStatus(ctx, id, domain.StatusArchived); err != nil {
		return fmt.Errorf("service.PackageService.Archive: %w", err)
	}
	return nil
}

// AddItineraryItem verifies the parent package exists, force-sets the item's
// PackageID, and persists it.
// Returns domain.ErrNotFound if the package does not exist and
// domain.ErrValidation if the item title is empty.
func (s *PackageService) AddItineraryItem(ctx context.Context, packageID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	exists, err := s.packages.Exists(ctx, packageID)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.PackageService.AddItineraryItem: %w", err)
	}
	if !exists {
		return domain.ItineraryItem{}, fmt.Errorf("service.PackageService.AddItineraryItem: %w", domain.ErrNotFound)
	}

	if strings.TrimSpace(item.Title) == "" {
		return domain.ItineraryItem{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	item.PackageID = packageID
	result, err := s.itineraries.Insert(ctx, item)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.PackageService.AddItineraryItem: %w", err)
	}
	return result, nil
}

// RemoveItineraryItem deletes the item matching both keys.
// Removing an item that does not exist is a successful no-op.
func (s *PackageService) RemoveItineraryItem(ctx context.Context, packageID, itemID uuid.UUID) error {
	if err := s.itineraries.Delete(ctx, packageID, itemID); err != nil {
		return fmt.Errorf("service.PackageService.RemoveItineraryItem: %w", err)
	}
	return nil
}

// AddImage verifies the parent package exists, force-sets the image's
// PackageID, and persists it.
// Returns domain.ErrNotFound if the package does not exist and
// domain.ErrValidation if the image URL is empty.
func (s *PackageService) AddImage(ctx context.Context, packageID uuid.UUID, img domain.PackageImage) (domain.PackageImage, error) {
	exists, err := s.packages.Exists(ctx, packageID)
	if err != nil {
		return domain.PackageImage{}, fmt.Errorf("service.PackageService.AddImage: %w", err)
	}
	if !exists {
		return domain.PackageImage{}, fmt.Errorf("service.PackageService.AddImage: %w", domain.ErrNotFound)
	}

	if strings.TrimSpace(img.ImageURL) == "" {
		return domain.PackageImage{}, fmt.Errorf("%w: image_url is required", domain.ErrValidation)
	}

	img.PackageID = packageID
	result, err := s.images.Insert(ctx, img)
	if err != nil {
		return domain.PackageImage{}, fmt.Errorf("service.PackageService.AddImage: %w", err)
	}
	return result, nil
}

// RemoveImage deletes the image matching both keys.
// Removing an image that does not exist is a successful no-op.
func (s *PackageService) RemoveImage(ctx context.Context, packageID, imageID uuid.UUID) error {
	if err := s.images.Delete(ctx, packageID, imageID); err != nil {
		return fmt.Errorf("service.PackageService.RemoveImage: %w", err)
	}
	return nil
}

// normalizePackage fills in creation defaults: status draft, 20 max guests.
func normalizePackage(pkg *domain.Package) {
	if pkg.Status == "" {
		pkg.Status = domain.StatusDraft
	}
	if pkg.MaxGuests == 0 {
		pkg.MaxGuests = 20
	}
}

// validatePackage enforces the create-time business rules:
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - DurationDays must be at least 1.
//   - Price must not be negative.
//   - MaxGuests must be at least 1.
//   - Status must be one of the four recognised values.
func validatePackage(pkg domain.Package) error {
	if strings.TrimSpace(pkg.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if pkg.DurationDays < 1 {
		return fmt.Errorf("%w: duration_days must be at least 1", domain.ErrValidation)
	}
	if pkg.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if pkg.MaxGuests < 1 {
		return fmt.Errorf("%w: max_guests must be at least 1", domain.ErrValidation)
	}
	if !pkg.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", domain.ErrValidation, pkg.Status)
	}
	return nil
}

// validatePackageUpdate enforces the same rules as validatePackage, but only
// for the fields that were actually provided.
func validatePackageUpdate(u domain.PackageUpdate) error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
	}
	if u.DurationDays != nil && *u.DurationDays < 1 {
		return fmt.Errorf("%w: duration_days must be at least 1", domain.ErrValidation)
	}
	if u.Price != nil && *u.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if u.MaxGuests != nil && *u.MaxGuests < 1 {
		return fmt.Errorf("%w: max_guests must be at least 1", domain.ErrValidation)
	}
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", domain.ErrValidation, *u.Status)
	}
	return nil
}
