// Package domain contains the core data types for the Wanderlust Travel API.
// This package has zero external dependencies beyond the UUID type and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a travel package.
// Deleting a package never removes the row — it transitions the status to
// StatusArchived.
type Status string

const (
	StatusActive   Status = "active"
	StatusDraft    Status = "draft"
	StatusSoldOut  Status = "sold_out"
	StatusArchived Status = "archived"
)

// Valid reports whether s is one of the four recognised status values.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDraft, StatusSoldOut, StatusArchived:
		return true
	}
	return false
}

// Package represents a travel package offered by the agency.
// A package is the top-level aggregate; itinerary items and gallery images
// belong to a package. The Itinerary and Images slices are populated only
// on single-package reads — list projections never carry children.
type Package struct {
	ID           uuid.UUID
	Title        string
	Description  string
	DurationDays int
	Price        float64
	MaxGuests    int
	Status       Status
	CoverImage   string
	StartDate    *time.Time // date precision; nil when not scheduled
	EndDate      *time.Time
	Location     string
	IsFeatured   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Itinerary []ItineraryItem
	Images    []PackageImage
}

// PackageSummary is the light projection returned by list queries.
// It carries the fields needed to render a package card and never
// includes itinerary or image children.
type PackageSummary struct {
	ID           uuid.UUID
	Title        string
	DurationDays int
	Price        float64
	Status       Status
	CoverImage   string
	StartDate    *time.Time
	EndDate      *time.Time
	Location     string
	IsFeatured   bool
	CreatedAt    time.Time
}
