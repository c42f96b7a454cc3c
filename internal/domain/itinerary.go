package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryItem represents a single day entry in a package's itinerary.
// PackageID is always assigned by the service from the parent package —
// caller-supplied values are overwritten before persistence.
type ItineraryItem struct {
	ID          uuid.UUID
	PackageID   uuid.UUID
	DayNumber   int
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
