package domain

import (
	"time"

	"github.com/google/uuid"
)

// PackageImage represents one entry in a package's photo gallery.
// DisplayOrder controls presentation order; lower values render first.
// PackageID is always assigned by the service from the parent package.
type PackageImage struct {
	ID           uuid.UUID
	PackageID    uuid.UUID
	ImageURL     string
	Caption      string
	DisplayOrder int
	CreatedAt    time.Time
}
