package domain

import "time"

// PackageUpdate carries a partial update for a package.
// Every field is a pointer: nil means "not provided, leave unchanged",
// non-nil means "set to this value". This distinguishes an absent field
// from an explicit zero value, which a flat struct cannot express.
type PackageUpdate struct {
	Title        *string
	Description  *string
	DurationDays *int
	Price        *float64
	MaxGuests    *int
	Status       *Status
	CoverImage   *string
	StartDate    *time.Time
	EndDate      *time.Time
	Location     *string
	IsFeatured   *bool
}

// IsEmpty reports whether no field at all was provided.
// The service rejects empty updates before issuing any write.
func (u PackageUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.DurationDays == nil &&
		u.Price == nil &&
		u.MaxGuests == nil &&
		u.Status == nil &&
		u.CoverImage == nil &&
		u.StartDate == nil &&
		u.EndDate == nil &&
		u.Location == nil &&
		u.IsFeatured == nil
}
