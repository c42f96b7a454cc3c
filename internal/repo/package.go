// Package repo contains all database access logic for the Wanderlust Travel API.
// Each table has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/monu322/travel-agency-app/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PackageRepo defines the persistence operations for travel packages.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type PackageRepo interface {
	// Insert writes a new package row and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated). The Itinerary
	// and Images slices on the input are ignored — children are persisted
	// through their own repos.
	Insert(ctx context.Context, pkg domain.Package) (domain.Package, error)

	// GetByID retrieves a single package row by its UUID primary key.
	// Children are not fetched. Returns domain.ErrNotFound if no package
	// with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error)

	// Exists reports whether a package with the given ID exists.
	// Used by write paths that need an existence check without the full row.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// List returns one page of package summaries matching the filter,
	// ordered by created_at descending.
	List(ctx context.Context, f domain.PackageFilter, p domain.ListParams) ([]domain.PackageSummary, error)

	// Update applies the non-nil fields of u to the package row and bumps
	// updated_at. Returns domain.ErrNotFound if no row was affected.
	Update(ctx context.Context, id uuid.UUID, u domain.PackageUpdate) error

	// SetStatus transitions the package status. Returns domain.ErrNotFound
	// if no row was affected.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

// pgPackageRepo is the Postgres implementation of PackageRepo.
type pgPackageRepo struct {
	db db
}

// NewPackageRepo constructs a PackageRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPackageRepo(db db) PackageRepo {
	return &pgPackageRepo{db: db}
}

const packageColumns = `id, title, description, duration_days, price, max_guests,
		status, cover_image, start_date, end_date, location, is_featured,
		created_at, updated_at`

// Insert writes a new package row and returns the full persisted record.
func (r *pgPackageRepo) Insert(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	const q = `
		INSERT INTO packages (title, description, duration_days, price, max_guests,
		                      status, cover_image, start_date, end_date, location, is_featured)
		VALUES (@title, @description, @duration_days, @price, @max_guests,
		        @status, @cover_image, @start_date, @end_date, @location, @is_featured)
		RETURNING ` + packageColumns

	args := pgx.NamedArgs{
		"title":         pkg.Title,
		"description":   pkg.Description,
		"duration_days": pkg.DurationDays,
		"price":         pkg.Price,
		"max_guests":    pkg.MaxGuests,
		"status":        string(pkg.Status),
		"cover_image":   pkg.CoverImage,
		"start_date":    pkg.StartDate, // nil becomes NULL
		"end_date":      pkg.EndDate,
		"location":      pkg.Location,
		"is_featured":   pkg.IsFeatured,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPackage(row)
	if err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.Insert: %w", err)
	}
	return result, nil
}

// GetByID retrieves a package row by primary key. Children are not fetched.
func (r *pgPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error) {
	const q = `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanPackage(row)
	if err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.GetByID: %w", err)
	}
	return result, nil
}

// Exists reports whether a package row with the given ID exists.
func (r *pgPackageRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM packages WHERE id = @id)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.PackageRepo.Exists: %w", err)
	}
	return exists, nil
}

// List returns one page of summaries ordered by created_at descending.
// Filters are applied conjunctively; nil filter fields match everything.
func (r *pgPackageRepo) List(ctx context.Context, f domain.PackageFilter, p domain.ListParams) ([]domain.PackageSummary, error) {
	q := `
		SELECT id, title, duration_days, price, status, cover_image,
		       start_date, end_date, location, is_featured, created_at
		FROM packages
		WHERE 1=1`
	args := pgx.NamedArgs{
		"limit":  p.Limit,
		"offset": p.Offset,
	}

	if f.Status != nil {
		q += ` AND status = @status`
		args["status"] = string(*f.Status)
	}
	if f.Featured != nil {
		q += ` AND is_featured = @is_featured`
		args["is_featured"] = *f.Featured
	}

	q += `
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.List: %w", err)
	}
	defer rows.Close()

	summaries := []domain.PackageSummary{}
	for rows.Next() {
		s, err := scanPackageSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackageRepo.List: scan: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.List: rows: %w", err)
	}
	return summaries, nil
}

// Update builds a SET clause from the non-nil fields of u and applies it.
// Callers must ensure u is not empty — an empty update is a programming
// error here, caught by the service's ErrNoFields check.
func (r *pgPackageRepo) Update(ctx context.Context, id uuid.UUID, u domain.PackageUpdate) error {
	set := []string{"updated_at = now()"}
	args := pgx.NamedArgs{"id": id}

	add := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = @%s", column, column))
		args[column] = value
	}

	if u.Title != nil {
		add("title", *u.Title)
	}
	if u.Description != nil {
		add("description", *u.Description)
	}
	if u.DurationDays != nil {
		add("duration_days", *u.DurationDays)
	}
	if u.Price != nil {
		add("price", *u.Price)
	}
	if u.MaxGuests != nil {
		add("max_guests", *u.MaxGuests)
	}
	if u.Status != nil {
		add("status", string(*u.Status))
	}
	if u.CoverImage != nil {
		add("cover_image", *u.CoverImage)
	}
	if u.StartDate != nil {
		add("start_date", *u.StartDate)
	}
	if u.EndDate != nil {
		add("end_date", *u.EndDate)
	}
	if u.Location != nil {
		add("location", *u.Location)
	}
	if u.IsFeatured != nil {
		add("is_featured", *u.IsFeatured)
	}

	q := `UPDATE packages SET ` + strings.Join(set, ", ") + ` WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.PackageRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackageRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// SetStatus transitions the package status and bumps updated_at.
func (r *pgPackageRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	const q = `
		UPDATE packages
		SET status = @status, updated_at = now()
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return fmt.Errorf("repo.PackageRepo.SetStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackageRepo.SetStatus: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPackage maps a single database row into a domain.Package.
// It handles the UUID and nullable date conversions.
func scanPackage(s scanner) (domain.Package, error) {
	var (
		p         domain.Package
		id        pgtype.UUID
		status    string
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(&id, &p.Title, &p.Description, &p.DurationDays, &p.Price,
		&p.MaxGuests, &status, &p.CoverImage, &startDate, &endDate,
		&p.Location, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Package{}, domain.ErrNotFound
		}
		return domain.Package{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.Status = domain.Status(status)
	if startDate.Valid {
		sd := startDate.Time
		p.StartDate = &sd
	}
	if endDate.Valid {
		ed := endDate.Time
		p.EndDate = &ed
	}

	return p, nil
}

// scanPackageSummary maps a single list-projection row into a domain.PackageSummary.
func scanPackageSummary(s scanner) (domain.PackageSummary, error) {
	var (
		sum       domain.PackageSummary
		id        pgtype.UUID
		status    string
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(&id, &sum.Title, &sum.DurationDays, &sum.Price, &status,
		&sum.CoverImage, &startDate, &endDate, &sum.Location,
		&sum.IsFeatured, &sum.CreatedAt)
	if err != nil {
		return domain.PackageSummary{}, err
	}

	sum.ID = uuid.UUID(id.Bytes)
	sum.Status = domain.Status(status)
	if startDate.Valid {
		sd := startDate.Time
		sum.StartDate = &sd
	}
	if endDate.Valid {
		ed := endDate.Time
		sum.EndDate = &ed
	}

	return sum, nil
}
