package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/monu322/travel-agency-app/internal/domain"
)

// ItineraryRepo defines the persistence operations for itinerary items.
// All operations are scoped by package ID where a parent is involved.
type ItineraryRepo interface {
	// Insert writes a new itinerary item and returns the persisted record.
	Insert(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)

	// ListByPackageID returns all itinerary items for a package ordered by
	// day_number ascending. Returns an empty slice when there are none.
	ListByPackageID(ctx context.Context, packageID uuid.UUID) ([]domain.ItineraryItem, error)

	// Delete removes the item matching both keys. Deleting a row that does
	// not exist is not an error — the delete is idempotent by absence.
	Delete(ctx context.Context, packageID, itemID uuid.UUID) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

// Insert writes a new itinerary item row and returns the full persisted record.
func (r *pgItineraryRepo) Insert(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	const q = `
		INSERT INTO itineraries (package_id, day_number, title, description)
		VALUES (@package_id, @day_number, @title, @description)
		RETURNING id, package_id, day_number, title, description, created_at, updated_at`

	args := pgx.NamedArgs{
		"package_id":  item.PackageID,
		"day_number":  item.DayNumber,
		"title":       item.Title,
		"description": item.Description,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanItineraryItem(row)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Insert: %w", err)
	}
	return result, nil
}

// ListByPackageID returns all itinerary items for a package, day_number ascending.
func (r *pgItineraryRepo) ListByPackageID(ctx context.Context, packageID uuid.UUID) ([]domain.ItineraryItem, error) {
	const q = `
		SELECT id, package_id, day_number, title, description, created_at, updated_at
		FROM itineraries
		WHERE package_id = @package_id
		ORDER BY day_number`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"package_id": packageID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByPackageID: %w", err)
	}
	defer rows.Close()

	items := []domain.ItineraryItem{}
	for rows.Next() {
		item, err := scanItineraryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListByPackageID: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByPackageID: rows: %w", err)
	}
	return items, nil
}

// Delete removes the item matching both keys. A zero-row result is success.
func (r *pgItineraryRepo) Delete(ctx context.Context, packageID, itemID uuid.UUID) error {
	const q = `
		DELETE FROM itineraries
		WHERE id = @id
		  AND package_id = @package_id`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "package_id": packageID})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	return nil
}

// scanItineraryItem maps a single database row into a domain.ItineraryItem.
func scanItineraryItem(s scanner) (domain.ItineraryItem, error) {
	var (
		item      domain.ItineraryItem
		id        pgtype.UUID
		packageID pgtype.UUID
	)
	err := s.Scan(&id, &packageID, &item.DayNumber, &item.Title,
		&item.Description, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ItineraryItem{}, domain.ErrNotFound
		}
		return domain.ItineraryItem{}, err
	}
	item.ID = uuid.UUID(id.Bytes)
	item.PackageID = uuid.UUID(packageID.Bytes)
	return item, nil
}
