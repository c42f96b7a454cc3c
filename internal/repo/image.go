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

// ImageRepo defines the persistence operations for package gallery images.
type ImageRepo interface {
	// Insert writes a new image row and returns the persisted record.
	Insert(ctx context.Context, img domain.PackageImage) (domain.PackageImage, error)

	// ListByPackageID returns all images for a package ordered by
	// display_order ascending. Returns an empty slice when there are none.
	ListByPackageID(ctx context.Context, packageID uuid.UUID) ([]domain.PackageImage, error)

	// Delete removes the image matching both keys. Deleting a row that does
	// not exist is not an error — the delete is idempotent by absence.
	Delete(ctx context.Context, packageID, imageID uuid.UUID) error
}

// pgImageRepo is the Postgres implementation of ImageRepo.
type pgImageRepo struct {
	db db
}

// NewImageRepo constructs an ImageRepo backed by the provided db connection.
func NewImageRepo(db db) ImageRepo {
	return &pgImageRepo{db: db}
}

// Insert writes a new image row and returns the full persisted record.
func (r *pgImageRepo) Insert(ctx context.Context, img domain.PackageImage) (domain.PackageImage, error) {
	const q = `
		INSERT INTO package_images (package_id, image_url, caption, display_order)
		VALUES (@package_id, @image_url, @caption, @display_order)
		RETURNING id, package_id, image_url, caption, display_order, created_at`

	args := pgx.NamedArgs{
		"package_id":    img.PackageID,
		"image_url":     img.ImageURL,
		"caption":       img.Caption,
		"display_order": img.DisplayOrder,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPackageImage(row)
	if err != nil {
		return domain.PackageImage{}, fmt.Errorf("repo.ImageRepo.Insert: %w", err)
	}
	return result, nil
}

// ListByPackageID returns all images for a package, display_order ascending.
func (r *pgImageRepo) ListByPackageID(ctx context.Context, packageID uuid.UUID) ([]domain.PackageImage, error) {
	const q = `
		SELECT id, package_id, image_url, caption, display_order, created_at
		FROM package_images
		WHERE package_id = @package_id
		ORDER BY display_order`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"package_id": packageID})
	if err != nil {
		return nil, fmt.Errorf("repo.ImageRepo.ListByPackageID: %w", err)
	}
	defer rows.Close()

	images := []domain.PackageImage{}
	for rows.Next() {
		img, err := scanPackageImage(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ImageRepo.ListByPackageID: scan: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ImageRepo.ListByPackageID: rows: %w", err)
	}
	return images, nil
}

// Delete removes the image matching both keys. A zero-row result is success.
func (r *pgImageRepo) Delete(ctx context.Context, packageID, imageID uuid.UUID) error {
	const q = `
		DELETE FROM package_images
		WHERE id = @id
		  AND package_id = @package_id`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": imageID, "package_id": packageID})
	if err != nil {
		return fmt.Errorf("repo.ImageRepo.Delete: %w", err)
	}
	return nil
}

// scanPackageImage maps a single database row into a domain.PackageImage.
func scanPackageImage(s scanner) (domain.PackageImage, error) {
	var (
		img       domain.PackageImage
		id        pgtype.UUID
		packageID pgtype.UUID
	)
	err := s.Scan(&id, &packageID, &img.ImageURL, &img.Caption,
		&img.DisplayOrder, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PackageImage{}, domain.ErrNotFound
		}
		return domain.PackageImage{}, err
	}
	img.ID = uuid.UUID(id.Bytes)
	img.PackageID = uuid.UUID(packageID.Bytes)
	return img, nil
}
