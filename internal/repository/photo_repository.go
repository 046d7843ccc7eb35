package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"matrimony-be/internal/domain"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Photo, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetMain(ctx context.Context, profileID, photoID uuid.UUID) error
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
}

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	query := `
		INSERT INTO photos (photo_id, profile_id, storage_path, file_name, file_size, mime_type, is_main, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		photo.ID, photo.ProfileID, photo.StoragePath, photo.FileName,
		photo.FileSize, photo.MimeType, photo.IsMain, photo.IsApproved,
	).Scan(&photo.CreatedAt)
}

func (r *photoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	var photo domain.Photo
	query := `SELECT * FROM photos WHERE photo_id = $1`

	err := r.db.GetContext(ctx, &photo, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Photo, error) {
	var photos []domain.Photo
	query := `SELECT * FROM photos WHERE profile_id = $1 ORDER BY is_main DESC, created_at ASC`

	err := r.db.SelectContext(ctx, &photos, query, profileID)
	return photos, err
}

func (r *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM photos WHERE photo_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// SetMain un-mains any sibling and mains the target in one transaction; the
// partial unique index on (profile_id) WHERE is_main backs this up.
func (r *photoRepository) SetMain(ctx context.Context, profileID, photoID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	clearQuery := `UPDATE photos SET is_main = FALSE WHERE profile_id = $1 AND is_main`
	if _, err := tx.ExecContext(ctx, clearQuery, profileID); err != nil {
		return err
	}

	setQuery := `UPDATE photos SET is_main = TRUE WHERE photo_id = $1 AND profile_id = $2`
	result, err := tx.ExecContext(ctx, setQuery, photoID, profileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}

	return tx.Commit()
}

func (r *photoRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	query := `UPDATE photos SET is_approved = $2 WHERE photo_id = $1`
	result, err := r.db.ExecContext(ctx, query, id, approved)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}
