package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"matrimony-be/internal/domain"
)

type SavedProfileRepository interface {
	Save(ctx context.Context, saved *domain.SavedProfile) (bool, error)
	Unsave(ctx context.Context, userID, profileID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.SavedProfile, int64, error)
	Exists(ctx context.Context, userID, profileID uuid.UUID) (bool, error)
}

type savedProfileRepository struct {
	db *sqlx.DB
}

func NewSavedProfileRepository(db *sqlx.DB) SavedProfileRepository {
	return &savedProfileRepository{db: db}
}

// Save inserts the bookmark, ignoring a concurrent duplicate. The false
// return means the pair was already saved.
func (r *savedProfileRepository) Save(ctx context.Context, saved *domain.SavedProfile) (bool, error) {
	query := `
		INSERT INTO saved_profiles (saved_profile_id, user_id, profile_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, profile_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, saved.ID, saved.UserID, saved.ProfileID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *savedProfileRepository) Unsave(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	query := `DELETE FROM saved_profiles WHERE user_id = $1 AND profile_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, profileID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *savedProfileRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.SavedProfile, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM saved_profiles WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	var saved []domain.SavedProfile
	query := `
		SELECT * FROM saved_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &saved, query, userID, params.PageSize, params.Offset())
	return saved, total, err
}

func (r *savedProfileRepository) Exists(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM saved_profiles WHERE user_id = $1 AND profile_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, userID, profileID)
	return exists, err
}
