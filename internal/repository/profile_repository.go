package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"matrimony-be/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Approve(ctx context.Context, id, adminID uuid.UUID) (bool, error)
	Refuse(ctx context.Context, id, adminID uuid.UUID, reason *string) (bool, error)
	ListByStatus(ctx context.Context, status *domain.ProfileStatus, params domain.PaginationParams) ([]domain.Profile, int64, error)
	ListApprovedSummaries(ctx context.Context, params domain.PaginationParams) ([]domain.ProfileSummary, int64, error)
	GetSummaryByUserID(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error)
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (profile_id, user_id, sex, birthday, district, religion, caste,
			education, occupation, height_cm, marital_status, about_me, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		profile.ID, profile.UserID, profile.Sex, profile.Birthday, profile.District,
		profile.Religion, profile.Caste, profile.Education, profile.Occupation,
		profile.HeightCM, profile.MaritalStatus, profile.AboutMe, profile.Status,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if isUniqueViolation(err, "profiles_user_id_key") {
		return domain.ErrProfileExists
	}
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE profile_id = $1`

	err := withRetry(ctx, func() error {
		return r.db.GetContext(ctx, &profile, query, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update writes the editable content fields together with the status, so an
// owner edit and its pending reset land in one statement.
func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET district = :district, religion = :religion, caste = :caste,
			education = :education, occupation = :occupation, height_cm = :height_cm,
			marital_status = :marital_status, about_me = :about_me, status = :status,
			approved_at = :approved_at, approved_by = :approved_by,
			rejected_at = :rejected_at, rejected_by = :rejected_by,
			rejection_reason = :rejection_reason, updated_at = NOW()
		WHERE profile_id = :profile_id`

	_, err := r.db.NamedExecContext(ctx, query, profile)
	return err
}

// Approve flips a pending profile to approved and stamps the reviewer. The
// conditional update makes a second approval report false instead of
// silently rewriting the stamp.
func (r *profileRepository) Approve(ctx context.Context, id, adminID uuid.UUID) (bool, error) {
	query := `
		UPDATE profiles
		SET status = 'approved', approved_at = NOW(), approved_by = $2,
			rejected_at = NULL, rejected_by = NULL, rejection_reason = NULL,
			updated_at = NOW()
		WHERE profile_id = $1 AND status = 'pending'`

	var rows int64
	err := withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, id, adminID)
		if err != nil {
			return err
		}
		rows, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *profileRepository) Refuse(ctx context.Context, id, adminID uuid.UUID, reason *string) (bool, error) {
	query := `
		UPDATE profiles
		SET status = 'refused', rejected_at = NOW(), rejected_by = $2, rejection_reason = $3,
			approved_at = NULL, approved_by = NULL, updated_at = NOW()
		WHERE profile_id = $1 AND status = 'pending'`

	var rows int64
	err := withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, id, adminID, reason)
		if err != nil {
			return err
		}
		rows, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *profileRepository) ListByStatus(ctx context.Context, status *domain.ProfileStatus, params domain.PaginationParams) ([]domain.Profile, int64, error) {
	params.Validate()

	var total int64
	var profiles []domain.Profile

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM profiles WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM profiles
			WHERE status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &profiles, query, *status, params.PageSize, params.Offset())
		return profiles, total, err
	}

	countQuery := `SELECT COUNT(*) FROM profiles`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM profiles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &profiles, query, params.PageSize, params.Offset())
	return profiles, total, err
}

func (r *profileRepository) ListApprovedSummaries(ctx context.Context, params domain.PaginationParams) ([]domain.ProfileSummary, int64, error) {
	params.Validate()

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.status = 'approved' AND u.is_active AND u.deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var summaries []domain.ProfileSummary
	query := `
		SELECT p.profile_id, p.user_id, u.full_name, p.sex, p.birthday, p.district,
			p.religion, p.occupation, ph.storage_path AS main_photo_url
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
		LEFT JOIN photos ph ON ph.profile_id = p.profile_id AND ph.is_main AND ph.is_approved
		WHERE p.status = 'approved' AND u.is_active AND u.deleted_at IS NULL
		ORDER BY p.approved_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &summaries, query, params.PageSize, params.Offset())
	return summaries, total, err
}

func (r *profileRepository) GetSummaryByUserID(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error) {
	var summary domain.ProfileSummary
	query := `
		SELECT p.profile_id, p.user_id, u.full_name, p.sex, p.birthday, p.district,
			p.religion, p.occupation, ph.storage_path AS main_photo_url
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
		LEFT JOIN photos ph ON ph.profile_id = p.profile_id AND ph.is_main AND ph.is_approved
		WHERE p.user_id = $1`

	err := r.db.GetContext(ctx, &summary, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
