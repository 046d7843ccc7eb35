package saved

import (
	"context"

	"github.com/google/uuid"

	"matrimony-be/internal/config"
	"matrimony-be/internal/domain"
	"matrimony-be/internal/repository"
	"matrimony-be/internal/service/photo"
)

// Service manages a user's shortlist of profiles. Save and Unsave are
// idempotent: repeating either is a no-op, not an error.
type Service interface {
	Save(ctx context.Context, userID, profileID uuid.UUID) error
	Unsave(ctx context.Context, userID, profileID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.SavedProfile], error)
}

type service struct {
	savedRepo   repository.SavedProfileRepository
	profileRepo repository.ProfileRepository
	cfg         *config.Config
}

func NewService(savedRepo repository.SavedProfileRepository, profileRepo repository.ProfileRepository, cfg *config.Config) Service {
	return &service{
		savedRepo:   savedRepo,
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

func (s *service) Save(ctx context.Context, userID, profileID uuid.UUID) error {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil || profile.Status != domain.ProfileApproved {
		return domain.ErrProfileNotFound
	}

	saved := &domain.SavedProfile{
		ID:        uuid.New(),
		UserID:    userID,
		ProfileID: profileID,
	}

	_, err = s.savedRepo.Save(ctx, saved)
	return err
}

func (s *service) Unsave(ctx context.Context, userID, profileID uuid.UUID) error {
	_, err := s.savedRepo.Unsave(ctx, userID, profileID)
	return err
}

func (s *service) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.SavedProfile], error) {
	entries, total, err := s.savedRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.SavedProfile]{}, err
	}

	for i := range entries {
		p, err := s.profileRepo.GetByID(ctx, entries[i].ProfileID)
		if err != nil || p == nil {
			continue
		}
		summary, err := s.profileRepo.GetSummaryByUserID(ctx, p.UserID)
		if err != nil || summary == nil {
			continue
		}
		if summary.MainPhotoURL != nil {
			url := photo.PublicURL(s.cfg, *summary.MainPhotoURL)
			summary.MainPhotoURL = &url
		}
		entries[i].Profile = summary
	}

	return domain.NewPaginatedResponse(entries, params.Page, params.PageSize, total), nil
}
