package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"matrimony-be/internal/config"
	"matrimony-be/internal/domain"
	"matrimony-be/internal/repository"
	"matrimony-be/internal/service/photo"
)

const (
	browseCacheKeyFmt = "profiles:approved:%d:%d"
	browseCacheTTL    = 5 * time.Minute
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateProfileInput) (*domain.Profile, error)
	GetOwn(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.Profile, error)
	GetByID(ctx context.Context, viewer *domain.User, profileID uuid.UUID) (*domain.Profile, error)
	Browse(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.ProfileSummary], error)
	InvalidateBrowseCache(ctx context.Context)
}

type service struct {
	profileRepo repository.ProfileRepository
	photoRepo   repository.PhotoRepository
	userRepo    repository.UserRepository
	redis       *redis.Client
	cfg         *config.Config
}

func NewService(profileRepo repository.ProfileRepository, photoRepo repository.PhotoRepository, userRepo repository.UserRepository, redisClient *redis.Client, cfg *config.Config) Service {
	return &service{
		profileRepo: profileRepo,
		photoRepo:   photoRepo,
		userRepo:    userRepo,
		redis:       redisClient,
		cfg:         cfg,
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateProfileInput) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	birthday, err := time.Parse("2006-01-02", input.Birthday)
	if err != nil {
		return nil, fmt.Errorf("invalid birthday: %w", err)
	}

	profile := &domain.Profile{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        domain.ProfilePending,
		Sex:           input.Sex,
		Birthday:      birthday,
		District:      input.District,
		Religion:      input.Religion,
		Caste:         input.Caste,
		Education:     input.Education,
		Occupation:    input.Occupation,
		HeightCM:      input.HeightCM,
		MaritalStatus: input.MaritalStatus,
		AboutMe:       input.AboutMe,
	}

	// Unique index on user_id; the repository maps the violation.
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetProfileCompleted(ctx, userID, true); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *service) GetOwn(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	s.attachPhotos(ctx, profile)
	return profile, nil
}

// Update applies a content edit to the caller's own profile. Editing an
// approved profile sends it back to the review queue: the status drops to
// pending and the previous approval metadata is cleared in the same update.
func (s *service) Update(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	if input.District != nil {
		profile.District = input.District
	}
	if input.Religion != nil {
		profile.Religion = input.Religion
	}
	if input.Caste != nil {
		profile.Caste = input.Caste
	}
	if input.Education != nil {
		profile.Education = input.Education
	}
	if input.Occupation != nil {
		profile.Occupation = input.Occupation
	}
	if input.HeightCM != nil {
		profile.HeightCM = input.HeightCM
	}
	if input.MaritalStatus != nil {
		profile.MaritalStatus = input.MaritalStatus
	}
	if input.AboutMe != nil {
		profile.AboutMe = input.AboutMe
	}

	wasApproved := profile.Status == domain.ProfileApproved
	profile.Status = domain.ProfilePending
	profile.ApprovedAt = nil
	profile.ApprovedBy = nil
	profile.RejectedAt = nil
	profile.RejectedBy = nil
	profile.RejectionReason = nil

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if wasApproved {
		s.InvalidateBrowseCache(ctx)
	}

	s.attachPhotos(ctx, profile)
	return profile, nil
}

// GetByID enforces visibility: owners and admins see any status, everyone
// else only sees approved profiles.
func (s *service) GetByID(ctx context.Context, viewer *domain.User, profileID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	if profile.Status != domain.ProfileApproved {
		if viewer == nil || (profile.UserID != viewer.ID && !viewer.IsAdmin()) {
			return nil, domain.ErrProfileNotFound
		}
	}

	s.attachPhotos(ctx, profile)
	return profile, nil
}

func (s *service) Browse(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.ProfileSummary], error) {
	cacheKey := fmt.Sprintf(browseCacheKeyFmt, params.Page, params.PageSize)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var response domain.PaginatedResponse[domain.ProfileSummary]
			if json.Unmarshal([]byte(cached), &response) == nil {
				return response, nil
			}
		}
	}

	summaries, total, err := s.profileRepo.ListApprovedSummaries(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.ProfileSummary]{}, err
	}

	for i := range summaries {
		if summaries[i].MainPhotoURL != nil {
			url := photo.PublicURL(s.cfg, *summaries[i].MainPhotoURL)
			summaries[i].MainPhotoURL = &url
		}
	}

	response := domain.NewPaginatedResponse(summaries, params.Page, params.PageSize, total)

	if s.redis != nil {
		if payload, err := json.Marshal(response); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, browseCacheTTL).Err()
		}
	}

	return response, nil
}

// InvalidateBrowseCache drops every cached browse page. Called whenever the
// set of approved profiles changes.
func (s *service) InvalidateBrowseCache(ctx context.Context) {
	if s.redis == nil {
		return
	}

	iter := s.redis.Scan(ctx, 0, "profiles:approved:*", 100).Iterator()
	for iter.Next(ctx) {
		_ = s.redis.Del(ctx, iter.Val()).Err()
	}
}

func (s *service) attachPhotos(ctx context.Context, profile *domain.Profile) {
	photos, err := s.photoRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return
	}
	for i := range photos {
		photos[i].URL = photo.PublicURL(s.cfg, photos[i].StoragePath)
	}
	profile.Photos = photos
}
