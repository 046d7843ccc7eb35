package unit_test

import (
	"context"
	"testing"
	"time"

	"matrimony-be/internal/config"
	"matrimony-be/internal/domain"
	"matrimony-be/internal/service/profile"
	"matrimony-be/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileService(profileRepo *mocks.ProfileRepository, photoRepo *mocks.PhotoRepository, userRepo *mocks.UserRepository) profile.Service {
	return profile.NewService(profileRepo, photoRepo, userRepo, nil, &config.Config{})
}

func TestProfileService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	input := domain.CreateProfileInput{
		Sex:      "female",
		Birthday: "1995-04-12",
	}

	t.Run("Success", func(t *testing.T) {
		profileRepo := new(mocks.ProfileRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProfileService(profileRepo, new(mocks.PhotoRepository), userRepo)

		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, IsActive: true}, nil).Once()
		profileRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.UserID == userID && p.Status == domain.ProfilePending && p.Sex == "female"
		})).Return(nil).Once()
		userRepo.On("SetProfileCompleted", ctx, userID, true).Return(nil).Once()

		created, err := svc.Create(ctx, userID, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProfilePending, created.Status)
		assert.Equal(t, 1995, created.Birthday.Year())

		profileRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("Duplicate", func(t *testing.T) {
		profileRepo := new(mocks.ProfileRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProfileService(profileRepo, new(mocks.PhotoRepository), userRepo)

		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, IsActive: true}, nil).Once()
		profileRepo.On("Create", ctx, mock.Anything).Return(domain.ErrProfileExists).Once()

		created, err := svc.Create(ctx, userID, input)

		assert.ErrorIs(t, err, domain.ErrProfileExists)
		assert.Nil(t, created)
	})

	t.Run("Invalid Birthday", func(t *testing.T) {
		profileRepo := new(mocks.ProfileRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProfileService(profileRepo, new(mocks.PhotoRepository), userRepo)

		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, IsActive: true}, nil).Once()

		created, err := svc.Create(ctx, userID, domain.CreateProfileInput{Sex: "female", Birthday: "12-04-1995"})

		assert.Error(t, err)
		assert.Nil(t, created)
		profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProfileService_Update_ResetsApproval(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	adminID := uuid.New()
	now := time.Now()

	profileRepo := new(mocks.ProfileRepository)
	photoRepo := new(mocks.PhotoRepository)
	svc := newProfileService(profileRepo, photoRepo, new(mocks.UserRepository))

	approved := &domain.Profile{
		ID:         uuid.New(),
		UserID:     userID,
		Sex:        "male",
		Status:     domain.ProfileApproved,
		ApprovedAt: &now,
		ApprovedBy: &adminID,
	}

	profileRepo.On("GetByUserID", ctx, userID).Return(approved, nil).Once()
	profileRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.Status == domain.ProfilePending && p.ApprovedAt == nil && p.ApprovedBy == nil
	})).Return(nil).Once()
	photoRepo.On("ListByProfile", ctx, approved.ID).Return(nil, nil)

	about := "updated bio"
	updated, err := svc.Update(ctx, userID, domain.UpdateProfileInput{AboutMe: &about})

	assert.NoError(t, err)
	assert.Equal(t, domain.ProfilePending, updated.Status)
	assert.Nil(t, updated.ApprovedAt)
	assert.Equal(t, "updated bio", *updated.AboutMe)

	profileRepo.AssertExpectations(t)
}

func TestProfileService_GetByID_Visibility(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	profileID := uuid.New()

	pending := &domain.Profile{ID: profileID, UserID: ownerID, Status: domain.ProfilePending}

	owner := &domain.User{ID: ownerID, Role: string(domain.RoleClient)}
	stranger := &domain.User{ID: uuid.New(), Role: string(domain.RoleClient)}
	admin := &domain.User{ID: uuid.New(), Role: string(domain.RoleAdmin)}

	t.Run("Owner Sees Pending", func(t *testing.T) {
		profileRepo := new(mocks.ProfileRepository)
		photoRepo := new(mocks.PhotoRepository)
		svc := newProfileService(profileRepo, photoRepo, new(mocks.UserRepository))

		profileRepo.On("GetByID", ctx, profileID).Return(pending, nil).Once()
		photoRepo.On("ListByProfile", ctx, profileID).Return(nil, nil)

		got, err := svc.GetByID(ctx, owner, profileID)
		assert.NoError(t, err)
		assert.Equal(t, profileID, got.ID)
	})

	t.Run("Stranger Gets Not Found", func(t *testing.T) {
		profileRepo := new(mocks.ProfileRepository)
		svc := newProfileService(profileRepo, new(mocks.PhotoRepository), new(mocks.UserRepository))

		profileRepo.On("GetByID", ctx, profileID).Return(pending, nil).Once()

		got, err := svc.GetByID(ctx, stranger, profileID)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		assert.Nil(t, got)
	})

	t.Run("Admin Sees Pending", func(t *testing.T) {
		profileRepo := new(mocks.ProfileRepository)
		photoRepo := new(mocks.PhotoRepository)
		svc := newProfileService(profileRepo, photoRepo, new(mocks.UserRepository))

		profileRepo.On("GetByID", ctx, profileID).Return(pending, nil).Once()
		photoRepo.On("ListByProfile", ctx, profileID).Return(nil, nil)

		got, err := svc.GetByID(ctx, admin, profileID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})
}

func TestProfileService_Browse(t *testing.T) {
	ctx := context.Background()
	params := domain.DefaultPagination()

	profileRepo := new(mocks.ProfileRepository)
	svc := newProfileService(profileRepo, new(mocks.PhotoRepository), new(mocks.UserRepository))

	path := "photos/2026/01/abc"
	summaries := []domain.ProfileSummary{
		{ID: uuid.New(), FullName: "A", MainPhotoURL: &path},
		{ID: uuid.New(), FullName: "B"},
	}

	profileRepo.On("ListApprovedSummaries", ctx, params).Return(summaries, int64(2), nil).Once()

	result, err := svc.Browse(ctx, params)

	assert.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Contains(t, *result.Data[0].MainPhotoURL, "photos%2F2026%2F01%2Fabc")
	assert.Nil(t, result.Data[1].MainPhotoURL)
}
