package approval

import (
	"context"
	"log"

	"github.com/google/uuid"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/repository"
	"matrimony-be/internal/service/notification"
	"matrimony-be/internal/service/profile"
)

// Service is the admin review queue. Approve and Refuse are decided by a
// conditional update on status = 'pending', so two admins reviewing the
// same profile cannot both win: the loser sees a conflict, never a silent
// overwrite.
type Service interface {
	Approve(ctx context.Context, adminID, profileID uuid.UUID) (*domain.Profile, error)
	Refuse(ctx context.Context, adminID, profileID uuid.UUID, input domain.RefuseProfileInput) (*domain.Profile, error)
	ListByStatus(ctx context.Context, status *domain.ProfileStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Profile], error)
}

type service struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	notifSvc    notification.Service
	profileSvc  profile.Service
}

func NewService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, notifSvc notification.Service, profileSvc profile.Service) Service {
	return &service{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		notifSvc:    notifSvc,
		profileSvc:  profileSvc,
	}
}

func (s *service) Approve(ctx context.Context, adminID, profileID uuid.UUID) (*domain.Profile, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	profile, err := s.reviewable(ctx, profileID)
	if err != nil {
		return nil, err
	}

	ok, err := s.profileRepo.Approve(ctx, profileID, adminID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrProfileNotPending
	}

	// Re-read so the response carries the approval metadata the update set.
	profile, err = s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	s.profileSvc.InvalidateBrowseCache(ctx)

	s.notify(func(n notification.Service, ctx context.Context) error {
		return n.NotifyProfileApproved(ctx, profile)
	})

	return profile, nil
}

func (s *service) Refuse(ctx context.Context, adminID, profileID uuid.UUID, input domain.RefuseProfileInput) (*domain.Profile, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	profile, err := s.reviewable(ctx, profileID)
	if err != nil {
		return nil, err
	}

	ok, err := s.profileRepo.Refuse(ctx, profileID, adminID, input.Reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrProfileNotPending
	}

	profile, err = s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	s.notify(func(n notification.Service, ctx context.Context) error {
		return n.NotifyProfileRefused(ctx, profile, input.Reason)
	})

	return profile, nil
}

func (s *service) ListByStatus(ctx context.Context, status *domain.ProfileStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Profile], error) {
	profiles, total, err := s.profileRepo.ListByStatus(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Profile]{}, err
	}

	for i := range profiles {
		if owner, err := s.userRepo.GetByID(ctx, profiles[i].UserID); err == nil && owner != nil {
			sum := owner.Summary()
			profiles[i].Owner = &sum
		}
	}

	return domain.NewPaginatedResponse(profiles, params.Page, params.PageSize, total), nil
}

// requireAdmin re-checks the reviewer's role so a review decision is never
// stamped with a non-admin id, even if a caller bypasses the route guard.
func (s *service) requireAdmin(ctx context.Context, adminID uuid.UUID) error {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil || !admin.IsAdmin() {
		return domain.ErrNotAdmin
	}
	return nil
}

// reviewable distinguishes a missing profile (404) from one that already
// left the queue; the latter is reported by the conditional update as a
// conflict.
func (s *service) reviewable(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

func (s *service) notify(fn func(notification.Service, context.Context) error) {
	if s.notifSvc == nil {
		return
	}
	go func() {
		if err := fn(s.notifSvc, context.Background()); err != nil {
			log.Printf("Approval notification failed: %v", err)
		}
	}()
}
