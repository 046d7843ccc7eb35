package mocks

import (
	"context"

	"matrimony-be/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *ProfileRepository) Approve(ctx context.Context, id, adminID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, adminID)
	return args.Bool(0), args.Error(1)
}

func (m *ProfileRepository) Refuse(ctx context.Context, id, adminID uuid.UUID, reason *string) (bool, error) {
	args := m.Called(ctx, id, adminID, reason)
	return args.Bool(0), args.Error(1)
}

func (m *ProfileRepository) ListByStatus(ctx context.Context, status *domain.ProfileStatus, params domain.PaginationParams) ([]domain.Profile, int64, error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).([]domain.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *ProfileRepository) ListApprovedSummaries(ctx context.Context, params domain.PaginationParams) ([]domain.ProfileSummary, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.ProfileSummary), args.Get(1).(int64), args.Error(2)
}

func (m *ProfileRepository) GetSummaryByUserID(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileSummary), args.Error(1)
}
