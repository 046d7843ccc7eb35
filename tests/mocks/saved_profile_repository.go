package mocks

import (
	"context"

	"matrimony-be/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type SavedProfileRepository struct {
	mock.Mock
}

func (m *SavedProfileRepository) Save(ctx context.Context, saved *domain.SavedProfile) (bool, error) {
	args := m.Called(ctx, saved)
	return args.Bool(0), args.Error(1)
}

func (m *SavedProfileRepository) Unsave(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *SavedProfileRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.SavedProfile, int64, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]domain.SavedProfile), args.Get(1).(int64), args.Error(2)
}

func (m *SavedProfileRepository) Exists(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, profileID)
	return args.Bool(0), args.Error(1)
}
