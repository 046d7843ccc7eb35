package mocks

import (
	"context"

	"matrimony-be/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PhotoRepository struct {
	mock.Mock
}

func (m *PhotoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *PhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *PhotoRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Photo, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Photo), args.Error(1)
}

func (m *PhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PhotoRepository) SetMain(ctx context.Context, profileID, photoID uuid.UUID) error {
	args := m.Called(ctx, profileID, photoID)
	return args.Error(0)
}

func (m *PhotoRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}
