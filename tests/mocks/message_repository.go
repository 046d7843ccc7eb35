package mocks

import (
	"context"

	"matrimony-be/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MessageRepository) ListBetween(ctx context.Context, userA, userB uuid.UUID, params domain.PaginationParams) ([]domain.Message, int64, error) {
	args := m.Called(ctx, userA, userB, params)
	return args.Get(0).([]domain.Message), args.Get(1).(int64), args.Error(2)
}

func (m *MessageRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

func (m *MessageRepository) MarkReadFrom(ctx context.Context, recipientID, senderID uuid.UUID) error {
	args := m.Called(ctx, recipientID, senderID)
	return args.Error(0)
}
