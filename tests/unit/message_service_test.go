package unit_test

import (
	"context"
	"testing"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/service/message"
	"matrimony-be/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMessageService(messageRepo *mocks.MessageRepository, proposalRepo *mocks.ProposalRepository, userRepo *mocks.UserRepository) message.Service {
	return message.NewService(messageRepo, proposalRepo, userRepo, nil)
}

func TestMessageService_Send(t *testing.T) {
	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	input := domain.SendMessageInput{RecipientID: recipientID, Content: "hello"}

	t.Run("Success When Matched", func(t *testing.T) {
		messageRepo := new(mocks.MessageRepository)
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newMessageService(messageRepo, proposalRepo, userRepo)

		userRepo.On("GetByID", ctx, recipientID).Return(&domain.User{ID: recipientID, IsActive: true}, nil).Once()
		proposalRepo.On("HasAcceptedBetween", ctx, senderID, recipientID).Return(true, nil).Once()
		messageRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Message) bool {
			return m.SenderID == senderID && m.RecipientID == recipientID && m.Content == "hello"
		})).Return(nil).Once()

		sent, err := svc.Send(ctx, senderID, input)

		assert.NoError(t, err)
		assert.NotNil(t, sent)
		messageRepo.AssertExpectations(t)
	})

	t.Run("No Accepted Proposal", func(t *testing.T) {
		messageRepo := new(mocks.MessageRepository)
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newMessageService(messageRepo, proposalRepo, userRepo)

		userRepo.On("GetByID", ctx, recipientID).Return(&domain.User{ID: recipientID, IsActive: true}, nil).Once()
		proposalRepo.On("HasAcceptedBetween", ctx, senderID, recipientID).Return(false, nil).Once()

		sent, err := svc.Send(ctx, senderID, input)

		assert.ErrorIs(t, err, domain.ErrNotMatched)
		assert.Nil(t, sent)
		messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Self Message", func(t *testing.T) {
		svc := newMessageService(new(mocks.MessageRepository), new(mocks.ProposalRepository), new(mocks.UserRepository))

		sent, err := svc.Send(ctx, senderID, domain.SendMessageInput{RecipientID: senderID, Content: "hi"})

		assert.ErrorIs(t, err, domain.ErrSelfMessage)
		assert.Nil(t, sent)
	})

	t.Run("Inactive Recipient", func(t *testing.T) {
		messageRepo := new(mocks.MessageRepository)
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newMessageService(messageRepo, proposalRepo, userRepo)

		userRepo.On("GetByID", ctx, recipientID).Return(&domain.User{ID: recipientID, IsActive: false}, nil).Once()

		sent, err := svc.Send(ctx, senderID, input)

		assert.ErrorIs(t, err, domain.ErrUserInactive)
		assert.Nil(t, sent)
	})
}

func TestMessageService_ListWith_MarksRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	partnerID := uuid.New()
	params := domain.DefaultPagination()

	messageRepo := new(mocks.MessageRepository)
	svc := newMessageService(messageRepo, new(mocks.ProposalRepository), new(mocks.UserRepository))

	thread := []domain.Message{{ID: uuid.New(), SenderID: partnerID, RecipientID: userID, Content: "hi"}}
	messageRepo.On("ListBetween", ctx, userID, partnerID, params).Return(thread, int64(1), nil).Once()
	messageRepo.On("MarkReadFrom", ctx, userID, partnerID).Return(nil).Once()

	result, err := svc.ListWith(ctx, userID, partnerID, params)

	assert.NoError(t, err)
	assert.Len(t, result.Data, 1)
	messageRepo.AssertExpectations(t)
}

func TestMessageService_ListConversations(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	partnerID := uuid.New()

	messageRepo := new(mocks.MessageRepository)
	userRepo := new(mocks.UserRepository)
	svc := newMessageService(messageRepo, new(mocks.ProposalRepository), userRepo)

	conversations := []domain.Conversation{{PartnerID: partnerID, UnreadCount: 2}}
	messageRepo.On("ListConversations", ctx, userID).Return(conversations, nil).Once()
	userRepo.On("GetByID", ctx, partnerID).Return(&domain.User{ID: partnerID, FullName: "Partner"}, nil).Once()

	result, err := svc.ListConversations(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Partner", result[0].Partner.FullName)
	assert.Equal(t, int64(2), result[0].UnreadCount)
}
