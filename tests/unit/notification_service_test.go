package unit_test

import (
	"context"
	"errors"
	"testing"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/service/notification"
	"matrimony-be/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_NotifyProposalReceived(t *testing.T) {
	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()

	proposal := &domain.Proposal{ID: uuid.New(), SenderID: senderID, ReceiverID: receiverID, Status: domain.ProposalPending}

	t.Run("Creates Notification For Receiver", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		svc := notification.NewService(notifRepo, userRepo, nil)

		userRepo.On("GetByID", ctx, senderID).Return(&domain.User{ID: senderID, FullName: "Sender"}, nil).Once()
		userRepo.On("GetByID", ctx, receiverID).Return(&domain.User{ID: receiverID, FullName: "Receiver"}, nil).Once()
		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == receiverID && n.Type == domain.NotifProposalReceived
		})).Return(nil).Once()

		err := svc.NotifyProposalReceived(ctx, proposal)

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Insert Failure Is Swallowed", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		svc := notification.NewService(notifRepo, userRepo, nil)

		userRepo.On("GetByID", ctx, senderID).Return(&domain.User{ID: senderID, FullName: "Sender"}, nil).Once()
		userRepo.On("GetByID", ctx, receiverID).Return(&domain.User{ID: receiverID, FullName: "Receiver"}, nil).Once()
		notifRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

		err := svc.NotifyProposalReceived(ctx, proposal)

		assert.NoError(t, err)
	})
}

func TestNotificationService_NotifyProposalAccepted(t *testing.T) {
	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()

	proposal := &domain.Proposal{ID: uuid.New(), SenderID: senderID, ReceiverID: receiverID, Status: domain.ProposalAccepted}

	notifRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	svc := notification.NewService(notifRepo, userRepo, nil)

	userRepo.On("GetByID", ctx, receiverID).Return(&domain.User{ID: receiverID, FullName: "Receiver"}, nil).Once()
	notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		// The acceptance notice goes to the original sender.
		return n.UserID == senderID && n.Type == domain.NotifProposalAccepted
	})).Return(nil).Once()

	err := svc.NotifyProposalAccepted(ctx, proposal)

	assert.NoError(t, err)
	notifRepo.AssertExpectations(t)
}

func TestNotificationService_NotifyProfileRefused(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	profile := &domain.Profile{ID: uuid.New(), UserID: ownerID, Status: domain.ProfileRefused}
	reason := "photos unclear"

	notifRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	svc := notification.NewService(notifRepo, userRepo, nil)

	userRepo.On("GetByID", ctx, ownerID).Return(&domain.User{ID: ownerID, FullName: "Owner"}, nil).Once()
	notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == ownerID && n.Type == domain.NotifProfileRefused && n.Message == "Your profile was not approved: photos unclear"
	})).Return(nil).Once()

	err := svc.NotifyProfileRefused(ctx, profile, &reason)

	assert.NoError(t, err)
	notifRepo.AssertExpectations(t)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	notifID := uuid.New()

	t.Run("Owner Can Mark Read", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := notification.NewService(notifRepo, new(mocks.UserRepository), nil)

		notifRepo.On("GetByID", ctx, notifID).Return(&domain.Notification{ID: notifID, UserID: ownerID}, nil).Once()
		notifRepo.On("MarkAsRead", ctx, notifID).Return(nil).Once()

		err := svc.MarkAsRead(ctx, notifID, ownerID)

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Other User Gets Not Found", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := notification.NewService(notifRepo, new(mocks.UserRepository), nil)

		notifRepo.On("GetByID", ctx, notifID).Return(&domain.Notification{ID: notifID, UserID: ownerID}, nil).Once()

		err := svc.MarkAsRead(ctx, notifID, uuid.New())

		assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
		notifRepo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
	})

	t.Run("Missing Notification", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := notification.NewService(notifRepo, new(mocks.UserRepository), nil)

		notifRepo.On("GetByID", ctx, notifID).Return(nil, nil).Once()

		err := svc.MarkAsRead(ctx, notifID, ownerID)

		assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
	})
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	notifRepo := new(mocks.NotificationRepository)
	svc := notification.NewService(notifRepo, new(mocks.UserRepository), nil)

	notifRepo.On("CountUnread", ctx, userID).Return(int64(3), nil).Once()

	count, err := svc.GetUnreadCount(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
