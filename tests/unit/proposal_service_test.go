package unit_test

import (
	"context"
	"errors"
	"testing"

	"matrimony-be/internal/config"
	"matrimony-be/internal/domain"
	"matrimony-be/internal/service/proposal"
	"matrimony-be/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProposalService(proposalRepo *mocks.ProposalRepository, userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository) proposal.Service {
	return proposal.NewService(proposalRepo, userRepo, profileRepo, nil, &config.Config{})
}

func activeUser(id uuid.UUID, name string) *domain.User {
	return &domain.User{ID: id, Email: name + "@example.com", FullName: name, Role: "client", IsActive: true}
}

func TestProposalService_Create(t *testing.T) {
	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProposalService(proposalRepo, userRepo, new(mocks.ProfileRepository))

		userRepo.On("GetByID", ctx, senderID).Return(activeUser(senderID, "sender"), nil).Once()
		userRepo.On("GetByID", ctx, receiverID).Return(activeUser(receiverID, "receiver"), nil).Once()
		proposalRepo.On("ExistsOutstanding", ctx, senderID, receiverID).Return(false, nil).Once()
		proposalRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Proposal) bool {
			return p.SenderID == senderID && p.ReceiverID == receiverID && p.Status == domain.ProposalPending
		})).Return(nil).Once()

		created, err := svc.Create(ctx, senderID, domain.CreateProposalInput{ReceiverID: receiverID})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, domain.ProposalPending, created.Status)
		assert.Equal(t, "sender", created.Sender.FullName)
		assert.Equal(t, "receiver", created.Receiver.FullName)

		proposalRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("Self Proposal", func(t *testing.T) {
		svc := newProposalService(new(mocks.ProposalRepository), new(mocks.UserRepository), new(mocks.ProfileRepository))

		created, err := svc.Create(ctx, senderID, domain.CreateProposalInput{ReceiverID: senderID})

		assert.ErrorIs(t, err, domain.ErrSelfProposal)
		assert.Nil(t, created)
	})

	t.Run("Receiver Not Found", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProposalService(proposalRepo, userRepo, new(mocks.ProfileRepository))

		userRepo.On("GetByID", ctx, senderID).Return(activeUser(senderID, "sender"), nil).Once()
		userRepo.On("GetByID", ctx, receiverID).Return(nil, nil).Once()

		created, err := svc.Create(ctx, senderID, domain.CreateProposalInput{ReceiverID: receiverID})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, created)
	})

	t.Run("Receiver Inactive", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProposalService(proposalRepo, userRepo, new(mocks.ProfileRepository))

		inactive := activeUser(receiverID, "receiver")
		inactive.IsActive = false
		userRepo.On("GetByID", ctx, senderID).Return(activeUser(senderID, "sender"), nil).Once()
		userRepo.On("GetByID", ctx, receiverID).Return(inactive, nil).Once()

		created, err := svc.Create(ctx, senderID, domain.CreateProposalInput{ReceiverID: receiverID})

		assert.ErrorIs(t, err, domain.ErrUserInactive)
		assert.Nil(t, created)
	})

	t.Run("Outstanding Proposal Exists", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProposalService(proposalRepo, userRepo, new(mocks.ProfileRepository))

		userRepo.On("GetByID", ctx, senderID).Return(activeUser(senderID, "sender"), nil).Once()
		userRepo.On("GetByID", ctx, receiverID).Return(activeUser(receiverID, "receiver"), nil).Once()
		proposalRepo.On("ExistsOutstanding", ctx, senderID, receiverID).Return(true, nil).Once()

		created, err := svc.Create(ctx, senderID, domain.CreateProposalInput{ReceiverID: receiverID})

		assert.ErrorIs(t, err, domain.ErrDuplicateProposal)
		assert.Nil(t, created)
		proposalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent Duplicate Caught By Insert", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProposalService(proposalRepo, userRepo, new(mocks.ProfileRepository))

		userRepo.On("GetByID", ctx, senderID).Return(activeUser(senderID, "sender"), nil).Once()
		userRepo.On("GetByID", ctx, receiverID).Return(activeUser(receiverID, "receiver"), nil).Once()
		proposalRepo.On("ExistsOutstanding", ctx, senderID, receiverID).Return(false, nil).Once()
		proposalRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateProposal).Once()

		created, err := svc.Create(ctx, senderID, domain.CreateProposalInput{ReceiverID: receiverID})

		assert.ErrorIs(t, err, domain.ErrDuplicateProposal)
		assert.Nil(t, created)
	})
}

func TestProposalService_Accept(t *testing.T) {
	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()
	proposalID := uuid.New()

	pending := func() *domain.Proposal {
		return &domain.Proposal{ID: proposalID, SenderID: senderID, ReceiverID: receiverID, Status: domain.ProposalPending}
	}

	t.Run("Success", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProposalService(proposalRepo, userRepo, new(mocks.ProfileRepository))

		proposalRepo.On("GetByID", ctx, proposalID).Return(pending(), nil).Once()
		proposalRepo.On("TransitionFromPending", ctx, proposalID, domain.ProposalAccepted).Return(true, nil).Once()
		userRepo.On("GetByID", ctx, senderID).Return(activeUser(senderID, "sender"), nil).Once()
		userRepo.On("GetByID", ctx, receiverID).Return(activeUser(receiverID, "receiver"), nil).Once()

		accepted, err := svc.Accept(ctx, proposalID, receiverID)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProposalAccepted, accepted.Status)
		assert.NotNil(t, accepted.RespondedAt)

		proposalRepo.AssertExpectations(t)
	})

	t.Run("Not Receiver", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		svc := newProposalService(proposalRepo, new(mocks.UserRepository), new(mocks.ProfileRepository))

		proposalRepo.On("GetByID", ctx, proposalID).Return(pending(), nil).Once()

		accepted, err := svc.Accept(ctx, proposalID, senderID)

		assert.ErrorIs(t, err, domain.ErrNotReceiver)
		assert.Nil(t, accepted)
		proposalRepo.AssertNotCalled(t, "TransitionFromPending", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already Decided", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		svc := newProposalService(proposalRepo, new(mocks.UserRepository), new(mocks.ProfileRepository))

		proposalRepo.On("GetByID", ctx, proposalID).Return(pending(), nil).Once()
		proposalRepo.On("TransitionFromPending", ctx, proposalID, domain.ProposalAccepted).Return(false, nil).Once()

		accepted, err := svc.Accept(ctx, proposalID, receiverID)

		assert.ErrorIs(t, err, domain.ErrProposalNotPending)
		assert.Nil(t, accepted)
	})

	t.Run("Not Found", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		svc := newProposalService(proposalRepo, new(mocks.UserRepository), new(mocks.ProfileRepository))

		proposalRepo.On("GetByID", ctx, proposalID).Return(nil, nil).Once()

		accepted, err := svc.Accept(ctx, proposalID, receiverID)

		assert.ErrorIs(t, err, domain.ErrProposalNotFound)
		assert.Nil(t, accepted)
	})
}

func TestProposalService_Withdraw(t *testing.T) {
	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()
	proposalID := uuid.New()

	pending := func() *domain.Proposal {
		return &domain.Proposal{ID: proposalID, SenderID: senderID, ReceiverID: receiverID, Status: domain.ProposalPending}
	}

	t.Run("Success", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		userRepo := new(mocks.UserRepository)
		svc := newProposalService(proposalRepo, userRepo, new(mocks.ProfileRepository))

		proposalRepo.On("GetByID", ctx, proposalID).Return(pending(), nil).Once()
		proposalRepo.On("TransitionFromPending", ctx, proposalID, domain.ProposalWithdrawn).Return(true, nil).Once()
		userRepo.On("GetByID", ctx, senderID).Return(activeUser(senderID, "sender"), nil).Once()
		userRepo.On("GetByID", ctx, receiverID).Return(activeUser(receiverID, "receiver"), nil).Once()

		withdrawn, err := svc.Withdraw(ctx, proposalID, senderID)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProposalWithdrawn, withdrawn.Status)
	})

	t.Run("Receiver Cannot Withdraw", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		svc := newProposalService(proposalRepo, new(mocks.UserRepository), new(mocks.ProfileRepository))

		proposalRepo.On("GetByID", ctx, proposalID).Return(pending(), nil).Once()

		withdrawn, err := svc.Withdraw(ctx, proposalID, receiverID)

		assert.ErrorIs(t, err, domain.ErrNotSender)
		assert.Nil(t, withdrawn)
	})
}

func TestProposalService_ListForUser(t *testing.T) {
	ctx := context.Background()
	viewerID := uuid.New()
	otherID := uuid.New()
	params := domain.DefaultPagination()

	proposalRepo := new(mocks.ProposalRepository)
	userRepo := new(mocks.UserRepository)
	profileRepo := new(mocks.ProfileRepository)
	svc := newProposalService(proposalRepo, userRepo, profileRepo)

	proposals := []domain.Proposal{
		{ID: uuid.New(), SenderID: viewerID, ReceiverID: otherID, Status: domain.ProposalPending},
		{ID: uuid.New(), SenderID: otherID, ReceiverID: viewerID, Status: domain.ProposalAccepted},
	}

	proposalRepo.On("ListForUser", ctx, viewerID, params).Return(proposals, int64(2), nil).Once()
	userRepo.On("GetByID", ctx, viewerID).Return(activeUser(viewerID, "viewer"), nil)
	userRepo.On("GetByID", ctx, otherID).Return(activeUser(otherID, "other"), nil)
	profileRepo.On("GetSummaryByUserID", ctx, otherID).Return(&domain.ProfileSummary{UserID: otherID, FullName: "other"}, nil)

	result, err := svc.ListForUser(ctx, viewerID, params)

	assert.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, domain.DirectionSent, result.Data[0].Direction)
	assert.Equal(t, domain.DirectionReceived, result.Data[1].Direction)
	assert.Equal(t, "other", result.Data[0].Counterpart.FullName)
	assert.Equal(t, int64(2), result.TotalItems)
}

func TestProposalService_GetByID_Visibility(t *testing.T) {
	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()
	strangerID := uuid.New()
	proposalID := uuid.New()

	proposalRepo := new(mocks.ProposalRepository)
	userRepo := new(mocks.UserRepository)
	profileRepo := new(mocks.ProfileRepository)
	svc := newProposalService(proposalRepo, userRepo, profileRepo)

	stored := &domain.Proposal{ID: proposalID, SenderID: senderID, ReceiverID: receiverID, Status: domain.ProposalPending}
	proposalRepo.On("GetByID", ctx, proposalID).Return(stored, nil)
	userRepo.On("GetByID", ctx, mock.Anything).Return(activeUser(senderID, "party"), nil)
	profileRepo.On("GetSummaryByUserID", ctx, mock.Anything).Return(nil, nil)

	view, err := svc.GetByID(ctx, proposalID, senderID)
	assert.NoError(t, err)
	assert.Equal(t, domain.DirectionSent, view.Direction)

	// A third party gets not-found, not forbidden, so the proposal's
	// existence is not leaked.
	view, err = svc.GetByID(ctx, proposalID, strangerID)
	assert.ErrorIs(t, err, domain.ErrProposalNotFound)
	assert.Nil(t, view)

	var genericErr = errors.New("db down")
	proposalRepo2 := new(mocks.ProposalRepository)
	svc2 := newProposalService(proposalRepo2, userRepo, profileRepo)
	proposalRepo2.On("GetByID", ctx, proposalID).Return(nil, genericErr).Once()

	view, err = svc2.GetByID(ctx, proposalID, senderID)
	assert.ErrorIs(t, err, genericErr)
	assert.Nil(t, view)
}
