package proposal

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"matrimony-be/internal/config"
	"matrimony-be/internal/domain"
	"matrimony-be/internal/repository"
	"matrimony-be/internal/service/notification"
	"matrimony-be/internal/service/photo"
)

// Service owns the proposal state machine:
//
//	PENDING -> ACCEPTED  (receiver)
//	PENDING -> REJECTED  (receiver)
//	PENDING -> WITHDRAWN (sender)
//
// Terminal states never transition again. Responses are serialized by a
// conditional update on the current status rather than read-then-write, so
// two concurrent responses cannot both win.
type Service interface {
	Create(ctx context.Context, senderID uuid.UUID, input domain.CreateProposalInput) (*domain.Proposal, error)
	Accept(ctx context.Context, proposalID, actingUserID uuid.UUID) (*domain.Proposal, error)
	Reject(ctx context.Context, proposalID, actingUserID uuid.UUID) (*domain.Proposal, error)
	Withdraw(ctx context.Context, proposalID, actingUserID uuid.UUID) (*domain.Proposal, error)
	GetByID(ctx context.Context, proposalID, viewerID uuid.UUID) (*domain.ProposalView, error)
	ListForUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.ProposalView], error)
}

type service struct {
	proposalRepo repository.ProposalRepository
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	notifSvc     notification.Service
	cfg          *config.Config
}

func NewService(proposalRepo repository.ProposalRepository, userRepo repository.UserRepository, profileRepo repository.ProfileRepository, notifSvc notification.Service, cfg *config.Config) Service {
	return &service{
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		notifSvc:     notifSvc,
		cfg:          cfg,
	}
}

func (s *service) Create(ctx context.Context, senderID uuid.UUID, input domain.CreateProposalInput) (*domain.Proposal, error) {
	if senderID == input.ReceiverID {
		return nil, domain.ErrSelfProposal
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, domain.ErrUserNotFound
	}

	receiver, err := s.userRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, domain.ErrUserNotFound
	}
	if !receiver.IsActive {
		return nil, domain.ErrUserInactive
	}

	// Friendly pre-check in both directions. The partial unique index on
	// outstanding pairs still catches the concurrent double submit; the
	// repository maps that violation onto the same error.
	exists, err := s.proposalRepo.ExistsOutstanding(ctx, senderID, input.ReceiverID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateProposal
	}

	proposal := &domain.Proposal{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Status:     domain.ProposalPending,
		Message:    input.Message,
	}

	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}

	sum := sender.Summary()
	proposal.Sender = &sum
	recvSum := receiver.Summary()
	proposal.Receiver = &recvSum

	s.notify(func(n notification.Service, ctx context.Context) error {
		return n.NotifyProposalReceived(ctx, proposal)
	})

	return proposal, nil
}

func (s *service) Accept(ctx context.Context, proposalID, actingUserID uuid.UUID) (*domain.Proposal, error) {
	proposal, err := s.respond(ctx, proposalID, actingUserID, domain.ProposalAccepted)
	if err != nil {
		return nil, err
	}

	s.notify(func(n notification.Service, ctx context.Context) error {
		return n.NotifyProposalAccepted(ctx, proposal)
	})

	return proposal, nil
}

func (s *service) Reject(ctx context.Context, proposalID, actingUserID uuid.UUID) (*domain.Proposal, error) {
	proposal, err := s.respond(ctx, proposalID, actingUserID, domain.ProposalRejected)
	if err != nil {
		return nil, err
	}

	s.notify(func(n notification.Service, ctx context.Context) error {
		return n.NotifyProposalRejected(ctx, proposal)
	})

	return proposal, nil
}

// Withdraw retracts a pending proposal. It is recorded as WITHDRAWN rather
// than REJECTED so the audit trail distinguishes a sender retraction from a
// receiver decline. No notification is sent for a withdrawal.
func (s *service) Withdraw(ctx context.Context, proposalID, actingUserID uuid.UUID) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}

	if proposal.SenderID != actingUserID {
		return nil, domain.ErrNotSender
	}

	return s.transition(ctx, proposal, domain.ProposalWithdrawn)
}

// respond handles the receiver-side transitions (accept/reject).
func (s *service) respond(ctx context.Context, proposalID, actingUserID uuid.UUID, to domain.ProposalStatus) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}

	if proposal.ReceiverID != actingUserID {
		return nil, domain.ErrNotReceiver
	}

	return s.transition(ctx, proposal, to)
}

func (s *service) transition(ctx context.Context, proposal *domain.Proposal, to domain.ProposalStatus) (*domain.Proposal, error) {
	ok, err := s.proposalRepo.TransitionFromPending(ctx, proposal.ID, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrProposalNotPending
	}

	now := time.Now()
	proposal.Status = to
	proposal.RespondedAt = &now

	s.attachParties(ctx, proposal)
	return proposal, nil
}

func (s *service) GetByID(ctx context.Context, proposalID, viewerID uuid.UUID) (*domain.ProposalView, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}

	if proposal.SenderID != viewerID && proposal.ReceiverID != viewerID {
		return nil, domain.ErrProposalNotFound
	}

	s.attachParties(ctx, proposal)
	view := s.buildView(ctx, *proposal, viewerID)
	return &view, nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.ProposalView], error) {
	proposals, total, err := s.proposalRepo.ListForUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.ProposalView]{}, err
	}

	views := make([]domain.ProposalView, 0, len(proposals))
	for i := range proposals {
		s.attachParties(ctx, &proposals[i])
		views = append(views, s.buildView(ctx, proposals[i], userID))
	}

	return domain.NewPaginatedResponse(views, params.Page, params.PageSize, total), nil
}

// buildView derives the viewer-relative direction and attaches the
// counterpart's profile card. Direction is computed here, never stored.
func (s *service) buildView(ctx context.Context, p domain.Proposal, viewerID uuid.UUID) domain.ProposalView {
	view := domain.ProposalView{
		Proposal:  p,
		Direction: p.DirectionFor(viewerID),
	}

	counterpartID := p.SenderID
	if counterpartID == viewerID {
		counterpartID = p.ReceiverID
	}

	if summary, err := s.profileRepo.GetSummaryByUserID(ctx, counterpartID); err == nil && summary != nil {
		if summary.MainPhotoURL != nil {
			url := photo.PublicURL(s.cfg, *summary.MainPhotoURL)
			summary.MainPhotoURL = &url
		}
		view.Counterpart = summary
	}

	return view
}

func (s *service) attachParties(ctx context.Context, proposal *domain.Proposal) {
	if proposal.Sender == nil {
		if sender, err := s.userRepo.GetByID(ctx, proposal.SenderID); err == nil && sender != nil {
			sum := sender.Summary()
			proposal.Sender = &sum
		}
	}
	if proposal.Receiver == nil {
		if receiver, err := s.userRepo.GetByID(ctx, proposal.ReceiverID); err == nil && receiver != nil {
			sum := receiver.Summary()
			proposal.Receiver = &sum
		}
	}
}

// notify runs a notification emit in the background. Failures are logged
// and swallowed; a committed transition is never rolled back for a lost
// notification.
func (s *service) notify(fn func(notification.Service, context.Context) error) {
	if s.notifSvc == nil {
		return
	}
	go func() {
		if err := fn(s.notifSvc, context.Background()); err != nil {
			log.Printf("Proposal notification failed: %v", err)
		}
	}()
}
