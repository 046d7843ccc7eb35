package message

import (
	"context"
	"log"

	"github.com/google/uuid"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/repository"
	"matrimony-be/internal/service/notification"
)

// Service is the two-party messaging layer. A conversation is only
// reachable between users with an accepted proposal; that gate lives here,
// not in the repository.
type Service interface {
	Send(ctx context.Context, senderID uuid.UUID, input domain.SendMessageInput) (*domain.Message, error)
	ListWith(ctx context.Context, userID, partnerID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Message], error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)
}

type service struct {
	messageRepo  repository.MessageRepository
	proposalRepo repository.ProposalRepository
	userRepo     repository.UserRepository
	notifSvc     notification.Service
}

func NewService(messageRepo repository.MessageRepository, proposalRepo repository.ProposalRepository, userRepo repository.UserRepository, notifSvc notification.Service) Service {
	return &service{
		messageRepo:  messageRepo,
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		notifSvc:     notifSvc,
	}
}

func (s *service) Send(ctx context.Context, senderID uuid.UUID, input domain.SendMessageInput) (*domain.Message, error) {
	if senderID == input.RecipientID {
		return nil, domain.ErrSelfMessage
	}

	recipient, err := s.userRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, domain.ErrUserNotFound
	}
	if !recipient.IsActive {
		return nil, domain.ErrUserInactive
	}

	matched, err := s.proposalRepo.HasAcceptedBetween(ctx, senderID, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotMatched
	}

	message := &domain.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: input.RecipientID,
		Content:     input.Content,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if s.notifSvc != nil {
		go func() {
			if err := s.notifSvc.NotifyNewMessage(context.Background(), message); err != nil {
				log.Printf("Message notification failed: %v", err)
			}
		}()
	}

	return message, nil
}

// ListWith returns the thread with a partner and marks the partner's
// messages as read on the way out.
func (s *service) ListWith(ctx context.Context, userID, partnerID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Message], error) {
	messages, total, err := s.messageRepo.ListBetween(ctx, userID, partnerID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Message]{}, err
	}

	if err := s.messageRepo.MarkReadFrom(ctx, userID, partnerID); err != nil {
		log.Printf("Failed to mark messages read: %v", err)
	}

	return domain.NewPaginatedResponse(messages, params.Page, params.PageSize, total), nil
}

func (s *service) ListConversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	conversations, err := s.messageRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range conversations {
		if partner, err := s.userRepo.GetByID(ctx, conversations[i].PartnerID); err == nil && partner != nil {
			sum := partner.Summary()
			conversations[i].Partner = &sum
		}
	}

	return conversations, nil
}
