package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/repository"
	"matrimony-be/internal/service/email"
)

// Service owns the notification center and the typed emit helpers invoked
// as side effects of proposal and approval transitions. Emits are
// best-effort: a failed insert is logged and never propagated to the
// caller, so a lost notification can never roll back a committed state
// change.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	NotifyProposalReceived(ctx context.Context, proposal *domain.Proposal) error
	NotifyProposalAccepted(ctx context.Context, proposal *domain.Proposal) error
	NotifyProposalRejected(ctx context.Context, proposal *domain.Proposal) error
	NotifyProfileApproved(ctx context.Context, profile *domain.Profile) error
	NotifyProfileRefused(ctx context.Context, profile *domain.Profile, reason *string) error
	NotifyNewMessage(ctx context.Context, message *domain.Message) error
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notif == nil || notif.UserID != userID {
		return domain.ErrNotificationNotFound
	}
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) NotifyProposalReceived(ctx context.Context, proposal *domain.Proposal) error {
	sender, err := s.userRepo.GetByID(ctx, proposal.SenderID)
	if err != nil || sender == nil {
		return fmt.Errorf("failed to load proposal sender: %w", err)
	}
	receiver, err := s.userRepo.GetByID(ctx, proposal.ReceiverID)
	if err != nil || receiver == nil {
		return fmt.Errorf("failed to load proposal receiver: %w", err)
	}

	s.emit(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  proposal.ReceiverID,
		Type:    domain.NotifProposalReceived,
		Title:   "New proposal",
		Message: fmt.Sprintf("%s has sent you a proposal", sender.FullName),
		Data:    proposalData(proposal.ID),
	})

	if s.emailSvc != nil && receiver.Email != "" {
		go func(toEmail, recipientName, senderName string) {
			if err := s.emailSvc.SendProposalReceivedEmail(context.Background(), toEmail, recipientName, senderName); err != nil {
				log.Printf("Failed to send proposal email to %s: %v", toEmail, err)
			}
		}(receiver.Email, receiver.FullName, sender.FullName)
	}

	return nil
}

func (s *service) NotifyProposalAccepted(ctx context.Context, proposal *domain.Proposal) error {
	receiver, err := s.userRepo.GetByID(ctx, proposal.ReceiverID)
	if err != nil || receiver == nil {
		return fmt.Errorf("failed to load proposal receiver: %w", err)
	}

	s.emit(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  proposal.SenderID,
		Type:    domain.NotifProposalAccepted,
		Title:   "Proposal accepted",
		Message: fmt.Sprintf("%s has accepted your proposal", receiver.FullName),
		Data:    proposalData(proposal.ID),
	})

	return nil
}

func (s *service) NotifyProposalRejected(ctx context.Context, proposal *domain.Proposal) error {
	receiver, err := s.userRepo.GetByID(ctx, proposal.ReceiverID)
	if err != nil || receiver == nil {
		return fmt.Errorf("failed to load proposal receiver: %w", err)
	}

	s.emit(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  proposal.SenderID,
		Type:    domain.NotifProposalRejected,
		Title:   "Proposal declined",
		Message: fmt.Sprintf("%s has declined your proposal", receiver.FullName),
		Data:    proposalData(proposal.ID),
	})

	return nil
}

func (s *service) NotifyProfileApproved(ctx context.Context, profile *domain.Profile) error {
	owner, err := s.userRepo.GetByID(ctx, profile.UserID)
	if err != nil || owner == nil {
		return fmt.Errorf("failed to load profile owner: %w", err)
	}

	s.emit(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  profile.UserID,
		Type:    domain.NotifProfileApproved,
		Title:   "Profile approved",
		Message: "Your profile has been approved and is now visible to other members",
		Data:    profileData(profile.ID),
	})

	if s.emailSvc != nil && owner.Email != "" {
		go func(toEmail, fullName string) {
			if err := s.emailSvc.SendProfileReviewedEmail(context.Background(), toEmail, fullName, "approved", nil); err != nil {
				log.Printf("Failed to send profile review email to %s: %v", toEmail, err)
			}
		}(owner.Email, owner.FullName)
	}

	return nil
}

func (s *service) NotifyProfileRefused(ctx context.Context, profile *domain.Profile, reason *string) error {
	owner, err := s.userRepo.GetByID(ctx, profile.UserID)
	if err != nil || owner == nil {
		return fmt.Errorf("failed to load profile owner: %w", err)
	}

	message := "Your profile was not approved"
	if reason != nil && *reason != "" {
		message += ": " + *reason
	}

	s.emit(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  profile.UserID,
		Type:    domain.NotifProfileRefused,
		Title:   "Profile not approved",
		Message: message,
		Data:    profileData(profile.ID),
	})

	if s.emailSvc != nil && owner.Email != "" {
		go func(toEmail, fullName string, reason *string) {
			if err := s.emailSvc.SendProfileReviewedEmail(context.Background(), toEmail, fullName, "refused", reason); err != nil {
				log.Printf("Failed to send profile review email to %s: %v", toEmail, err)
			}
		}(owner.Email, owner.FullName, reason)
	}

	return nil
}

func (s *service) NotifyNewMessage(ctx context.Context, message *domain.Message) error {
	sender, err := s.userRepo.GetByID(ctx, message.SenderID)
	if err != nil || sender == nil {
		return fmt.Errorf("failed to load message sender: %w", err)
	}

	s.emit(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  message.RecipientID,
		Type:    domain.NotifNewMessage,
		Title:   "New message",
		Message: fmt.Sprintf("%s sent you a message", sender.FullName),
		Data:    json.RawMessage(`{"sender_id":"` + message.SenderID.String() + `"}`),
	})

	return nil
}

func (s *service) emit(ctx context.Context, notif *domain.Notification) {
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		log.Printf("Failed to create notification for user %s: %v", notif.UserID, err)
	}
}

func proposalData(proposalID uuid.UUID) json.RawMessage {
	return json.RawMessage(`{"proposal_id":"` + proposalID.String() + `"}`)
}

func profileData(profileID uuid.UUID) json.RawMessage {
	return json.RawMessage(`{"profile_id":"` + profileID.String() + `"}`)
}
