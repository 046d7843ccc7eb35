package domain

import (
	"time"

	"github.com/google/uuid"
)

type Proposal struct {
	ID          uuid.UUID      `json:"id" db:"proposal_id"`
	SenderID    uuid.UUID      `json:"sender_id" db:"sender_id"`
	ReceiverID  uuid.UUID      `json:"receiver_id" db:"receiver_id"`
	Status      ProposalStatus `json:"status" db:"status"`
	Message     *string        `json:"message,omitempty" db:"message"`
	RespondedAt *time.Time     `json:"responded_at,omitempty" db:"responded_at"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`

	Sender   *UserSummary `json:"sender,omitempty" db:"-"`
	Receiver *UserSummary `json:"receiver,omitempty" db:"-"`
}

// ProposalStatus is the single stored vocabulary. The source of truth is
// always one of these four; "sent"/"received" only ever exist as
// viewer-relative labels computed at read time.
type ProposalStatus string

const (
	ProposalPending   ProposalStatus = "PENDING"
	ProposalAccepted  ProposalStatus = "ACCEPTED"
	ProposalRejected  ProposalStatus = "REJECTED"
	ProposalWithdrawn ProposalStatus = "WITHDRAWN"
)

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalPending, ProposalAccepted, ProposalRejected, ProposalWithdrawn:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s ProposalStatus) IsTerminal() bool {
	return s != ProposalPending
}

type CreateProposalInput struct {
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Message    *string   `json:"message,omitempty" validate:"omitempty,max=1000"`
}

type ProposalDirection string

const (
	DirectionSent     ProposalDirection = "sent"
	DirectionReceived ProposalDirection = "received"
)

// ProposalView annotates a proposal with the viewer-relative direction and
// the counterpart's card for listing screens.
type ProposalView struct {
	Proposal
	Direction   ProposalDirection `json:"direction"`
	Counterpart *ProfileSummary   `json:"counterpart,omitempty"`
}

func (p Proposal) DirectionFor(viewerID uuid.UUID) ProposalDirection {
	if p.SenderID == viewerID {
		return DirectionSent
	}
	return DirectionReceived
}
