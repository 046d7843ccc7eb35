package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"notification_id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Data      json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifProposalReceived NotificationType = "PROPOSAL_RECEIVED"
	NotifProposalAccepted NotificationType = "PROPOSAL_ACCEPTED"
	NotifProposalRejected NotificationType = "PROPOSAL_REJECTED"
	NotifProfileApproved  NotificationType = "PROFILE_APPROVED"
	NotifProfileRefused   NotificationType = "PROFILE_REFUSED"
	NotifNewMessage       NotificationType = "NEW_MESSAGE"
)
