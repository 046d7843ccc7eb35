package domain

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID          uuid.UUID  `json:"id" db:"message_id"`
	SenderID    uuid.UUID  `json:"sender_id" db:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id" db:"recipient_id"`
	Content     string     `json:"content" db:"content"`
	IsRead      bool       `json:"is_read" db:"is_read"`
	ReadAt      *time.Time `json:"read_at,omitempty" db:"read_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

type SendMessageInput struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Content     string    `json:"content" validate:"required,max=4000"`
}

// Conversation is one row of a user's inbox: the latest message exchanged
// with a partner plus the unread count from that partner.
type Conversation struct {
	PartnerID   uuid.UUID    `json:"partner_id" db:"partner_id"`
	Partner     *UserSummary `json:"partner,omitempty" db:"-"`
	LastMessage Message      `json:"last_message" db:"-"`
	UnreadCount int64        `json:"unread_count" db:"unread_count"`
}
