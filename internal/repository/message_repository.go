package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"matrimony-be/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListBetween(ctx context.Context, userA, userB uuid.UUID, params domain.PaginationParams) ([]domain.Message, int64, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)
	MarkReadFrom(ctx context.Context, recipientID, senderID uuid.UUID) error
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (message_id, sender_id, recipient_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		message.ID, message.SenderID, message.RecipientID, message.Content,
	).Scan(&message.CreatedAt)
}

func (r *messageRepository) ListBetween(ctx context.Context, userA, userB uuid.UUID, params domain.PaginationParams) ([]domain.Message, int64, error) {
	params.Validate()

	var total int64
	countQuery := `
		SELECT COUNT(*) FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)`
	if err := r.db.GetContext(ctx, &total, countQuery, userA, userB); err != nil {
		return nil, 0, err
	}

	var messages []domain.Message
	query := `
		SELECT * FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY created_at ASC
		LIMIT $3 OFFSET $4`
	err := r.db.SelectContext(ctx, &messages, query, userA, userB, params.PageSize, params.Offset())
	return messages, total, err
}

// ListConversations returns, per partner, the latest message exchanged with
// the user and the count of unread messages from that partner.
func (r *messageRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	type row struct {
		domain.Message
		PartnerID   uuid.UUID `db:"partner_id"`
		UnreadCount int64     `db:"unread_count"`
	}

	query := `
		SELECT DISTINCT ON (partner_id) m.*,
			CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END AS partner_id,
			(SELECT COUNT(*) FROM messages u
			 WHERE u.recipient_id = $1
			   AND u.sender_id = CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END
			   AND NOT u.is_read) AS unread_count
		FROM messages m
		WHERE m.sender_id = $1 OR m.recipient_id = $1
		ORDER BY partner_id, m.created_at DESC`

	var rows []row
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	conversations := make([]domain.Conversation, 0, len(rows))
	for _, rw := range rows {
		conversations = append(conversations, domain.Conversation{
			PartnerID:   rw.PartnerID,
			LastMessage: rw.Message,
			UnreadCount: rw.UnreadCount,
		})
	}
	return conversations, nil
}

func (r *messageRepository) MarkReadFrom(ctx context.Context, recipientID, senderID uuid.UUID) error {
	query := `
		UPDATE messages SET is_read = TRUE, read_at = NOW()
		WHERE recipient_id = $1 AND sender_id = $2 AND NOT is_read`
	_, err := r.db.ExecContext(ctx, query, recipientID, senderID)
	return err
}
