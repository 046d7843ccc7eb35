package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"matrimony-be/internal/domain"
)

type ProposalRepository interface {
	Create(ctx context.Context, proposal *domain.Proposal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ExistsOutstanding(ctx context.Context, userA, userB uuid.UUID) (bool, error)
	HasAcceptedBetween(ctx context.Context, userA, userB uuid.UUID) (bool, error)
	TransitionFromPending(ctx context.Context, id uuid.UUID, to domain.ProposalStatus) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Proposal, int64, error)
}

type proposalRepository struct {
	db *sqlx.DB
}

func NewProposalRepository(db *sqlx.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

// Create runs as a single attempt: replaying an insert after a connection
// failure with an unknown outcome could duplicate the row, so the caller
// sees the error instead.
func (r *proposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	query := `
		INSERT INTO proposals (proposal_id, sender_id, receiver_id, status, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		proposal.ID, proposal.SenderID, proposal.ReceiverID, proposal.Status, proposal.Message,
	).Scan(&proposal.CreatedAt, &proposal.UpdatedAt)
	if isUniqueViolation(err, "proposals_outstanding_pair_idx") {
		return domain.ErrDuplicateProposal
	}
	return err
}

func (r *proposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	var proposal domain.Proposal
	query := `SELECT * FROM proposals WHERE proposal_id = $1`

	err := withRetry(ctx, func() error {
		return r.db.GetContext(ctx, &proposal, query, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// ExistsOutstanding reports whether a PENDING proposal exists between the
// two users in either direction.
func (r *proposalRepository) ExistsOutstanding(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM proposals
			WHERE status = 'PENDING'
			  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
		)`
	err := r.db.GetContext(ctx, &exists, query, userA, userB)
	return exists, err
}

// HasAcceptedBetween reports whether the two users share an ACCEPTED
// proposal in either direction.
func (r *proposalRepository) HasAcceptedBetween(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM proposals
			WHERE status = 'ACCEPTED'
			  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
		)`
	err := r.db.GetContext(ctx, &exists, query, userA, userB)
	return exists, err
}

// TransitionFromPending moves the proposal to a terminal status only if it
// is still PENDING. The conditional update serializes concurrent responses;
// the false return means the proposal was missing or already terminal.
func (r *proposalRepository) TransitionFromPending(ctx context.Context, id uuid.UUID, to domain.ProposalStatus) (bool, error) {
	query := `
		UPDATE proposals
		SET status = $2, responded_at = NOW(), updated_at = NOW()
		WHERE proposal_id = $1 AND status = 'PENDING'`

	var rows int64
	err := withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, id, to)
		if err != nil {
			return err
		}
		rows, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *proposalRepository) ListForUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Proposal, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM proposals WHERE sender_id = $1 OR receiver_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	var proposals []domain.Proposal
	query := `
		SELECT * FROM proposals
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &proposals, query, userID, params.PageSize, params.Offset())
	return proposals, total, err
}
