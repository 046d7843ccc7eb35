package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedProfile is the bookmark join between a user and a profile they
// shortlisted. Unique per (user_id, profile_id).
type SavedProfile struct {
	ID        uuid.UUID `json:"id" db:"saved_profile_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Profile *ProfileSummary `json:"profile,omitempty" db:"-"`
}
