package domain

import (
	"time"

	"github.com/google/uuid"
)

type Photo struct {
	ID          uuid.UUID `json:"id" db:"photo_id"`
	ProfileID   uuid.UUID `json:"profile_id" db:"profile_id"`
	StoragePath string    `json:"-" db:"storage_path"`
	URL         string    `json:"url" db:"-"`
	FileName    string    `json:"file_name" db:"file_name"`
	FileSize    int64     `json:"file_size" db:"file_size"`
	MimeType    string    `json:"mime_type" db:"mime_type"`
	IsMain      bool      `json:"is_main" db:"is_main"`
	IsApproved  bool      `json:"is_approved" db:"is_approved"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
