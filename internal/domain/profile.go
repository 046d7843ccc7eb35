package domain

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID              uuid.UUID     `json:"id" db:"profile_id"`
	UserID          uuid.UUID     `json:"user_id" db:"user_id"`
	Sex             string        `json:"sex" db:"sex"`
	Birthday        time.Time     `json:"birthday" db:"birthday"`
	District        *string       `json:"district,omitempty" db:"district"`
	Religion        *string       `json:"religion,omitempty" db:"religion"`
	Caste           *string       `json:"caste,omitempty" db:"caste"`
	Education       *string       `json:"education,omitempty" db:"education"`
	Occupation      *string       `json:"occupation,omitempty" db:"occupation"`
	HeightCM        *int          `json:"height_cm,omitempty" db:"height_cm"`
	MaritalStatus   *string       `json:"marital_status,omitempty" db:"marital_status"`
	AboutMe         *string       `json:"about_me,omitempty" db:"about_me"`
	Status          ProfileStatus `json:"status" db:"status"`
	ApprovedAt      *time.Time    `json:"approved_at,omitempty" db:"approved_at"`
	ApprovedBy      *uuid.UUID    `json:"approved_by,omitempty" db:"approved_by"`
	RejectedAt      *time.Time    `json:"rejected_at,omitempty" db:"rejected_at"`
	RejectedBy      *uuid.UUID    `json:"rejected_by,omitempty" db:"rejected_by"`
	RejectionReason *string       `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`

	Owner  *UserSummary `json:"owner,omitempty" db:"-"`
	Photos []Photo      `json:"photos,omitempty" db:"-"`
}

type ProfileStatus string

const (
	ProfilePending  ProfileStatus = "pending"
	ProfileApproved ProfileStatus = "approved"
	ProfileRefused  ProfileStatus = "refused"
)

func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfilePending, ProfileApproved, ProfileRefused:
		return true
	default:
		return false
	}
}

type CreateProfileInput struct {
	Sex           string  `json:"sex" validate:"required,oneof=male female"`
	Birthday      string  `json:"birthday" validate:"required,datetime=2006-01-02"`
	District      *string `json:"district,omitempty" validate:"omitempty,max=100"`
	Religion      *string `json:"religion,omitempty" validate:"omitempty,max=100"`
	Caste         *string `json:"caste,omitempty" validate:"omitempty,max=100"`
	Education     *string `json:"education,omitempty" validate:"omitempty,max=200"`
	Occupation    *string `json:"occupation,omitempty" validate:"omitempty,max=200"`
	HeightCM      *int    `json:"height_cm,omitempty" validate:"omitempty,min=50,max=280"`
	MaritalStatus *string `json:"marital_status,omitempty" validate:"omitempty,oneof=single divorced widowed"`
	AboutMe       *string `json:"about_me,omitempty" validate:"omitempty,max=2000"`
}

type UpdateProfileInput struct {
	District      *string `json:"district,omitempty" validate:"omitempty,max=100"`
	Religion      *string `json:"religion,omitempty" validate:"omitempty,max=100"`
	Caste         *string `json:"caste,omitempty" validate:"omitempty,max=100"`
	Education     *string `json:"education,omitempty" validate:"omitempty,max=200"`
	Occupation    *string `json:"occupation,omitempty" validate:"omitempty,max=200"`
	HeightCM      *int    `json:"height_cm,omitempty" validate:"omitempty,min=50,max=280"`
	MaritalStatus *string `json:"marital_status,omitempty" validate:"omitempty,oneof=single divorced widowed"`
	AboutMe       *string `json:"about_me,omitempty" validate:"omitempty,max=2000"`
}

type RefuseProfileInput struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ProfileSummary is the card shown in browse and proposal listings.
type ProfileSummary struct {
	ID            uuid.UUID `json:"id" db:"profile_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	FullName      string    `json:"full_name" db:"full_name"`
	Sex           string    `json:"sex" db:"sex"`
	Birthday      time.Time `json:"birthday" db:"birthday"`
	District      *string   `json:"district,omitempty" db:"district"`
	Religion      *string   `json:"religion,omitempty" db:"religion"`
	Occupation    *string   `json:"occupation,omitempty" db:"occupation"`
	MainPhotoURL  *string   `json:"main_photo_url,omitempty" db:"main_photo_url"`
}
