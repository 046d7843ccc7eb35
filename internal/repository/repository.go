package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Profile      ProfileRepository
	Photo        PhotoRepository
	Proposal     ProposalRepository
	SavedProfile SavedProfileRepository
	Message      MessageRepository
	Notification NotificationRepository
	Session      SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Profile:      NewProfileRepository(db),
		Photo:        NewPhotoRepository(db),
		Proposal:     NewProposalRepository(db),
		SavedProfile: NewSavedProfileRepository(db),
		Message:      NewMessageRepository(db),
		Notification: NewNotificationRepository(db),
		Session:      NewSessionRepository(db),
	}
}
