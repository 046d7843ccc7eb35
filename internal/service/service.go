package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"matrimony-be/internal/config"
	"matrimony-be/internal/repository"
	"matrimony-be/internal/service/approval"
	"matrimony-be/internal/service/auth"
	"matrimony-be/internal/service/email"
	"matrimony-be/internal/service/message"
	"matrimony-be/internal/service/notification"
	"matrimony-be/internal/service/photo"
	"matrimony-be/internal/service/profile"
	"matrimony-be/internal/service/proposal"
	"matrimony-be/internal/service/saved"
	"matrimony-be/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Profile      profile.Service
	Approval     approval.Service
	Proposal     proposal.Service
	Photo        photo.Service
	Saved        saved.Service
	Message      message.Service
	Email        email.Service
	Notification notification.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	notificationService := notification.NewService(repos.Notification, repos.User, emailService)
	authService := auth.NewService(repos.User, repos.Session, emailService, cfg)
	userService := user.NewService(repos.User)
	profileService := profile.NewService(repos.Profile, repos.Photo, repos.User, redis, cfg)
	approvalService := approval.NewService(repos.Profile, repos.User, notificationService, profileService)
	proposalService := proposal.NewService(repos.Proposal, repos.User, repos.Profile, notificationService, cfg)
	photoService := photo.NewService(repos.Photo, repos.Profile, minioClient, cfg)
	savedService := saved.NewService(repos.SavedProfile, repos.Profile, cfg)
	messageService := message.NewService(repos.Message, repos.Proposal, repos.User, notificationService)

	return &Services{
		Auth:         authService,
		User:         userService,
		Profile:      profileService,
		Approval:     approvalService,
		Proposal:     proposalService,
		Photo:        photoService,
		Saved:        savedService,
		Message:      messageService,
		Email:        emailService,
		Notification: notificationService,
	}
}
