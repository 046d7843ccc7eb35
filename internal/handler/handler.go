package handler

import (
	"github.com/gofiber/fiber/v2"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Proposal     *ProposalHandler
	Admin        *AdminHandler
	Photo        *PhotoHandler
	Saved        *SavedHandler
	Message      *MessageHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Profile:      NewProfileHandler(services.Profile),
		Proposal:     NewProposalHandler(services.Proposal),
		Admin:        NewAdminHandler(services.Approval, services.User, services.Photo),
		Photo:        NewPhotoHandler(services.Photo),
		Saved:        NewSavedHandler(services.Saved),
		Message:      NewMessageHandler(services.Message),
		Notification: NewNotificationHandler(services.Notification),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
