package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/middleware"
	"matrimony-be/internal/service/message"
	"matrimony-be/internal/validation"
)

type MessageHandler struct {
	messageService message.Service
}

func NewMessageHandler(messageService message.Service) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.SendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	sent, err := h.messageService.Send(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfMessage):
			return middleware.BadRequest("Cannot send a message to yourself")
		case errors.Is(err, domain.ErrUserNotFound):
			return middleware.NotFound("Recipient not found")
		case errors.Is(err, domain.ErrUserInactive):
			return middleware.UnprocessableEntity("Recipient account is inactive")
		case errors.Is(err, domain.ErrNotMatched):
			return middleware.Forbidden("Messaging requires an accepted proposal")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(sent)
}

func (h *MessageHandler) ListConversations(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	conversations, err := h.messageService.ListConversations(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(conversations)
}

func (h *MessageHandler) ListWith(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	partnerID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	params := getPaginationParams(c)

	result, err := h.messageService.ListWith(c.Context(), userID, partnerID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
