package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/middleware"
	"matrimony-be/internal/service/saved"
)

type SavedHandler struct {
	savedService saved.Service
}

func NewSavedHandler(savedService saved.Service) *SavedHandler {
	return &SavedHandler{savedService: savedService}
}

func (h *SavedHandler) Save(c *fiber.Ctx) error {
	userID, profileID, err := h.params(c)
	if err != nil {
		return err
	}

	if err := h.savedService.Save(c.Context(), userID, profileID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Profile saved"})
}

func (h *SavedHandler) Unsave(c *fiber.Ctx) error {
	userID, profileID, err := h.params(c)
	if err != nil {
		return err
	}

	if err := h.savedService.Unsave(c.Context(), userID, profileID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SavedHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	params := getPaginationParams(c)

	result, err := h.savedService.List(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *SavedHandler) params(c *fiber.Ctx) (userID, profileID uuid.UUID, err error) {
	userID, err = middleware.GetUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	profileID, err = uuid.Parse(c.Params("profileId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.BadRequest("Invalid profile ID")
	}

	return userID, profileID, nil
}
