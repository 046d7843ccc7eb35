package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/middleware"
	"matrimony-be/internal/service/profile"
	"matrimony-be/internal/validation"
)

type ProfileHandler struct {
	profileService profile.Service
}

func NewProfileHandler(profileService profile.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.CreateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	created, err := h.profileService.Create(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrProfileExists) {
			return middleware.Conflict("Profile already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProfileHandler) GetOwn(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	p, err := h.profileService.GetOwn(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(p)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	updated, err := h.profileService.Update(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("profileId"))
	if err != nil {
		return middleware.BadRequest("Invalid profile ID")
	}

	viewer := middleware.GetCurrentUser(c)

	p, err := h.profileService.GetByID(c.Context(), viewer, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(p)
}

func (h *ProfileHandler) Browse(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.profileService.Browse(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
