package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/middleware"
	"matrimony-be/internal/service/approval"
	"matrimony-be/internal/service/photo"
	"matrimony-be/internal/service/user"
	"matrimony-be/internal/validation"
)

// AdminHandler groups the admin-only surface: the profile review queue,
// member management, and photo moderation.
type AdminHandler struct {
	approvalService approval.Service
	userService     user.Service
	photoService    photo.Service
}

func NewAdminHandler(approvalService approval.Service, userService user.Service, photoService photo.Service) *AdminHandler {
	return &AdminHandler{
		approvalService: approvalService,
		userService:     userService,
		photoService:    photoService,
	}
}

func (h *AdminHandler) ListProfiles(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.ProfileStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.ProfileStatus(raw)
		if !s.IsValid() {
			return middleware.BadRequest("Invalid status filter")
		}
		status = &s
	}

	result, err := h.approvalService.ListByStatus(c.Context(), status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AdminHandler) ApproveProfile(c *fiber.Ctx) error {
	adminID, profileID, err := h.reviewParams(c)
	if err != nil {
		return err
	}

	approved, err := h.approvalService.Approve(c.Context(), adminID, profileID)
	if err != nil {
		return h.mapReviewError(err)
	}

	return c.Status(fiber.StatusOK).JSON(approved)
}

func (h *AdminHandler) RefuseProfile(c *fiber.Ctx) error {
	adminID, profileID, err := h.reviewParams(c)
	if err != nil {
		return err
	}

	var input domain.RefuseProfileInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
		if err := validation.Struct(input); err != nil {
			return middleware.BadRequest(err.Error())
		}
	}

	refused, err := h.approvalService.Refuse(c.Context(), adminID, profileID, input)
	if err != nil {
		return h.mapReviewError(err)
	}

	return c.Status(fiber.StatusOK).JSON(refused)
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.userService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AdminHandler) ActivateUser(c *fiber.Ctx) error {
	return h.setUserActive(c, true)
}

func (h *AdminHandler) DeactivateUser(c *fiber.Ctx) error {
	return h.setUserActive(c, false)
}

func (h *AdminHandler) ApprovePhoto(c *fiber.Ctx) error {
	photoID, err := uuid.Parse(c.Params("photoId"))
	if err != nil {
		return middleware.BadRequest("Invalid photo ID")
	}

	if err := h.photoService.SetApproved(c.Context(), photoID, true); err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			return middleware.NotFound("Photo not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Photo approved"})
}

func (h *AdminHandler) setUserActive(c *fiber.Ctx, active bool) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	if err := h.userService.SetActive(c.Context(), userID, active); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	message := "User deactivated"
	if active {
		message = "User activated"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

func (h *AdminHandler) reviewParams(c *fiber.Ctx) (adminID, profileID uuid.UUID, err error) {
	adminID, err = middleware.GetUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	profileID, err = uuid.Parse(c.Params("profileId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.BadRequest("Invalid profile ID")
	}

	return adminID, profileID, nil
}

func (h *AdminHandler) mapReviewError(err error) error {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return middleware.NotFound("Profile not found")
	case errors.Is(err, domain.ErrProfileNotPending):
		return middleware.Conflict("Profile is not pending review")
	case errors.Is(err, domain.ErrNotAdmin):
		return middleware.Forbidden("Admin role required")
	}
	return err
}
