package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/middleware"
	"matrimony-be/internal/service/photo"
)

const maxPhotoSize = 10 * 1024 * 1024 // 10 MB

type PhotoHandler struct {
	photoService photo.Service
}

func NewPhotoHandler(photoService photo.Service) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if fileHeader.Size > maxPhotoSize {
		return middleware.BadRequest("File exceeds the 10 MB limit")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return middleware.BadRequest("Only image uploads are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to open uploaded file")
	}
	defer file.Close()

	uploaded, err := h.photoService.Upload(c.Context(), userID, fileHeader.Filename, fileHeader.Size, mimeType, file)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.UnprocessableEntity("Create a profile before uploading photos")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(uploaded)
}

func (h *PhotoHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	photos, err := h.photoService.ListOwn(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(photos)
}

func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	userID, photoID, err := h.photoParams(c)
	if err != nil {
		return err
	}

	if err := h.photoService.Delete(c.Context(), userID, photoID); err != nil {
		return h.mapPhotoError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PhotoHandler) SetMain(c *fiber.Ctx) error {
	userID, photoID, err := h.photoParams(c)
	if err != nil {
		return err
	}

	if err := h.photoService.SetMain(c.Context(), userID, photoID); err != nil {
		return h.mapPhotoError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Main photo updated"})
}

func (h *PhotoHandler) photoParams(c *fiber.Ctx) (userID, photoID uuid.UUID, err error) {
	userID, err = middleware.GetUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	photoID, err = uuid.Parse(c.Params("photoId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.BadRequest("Invalid photo ID")
	}

	return userID, photoID, nil
}

func (h *PhotoHandler) mapPhotoError(err error) error {
	switch {
	case errors.Is(err, domain.ErrPhotoNotFound):
		return middleware.NotFound("Photo not found")
	case errors.Is(err, domain.ErrNotPhotoOwner):
		return middleware.Forbidden("Photo belongs to another profile")
	}
	return err
}
