package photo

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"matrimony-be/internal/config"
	"matrimony-be/internal/domain"
	"matrimony-be/internal/repository"
)

type Service interface {
	Upload(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Photo, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]domain.Photo, error)
	Delete(ctx context.Context, userID, photoID uuid.UUID) error
	SetMain(ctx context.Context, userID, photoID uuid.UUID) error
	SetApproved(ctx context.Context, photoID uuid.UUID, approved bool) error
}

type service struct {
	photoRepo   repository.PhotoRepository
	profileRepo repository.ProfileRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(photoRepo repository.PhotoRepository, profileRepo repository.ProfileRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		photoRepo:   photoRepo,
		profileRepo: profileRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) Upload(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Photo, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	photoID := uuid.New()
	storagePath := fmt.Sprintf("photos/%s/%s", time.Now().Format("2006/01"), photoID.String())

	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	existing, err := s.photoRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	photo := &domain.Photo{
		ID:          photoID,
		ProfileID:   profile.ID,
		StoragePath: storagePath,
		FileName:    fileName,
		FileSize:    fileSize,
		MimeType:    mimeType,
		IsMain:      len(existing) == 0,
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	photo.URL = PublicURL(s.cfg, photo.StoragePath)
	return photo, nil
}

func (s *service) ListOwn(ctx context.Context, userID uuid.UUID) ([]domain.Photo, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	photos, err := s.photoRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	for i := range photos {
		photos[i].URL = PublicURL(s.cfg, photos[i].StoragePath)
	}
	return photos, nil
}

func (s *service) Delete(ctx context.Context, userID, photoID uuid.UUID) error {
	photo, err := s.ownPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}

	if err := s.photoRepo.Delete(ctx, photoID); err != nil {
		return err
	}

	_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, photo.StoragePath, minio.RemoveObjectOptions{})
	return nil
}

func (s *service) SetMain(ctx context.Context, userID, photoID uuid.UUID) error {
	photo, err := s.ownPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}

	return s.photoRepo.SetMain(ctx, photo.ProfileID, photoID)
}

func (s *service) SetApproved(ctx context.Context, photoID uuid.UUID, approved bool) error {
	return s.photoRepo.SetApproved(ctx, photoID, approved)
}

// ownPhoto loads a photo and verifies it belongs to the caller's profile.
func (s *service) ownPhoto(ctx context.Context, userID, photoID uuid.UUID) (*domain.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, domain.ErrPhotoNotFound
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ID != photo.ProfileID {
		return nil, domain.ErrNotPhotoOwner
	}

	return photo, nil
}

// PublicURL builds the browser-facing object URL for a stored photo.
func PublicURL(cfg *config.Config, storagePath string) string {
	scheme := "http"
	if cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.MinIOPublicEndpoint, cfg.MinIOBucket, url.PathEscape(storagePath))
}
