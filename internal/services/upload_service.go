package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"talentsite_backend/internal/config"
	"talentsite_backend/internal/logger"
	"talentsite_backend/internal/models"
	"talentsite_backend/internal/storage"
	"talentsite_backend/pkg/apperrors"
)

// UploadService принимает multipart-файл в каталог его вида.
// Принятый файл еще ничей: пока ссылка не записана в слот,
// он либо фиксируется протоколом замены, либо удаляется Discard.
type UploadService interface {
	Receive(ctx context.Context, kind models.SlotKind, file *multipart.FileHeader) (*models.Upload, error)
	Discard(ctx context.Context, upload *models.Upload)
}

// UploadPolicy - ограничения приема для одного вида контента
type UploadPolicy struct {
	MaxSize     int64
	AllowedExts []string
}

var imageExts = []string{".jpg", ".jpeg", ".png", ".webp"}

type uploadService struct {
	storage  storage.Storage
	policies map[models.SlotKind]UploadPolicy
}

func NewUploadService(st storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{
		storage: st,
		policies: map[models.SlotKind]UploadPolicy{
			models.SlotHomeVideo: {
				MaxSize:     cfg.Upload.VideoMaxSize,
				AllowedExts: []string{".mp4", ".webm", ".mov"},
			},
			models.SlotBanner: {
				MaxSize:     cfg.Upload.BannerMaxSize,
				AllowedExts: imageExts,
			},
			models.SlotCategory: {
				MaxSize:     2 << 20,
				AllowedExts: imageExts,
			},
			models.SlotFeaturedTalent: {
				MaxSize:     10 << 20,
				AllowedExts: imageExts,
			},
			models.SlotTestimonial: {
				MaxSize:     2 << 20,
				AllowedExts: imageExts,
			},
		},
	}
}

func (s *uploadService) Receive(ctx context.Context, kind models.SlotKind, file *multipart.FileHeader) (*models.Upload, error) {
	if file == nil {
		return nil, apperrors.ErrNoFileProvided
	}

	desc, ok := models.DescriptorFor(kind)
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown content kind: %s", kind))
	}

	policy := s.policies[kind]
	if policy.MaxSize > 0 && file.Size > policy.MaxSize {
		return nil, apperrors.ErrFileTooLarge.WithDetails(
			fmt.Sprintf("file is %d bytes, limit is %d", file.Size, policy.MaxSize))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extAllowed(ext, policy.AllowedExts) {
		return nil, apperrors.ErrInvalidFile.WithDetails(
			fmt.Sprintf("extension %q is not allowed", ext))
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	filename := buildFilename(file.Filename)
	path := desc.Dir + "/" + filename

	contentType := file.Header.Get("Content-Type")
	if err := s.storage.Save(ctx, path, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &models.Upload{
		Kind:     kind,
		Filename: filename,
		Path:     path,
		Size:     file.Size,
	}, nil
}

// Discard удаляет принятый, но не зафиксированный файл.
// Ошибка удаления только логируется: файл подберет фоновая уборка.
func (s *uploadService) Discard(ctx context.Context, upload *models.Upload) {
	if upload == nil {
		return
	}
	if err := s.storage.Delete(ctx, upload.Path); err != nil {
		logger.CtxWithError(ctx, err).Warn("failed to discard upload", "path", upload.Path)
	}
}

// buildFilename строит имя вида "<unix-millis>-<исходное имя>",
// очищая исходное от путей и небезопасных символов
func buildFilename(original string) string {
	base := filepath.Base(original)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}

func extAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
