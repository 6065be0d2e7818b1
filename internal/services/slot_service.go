package services

import (
	"context"
	"errors"

	"talentsite_backend/internal/logger"
	"talentsite_backend/internal/models"
	"talentsite_backend/internal/repositories"
	"talentsite_backend/internal/storage"
	"talentsite_backend/pkg/apperrors"
)

// SlotStore выполняет замену содержимого ячейки по единому протоколу:
// сначала записать новую ссылку, и только после успешной записи удалить
// прежний файл. На любом отказе до записи новый файл удаляется, а прежнее
// состояние остается нетронутым.
// ReplaceResult - итог успешной замены: имя нового файла и имя прежнего
// (пусто, если ячейка была свободна)
type ReplaceResult struct {
	NewFile      string `json:"new_file"`
	PreviousFile string `json:"previous_file,omitempty"`
}

type SlotStore interface {
	// Replace атомарно с точки зрения клиента заменяет содержимое ячейки
	Replace(ctx context.Context, key models.SlotKey, upload *models.Upload) (*ReplaceResult, error)

	// Clear освобождает ячейку и удаляет ее файл (для фиксированных строк)
	Clear(ctx context.Context, key models.SlotKey) error

	// Current возвращает текущее имя файла ячейки (nil - пусто)
	Current(ctx context.Context, key models.SlotKey) (*string, error)
}

type slotStore struct {
	repo    repositories.SlotRepository
	storage storage.Storage
	uploads UploadService
}

func NewSlotStore(repo repositories.SlotRepository, st storage.Storage, uploads UploadService) SlotStore {
	return &slotStore{repo: repo, storage: st, uploads: uploads}
}

func (s *slotStore) Replace(ctx context.Context, key models.SlotKey, upload *models.Upload) (*ReplaceResult, error) {
	if upload == nil {
		return nil, apperrors.ErrNoFileProvided
	}

	// Читаем прежнее значение до записи: если строки нет,
	// загрузка не должна остаться лежать в каталоге
	previous, err := s.repo.Read(ctx, key)
	if err != nil {
		s.uploads.Discard(ctx, upload)
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return nil, apperrors.ErrSlotNotFound.WithDetails(key.String())
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.repo.Write(ctx, key, &upload.Filename); err != nil {
		s.uploads.Discard(ctx, upload)
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return nil, apperrors.ErrSlotNotFound.WithDetails(key.String())
		}
		return nil, apperrors.PersistenceFailed(err)
	}

	result := &ReplaceResult{NewFile: upload.Filename}
	if previous != nil {
		result.PreviousFile = *previous
	}

	// Новая ссылка зафиксирована. Прежний файл удаляем, только если он был
	// и отличается от нового; отказ удаления не откатывает замену.
	if result.PreviousFile != "" && result.PreviousFile != upload.Filename {
		s.deleteFile(ctx, key, result.PreviousFile)
	}

	return result, nil
}

func (s *slotStore) Clear(ctx context.Context, key models.SlotKey) error {
	previous, err := s.repo.Read(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return apperrors.ErrSlotNotFound.WithDetails(key.String())
		}
		return apperrors.InternalError(err)
	}

	if err := s.repo.Write(ctx, key, nil); err != nil {
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return apperrors.ErrSlotNotFound.WithDetails(key.String())
		}
		return apperrors.PersistenceFailed(err)
	}

	if previous != nil && *previous != "" {
		s.deleteFile(ctx, key, *previous)
	}

	return nil
}

func (s *slotStore) Current(ctx context.Context, key models.SlotKey) (*string, error) {
	value, err := s.repo.Read(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return nil, apperrors.ErrSlotNotFound.WithDetails(key.String())
		}
		return nil, apperrors.InternalError(err)
	}
	return value, nil
}

// deleteFile удаляет файл ячейки. Ошибка только логируется:
// осиротевший файл подберет фоновая сверка.
func (s *slotStore) deleteFile(ctx context.Context, key models.SlotKey, filename string) {
	path := key.Descriptor().Dir + "/" + filename
	if err := s.storage.Delete(ctx, path); err != nil {
		logger.CtxWithError(ctx, err).Warn("failed to delete replaced file",
			"slot", key.String(), "path", path)
	}
}
