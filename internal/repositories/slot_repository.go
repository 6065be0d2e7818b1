package repositories

import (
	"context"
	"errors"
	"fmt"

	"talentsite_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSlotNotFound = errors.New("slot row not found")
	ErrInvalidSlot  = errors.New("invalid slot key")
)

// SlotRepository читает и пишет одну файловую ссылку в адресуемой ячейке.
// Таблица и колонка берутся только из реестра видов, не из запроса.
type SlotRepository interface {
	// Read возвращает текущее значение ячейки (nil - ячейка пуста)
	Read(ctx context.Context, key models.SlotKey) (*string, error)

	// Write записывает новое значение ячейки
	Write(ctx context.Context, key models.SlotKey, value *string) error
}

type SlotRepositoryImpl struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &SlotRepositoryImpl{db: db}
}

func (r *SlotRepositoryImpl) Read(ctx context.Context, key models.SlotKey) (*string, error) {
	if !key.Valid() {
		return nil, ErrInvalidSlot
	}
	d := key.Descriptor()

	var row struct {
		Value *string
	}
	err := r.db.WithContext(ctx).
		Table(d.Table).
		Select(fmt.Sprintf("`%s` AS value", key.Column)).
		Where("id = ?", key.RowID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return row.Value, nil
}

func (r *SlotRepositoryImpl) Write(ctx context.Context, key models.SlotKey, value *string) error {
	if !key.Valid() {
		return ErrInvalidSlot
	}
	d := key.Descriptor()

	result := r.db.WithContext(ctx).
		Table(d.Table).
		Where("id = ?", key.RowID).
		Update(key.Column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// MySQL не считает строку затронутой, если значение не изменилось,
		// поэтому нулевой счетчик сам по себе не означает отсутствие строки
		var count int64
		if err := r.db.WithContext(ctx).Table(d.Table).Where("id = ?", key.RowID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrSlotNotFound
		}
	}
	return nil
}
