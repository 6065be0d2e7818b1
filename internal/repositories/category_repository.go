package repositories

import (
	"context"
	"errors"

	"talentsite_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	Create(ctx context.Context, category *models.PopularCategory) error
	FindByID(ctx context.Context, id uint) (*models.PopularCategory, error)
	FindAll(ctx context.Context) ([]models.PopularCategory, error)
	Update(ctx context.Context, category *models.PopularCategory) error
	Delete(ctx context.Context, id uint) error

	// LiveAvatars возвращает все ссылки на аватары из таблицы
	LiveAvatars(ctx context.Context) ([]string, error)
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.PopularCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.PopularCategory, error) {
	var category models.PopularCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context) ([]models.PopularCategory, error) {
	var categories []models.PopularCategory
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.PopularCategory) error {
	result := r.db.WithContext(ctx).Model(&models.PopularCategory{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"title":        category.Title,
			"talent_count": category.TalentCount,
			"description":  category.Description,
			"gender":       category.Gender,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.PopularCategory{}).Where("id = ?", category.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCategoryNotFound
		}
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PopularCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) LiveAvatars(ctx context.Context) ([]string, error) {
	var avatars []string
	err := r.db.WithContext(ctx).Model(&models.PopularCategory{}).
		Where("avatar IS NOT NULL AND avatar <> ''").
		Pluck("avatar", &avatars).Error
	return avatars, err
}
