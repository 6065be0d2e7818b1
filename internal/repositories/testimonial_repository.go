package repositories

import (
	"context"
	"errors"

	"talentsite_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	FindByID(ctx context.Context, id uint) (*models.Testimonial, error)
	FindAll(ctx context.Context) ([]models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id uint) error

	// LiveAvatars возвращает все ссылки на аватары из таблицы
	LiveAvatars(ctx context.Context) ([]string, error)
}

type TestimonialRepositoryImpl struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &TestimonialRepositoryImpl{db: db}
}

func (r *TestimonialRepositoryImpl) Create(ctx context.Context, testimonial *models.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *TestimonialRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.WithContext(ctx).First(&testimonial, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &testimonial, nil
}

func (r *TestimonialRepositoryImpl) FindAll(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

func (r *TestimonialRepositoryImpl) Update(ctx context.Context, testimonial *models.Testimonial) error {
	result := r.db.WithContext(ctx).Model(&models.Testimonial{}).
		Where("id = ?", testimonial.ID).
		Updates(map[string]interface{}{
			"name":        testimonial.Name,
			"description": testimonial.Description,
			"them":        testimonial.Them,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Testimonial{}).Where("id = ?", testimonial.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrTestimonialNotFound
		}
	}
	return nil
}

func (r *TestimonialRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepositoryImpl) LiveAvatars(ctx context.Context) ([]string, error) {
	var avatars []string
	err := r.db.WithContext(ctx).Model(&models.Testimonial{}).
		Where("avatar IS NOT NULL AND avatar <> ''").
		Pluck("avatar", &avatars).Error
	return avatars, err
}
