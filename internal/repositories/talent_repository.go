package repositories

import (
	"context"
	"errors"

	"talentsite_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTalentNotFound = errors.New("featured talent not found")

type TalentRepository interface {
	Create(ctx context.Context, talent *models.FeaturedTalent) error
	FindByID(ctx context.Context, id uint) (*models.FeaturedTalent, error)
	FindAll(ctx context.Context) ([]models.FeaturedTalent, error)
	Update(ctx context.Context, talent *models.FeaturedTalent) error
	Delete(ctx context.Context, id uint) error

	// LiveImages возвращает все файловые ссылки из всех четырех колонок
	LiveImages(ctx context.Context) ([]string, error)
}

type TalentRepositoryImpl struct {
	db *gorm.DB
}

func NewTalentRepository(db *gorm.DB) TalentRepository {
	return &TalentRepositoryImpl{db: db}
}

func (r *TalentRepositoryImpl) Create(ctx context.Context, talent *models.FeaturedTalent) error {
	return r.db.WithContext(ctx).Create(talent).Error
}

func (r *TalentRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.FeaturedTalent, error) {
	var talent models.FeaturedTalent
	err := r.db.WithContext(ctx).First(&talent, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTalentNotFound
		}
		return nil, err
	}
	return &talent, nil
}

func (r *TalentRepositoryImpl) FindAll(ctx context.Context) ([]models.FeaturedTalent, error) {
	var talents []models.FeaturedTalent
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&talents).Error
	return talents, err
}

func (r *TalentRepositoryImpl) Update(ctx context.Context, talent *models.FeaturedTalent) error {
	result := r.db.WithContext(ctx).Model(&models.FeaturedTalent{}).
		Where("id = ?", talent.ID).
		Updates(map[string]interface{}{
			"name":       talent.Name,
			"gender":     talent.Gender,
			"age":        talent.Age,
			"location":   talent.Location,
			"height":     talent.Height,
			"hair_color": talent.HairColor,
			"shoe_size":  talent.ShoeSize,
			"eye_color":  talent.EyeColor,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.FeaturedTalent{}).Where("id = ?", talent.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrTalentNotFound
		}
	}
	return nil
}

func (r *TalentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FeaturedTalent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTalentNotFound
	}
	return nil
}

func (r *TalentRepositoryImpl) LiveImages(ctx context.Context) ([]string, error) {
	var talents []models.FeaturedTalent
	err := r.db.WithContext(ctx).
		Select("profile_img", "image1", "image2", "image3").
		Find(&talents).Error
	if err != nil {
		return nil, err
	}

	var refs []string
	for i := range talents {
		refs = append(refs, talents[i].ImageRefs()...)
	}
	return refs, nil
}
