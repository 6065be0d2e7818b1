package repositories

import (
	"context"
	"errors"

	"talentsite_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBannerNotFound = errors.New("banner not found")

// HomeRepository отдает содержимое фиксированных слотов главной страницы
type HomeRepository interface {
	GetHomeVideo(ctx context.Context) (*models.HomeVideo, error)
	GetBanner(ctx context.Context, id uint) (*models.Banner, error)
	GetBanners(ctx context.Context) ([]models.Banner, error)

	// LiveVideoRefs и LiveBannerRefs возвращают занятые файловые ссылки
	LiveVideoRefs(ctx context.Context) ([]string, error)
	LiveBannerRefs(ctx context.Context) ([]string, error)
}

type HomeRepositoryImpl struct {
	db *gorm.DB
}

func NewHomeRepository(db *gorm.DB) HomeRepository {
	return &HomeRepositoryImpl{db: db}
}

func (r *HomeRepositoryImpl) GetHomeVideo(ctx context.Context) (*models.HomeVideo, error) {
	var video models.HomeVideo
	err := r.db.WithContext(ctx).First(&video, "id = ?", 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *HomeRepositoryImpl) GetBanner(ctx context.Context, id uint) (*models.Banner, error) {
	var banner models.Banner
	err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return &banner, nil
}

func (r *HomeRepositoryImpl) GetBanners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	err := r.db.WithContext(ctx).Order("id ASC").Find(&banners).Error
	return banners, err
}

func (r *HomeRepositoryImpl) LiveVideoRefs(ctx context.Context) ([]string, error) {
	var refs []string
	err := r.db.WithContext(ctx).Model(&models.HomeVideo{}).
		Where("video_path IS NOT NULL AND video_path <> ''").
		Pluck("video_path", &refs).Error
	return refs, err
}

func (r *HomeRepositoryImpl) LiveBannerRefs(ctx context.Context) ([]string, error) {
	var refs []string
	err := r.db.WithContext(ctx).Model(&models.Banner{}).
		Where("image_path IS NOT NULL AND image_path <> ''").
		Pluck("image_path", &refs).Error
	return refs, err
}
