package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentsite_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPageNotFound    = errors.New("page not found")
	ErrUnknownPageKind = errors.New("unknown page kind")
)

// PageKind - вид юридической страницы
type PageKind string

const (
	PageAboutUs PageKind = "about_us"
	PageTerms   PageKind = "terms_and_conditions"
	PagePrivacy PageKind = "privacy_policy"
)

// pageContentColumn - колонка с HTML страницы, одинакова во всех трех таблицах
const pageContentColumn = "html_content"

// pageTables - белый список таблиц страниц. Колонка времени у about_us
// называется иначе, чем у двух остальных, поэтому ее имя тоже в реестре.
var pageTables = map[PageKind]struct {
	Table      string
	TimeColumn string
}{
	PageAboutUs: {Table: "about_us", TimeColumn: "updated_at"},
	PageTerms:   {Table: "terms_and_conditions", TimeColumn: "last_updated"},
	PagePrivacy: {Table: "privacy_policy", TimeColumn: "last_updated"},
}

// Page - единственная строка юридической страницы
type Page struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PageRepository interface {
	GetPage(ctx context.Context, kind PageKind) (*Page, error)
	UpsertPage(ctx context.Context, kind PageKind, content string) error

	GetPlanDetails(ctx context.Context) (*models.PlanDetail, error)
	UpdatePlanDetails(ctx context.Context, plan *models.PlanDetail) error
}

type PageRepositoryImpl struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &PageRepositoryImpl{db: db}
}

func (r *PageRepositoryImpl) GetPage(ctx context.Context, kind PageKind) (*Page, error) {
	desc, ok := pageTables[kind]
	if !ok {
		return nil, ErrUnknownPageKind
	}

	var page Page
	query := fmt.Sprintf("SELECT id, `%s` AS content, `%s` AS updated_at FROM `%s` WHERE id = 1",
		pageContentColumn, desc.TimeColumn, desc.Table)
	err := r.db.WithContext(ctx).Raw(query).Scan(&page).Error
	if err != nil {
		return nil, err
	}
	if page.ID == 0 {
		return nil, ErrPageNotFound
	}
	return &page, nil
}

func (r *PageRepositoryImpl) UpsertPage(ctx context.Context, kind PageKind, content string) error {
	desc, ok := pageTables[kind]
	if !ok {
		return ErrUnknownPageKind
	}

	query := fmt.Sprintf(
		"INSERT INTO `%s` (id, `%s`, `%s`) VALUES (1, ?, ?) ON DUPLICATE KEY UPDATE `%s` = VALUES(`%s`), `%s` = VALUES(`%s`)",
		desc.Table, pageContentColumn, desc.TimeColumn,
		pageContentColumn, pageContentColumn, desc.TimeColumn, desc.TimeColumn,
	)
	return r.db.WithContext(ctx).Exec(query, content, time.Now()).Error
}

func (r *PageRepositoryImpl) GetPlanDetails(ctx context.Context) (*models.PlanDetail, error) {
	var plan models.PlanDetail
	err := r.db.WithContext(ctx).First(&plan, "id = ?", 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PageRepositoryImpl) UpdatePlanDetails(ctx context.Context, plan *models.PlanDetail) error {
	result := r.db.WithContext(ctx).Model(&models.PlanDetail{}).
		Where("id = ?", 1).
		Updates(map[string]interface{}{
			"heading":       plan.Heading,
			"description":   plan.Description,
			"plan_benefits": plan.PlanBenefits,
			"from_whom":     plan.FromWhom,
			"why_subscribe": plan.WhySubscribe,
			"price":         plan.Price,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.PlanDetail{}).Where("id = ?", 1).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrPageNotFound
		}
	}
	return nil
}
