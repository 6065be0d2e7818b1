package models

import "time"

// Контентные таблицы главной страницы. Имена таблиц и колонок - контракт,
// на который завязан фронтенд и SQL-миграции; менять их нельзя.

// HomeVideo - единственная строка id=1 с текущим роликом главной страницы
type HomeVideo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VideoPath *string   `gorm:"column:video_path;size:255" json:"video_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HomeVideo) TableName() string { return "homeVideo" }

// Banner - фиксированный набор строк (id=1, id=2)
type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImagePath *string   `gorm:"column:image_path;size:255" json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Banner) TableName() string { return "banners" }

// PopularCategory - промо-категория талантов
type PopularCategory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Avatar      string    `gorm:"size:255;not null" json:"avatar"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	TalentCount int       `gorm:"column:talent_count;default:0" json:"talent_count"`
	Description string    `gorm:"type:text" json:"description"`
	Gender      string    `gorm:"size:20;not null" json:"gender"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PopularCategory) TableName() string { return "popular_categories" }

// FeaturedTalent - витринная карточка таланта, до четырех изображений
type FeaturedTalent struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Gender     string    `gorm:"size:20;not null" json:"gender"`
	Age        *int      `json:"age,omitempty"`
	Location   string    `gorm:"size:100" json:"location"`
	Height     string    `gorm:"size:50" json:"height"`
	HairColor  string    `gorm:"column:hair_color;size:50" json:"hair_color"`
	ShoeSize   string    `gorm:"column:shoe_size;size:50" json:"shoe_size"`
	EyeColor   string    `gorm:"column:eye_color;size:50" json:"eye_color"`
	ProfileImg *string   `gorm:"column:profile_img;size:255" json:"profile_img"`
	Image1     *string   `gorm:"column:image1;size:255" json:"image1"`
	Image2     *string   `gorm:"column:image2;size:255" json:"image2"`
	Image3     *string   `gorm:"column:image3;size:255" json:"image3"`
	CreatedAt  time.Time `json:"created_at"`
}

func (FeaturedTalent) TableName() string { return "featured_talents" }

// ImageRefs возвращает все заполненные файловые ссылки строки
func (t *FeaturedTalent) ImageRefs() []string {
	var refs []string
	for _, p := range []*string{t.ProfileImg, t.Image1, t.Image2, t.Image3} {
		if p != nil && *p != "" {
			refs = append(refs, *p)
		}
	}
	return refs
}

// Testimonial - отзыв клиента
type Testimonial struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Avatar      string    `gorm:"size:255;not null" json:"avatar"`
	Them        bool      `gorm:"column:them;default:true" json:"them"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Testimonial) TableName() string { return "testimonials" }

// PlanDetail - единственная строка с описанием подписки
type PlanDetail struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Heading      string    `gorm:"size:255" json:"heading"`
	Description  string    `gorm:"type:text" json:"description"`
	PlanBenefits string    `gorm:"column:plan_benefits;type:text" json:"plan_benefits"`
	FromWhom     string    `gorm:"column:from_whom;size:255" json:"from_whom"`
	WhySubscribe string    `gorm:"column:why_subscribe;type:text" json:"why_subscribe"`
	Price        string    `gorm:"size:100" json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (PlanDetail) TableName() string { return "plan_details" }
