package dto

// Контентные формы приходят как multipart (файл + поля), поэтому form-теги.
// Правила валидации лежат в validate-тегах и проверяются нашей оберткой.

// CategoryForm - создание/изменение промо-категории
type CategoryForm struct {
	Title       string `form:"title" validate:"required,min=2,max=100"`
	TalentCount int    `form:"talent_count" validate:"omitempty,min=0"`
	Description string `form:"description"`
	Gender      string `form:"gender" validate:"required,is-gender"`
}

// TalentForm - создание/изменение витринной карточки таланта
type TalentForm struct {
	Name      string `form:"name" validate:"required,min=2,max=100"`
	Gender    string `form:"gender" validate:"required,is-gender"`
	Age       *int   `form:"age" validate:"omitempty,min=1,max=120"`
	Location  string `form:"location" validate:"max=100"`
	Height    string `form:"height" validate:"max=50"`
	HairColor string `form:"hair_color" validate:"max=50"`
	ShoeSize  string `form:"shoe_size" validate:"max=50"`
	EyeColor  string `form:"eye_color" validate:"max=50"`
}

// TestimonialForm - создание/изменение отзыва
type TestimonialForm struct {
	Name        string `form:"name" validate:"required,min=2,max=100"`
	Description string `form:"description" validate:"required"`
	Them        *bool  `form:"them"`
}

// PageRequest - обновление юридической страницы
type PageRequest struct {
	Content string `json:"content" validate:"required"`
}

// PlanDetailsRequest - обновление описания подписки
type PlanDetailsRequest struct {
	Heading      string `json:"heading" validate:"max=255"`
	Description  string `json:"description"`
	PlanBenefits string `json:"plan_benefits"`
	FromWhom     string `json:"from_whom" validate:"max=255"`
	WhySubscribe string `json:"why_subscribe"`
	Price        string `json:"price" validate:"max=100"`
}
