package handlers

import (
	"talentsite_backend/internal/services"
	"talentsite_backend/internal/validator"
)

// AppHandlers содержит все HTTP-обработчики приложения.
type AppHandlers struct {
	Health       *HealthHandler
	Content      *ContentHandler
	Categories   *CategoryHandler
	Talents      *TalentHandler
	Testimonials *TestimonialHandler
	Users        *UserHandler
	Admin        *AdminHandler
}

// NewAppHandlers собирает обработчики поверх контейнера сервисов
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Health:       NewHealthHandler(base),
		Content:      NewContentHandler(base, sc.ContentService),
		Categories:   NewCategoryHandler(base, sc.ContentService),
		Talents:      NewTalentHandler(base, sc.ContentService),
		Testimonials: NewTestimonialHandler(base, sc.ContentService),
		Users:        NewUserHandler(base, sc.AuthService, sc.UserService),
		Admin:        NewAdminHandler(base, sc.AuthService, sc.AdminService, sc.UserService),
	}
}
