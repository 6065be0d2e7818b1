package services

import (
	"talentsite_backend/internal/config"
	"talentsite_backend/internal/email"
	"talentsite_backend/internal/repositories"
	"talentsite_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	AdminService   AdminService
	ContentService ContentService
	Reconciler     Reconciler
	EmailService   email.Provider
	Storage        storage.Storage
}

// NewServiceContainer собирает репозитории и сервисы поверх подключения к базе
func NewServiceContainer(db *gorm.DB, st storage.Storage, cfg *config.Config) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	ticketRepo := repositories.NewTicketRepository(db)
	slotRepo := repositories.NewSlotRepository(db)
	homeRepo := repositories.NewHomeRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	talentRepo := repositories.NewTalentRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)
	pageRepo := repositories.NewPageRepository(db)

	var mailer email.Provider
	if cfg.Email.Enabled {
		mailer = email.NewSMTPProvider(&cfg.Email)
	} else {
		mailer = email.NewNoopProvider()
	}

	uploads := NewUploadService(st, cfg)
	slots := NewSlotStore(slotRepo, st, uploads)

	return &ServiceContainer{
		AuthService:  NewAuthService(userRepo),
		UserService:  NewUserService(userRepo, ticketRepo, mailer),
		AdminService: NewAdminService(userRepo, ticketRepo),
		ContentService: NewContentService(
			slots, uploads, st,
			homeRepo, categoryRepo, talentRepo, testimonialRepo, pageRepo,
		),
		Reconciler:   NewReconciler(st, homeRepo, categoryRepo, talentRepo, testimonialRepo),
		EmailService: mailer,
		Storage:      st,
	}
}
