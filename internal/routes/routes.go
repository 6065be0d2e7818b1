package routes

import (
	"talentsite_backend/internal/handlers"
	"talentsite_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, uploadsDir string) {
	ginRouter.GET("/health", appHandlers.Health.Check)

	// Загруженные файлы раздаются как есть
	ginRouter.Static("/uploads", uploadsDir)

	api := ginRouter.Group("/api/v1")

	registerContentRoutes(api, appHandlers)
	registerUserRoutes(api, appHandlers)
	registerAdminRoutes(api, appHandlers)
}

// Контент: чтение публичное, изменение только администратору
func registerContentRoutes(api *gin.RouterGroup, h *handlers.AppHandlers) {
	content := api.Group("/content")
	{
		content.GET("/home-video", h.Content.GetHomeVideo)
		content.GET("/banners", h.Content.GetBanners)
		content.GET("/categories", h.Categories.List)
		content.GET("/talents", h.Talents.List)
		content.GET("/testimonials", h.Testimonials.List)
		content.GET("/pages/:kind", h.Content.GetPage)
		content.GET("/plan-details", h.Content.GetPlanDetails)
	}

	manage := api.Group("/content")
	manage.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		manage.PUT("/home-video", h.Content.ReplaceHomeVideo)
		manage.PUT("/banners/:id", h.Content.ReplaceBanner)

		manage.POST("/categories", h.Categories.Create)
		manage.PUT("/categories/:id", h.Categories.Update)
		manage.DELETE("/categories/:id", h.Categories.Delete)

		manage.POST("/talents", h.Talents.Create)
		manage.PUT("/talents/:id", h.Talents.Update)
		manage.PUT("/talents/:id/images/:column", h.Talents.ReplaceImage)
		manage.DELETE("/talents/:id", h.Talents.Delete)

		manage.POST("/testimonials", h.Testimonials.Create)
		manage.PUT("/testimonials/:id", h.Testimonials.Update)
		manage.DELETE("/testimonials/:id", h.Testimonials.Delete)

		manage.PUT("/pages/:kind", h.Content.UpdatePage)
		manage.PUT("/plan-details", h.Content.UpdatePlanDetails)
	}
}

func registerUserRoutes(api *gin.RouterGroup, h *handlers.AppHandlers) {
	users := api.Group("/users")
	{
		users.POST("/register", h.Users.Register)
		users.POST("/login", h.Users.Login)
		// Форма поддержки доступна без токена; с токеном обращение
		// привязывается к пользователю
		users.POST("/tickets", middleware.OptionalAuthMiddleware(), h.Users.CreateTicket)
	}

	me := api.Group("/users")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/me", h.Users.Profile)
		me.PUT("/me", h.Users.UpdateProfile)
		me.GET("/tickets", h.Users.MyTickets)
	}
}

func registerAdminRoutes(api *gin.RouterGroup, h *handlers.AppHandlers) {
	admin := api.Group("/admin")
	admin.POST("/login", h.Admin.Login)

	panel := api.Group("/admin")
	panel.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		panel.GET("/profile", h.Admin.Profile)
		panel.GET("/users", h.Admin.ListUsers)
		panel.POST("/users/:id/block", h.Admin.BlockUser)
		panel.POST("/users/:id/unblock", h.Admin.UnblockUser)
		panel.POST("/users/:id/suspend", h.Admin.SuspendUser)
		panel.POST("/users/:id/unsuspend", h.Admin.UnsuspendUser)
		panel.POST("/users/:id/plan", h.Admin.ChangePlan)

		panel.GET("/tickets", h.Admin.ListTickets)
		panel.PUT("/tickets/:id/status", h.Admin.UpdateTicketStatus)
	}
}
