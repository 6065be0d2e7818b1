package handlers

import (
	"talentsite_backend/internal/middleware"
	"talentsite_backend/internal/services"
	"talentsite_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler - регистрация, вход, профиль и обращения пользователя
type UserHandler struct {
	*BaseHandler
	authService services.AuthService
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, authService services.AuthService, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		authService: authService,
		userService: userService,
	}
}

// Register - POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondCreated(c, "User registered", resp)
}

// Login - POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Login successful", resp)
}

// Profile - GET /users/me
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Profile fetched", profile)
}

// UpdateProfile - PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Profile updated", profile)
}

// CreateTicket - POST /users/tickets (доступно и без токена)
func (h *UserHandler) CreateTicket(c *gin.Context) {
	var req dto.TicketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// Если запрос пришел с токеном, привязываем обращение к пользователю
	var userID *uint
	if v, exists := c.Get(middleware.ContextUserID); exists {
		if id, ok := v.(uint); ok && id != 0 {
			userID = &id
		}
	}

	ticket, err := h.userService.CreateTicket(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondCreated(c, "Ticket created", ticket)
}

// MyTickets - GET /users/tickets
func (h *UserHandler) MyTickets(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	tickets, err := h.userService.MyTickets(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Tickets fetched", tickets)
}
