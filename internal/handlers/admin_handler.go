package handlers

import (
	"context"

	"talentsite_backend/internal/services"
	"talentsite_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - панель администратора: пользователи и обращения
type AdminHandler struct {
	*BaseHandler
	authService  services.AuthService
	adminService services.AdminService
	userService  services.UserService
}

func NewAdminHandler(base *BaseHandler, authService services.AuthService, adminService services.AdminService, userService services.UserService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		authService:  authService,
		adminService: adminService,
		userService:  userService,
	}
}

// Login - POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Login successful", resp)
}

// Profile - GET /admin/profile
func (h *AdminHandler) Profile(c *gin.Context) {
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

// ListUsers - GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.adminService.ListUsers(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Users fetched", resp)
}

// BlockUser - POST /admin/users/:id/block
func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.userAction(c, h.adminService.BlockUser, "User blocked")
}

// UnblockUser - POST /admin/users/:id/unblock
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.userAction(c, h.adminService.UnblockUser, "User unblocked")
}

// SuspendUser - POST /admin/users/:id/suspend
func (h *AdminHandler) SuspendUser(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SuspendRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.SuspendUser(c.Request.Context(), id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "User suspended", nil)
}

// UnsuspendUser - POST /admin/users/:id/unsuspend
func (h *AdminHandler) UnsuspendUser(c *gin.Context) {
	h.userAction(c, h.adminService.UnsuspendUser, "User unsuspended")
}

// ChangePlan - POST /admin/users/:id/plan
func (h *AdminHandler) ChangePlan(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.PlanChangeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.ChangePlan(c.Request.Context(), id, req.Plan); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Plan changed", nil)
}

// ListTickets - GET /admin/tickets
func (h *AdminHandler) ListTickets(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	tickets, total, err := h.adminService.ListTickets(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Tickets fetched", gin.H{
		"tickets":   tickets,
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	})
}

// UpdateTicketStatus - PUT /admin/tickets/:id/status
func (h *AdminHandler) UpdateTicketStatus(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.TicketStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.UpdateTicketStatus(c.Request.Context(), id, req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Ticket status updated", nil)
}

func (h *AdminHandler) userAction(c *gin.Context, action func(ctx context.Context, id uint) error, message string) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := action(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, message, nil)
}
