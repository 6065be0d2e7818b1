package handlers

import (
	"talentsite_backend/internal/repositories"
	"talentsite_backend/internal/services"
	"talentsite_backend/internal/services/dto"
	"talentsite_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ContentHandler - ролик главной, баннеры, юридические страницы и тариф
type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

// ============================================
// ГЛАВНАЯ СТРАНИЦА
// ============================================

// GetHomeVideo - GET /content/home-video
func (h *ContentHandler) GetHomeVideo(c *gin.Context) {
	video, err := h.contentService.GetHomeVideo(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Home video fetched", video)
}

// ReplaceHomeVideo - PUT /content/home-video (multipart, поле "video")
func (h *ContentHandler) ReplaceHomeVideo(c *gin.Context) {
	file := FormFileOptional(c, "video")
	video, err := h.contentService.ReplaceHomeVideo(c.Request.Context(), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Home video updated", video)
}

// GetBanners - GET /content/banners
func (h *ContentHandler) GetBanners(c *gin.Context) {
	banners, err := h.contentService.GetBanners(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Banners fetched", banners)
}

// ReplaceBanner - PUT /content/banners/:id (multipart, поле "image")
func (h *ContentHandler) ReplaceBanner(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	file := FormFileOptional(c, "image")
	banner, err := h.contentService.ReplaceBanner(c.Request.Context(), id, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Banner updated", banner)
}

// ============================================
// ЮРИДИЧЕСКИЕ СТРАНИЦЫ
// ============================================

func (h *ContentHandler) pageKind(c *gin.Context) (repositories.PageKind, bool) {
	kind := repositories.PageKind(c.Param("kind"))
	switch kind {
	case repositories.PageAboutUs, repositories.PageTerms, repositories.PagePrivacy:
		return kind, true
	default:
		h.HandleServiceError(c, apperrors.NewBadRequestError("Unknown page: "+string(kind)))
		return "", false
	}
}

// GetPage - GET /content/pages/:kind
func (h *ContentHandler) GetPage(c *gin.Context) {
	kind, ok := h.pageKind(c)
	if !ok {
		return
	}

	page, err := h.contentService.GetPage(c.Request.Context(), kind)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Page fetched", page)
}

// UpdatePage - PUT /content/pages/:kind
func (h *ContentHandler) UpdatePage(c *gin.Context) {
	kind, ok := h.pageKind(c)
	if !ok {
		return
	}

	var req dto.PageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	page, err := h.contentService.UpdatePage(c.Request.Context(), kind, req.Content)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Page updated", page)
}

// ============================================
// ТАРИФ
// ============================================

// GetPlanDetails - GET /content/plan-details
func (h *ContentHandler) GetPlanDetails(c *gin.Context) {
	plan, err := h.contentService.GetPlanDetails(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Plan details fetched", plan)
}

// UpdatePlanDetails - PUT /content/plan-details
func (h *ContentHandler) UpdatePlanDetails(c *gin.Context) {
	var req dto.PlanDetailsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	plan, err := h.contentService.UpdatePlanDetails(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Plan details updated", plan)
}
