package handlers

import (
	"talentsite_backend/internal/services"
	"talentsite_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CategoryHandler - промо-категории талантов
type CategoryHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewCategoryHandler(base *BaseHandler, contentService services.ContentService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

// Create - POST /content/categories (multipart, файл "avatar")
func (h *CategoryHandler) Create(c *gin.Context) {
	var form dto.CategoryForm
	if !h.BindAndValidate_Form(c, &form) {
		return
	}

	file := FormFileOptional(c, "avatar")
	category, err := h.contentService.CreateCategory(c.Request.Context(), &form, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondCreated(c, "Category created", category)
}

// List - GET /content/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.contentService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Categories fetched", categories)
}

// Update - PUT /content/categories/:id (multipart, файл "avatar" опционален)
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var form dto.CategoryForm
	if !h.BindAndValidate_Form(c, &form) {
		return
	}

	file := FormFileOptional(c, "avatar")
	category, err := h.contentService.UpdateCategory(c.Request.Context(), id, &form, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Category updated", category)
}

// Delete - DELETE /content/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contentService.DeleteCategory(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Category deleted", nil)
}
