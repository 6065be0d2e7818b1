package handlers

import (
	"mime/multipart"

	"talentsite_backend/internal/models"
	"talentsite_backend/internal/services"
	"talentsite_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TalentHandler - витринные карточки талантов
type TalentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewTalentHandler(base *BaseHandler, contentService services.ContentService) *TalentHandler {
	return &TalentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

// Create - POST /content/talents (multipart, файлы по именам колонок)
func (h *TalentHandler) Create(c *gin.Context) {
	var form dto.TalentForm
	if !h.BindAndValidate_Form(c, &form) {
		return
	}

	desc, _ := models.DescriptorFor(models.SlotFeaturedTalent)
	files := make(map[string]*multipart.FileHeader, len(desc.Columns))
	for _, column := range desc.Columns {
		if file := FormFileOptional(c, column); file != nil {
			files[column] = file
		}
	}

	talent, err := h.contentService.CreateTalent(c.Request.Context(), &form, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondCreated(c, "Featured talent created", talent)
}

// List - GET /content/talents
func (h *TalentHandler) List(c *gin.Context) {
	talents, err := h.contentService.ListTalents(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Featured talents fetched", talents)
}

// Update - PUT /content/talents/:id (только текстовые поля)
func (h *TalentHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var form dto.TalentForm
	if !h.BindAndValidate_JSON(c, &form) {
		return
	}

	talent, err := h.contentService.UpdateTalent(c.Request.Context(), id, &form)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Featured talent updated", talent)
}

// ReplaceImage - PUT /content/talents/:id/images/:column (multipart, файл "image")
func (h *TalentHandler) ReplaceImage(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	column := c.Param("column")
	file := FormFileOptional(c, "image")

	talent, err := h.contentService.ReplaceTalentImage(c.Request.Context(), id, column, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Talent image updated", talent)
}

// Delete - DELETE /content/talents/:id
func (h *TalentHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contentService.DeleteTalent(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Featured talent deleted", nil)
}
