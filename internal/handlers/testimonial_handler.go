package handlers

import (
	"talentsite_backend/internal/services"
	"talentsite_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TestimonialHandler - отзывы клиентов
type TestimonialHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewTestimonialHandler(base *BaseHandler, contentService services.ContentService) *TestimonialHandler {
	return &TestimonialHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

// Create - POST /content/testimonials (multipart, файл "avatar")
func (h *TestimonialHandler) Create(c *gin.Context) {
	var form dto.TestimonialForm
	if !h.BindAndValidate_Form(c, &form) {
		return
	}

	file := FormFileOptional(c, "avatar")
	testimonial, err := h.contentService.CreateTestimonial(c.Request.Context(), &form, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondCreated(c, "Testimonial created", testimonial)
}

// List - GET /content/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.contentService.ListTestimonials(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Testimonials fetched", testimonials)
}

// Update - PUT /content/testimonials/:id (multipart, файл "avatar" опционален)
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var form dto.TestimonialForm
	if !h.BindAndValidate_Form(c, &form) {
		return
	}

	file := FormFileOptional(c, "avatar")
	testimonial, err := h.contentService.UpdateTestimonial(c.Request.Context(), id, &form, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Testimonial updated", testimonial)
}

// Delete - DELETE /content/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contentService.DeleteTestimonial(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, "Testimonial deleted", nil)
}
