package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"talentsite_backend/internal/logger"
	"talentsite_backend/internal/models"
	"talentsite_backend/internal/repositories"
	"talentsite_backend/internal/services/dto"
	"talentsite_backend/internal/storage"
	"talentsite_backend/pkg/apperrors"
)

// ContentService - операции над контентом маркетингового сайта.
// Все замены файлов идут через SlotStore, прием файлов - через UploadService.
type ContentService interface {
	// Главная страница
	GetHomeVideo(ctx context.Context) (*models.HomeVideo, error)
	ReplaceHomeVideo(ctx context.Context, file *multipart.FileHeader) (*models.HomeVideo, error)
	GetBanners(ctx context.Context) ([]models.Banner, error)
	ReplaceBanner(ctx context.Context, id uint, file *multipart.FileHeader) (*models.Banner, error)

	// Промо-категории
	CreateCategory(ctx context.Context, form *dto.CategoryForm, file *multipart.FileHeader) (*models.PopularCategory, error)
	ListCategories(ctx context.Context) ([]models.PopularCategory, error)
	UpdateCategory(ctx context.Context, id uint, form *dto.CategoryForm, file *multipart.FileHeader) (*models.PopularCategory, error)
	DeleteCategory(ctx context.Context, id uint) error

	// Витринные таланты
	CreateTalent(ctx context.Context, form *dto.TalentForm, files map[string]*multipart.FileHeader) (*models.FeaturedTalent, error)
	ListTalents(ctx context.Context) ([]models.FeaturedTalent, error)
	UpdateTalent(ctx context.Context, id uint, form *dto.TalentForm) (*models.FeaturedTalent, error)
	ReplaceTalentImage(ctx context.Context, id uint, column string, file *multipart.FileHeader) (*models.FeaturedTalent, error)
	DeleteTalent(ctx context.Context, id uint) error

	// Отзывы
	CreateTestimonial(ctx context.Context, form *dto.TestimonialForm, file *multipart.FileHeader) (*models.Testimonial, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uint, form *dto.TestimonialForm, file *multipart.FileHeader) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uint) error

	// Юридические страницы и тариф
	GetPage(ctx context.Context, kind repositories.PageKind) (*repositories.Page, error)
	UpdatePage(ctx context.Context, kind repositories.PageKind, content string) (*repositories.Page, error)
	GetPlanDetails(ctx context.Context) (*models.PlanDetail, error)
	UpdatePlanDetails(ctx context.Context, req *dto.PlanDetailsRequest) (*models.PlanDetail, error)
}

type contentService struct {
	slots        SlotStore
	uploads      UploadService
	storage      storage.Storage
	home         repositories.HomeRepository
	categories   repositories.CategoryRepository
	talents      repositories.TalentRepository
	testimonials repositories.TestimonialRepository
	pages        repositories.PageRepository
}

func NewContentService(
	slots SlotStore,
	uploads UploadService,
	st storage.Storage,
	home repositories.HomeRepository,
	categories repositories.CategoryRepository,
	talents repositories.TalentRepository,
	testimonials repositories.TestimonialRepository,
	pages repositories.PageRepository,
) ContentService {
	return &contentService{
		slots:        slots,
		uploads:      uploads,
		storage:      st,
		home:         home,
		categories:   categories,
		talents:      talents,
		testimonials: testimonials,
		pages:        pages,
	}
}

// ============================================
// ГЛАВНАЯ СТРАНИЦА
// ============================================

func (s *contentService) GetHomeVideo(ctx context.Context) (*models.HomeVideo, error) {
	video, err := s.home.GetHomeVideo(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	video.VideoPath = s.fileURLPtr(ctx, models.SlotHomeVideo, video.VideoPath)
	return video, nil
}

func (s *contentService) ReplaceHomeVideo(ctx context.Context, file *multipart.FileHeader) (*models.HomeVideo, error) {
	upload, err := s.uploads.Receive(ctx, models.SlotHomeVideo, file)
	if err != nil {
		return nil, err
	}

	key := models.NewSlotKey(models.SlotHomeVideo, 1)
	result, err := s.slots.Replace(ctx, key, upload)
	if err != nil {
		return nil, err
	}
	s.logReplace(ctx, key, result)

	return s.GetHomeVideo(ctx)
}

func (s *contentService) GetBanners(ctx context.Context) ([]models.Banner, error) {
	banners, err := s.home.GetBanners(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range banners {
		banners[i].ImagePath = s.fileURLPtr(ctx, models.SlotBanner, banners[i].ImagePath)
	}
	return banners, nil
}

func (s *contentService) ReplaceBanner(ctx context.Context, id uint, file *multipart.FileHeader) (*models.Banner, error) {
	upload, err := s.uploads.Receive(ctx, models.SlotBanner, file)
	if err != nil {
		return nil, err
	}

	key := models.NewSlotKey(models.SlotBanner, id)
	result, err := s.slots.Replace(ctx, key, upload)
	if err != nil {
		return nil, err
	}
	s.logReplace(ctx, key, result)

	banner, err := s.home.GetBanner(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	banner.ImagePath = s.fileURLPtr(ctx, models.SlotBanner, banner.ImagePath)
	return banner, nil
}

// ============================================
// ПРОМО-КАТЕГОРИИ
// ============================================

func (s *contentService) CreateCategory(ctx context.Context, form *dto.CategoryForm, file *multipart.FileHeader) (*models.PopularCategory, error) {
	upload, err := s.uploads.Receive(ctx, models.SlotCategory, file)
	if err != nil {
		return nil, err
	}

	category := &models.PopularCategory{
		Avatar:      upload.Filename,
		Title:       form.Title,
		TalentCount: form.TalentCount,
		Description: form.Description,
		Gender:      form.Gender,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		// Строка не создана - файл никому не принадлежит
		s.uploads.Discard(ctx, upload)
		return nil, apperrors.PersistenceFailed(err)
	}
	category.Avatar = s.fileURL(ctx, models.SlotCategory, category.Avatar)
	return category, nil
}

func (s *contentService) ListCategories(ctx context.Context) ([]models.PopularCategory, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range categories {
		categories[i].Avatar = s.fileURL(ctx, models.SlotCategory, categories[i].Avatar)
	}
	return categories, nil
}

func (s *contentService) UpdateCategory(ctx context.Context, id uint, form *dto.CategoryForm, file *multipart.FileHeader) (*models.PopularCategory, error) {
	category := &models.PopularCategory{
		ID:          id,
		Title:       form.Title,
		TalentCount: form.TalentCount,
		Description: form.Description,
		Gender:      form.Gender,
	}
	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NotFound("category")
		}
		return nil, apperrors.InternalError(err)
	}

	// Файл опционален: без него меняются только текстовые поля
	if file != nil {
		upload, err := s.uploads.Receive(ctx, models.SlotCategory, file)
		if err != nil {
			return nil, err
		}
		key := models.NewSlotKey(models.SlotCategory, id)
		result, err := s.slots.Replace(ctx, key, upload)
		if err != nil {
			return nil, err
		}
		s.logReplace(ctx, key, result)
	}

	updated, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	updated.Avatar = s.fileURL(ctx, models.SlotCategory, updated.Avatar)
	return updated, nil
}

func (s *contentService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.NotFound("category")
		}
		return apperrors.InternalError(err)
	}

	// Порядок один для всех сущностей: сначала строка, потом файлы.
	// Недоудаленный файл становится сиротой и уходит при сверке.
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.NotFound("category")
		}
		return apperrors.PersistenceFailed(err)
	}

	s.deleteFiles(ctx, models.SlotCategory, []string{category.Avatar})
	return nil
}

// ============================================
// ВИТРИННЫЕ ТАЛАНТЫ
// ============================================

func (s *contentService) CreateTalent(ctx context.Context, form *dto.TalentForm, files map[string]*multipart.FileHeader) (*models.FeaturedTalent, error) {
	desc, _ := models.DescriptorFor(models.SlotFeaturedTalent)

	// Принимаем все файлы до вставки строки; при отказе убираем принятые
	received := make(map[string]*models.Upload, len(files))
	discardAll := func() {
		for _, up := range received {
			s.uploads.Discard(ctx, up)
		}
	}

	for _, column := range desc.Columns {
		file, ok := files[column]
		if !ok || file == nil {
			continue
		}
		upload, err := s.uploads.Receive(ctx, models.SlotFeaturedTalent, file)
		if err != nil {
			discardAll()
			return nil, err
		}
		received[column] = upload
	}

	if received["profile_img"] == nil {
		discardAll()
		return nil, apperrors.ErrNoFileProvided.WithDetails("profile_img is required")
	}

	talent := &models.FeaturedTalent{
		Name:      form.Name,
		Gender:    form.Gender,
		Age:       form.Age,
		Location:  form.Location,
		Height:    form.Height,
		HairColor: form.HairColor,
		ShoeSize:  form.ShoeSize,
		EyeColor:  form.EyeColor,
	}
	assign := func(column string, dst **string) {
		if up := received[column]; up != nil {
			name := up.Filename
			*dst = &name
		}
	}
	assign("profile_img", &talent.ProfileImg)
	assign("image1", &talent.Image1)
	assign("image2", &talent.Image2)
	assign("image3", &talent.Image3)

	if err := s.talents.Create(ctx, talent); err != nil {
		discardAll()
		return nil, apperrors.PersistenceFailed(err)
	}
	s.presentTalent(ctx, talent)
	return talent, nil
}

func (s *contentService) ListTalents(ctx context.Context) ([]models.FeaturedTalent, error) {
	talents, err := s.talents.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range talents {
		s.presentTalent(ctx, &talents[i])
	}
	return talents, nil
}

func (s *contentService) UpdateTalent(ctx context.Context, id uint, form *dto.TalentForm) (*models.FeaturedTalent, error) {
	talent := &models.FeaturedTalent{
		ID:        id,
		Name:      form.Name,
		Gender:    form.Gender,
		Age:       form.Age,
		Location:  form.Location,
		Height:    form.Height,
		HairColor: form.HairColor,
		ShoeSize:  form.ShoeSize,
		EyeColor:  form.EyeColor,
	}
	if err := s.talents.Update(ctx, talent); err != nil {
		if errors.Is(err, repositories.ErrTalentNotFound) {
			return nil, apperrors.NotFound("featured talent")
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.talents.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	s.presentTalent(ctx, updated)
	return updated, nil
}

func (s *contentService) ReplaceTalentImage(ctx context.Context, id uint, column string, file *multipart.FileHeader) (*models.FeaturedTalent, error) {
	key := models.NewSlotKey(models.SlotFeaturedTalent, id).WithColumn(column)
	if !key.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown image column: %s", column))
	}

	upload, err := s.uploads.Receive(ctx, models.SlotFeaturedTalent, file)
	if err != nil {
		return nil, err
	}

	result, err := s.slots.Replace(ctx, key, upload)
	if err != nil {
		return nil, err
	}
	s.logReplace(ctx, key, result)

	talent, err := s.talents.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	s.presentTalent(ctx, talent)
	return talent, nil
}

func (s *contentService) DeleteTalent(ctx context.Context, id uint) error {
	talent, err := s.talents.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTalentNotFound) {
			return apperrors.NotFound("featured talent")
		}
		return apperrors.InternalError(err)
	}

	if err := s.talents.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTalentNotFound) {
			return apperrors.NotFound("featured talent")
		}
		return apperrors.PersistenceFailed(err)
	}

	s.deleteFiles(ctx, models.SlotFeaturedTalent, talent.ImageRefs())
	return nil
}

// ============================================
// ОТЗЫВЫ
// ============================================

func (s *contentService) CreateTestimonial(ctx context.Context, form *dto.TestimonialForm, file *multipart.FileHeader) (*models.Testimonial, error) {
	upload, err := s.uploads.Receive(ctx, models.SlotTestimonial, file)
	if err != nil {
		return nil, err
	}

	them := true
	if form.Them != nil {
		them = *form.Them
	}

	testimonial := &models.Testimonial{
		Name:        form.Name,
		Description: form.Description,
		Avatar:      upload.Filename,
		Them:        them,
	}
	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		s.uploads.Discard(ctx, upload)
		return nil, apperrors.PersistenceFailed(err)
	}
	testimonial.Avatar = s.fileURL(ctx, models.SlotTestimonial, testimonial.Avatar)
	return testimonial, nil
}

func (s *contentService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.testimonials.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range testimonials {
		testimonials[i].Avatar = s.fileURL(ctx, models.SlotTestimonial, testimonials[i].Avatar)
	}
	return testimonials, nil
}

func (s *contentService) UpdateTestimonial(ctx context.Context, id uint, form *dto.TestimonialForm, file *multipart.FileHeader) (*models.Testimonial, error) {
	them := true
	if form.Them != nil {
		them = *form.Them
	}

	testimonial := &models.Testimonial{
		ID:          id,
		Name:        form.Name,
		Description: form.Description,
		Them:        them,
	}
	if err := s.testimonials.Update(ctx, testimonial); err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return nil, apperrors.NotFound("testimonial")
		}
		return nil, apperrors.InternalError(err)
	}

	if file != nil {
		upload, err := s.uploads.Receive(ctx, models.SlotTestimonial, file)
		if err != nil {
			return nil, err
		}
		key := models.NewSlotKey(models.SlotTestimonial, id)
		result, err := s.slots.Replace(ctx, key, upload)
		if err != nil {
			return nil, err
		}
		s.logReplace(ctx, key, result)
	}

	updated, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	updated.Avatar = s.fileURL(ctx, models.SlotTestimonial, updated.Avatar)
	return updated, nil
}

func (s *contentService) DeleteTestimonial(ctx context.Context, id uint) error {
	testimonial, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return apperrors.NotFound("testimonial")
		}
		return apperrors.InternalError(err)
	}

	if err := s.testimonials.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return apperrors.NotFound("testimonial")
		}
		return apperrors.PersistenceFailed(err)
	}

	s.deleteFiles(ctx, models.SlotTestimonial, []string{testimonial.Avatar})
	return nil
}

// ============================================
// СТРАНИЦЫ И ТАРИФ
// ============================================

func (s *contentService) GetPage(ctx context.Context, kind repositories.PageKind) (*repositories.Page, error) {
	page, err := s.pages.GetPage(ctx, kind)
	if err != nil {
		if errors.Is(err, repositories.ErrPageNotFound) {
			return nil, apperrors.NotFound("page")
		}
		if errors.Is(err, repositories.ErrUnknownPageKind) {
			return nil, apperrors.NewBadRequestError("unknown page")
		}
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}

func (s *contentService) UpdatePage(ctx context.Context, kind repositories.PageKind, content string) (*repositories.Page, error) {
	if err := s.pages.UpsertPage(ctx, kind, content); err != nil {
		if errors.Is(err, repositories.ErrUnknownPageKind) {
			return nil, apperrors.NewBadRequestError("unknown page")
		}
		return nil, apperrors.PersistenceFailed(err)
	}
	return s.pages.GetPage(ctx, kind)
}

func (s *contentService) GetPlanDetails(ctx context.Context) (*models.PlanDetail, error) {
	plan, err := s.pages.GetPlanDetails(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrPageNotFound) {
			return nil, apperrors.NotFound("plan details")
		}
		return nil, apperrors.InternalError(err)
	}
	return plan, nil
}

func (s *contentService) UpdatePlanDetails(ctx context.Context, req *dto.PlanDetailsRequest) (*models.PlanDetail, error) {
	plan := &models.PlanDetail{
		ID:           1,
		Heading:      req.Heading,
		Description:  req.Description,
		PlanBenefits: req.PlanBenefits,
		FromWhom:     req.FromWhom,
		WhySubscribe: req.WhySubscribe,
		Price:        req.Price,
	}
	if err := s.pages.UpdatePlanDetails(ctx, plan); err != nil {
		if errors.Is(err, repositories.ErrPageNotFound) {
			return nil, apperrors.NotFound("plan details")
		}
		return nil, apperrors.PersistenceFailed(err)
	}
	return s.pages.GetPlanDetails(ctx)
}

// logReplace фиксирует итог замены: какой файл встал в ячейку и какой
// она освободила
func (s *contentService) logReplace(ctx context.Context, key models.SlotKey, result *ReplaceResult) {
	logger.CtxInfo(ctx, "slot file replaced",
		"slot", key.String(),
		"new_file", result.NewFile,
		"previous_file", result.PreviousFile,
	)
}

// fileURL строит публичный адрес файла через хранилище.
// В базе лежат голые имена, наружу уходят адреса.
func (s *contentService) fileURL(ctx context.Context, kind models.SlotKind, name string) string {
	if name == "" {
		return ""
	}
	desc, _ := models.DescriptorFor(kind)
	url, err := s.storage.GetURL(ctx, desc.Dir+"/"+name)
	if err != nil {
		return name
	}
	return url
}

func (s *contentService) fileURLPtr(ctx context.Context, kind models.SlotKind, name *string) *string {
	if name == nil || *name == "" {
		return name
	}
	url := s.fileURL(ctx, kind, *name)
	return &url
}

func (s *contentService) presentTalent(ctx context.Context, talent *models.FeaturedTalent) {
	talent.ProfileImg = s.fileURLPtr(ctx, models.SlotFeaturedTalent, talent.ProfileImg)
	talent.Image1 = s.fileURLPtr(ctx, models.SlotFeaturedTalent, talent.Image1)
	talent.Image2 = s.fileURLPtr(ctx, models.SlotFeaturedTalent, talent.Image2)
	talent.Image3 = s.fileURLPtr(ctx, models.SlotFeaturedTalent, talent.Image3)
}

// deleteFiles удаляет файлы сущности после удаления строки.
// Отказы только логируются: остаток подберет фоновая сверка.
func (s *contentService) deleteFiles(ctx context.Context, kind models.SlotKind, filenames []string) {
	desc, _ := models.DescriptorFor(kind)
	for _, name := range filenames {
		if name == "" {
			continue
		}
		if err := s.storage.Delete(ctx, desc.Dir+"/"+name); err != nil {
			logger.CtxWithError(ctx, err).Warn("failed to delete entity file",
				"kind", string(kind), "file", name)
		}
	}
}
