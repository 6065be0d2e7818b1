package services

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"talentsite_backend/internal/models"
	"talentsite_backend/internal/repositories"
	"talentsite_backend/internal/services/dto"
	"talentsite_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Стабы с управляемым поведением поверх фейков из reconciler_test.go

type categoryRepoStub struct {
	fakeCategoryRepo
	byID      map[uint]*models.PopularCategory
	all       []models.PopularCategory
	createErr error
	deleteErr error
	deleted   []uint
}

func (r *categoryRepoStub) FindAll(ctx context.Context) ([]models.PopularCategory, error) {
	return r.all, nil
}

func (r *categoryRepoStub) Create(ctx context.Context, c *models.PopularCategory) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = 1
	return nil
}

func (r *categoryRepoStub) FindByID(ctx context.Context, id uint) (*models.PopularCategory, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrCategoryNotFound
	}
	return c, nil
}

func (r *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrCategoryNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type talentRepoStub struct {
	fakeTalentRepo
	byID      map[uint]*models.FeaturedTalent
	createErr error
	deleted   []uint
}

func (r *talentRepoStub) Create(ctx context.Context, t *models.FeaturedTalent) error {
	if r.createErr != nil {
		return r.createErr
	}
	t.ID = 1
	return nil
}

func (r *talentRepoStub) FindByID(ctx context.Context, id uint) (*models.FeaturedTalent, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrTalentNotFound
	}
	return t, nil
}

func (r *talentRepoStub) Delete(ctx context.Context, id uint) error {
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrTalentNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func newContentService(
	st *memStorage,
	categories *categoryRepoStub,
	talents *talentRepoStub,
) ContentService {
	uploads := &uploadAdapter{storage: st}
	slots := NewSlotStore(newFakeSlotRepo(), st, uploads)
	return NewContentService(
		slots, uploads, st,
		&fakeHomeRepo{}, categories, talents, &fakeTestimonialRepo{}, nil,
	)
}

func strptr(s string) *string { return &s }

func TestDeleteCategoryRemovesRowThenFile(t *testing.T) {
	st := newMemStorage()
	st.files["categoryImg/a.png"] = []byte("avatar")

	categories := &categoryRepoStub{byID: map[uint]*models.PopularCategory{
		7: {ID: 7, Avatar: "a.png", Title: "Runway"},
	}}
	svc := newContentService(st, categories, &talentRepoStub{})

	err := svc.DeleteCategory(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []uint{7}, categories.deleted)
	assert.NotContains(t, st.files, "categoryImg/a.png")
}

func TestDeleteCategoryRowFailureKeepsFile(t *testing.T) {
	st := newMemStorage()
	st.files["categoryImg/a.png"] = []byte("avatar")

	categories := &categoryRepoStub{
		byID:      map[uint]*models.PopularCategory{7: {ID: 7, Avatar: "a.png"}},
		deleteErr: errors.New("deadlock"),
	}
	svc := newContentService(st, categories, &talentRepoStub{})

	err := svc.DeleteCategory(context.Background(), 7)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.PersistenceFailed(nil).Code, appErr.Code)

	// Строка не удалена - файл обязан остаться
	assert.Contains(t, st.files, "categoryImg/a.png")
}

func TestDeleteCategoryNotFound(t *testing.T) {
	st := newMemStorage()
	svc := newContentService(st, &categoryRepoStub{byID: map[uint]*models.PopularCategory{}}, &talentRepoStub{})

	err := svc.DeleteCategory(context.Background(), 99)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.NotFound("category").Code, appErr.Code)
}

func TestCreateCategoryDiscardsUploadOnInsertFailure(t *testing.T) {
	st, dir := tempLocalStorage(t)
	uploads := NewUploadService(st, testUploadConfig())
	slots := NewSlotStore(newFakeSlotRepo(), st, uploads)

	categories := &categoryRepoStub{createErr: errors.New("duplicate key")}
	svc := NewContentService(slots, uploads, st,
		&fakeHomeRepo{}, categories, &talentRepoStub{}, &fakeTestimonialRepo{}, nil)

	file := makeFileHeader(t, "avatar.png", []byte("png"))
	_, err := svc.CreateCategory(context.Background(),
		&dto.CategoryForm{Title: "Runway", Gender: "female"}, file)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.PersistenceFailed(nil).Code, appErr.Code)

	// Загрузка не должна остаться в каталоге
	entries, readErr := os.ReadDir(filepath.Join(dir, "categoryImg"))
	if readErr == nil {
		assert.Empty(t, entries)
	}
}

func TestCreateTalentRequiresProfileImage(t *testing.T) {
	st, dir := tempLocalStorage(t)
	uploads := NewUploadService(st, testUploadConfig())
	slots := NewSlotStore(newFakeSlotRepo(), st, uploads)

	svc := NewContentService(slots, uploads, st,
		&fakeHomeRepo{}, &categoryRepoStub{}, &talentRepoStub{}, &fakeTestimonialRepo{}, nil)

	files := map[string]*multipart.FileHeader{
		"image1": makeFileHeader(t, "extra.png", []byte("png")),
	}
	_, err := svc.CreateTalent(context.Background(),
		&dto.TalentForm{Name: "Alex", Gender: "other"}, files)

	assert.True(t, apperrors.Is(err, apperrors.ErrNoFileProvided))

	// Принятый image1 убран вслед за отказом
	entries, readErr := os.ReadDir(filepath.Join(dir, "featuredImg"))
	if readErr == nil {
		assert.Empty(t, entries)
	}
}

func TestListCategoriesReturnsFileURLs(t *testing.T) {
	st := newMemStorage()
	categories := &categoryRepoStub{all: []models.PopularCategory{
		{ID: 1, Avatar: "a.png", Title: "Runway"},
		{ID: 2, Title: "Editorial"}, // без аватара
	}}
	svc := newContentService(st, categories, &talentRepoStub{})

	list, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Наружу уходит адрес, а не голое имя файла
	assert.Equal(t, "/uploads/categoryImg/a.png", list[0].Avatar)
	assert.Empty(t, list[1].Avatar)
}

func TestGetBannersReturnsFileURLs(t *testing.T) {
	st := newMemStorage()
	img := "b.jpg"
	home := &fakeHomeRepo{banners: []models.Banner{
		{ID: 1, ImagePath: &img},
		{ID: 2},
	}}

	uploads := &uploadAdapter{storage: st}
	slots := NewSlotStore(newFakeSlotRepo(), st, uploads)
	svc := NewContentService(slots, uploads, st,
		home, &categoryRepoStub{}, &talentRepoStub{}, &fakeTestimonialRepo{}, nil)

	banners, err := svc.GetBanners(context.Background())
	require.NoError(t, err)
	require.Len(t, banners, 2)

	require.NotNil(t, banners[0].ImagePath)
	assert.Equal(t, "/uploads/banners/b.jpg", *banners[0].ImagePath)
	assert.Nil(t, banners[1].ImagePath)
}

func TestDeleteTalentRemovesAllImages(t *testing.T) {
	st := newMemStorage()
	st.files["featuredImg/p.png"] = []byte("x")
	st.files["featuredImg/1.png"] = []byte("x")
	st.files["featuredImg/2.png"] = []byte("x")

	talents := &talentRepoStub{byID: map[uint]*models.FeaturedTalent{
		3: {
			ID:         3,
			ProfileImg: strptr("p.png"),
			Image1:     strptr("1.png"),
			Image2:     strptr("2.png"),
		},
	}}
	svc := newContentService(st, &categoryRepoStub{}, talents)

	err := svc.DeleteTalent(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, []uint{3}, talents.deleted)
	assert.Empty(t, st.files)
}
